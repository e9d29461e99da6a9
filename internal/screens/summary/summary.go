package summary

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilan/internal/screen"
	"github.com/abhisek/bilan/internal/screens/nav"
	"github.com/abhisek/bilan/internal/session"
	"github.com/abhisek/bilan/internal/ui/layout"
	"github.com/abhisek/bilan/internal/ui/theme"
)

// SummaryScreen displays the final assessment synthesis.
type SummaryScreen struct {
	summary *session.Summary
	ctrl    *session.Controller
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary, ctrl *session.Controller) *SummaryScreen {
	return &SummaryScreen{summary: summary, ctrl: ctrl}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Votre synthese"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "H", Description: "Historique"},
		{Key: "N", Description: "Nouveau bilan"},
		{Key: "Ctrl+C", Description: "Quitter"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "h":
			return s, nav.Goto(session.StateHistory)
		case "n":
			s.ctrl.RequestNewAssessment()
			return s, nav.Goto(session.StatePackageSelection)
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Votre bilan de competences est termine"))
	b.WriteString("\n\n")

	bodyWidth := min(width-8, 70)
	card := theme.Card.Width(bodyWidth).Render(sum.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	if len(sum.Strengths) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Points forts")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, str := range sum.Strengths {
			line := lipgloss.NewStyle().Foreground(theme.Success).Render("  + " + str)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(sum.Axes) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Axes de developpement")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, axis := range sum.Axes {
			line := lipgloss.NewStyle().Foreground(theme.Accent).Render("  > " + axis)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
