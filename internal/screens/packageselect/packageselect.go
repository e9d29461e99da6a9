package packageselect

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilan/internal/pack"
	"github.com/abhisek/bilan/internal/screen"
	"github.com/abhisek/bilan/internal/screens/nav"
	"github.com/abhisek/bilan/internal/session"
	"github.com/abhisek/bilan/internal/ui/components"
	"github.com/abhisek/bilan/internal/ui/layout"
	"github.com/abhisek/bilan/internal/ui/theme"
)

type stage int

const (
	stagePackage stage = iota
	stageName
)

// SelectScreen lets the user pick a package and enter their name. When
// a new-assessment request is pending, picking a package here is the
// commitment point of the double confirmation; Esc cancels and resumes
// the previous assessment untouched.
type SelectScreen struct {
	ctrl     *session.Controller
	packages []pack.Package
	selected int
	stage    stage
	input    components.TextInput
}

var _ screen.Screen = (*SelectScreen)(nil)
var _ screen.KeyHintProvider = (*SelectScreen)(nil)

// New creates the package selection screen.
func New(ctrl *session.Controller) *SelectScreen {
	return &SelectScreen{
		ctrl:     ctrl,
		packages: pack.All(),
		input:    components.NewTextInput("Votre prenom...", 40),
	}
}

func (s *SelectScreen) Init() tea.Cmd {
	return nil
}

func (s *SelectScreen) Title() string {
	return "Choix du parcours"
}

func (s *SelectScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Entree", Description: "Choisir"},
		{Key: "H", Description: "Historique"},
	}
	if s.ctrl.ResetState() == session.ResetPending {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Reprendre le bilan en cours"})
	}
	return hints
}

func (s *SelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.stage == stageName {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.stage == stageName {
		return s.updateName(kmsg)
	}
	return s.updatePackage(kmsg)
}

func (s *SelectScreen) updatePackage(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.packages)-1 {
			s.selected++
		}
	case "enter":
		s.stage = stageName
		return s, s.input.Init()
	case "h":
		return s, nav.Goto(session.StateHistory)
	case "esc":
		return s, s.cancelReset()
	}
	return s, nil
}

func (s *SelectScreen) updateName(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(s.input.Value())
		if name == "" {
			return s, nil
		}
		return s, s.start(name)
	case "esc":
		s.stage = stagePackage
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// start commits the selection. Under a pending reset this is the point
// where the old durable record is actually deleted.
func (s *SelectScreen) start(name string) tea.Cmd {
	pkg := &s.packages[s.selected]

	if s.ctrl.ResetState() == session.ResetPending {
		s.ctrl.ConfirmNewAssessment(context.Background(), pkg, name)
	} else {
		s.ctrl.StartAssessment(pkg, name)
	}

	return tea.Batch(nav.Goto(session.StatePreliminary), nav.SaveNow())
}

// cancelReset abandons a pending new-assessment request and resumes the
// previous session exactly where it was.
func (s *SelectScreen) cancelReset() tea.Cmd {
	if s.ctrl.ResetState() != session.ResetPending {
		return nil
	}
	s.ctrl.CancelNewAssessment()
	rec := s.ctrl.Record()
	return nav.Goto(rec.State)
}

func (s *SelectScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	title := "Quel parcours souhaitez-vous suivre ?"
	if s.stage == stageName {
		title = "Comment dois-je vous appeler ?"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).
		Render(title))
	b.WriteString("\n\n")

	if s.ctrl.ResetState() == session.ResetPending {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Votre bilan en cours est conserve tant qu'aucun parcours n'est choisi."))
		b.WriteString("\n\n")
	}

	if s.stage == stageName {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
		return b.String()
	}

	for i, p := range s.packages {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		questions := "questions adaptees a vos reponses"
		if p.HasEstimates() {
			questions = fmt.Sprintf("~%d questions", p.TotalEstimate.Target)
		}

		line := fmt.Sprintf("%s%-12s %2dh  %s", prefix, p.Name, p.Hours, questions)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
