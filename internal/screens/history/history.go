package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilan/internal/pack"
	"github.com/abhisek/bilan/internal/router"
	"github.com/abhisek/bilan/internal/screen"
	"github.com/abhisek/bilan/internal/session"
	"github.com/abhisek/bilan/internal/ui/layout"
	"github.com/abhisek/bilan/internal/ui/theme"
)

type historyLoadedMsg struct {
	Assessments []*session.Assessment
	Err         error
}

// HistoryScreen lists past completed assessments with their syntheses.
type HistoryScreen struct {
	repo        session.AssessmentRepo
	userID      string
	assessments []*session.Assessment
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo session.AssessmentRepo, userID string) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		userID:   userID,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		assessments, err := s.repo.List(context.Background(), s.userID)
		return historyLoadedMsg{Assessments: assessments, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Historique"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Entree", Description: "Details"},
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Esc", Description: "Retour"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.assessments = msg.Assessments
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.assessments)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nErreur : %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Chargement de l'historique...")
	}
	if len(s.assessments) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Aucun bilan termine pour le moment.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.assessments {
		dateStr := a.CompletedAt.Format("02/01/2006")
		hours := int(a.Duration.Hours())
		mins := int(a.Duration.Minutes()) % 60
		durationStr := fmt.Sprintf("%dh%02d", hours, mins)

		pkgName := a.PackageID
		if pkg, err := pack.Get(a.PackageID); err == nil {
			pkgName = pkg.Name
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d reponses  %s",
			prefix, dateStr, pkgName, a.AnswerCount, durationStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			card := theme.Card.Width(min(width-12, 64)).Render(a.Summary.Text)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
			b.WriteString("\n")
			for _, str := range a.Summary.Strengths {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.Success).Render("    + "+str)))
				b.WriteString("\n")
			}
			for _, axis := range a.Summary.Axes {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.Accent).Render("    > "+axis)))
				b.WriteString("\n")
			}
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
