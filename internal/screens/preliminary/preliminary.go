package preliminary

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilan/internal/screen"
	"github.com/abhisek/bilan/internal/screens/nav"
	"github.com/abhisek/bilan/internal/session"
	"github.com/abhisek/bilan/internal/ui/components"
	"github.com/abhisek/bilan/internal/ui/layout"
	"github.com/abhisek/bilan/internal/ui/theme"
)

// ConsentVersion identifies the consent text currently in use.
const ConsentVersion = "2026-01"

const consentText = `Ce bilan de competences s'appuie sur un entretien guide.

Vos reponses sont enregistrees localement sur cette machine, uniquement
pour permettre la reprise de session et la redaction de votre synthese.
Elles ne sont transmises a aucun tiers en dehors du service d'IA
configure pour generer les questions et la synthese.

Vous pouvez interrompre le bilan a tout moment ; votre progression est
sauvegardee et reprendra ou vous vous etiez arrete.`

// ConsentScreen is the preliminary phase entry: the assessment only
// proceeds once consent is given.
type ConsentScreen struct {
	ctrl   *session.Controller
	accept components.Button
}

var _ screen.Screen = (*ConsentScreen)(nil)
var _ screen.KeyHintProvider = (*ConsentScreen)(nil)

// New creates the consent screen.
func New(ctrl *session.Controller) *ConsentScreen {
	s := &ConsentScreen{ctrl: ctrl}
	s.accept = components.NewButton("J'accepte et je continue", true, func() tea.Cmd {
		s.ctrl.SetConsent(session.Consent{
			Accepted:   true,
			AcceptedAt: time.Now().UTC(),
			Version:    ConsentVersion,
		})
		s.ctrl.Transition(session.StatePersonalization)
		return tea.Batch(nav.Goto(session.StatePersonalization), nav.SaveNow())
	})
	return s
}

func (s *ConsentScreen) Init() tea.Cmd {
	return nil
}

func (s *ConsentScreen) Title() string {
	return "Avant de commencer"
}

func (s *ConsentScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Entree", Description: "J'accepte"},
		{Key: "R", Description: "Refuser"},
	}
}

func (s *ConsentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter", "a":
		return s, s.accept.OnPress()

	case "r":
		// Refusal abandons the assessment before anything durable exists.
		return s, nav.Goto(session.StatePackageSelection)
	}
	return s, nil
}

func (s *ConsentScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).
		Render("Consentement"))
	b.WriteString("\n\n")

	card := theme.Card.Width(min(width-8, 70)).Render(
		lipgloss.NewStyle().Foreground(theme.Text).Render(consentText))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.accept.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).Italic(true).
		Render("Entree pour accepter, R pour refuser."))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
