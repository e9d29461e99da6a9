package restoring

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilan/internal/screen"
	"github.com/abhisek/bilan/internal/screens/nav"
	"github.com/abhisek/bilan/internal/session"
	"github.com/abhisek/bilan/internal/ui/theme"
)

// restoreResultMsg carries the outcome of the restore query.
type restoreResultMsg struct {
	Result session.RestoreResult
}

// timeoutMsg fires when the safety timer elapses before the query.
type timeoutMsg struct{}

// RestoringScreen is the transient entry screen. It races the restore
// query against a safety timer; whichever resolves first decides where
// the app lands, and the loser is discarded by the controller.
type RestoringScreen struct {
	ctrl *session.Controller
}

var _ screen.Screen = (*RestoringScreen)(nil)

// New creates the restoring screen.
func New(ctrl *session.Controller) *RestoringScreen {
	return &RestoringScreen{ctrl: ctrl}
}

func (s *RestoringScreen) Init() tea.Cmd {
	timeout := s.ctrl.Config().RestoreTimeout
	return tea.Batch(
		func() tea.Msg {
			return restoreResultMsg{Result: s.ctrl.Load(context.Background())}
		},
		tea.Tick(timeout, func(time.Time) tea.Msg { return timeoutMsg{} }),
	)
}

func (s *RestoringScreen) Title() string {
	return "Restauration"
}

func (s *RestoringScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case restoreResultMsg:
		if !s.ctrl.ApplyRestore(msg.Result) {
			// The safety timer already resolved the race.
			return s, nil
		}
		return s, navigate(msg.Result)

	case timeoutMsg:
		if !s.ctrl.ResolveTimeout() {
			return s, nil
		}
		return s, nav.Goto(session.StatePackageSelection)
	}
	return s, nil
}

// navigate maps a restore outcome to the screen to land on.
func navigate(res session.RestoreResult) tea.Cmd {
	switch res.Outcome {
	case session.OutcomeResume:
		return nav.GotoWith(nav.GotoMsg{State: res.State, WelcomeBack: res.WelcomeBack})
	case session.OutcomeSummary:
		return nav.GotoWith(nav.GotoMsg{State: session.StateSummary, Summary: res.Summary})
	default:
		return nav.Goto(session.StatePackageSelection)
	}
}

func (s *RestoringScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Recherche d'une session en cours...")
}
