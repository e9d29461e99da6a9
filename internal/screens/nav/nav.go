package nav

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bilan/internal/session"
)

// GotoMsg asks the app to install the screen for an application state.
// Screens never construct each other; they emit GotoMsg and the app
// builds the destination with its own dependencies.
type GotoMsg struct {
	State session.AppState

	// WelcomeBack is set when resuming an interrupted questionnaire.
	WelcomeBack *session.WelcomeBack

	// Summary is set when landing on the summary screen.
	Summary *session.Summary
}

// Goto returns a command that navigates to the given state.
func Goto(state session.AppState) tea.Cmd {
	return func() tea.Msg { return GotoMsg{State: state} }
}

// GotoWith returns a command that navigates with a payload.
func GotoWith(msg GotoMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// SaveNowMsg asks the app to persist the session immediately. Screens
// emit it after every mutation worth keeping: an answer, a transition,
// a new prompt.
type SaveNowMsg struct{}

// SaveNow returns a command that triggers an immediate save.
func SaveNow() tea.Cmd {
	return func() tea.Msg { return SaveNowMsg{} }
}
