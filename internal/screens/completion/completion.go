package completion

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/bilan/internal/pack"
	"github.com/abhisek/bilan/internal/screen"
	"github.com/abhisek/bilan/internal/screens/nav"
	"github.com/abhisek/bilan/internal/session"
	"github.com/abhisek/bilan/internal/synthesis"
	"github.com/abhisek/bilan/internal/ui/theme"
)

const pollInterval = 200 * time.Millisecond

type pollMsg struct{}

type writesDoneMsg struct {
	summary *session.Summary
	err     error
}

// CompletionScreen waits for the synthesis to finish, then runs the
// completion writes and moves to the summary.
type CompletionScreen struct {
	ctrl  *session.Controller
	synth *synthesis.Service

	// fellBack is set when the generated summary failed and the
	// deterministic one was used instead.
	fellBack bool
}

var _ screen.Screen = (*CompletionScreen)(nil)

// New creates the completion screen.
func New(ctrl *session.Controller, synth *synthesis.Service) *CompletionScreen {
	return &CompletionScreen{ctrl: ctrl, synth: synth}
}

func (s *CompletionScreen) Init() tea.Cmd {
	s.synth.RequestSummary(context.Background(), s.buildInput())
	return poll()
}

func (s *CompletionScreen) Title() string {
	return "Synthese"
}

func (s *CompletionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pollMsg:
		sum, done, err := s.synth.ConsumeSummary()
		if !done {
			return s, poll()
		}
		if err != nil || sum == nil {
			// Completion never fails the user: a deterministic summary
			// is always available.
			s.fellBack = true
			sum = synthesis.Fallback(s.buildInput())
		}
		return s, s.runWrites(*sum)

	case writesDoneMsg:
		s.ctrl.FinishCompletion(msg.err)
		return s, nav.GotoWith(nav.GotoMsg{
			State:   session.StateSummary,
			Summary: msg.summary,
		})
	}
	return s, nil
}

// runWrites installs the summary and persists the completed assessment
// off the event loop.
func (s *CompletionScreen) runWrites(sum session.Summary) tea.Cmd {
	rec, a := s.ctrl.PrepareCompletion(uuid.NewString(), sum)
	ctrl := s.ctrl
	return func() tea.Msg {
		err := ctrl.RunCompletion(context.Background(), rec, a)
		msg := writesDoneMsg{summary: &sum, err: err}
		if rec != nil {
			msg.summary = rec.Summary
		}
		return msg
	}
}

func (s *CompletionScreen) buildInput() synthesis.Input {
	rec := s.ctrl.Record()
	input := synthesis.Input{
		UserName:      rec.UserName,
		CoachingStyle: rec.CoachingStyle,
		Profile:       rec.Profile,
	}
	if pkg, err := pack.Get(rec.PackageID); err == nil {
		input.PackageName = pkg.Name
	}
	for _, a := range rec.Answers {
		input.Exchanges = append(input.Exchanges, synthesis.Exchange{
			Question: a.Title,
			Answer:   a.Value,
			Theme:    a.Theme,
			Phase:    a.PhaseAtAnswer,
		})
	}
	return input
}

func (s *CompletionScreen) View(width, height int) string {
	msg := "Redaction de votre synthese en cours..."
	if s.fellBack {
		msg = "Finalisation de votre bilan..."
	}
	body := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(msg)
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func poll() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}
