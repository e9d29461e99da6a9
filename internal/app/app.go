package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilan/internal/interview"
	"github.com/abhisek/bilan/internal/router"
	"github.com/abhisek/bilan/internal/screen"
	"github.com/abhisek/bilan/internal/screens/completion"
	"github.com/abhisek/bilan/internal/screens/history"
	"github.com/abhisek/bilan/internal/screens/nav"
	"github.com/abhisek/bilan/internal/screens/packageselect"
	"github.com/abhisek/bilan/internal/screens/personalization"
	"github.com/abhisek/bilan/internal/screens/preliminary"
	"github.com/abhisek/bilan/internal/screens/questionnaire"
	"github.com/abhisek/bilan/internal/screens/restoring"
	"github.com/abhisek/bilan/internal/screens/summary"
	"github.com/abhisek/bilan/internal/session"
	"github.com/abhisek/bilan/internal/synthesis"
	"github.com/abhisek/bilan/internal/ui/layout"
)

// Options carries the wired dependencies into the TUI.
type Options struct {
	Controller  *session.Controller
	Generator   interview.Generator
	Synthesis   *synthesis.Service
	Assessments session.AssessmentRepo

	// StartNew skips restore and opens package selection with a pending
	// reset, mirroring the in-app new-assessment flow.
	StartNew bool
}

type saveTickMsg struct{}

type saveDoneMsg struct {
	err error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	var initial screen.Screen
	if opts.StartNew {
		opts.Controller.RequestNewAssessment()
		initial = packageselect.New(opts.Controller)
	} else {
		initial = restoring.New(opts.Controller)
	}
	return AppModel{
		router: router.New(initial),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.saveTick())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case nav.GotoMsg:
		s := m.buildScreen(msg)
		if msg.State == session.StateHistory {
			// History is the one browsable detour; everything else is a
			// lifecycle transition with no way back.
			return m, m.router.Push(s)
		}
		return m, m.router.Replace(s)

	case nav.SaveNowMsg:
		return m, m.persistCmd()

	case saveTickMsg:
		return m, tea.Batch(m.persistCmd(), m.saveTick())

	case saveDoneMsg:
		m.opts.Controller.NoteSaveResult(msg.err)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if cmd := m.persistCmd(); cmd != nil {
				return m, tea.Sequence(cmd, tea.Quit)
			}
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			// Fall through: the active screen may use esc itself, e.g. to
			// cancel a pending new-assessment request.
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// buildScreen constructs the destination for a navigation request.
// Screens never import each other; this is the only place they meet.
func (m AppModel) buildScreen(msg nav.GotoMsg) screen.Screen {
	ctrl := m.opts.Controller
	switch msg.State {
	case session.StatePackageSelection:
		return packageselect.New(ctrl)
	case session.StatePreliminary:
		return preliminary.New(ctrl)
	case session.StatePersonalization:
		return personalization.New(ctrl)
	case session.StateQuestionnaire:
		return questionnaire.New(ctrl, m.opts.Generator, msg.WelcomeBack)
	case session.StateCompletion:
		return completion.New(ctrl, m.opts.Synthesis)
	case session.StateSummary:
		sum := msg.Summary
		if sum == nil {
			sum = ctrl.Record().Summary
		}
		return summary.New(sum, ctrl)
	case session.StateHistory:
		return history.New(m.opts.Assessments, ctrl.UserID())
	}
	return restoring.New(ctrl)
}

// persistCmd snapshots the session and writes it off the event loop.
// It returns nil when there is nothing to save, which also covers the
// suppressed-persistence states of the lifecycle.
func (m AppModel) persistCmd() tea.Cmd {
	ctrl := m.opts.Controller
	rec, ok := ctrl.PrepareSave()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		err := ctrl.Persist(context.Background(), rec)
		return saveDoneMsg{err: err}
	}
}

func (m AppModel) saveTick() tea.Cmd {
	return tea.Tick(m.opts.Controller.Config().SaveInterval, func(time.Time) tea.Msg {
		return saveTickMsg{}
	})
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	rec := m.opts.Controller.Record()
	header := layout.RenderHeader(title, rec.UserName, rec.ProgressPct, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quitter"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
