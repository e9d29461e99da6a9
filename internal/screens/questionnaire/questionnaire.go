package questionnaire

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilan/internal/interview"
	"github.com/abhisek/bilan/internal/pack"
	"github.com/abhisek/bilan/internal/screen"
	"github.com/abhisek/bilan/internal/screens/nav"
	"github.com/abhisek/bilan/internal/session"
	"github.com/abhisek/bilan/internal/ui/components"
	"github.com/abhisek/bilan/internal/ui/layout"
	"github.com/abhisek/bilan/internal/ui/theme"
)

// QuestionnaireScreen runs the interview loop: show a question, collect
// the answer, advance the progression, generate the next question.
type QuestionnaireScreen struct {
	ctrl *session.Controller
	gen  interview.Generator
	pkg  *pack.Package

	current *interview.Question
	input   components.TextInput
	loading bool
	errMsg  string

	// welcome is the resume banner, cleared on the first keystroke.
	welcome *session.WelcomeBack

	// opening is the phase transition line, shown above the question.
	opening string

	// proposing is true while the conclusion prompt awaits a choice.
	proposing bool

	// proposalDeclined suppresses re-proposing until the hard ceiling.
	proposalDeclined bool
}

var _ screen.Screen = (*QuestionnaireScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionnaireScreen)(nil)

// New creates the questionnaire screen. welcomeBack may be nil.
func New(ctrl *session.Controller, gen interview.Generator, welcomeBack *session.WelcomeBack) *QuestionnaireScreen {
	s := &QuestionnaireScreen{
		ctrl:    ctrl,
		gen:     gen,
		welcome: welcomeBack,
		input:   components.NewTextInput("Votre reponse...", 2000),
	}
	s.input.ShowCount = true
	return s
}

func (s *QuestionnaireScreen) Init() tea.Cmd {
	if pkg, err := pack.Get(s.ctrl.Record().PackageID); err == nil {
		s.pkg = pkg
	}

	// A restored session resumes on the exact prompt that was on screen
	// when it was interrupted.
	if last := s.ctrl.Record().LastPrompt; last != "" {
		info := s.ctrl.Progression(s.pkg)
		s.current = &interview.Question{
			ID:    fmt.Sprintf("resume-%d", len(s.ctrl.Record().Answers)),
			Text:  last,
			Phase: info.CurrentPhase,
		}
		return s.input.Init()
	}

	s.loading = true
	return tea.Batch(s.generateNext(), s.input.Init())
}

func (s *QuestionnaireScreen) Title() string {
	return "Entretien"
}

func (s *QuestionnaireScreen) KeyHints() []layout.KeyHint {
	if s.proposing {
		return []layout.KeyHint{
			{Key: "O", Description: "Conclure le bilan"},
			{Key: "N", Description: "Continuer l'entretien"},
		}
	}
	return []layout.KeyHint{
		{Key: "Entree", Description: "Repondre"},
		{Key: "Ctrl+N", Description: "Nouveau bilan"},
	}
}

func (s *QuestionnaireScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.loading && !s.proposing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuestionnaireScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		// The fallback generator makes this rare; keep the session alive.
		s.errMsg = "La question n'a pas pu etre generee. Entree pour reessayer."
		return s, nil
	}

	s.errMsg = ""
	s.current = msg.Question
	s.ctrl.SetLastPrompt(msg.Question.Text)
	return s, nav.SaveNow()
}

func (s *QuestionnaireScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	s.welcome = nil

	if key == "ctrl+n" {
		s.ctrl.RequestNewAssessment()
		return s, nav.Goto(session.StatePackageSelection)
	}

	if s.proposing {
		switch key {
		case "o", "enter":
			return s, s.complete()
		case "n", "esc":
			s.proposing = false
			s.proposalDeclined = true
			s.loading = true
			return s, s.generateNext()
		}
		return s, nil
	}

	if s.errMsg != "" && key == "enter" {
		s.errMsg = ""
		s.loading = true
		return s, s.generateNext()
	}

	if s.loading {
		return s, nil
	}

	if key == "enter" {
		return s.submitAnswer()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuestionnaireScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	value := strings.TrimSpace(s.input.Value())
	if value == "" || s.current == nil {
		return s, nil
	}

	before := s.ctrl.Progression(s.pkg)
	answer := session.Answer{
		QuestionID: s.current.ID,
		Title:      s.current.Text,
		Value:      value,
		Complexity: string(s.current.Complexity),
		Theme:      string(s.current.Theme),
	}
	info := s.ctrl.AppendAnswer(answer, s.pkg)
	s.input.Reset()

	if info.CurrentPhase != before.CurrentPhase {
		s.opening = interview.PhaseOpening(info.CurrentPhase)
		s.proposalDeclined = false
	} else {
		s.opening = ""
	}

	// The conclusion phase ends the assessment: propose once the
	// minimum is met, force at the hard ceiling.
	if info.CurrentPhase == pack.PhaseConclusion {
		if info.MustForceNextPhase() {
			return s, tea.Batch(nav.SaveNow(), s.complete())
		}
		if info.ShouldProposeNextPhase() && !s.proposalDeclined {
			s.proposing = true
			return s, nav.SaveNow()
		}
	}

	s.loading = true
	return s, tea.Batch(nav.SaveNow(), s.generateNext())
}

func (s *QuestionnaireScreen) complete() tea.Cmd {
	s.proposing = false
	s.ctrl.Transition(session.StateCompletion)
	return nav.Goto(session.StateCompletion)
}

// generateNext builds the generation input from the working record and
// runs the generator off the event loop.
func (s *QuestionnaireScreen) generateNext() tea.Cmd {
	rec := s.ctrl.Record()
	info := s.ctrl.Progression(s.pkg)

	input := interview.GenerateInput{
		Phase:          info.CurrentPhase,
		UserName:       rec.UserName,
		CoachingStyle:  rec.CoachingStyle,
		Profile:        rec.Profile,
		PriorQuestions: append([]string(nil), rec.Questions...),
	}
	if s.pkg != nil {
		input.PackageName = s.pkg.Name
	}
	for _, a := range rec.Answers {
		input.RecentAnswers = append(input.RecentAnswers, a.Value)
	}

	return func() tea.Msg {
		q, err := s.gen.NextQuestion(context.Background(), input)
		return questionReadyMsg{Question: q, Err: err}
	}
}

func (s *QuestionnaireScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	info := s.ctrl.Progression(s.pkg)

	// Phase indicator and progress.
	labels := []string{
		pack.PhasePreliminary.String(),
		pack.PhaseInvestigation.String(),
		pack.PhaseConclusion.String(),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.PhaseDots(labels, int(info.CurrentPhase))))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", float64(info.GlobalPct)/100, true, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if s.welcome != nil {
		banner := fmt.Sprintf("Bon retour ! %d reponses conservees, derniere sauvegarde le %s.",
			s.welcome.AnswerCount, s.welcome.LastSaved.Format("02/01 a 15:04"))
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Success).
			Render(banner))
		b.WriteString("\n\n")
	}

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
		return b.String()
	}

	if s.proposing {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Accent).Bold(true).
			Render("Vous avez couvert l'essentiel. Souhaitez-vous conclure le bilan ? (O/N)"))
		return b.String()
	}

	if s.loading {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Preparation de la prochaine question..."))
		return b.String()
	}

	if s.opening != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Secondary).Italic(true).
			Render(s.opening))
		b.WriteString("\n\n")
	}

	if s.current != nil {
		card := theme.Card.Width(min(width-8, 70)).Render(
			theme.Question.Render(s.current.Text))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
