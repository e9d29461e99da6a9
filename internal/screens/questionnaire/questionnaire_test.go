package questionnaire

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bilan/internal/interview"
	"github.com/abhisek/bilan/internal/pack"
	"github.com/abhisek/bilan/internal/screens/nav"
	"github.com/abhisek/bilan/internal/session"
)

// mockGenerator implements interview.Generator for testing.
type mockGenerator struct {
	question *interview.Question
	err      error
	calls    int
}

func (m *mockGenerator) NextQuestion(_ context.Context, input interview.GenerateInput) (*interview.Question, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	q := *m.question
	q.Phase = input.Phase
	return &q, nil
}

type fakeSessionRepo struct {
	records map[string]*session.Record
}

func (f *fakeSessionRepo) Get(_ context.Context, userID string) (*session.Record, error) {
	rec, ok := f.records[userID]
	if !ok {
		return nil, nil
	}
	return rec.Clone(), nil
}

func (f *fakeSessionRepo) Upsert(_ context.Context, userID string, rec *session.Record) error {
	f.records[userID] = rec.Clone()
	return nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, userID string) error {
	delete(f.records, userID)
	return nil
}

type fakeAssessmentRepo struct {
	saved []*session.Assessment
}

func (f *fakeAssessmentRepo) Save(_ context.Context, a *session.Assessment) error {
	f.saved = append(f.saved, a)
	return nil
}

func (f *fakeAssessmentRepo) Latest(_ context.Context, _ string) (*session.Assessment, error) {
	if len(f.saved) == 0 {
		return nil, nil
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeAssessmentRepo) List(_ context.Context, _ string) ([]*session.Assessment, error) {
	return f.saved, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T) (*QuestionnaireScreen, *mockGenerator, *session.Controller) {
	t.Helper()

	gen := &mockGenerator{
		question: &interview.Question{
			ID:         "q-1",
			Text:       "Parlez-moi de votre parcours.",
			Theme:      interview.ThemeParcours,
			Complexity: interview.ComplexitySimple,
		},
	}
	ctrl := session.NewController("local",
		&fakeSessionRepo{records: make(map[string]*session.Record)},
		&fakeAssessmentRepo{},
		session.DefaultConfig())

	pkg, err := pack.Get("essentiel")
	if err != nil {
		t.Fatal(err)
	}
	ctrl.StartAssessment(pkg, "Claire")
	ctrl.Transition(session.StateQuestionnaire)

	s := New(ctrl, gen, nil)
	s.pkg = pkg
	return s, gen, ctrl
}

// seedAnswers appends n answers directly through the controller.
func seedAnswers(s *QuestionnaireScreen, ctrl *session.Controller, n int) {
	for i := 0; i < n; i++ {
		ctrl.AppendAnswer(session.Answer{QuestionID: "seed", Value: "reponse"}, s.pkg)
	}
}

func TestTitle(t *testing.T) {
	s, _, _ := testScreen(t)
	if s.Title() != "Entretien" {
		t.Errorf("Title = %q, want %q", s.Title(), "Entretien")
	}
}

func TestInitResumesLastPrompt(t *testing.T) {
	s, gen, ctrl := testScreen(t)
	ctrl.SetLastPrompt("Quelles sont vos motivations ?")

	s.Init()

	if s.current == nil || s.current.Text != "Quelles sont vos motivations ?" {
		t.Fatalf("expected resumed question, got %+v", s.current)
	}
	if s.loading {
		t.Error("expected no generation while resuming the last prompt")
	}
	if gen.calls != 0 {
		t.Errorf("generator calls = %d, want 0", gen.calls)
	}
}

func TestInitGeneratesWhenNoPrompt(t *testing.T) {
	s, _, _ := testScreen(t)

	cmd := s.Init()

	if !s.loading {
		t.Error("expected loading state")
	}
	if cmd == nil {
		t.Error("expected a generation command")
	}
}

func TestQuestionReadyStoresPrompt(t *testing.T) {
	s, _, ctrl := testScreen(t)
	s.loading = true

	q := &interview.Question{ID: "q-2", Text: "Quelles competences utilisez-vous le plus ?"}
	scr, cmd := s.Update(questionReadyMsg{Question: q})
	s = scr.(*QuestionnaireScreen)

	if s.loading {
		t.Error("expected loading to clear")
	}
	if s.current != q {
		t.Error("expected question to be current")
	}
	if ctrl.Record().LastPrompt != q.Text {
		t.Errorf("LastPrompt = %q, want the question text", ctrl.Record().LastPrompt)
	}
	if cmd == nil {
		t.Error("expected an immediate save command")
	}
}

func TestQuestionReadyError(t *testing.T) {
	s, _, _ := testScreen(t)
	s.loading = true

	scr, _ := s.Update(questionReadyMsg{Err: errors.New("boom")})
	s = scr.(*QuestionnaireScreen)

	if s.errMsg == "" {
		t.Error("expected an error message")
	}
	if s.loading {
		t.Error("expected loading to clear on error")
	}
}

func TestSubmitAppendsAnswer(t *testing.T) {
	s, _, ctrl := testScreen(t)
	s.current = &interview.Question{
		ID:         "q-1",
		Text:       "Parlez-moi de votre parcours.",
		Theme:      interview.ThemeParcours,
		Complexity: interview.ComplexityMoyen,
	}
	s.input.Model.SetValue("Dix ans dans la logistique.")

	scr, cmd := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*QuestionnaireScreen)

	answers := ctrl.Record().Answers
	if len(answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(answers))
	}
	if answers[0].Value != "Dix ans dans la logistique." {
		t.Errorf("answer value = %q", answers[0].Value)
	}
	if answers[0].Theme != "parcours" {
		t.Errorf("answer theme = %q, want parcours", answers[0].Theme)
	}
	if s.input.Value() != "" {
		t.Error("expected input to reset after submit")
	}
	if !s.loading {
		t.Error("expected next question generation")
	}
	if cmd == nil {
		t.Error("expected save and generate commands")
	}
}

func TestSubmitIgnoresEmptyAnswer(t *testing.T) {
	s, _, ctrl := testScreen(t)
	s.current = &interview.Question{ID: "q-1", Text: "Question"}
	s.input.Model.SetValue("   ")

	s.Update(specialKey(tea.KeyEnter))

	if len(ctrl.Record().Answers) != 0 {
		t.Error("blank answers must not be recorded")
	}
}

func TestConclusionProposal(t *testing.T) {
	s, _, ctrl := testScreen(t)
	// Essentiel targets are 5/20/5; the 30th answer completes the
	// conclusion minimum.
	seedAnswers(s, ctrl, 29)
	s.current = &interview.Question{ID: "q-30", Text: "Derniere question"}
	s.input.Model.SetValue("Ma reponse finale.")

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*QuestionnaireScreen)

	if !s.proposing {
		t.Fatal("expected the conclusion proposal")
	}

	// Declining resumes the interview.
	scr, _ = s.Update(keyPress('n'))
	s = scr.(*QuestionnaireScreen)
	if s.proposing {
		t.Error("expected proposal to be dismissed")
	}
	if !s.loading {
		t.Error("expected a next question after declining")
	}
	if !s.proposalDeclined {
		t.Error("expected the decline to be remembered")
	}
}

func TestConclusionProposalAccepted(t *testing.T) {
	s, _, ctrl := testScreen(t)
	seedAnswers(s, ctrl, 29)
	s.current = &interview.Question{ID: "q-30", Text: "Derniere question"}
	s.input.Model.SetValue("Ma reponse finale.")

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*QuestionnaireScreen)
	_, cmd := s.Update(keyPress('o'))

	if ctrl.Record().State != session.StateCompletion {
		t.Errorf("state = %v, want completion", ctrl.Record().State)
	}
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg := cmd()
	goto_, ok := msg.(nav.GotoMsg)
	if !ok {
		t.Fatalf("msg = %T, want nav.GotoMsg", msg)
	}
	if goto_.State != session.StateCompletion {
		t.Errorf("goto state = %v, want completion", goto_.State)
	}
}

func TestForcedCompletionAtCeiling(t *testing.T) {
	s, _, ctrl := testScreen(t)
	// The conclusion ceiling for essentiel sits at 7 of 5 answers, so
	// the 32nd answer forces completion.
	seedAnswers(s, ctrl, 31)
	s.proposalDeclined = true
	s.current = &interview.Question{ID: "q-32", Text: "Encore une question"}
	s.input.Model.SetValue("Reponse.")

	scr, cmd := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*QuestionnaireScreen)

	if s.proposing {
		t.Error("the ceiling must not re-propose")
	}
	if ctrl.Record().State != session.StateCompletion {
		t.Errorf("state = %v, want completion", ctrl.Record().State)
	}
	if cmd == nil {
		t.Error("expected save and navigation commands")
	}
}

func TestCtrlNRequestsReset(t *testing.T) {
	s, _, ctrl := testScreen(t)
	seedAnswers(s, ctrl, 3)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})

	if ctrl.ResetState() != session.ResetPending {
		t.Errorf("reset state = %v, want pending", ctrl.ResetState())
	}
	if cmd == nil {
		t.Fatal("expected navigation to package selection")
	}
	msg := cmd()
	goto_, ok := msg.(nav.GotoMsg)
	if !ok {
		t.Fatalf("msg = %T, want nav.GotoMsg", msg)
	}
	if goto_.State != session.StatePackageSelection {
		t.Errorf("goto state = %v, want package selection", goto_.State)
	}
}

func TestViewStates(t *testing.T) {
	s, _, _ := testScreen(t)

	s.loading = true
	if s.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}

	s.loading = false
	s.errMsg = "erreur"
	if s.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}

	s.errMsg = ""
	s.current = &interview.Question{Text: "Question ?"}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}
}
