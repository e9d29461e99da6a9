package packageselect

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bilan/internal/pack"
	"github.com/abhisek/bilan/internal/screens/nav"
	"github.com/abhisek/bilan/internal/session"
)

type fakeSessionRepo struct {
	records map[string]*session.Record
	deletes int
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
	f.deletes++
	delete(f.records, userID)
	return nil
}

type fakeAssessmentRepo struct{}

func (fakeAssessmentRepo) Save(_ context.Context, _ *session.Assessment) error { return nil }
func (fakeAssessmentRepo) Latest(_ context.Context, _ string) (*session.Assessment, error) {
	return nil, nil
}
func (fakeAssessmentRepo) List(_ context.Context, _ string) ([]*session.Assessment, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s *SelectScreen, text string) {
	for _, r := range text {
		updated, _ := s.Update(keyPress(r))
		*s = *updated.(*SelectScreen)
	}
}

func testScreen() (*SelectScreen, *session.Controller, *fakeSessionRepo) {
	repo := &fakeSessionRepo{records: make(map[string]*session.Record)}
	ctrl := session.NewController("local", repo, fakeAssessmentRepo{}, session.DefaultConfig())
	return New(ctrl), ctrl, repo
}

func TestSelectStartsAssessment(t *testing.T) {
	s, ctrl, _ := testScreen()
	ctrl.ResolveTimeout()

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*SelectScreen)
	if s.stage != stageName {
		t.Fatal("expected the name stage after picking a package")
	}

	typeText(s, "Nora")
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	rec := ctrl.Record()
	if rec.UserName != "Nora" {
		t.Errorf("UserName = %q, want Nora", rec.UserName)
	}
	if rec.PackageID != pack.All()[0].ID {
		t.Errorf("PackageID = %q, want the first package", rec.PackageID)
	}
	if rec.State != session.StatePreliminary {
		t.Errorf("State = %v, want preliminary", rec.State)
	}
	if cmd == nil {
		t.Error("expected navigation and save commands")
	}
}

func TestBlankNameRejected(t *testing.T) {
	s, ctrl, _ := testScreen()
	ctrl.ResolveTimeout()

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*SelectScreen)
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if cmd != nil {
		t.Error("expected no command for a blank name")
	}
	if ctrl.Record().UserName != "" {
		t.Error("assessment must not start without a name")
	}
}

func TestPendingResetCommitsOnSelection(t *testing.T) {
	s, ctrl, repo := testScreen()
	ctrl.ResolveTimeout()
	pkg, _ := pack.Get("essentiel")
	ctrl.StartAssessment(pkg, "Claire")
	ctrl.AppendAnswer(session.Answer{QuestionID: "q", Value: "r"}, pkg)

	ctrl.RequestNewAssessment()
	if repo.deletes != 0 {
		t.Fatal("requesting a reset must not touch the durable record")
	}

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*SelectScreen)
	typeText(s, "Jean")
	s.Update(specialKey(tea.KeyEnter))

	if repo.deletes != 1 {
		t.Errorf("deletes = %d, want 1 at the commitment point", repo.deletes)
	}
	if ctrl.ResetState() != session.ResetActive {
		t.Errorf("reset state = %v, want active", ctrl.ResetState())
	}
	if ctrl.Record().UserName != "Jean" {
		t.Errorf("UserName = %q, want Jean", ctrl.Record().UserName)
	}
	if len(ctrl.Record().Answers) != 0 {
		t.Error("the new assessment must start empty")
	}
}

func TestEscCancelsPendingReset(t *testing.T) {
	s, ctrl, repo := testScreen()
	ctrl.ResolveTimeout()
	pkg, _ := pack.Get("essentiel")
	ctrl.StartAssessment(pkg, "Claire")
	ctrl.Transition(session.StateQuestionnaire)
	ctrl.AppendAnswer(session.Answer{QuestionID: "q", Value: "r"}, pkg)

	ctrl.RequestNewAssessment()
	_, cmd := s.Update(specialKey(tea.KeyEscape))

	if ctrl.ResetState() != session.ResetIdle {
		t.Errorf("reset state = %v, want idle", ctrl.ResetState())
	}
	if repo.deletes != 0 {
		t.Error("cancelling must not delete the durable record")
	}
	rec := ctrl.Record()
	if rec.UserName != "Claire" || len(rec.Answers) != 1 {
		t.Error("expected the original assessment to be restored intact")
	}

	if cmd == nil {
		t.Fatal("expected navigation back to the interrupted state")
	}
	msg := cmd()
	goto_, ok := msg.(nav.GotoMsg)
	if !ok {
		t.Fatalf("msg = %T, want nav.GotoMsg", msg)
	}
	if goto_.State != session.StateQuestionnaire {
		t.Errorf("goto state = %v, want questionnaire", goto_.State)
	}
}

func TestEscWithoutPendingResetDoesNothing(t *testing.T) {
	s, _, _ := testScreen()

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd != nil {
		t.Error("expected no command without a pending reset")
	}
}

func TestHistoryShortcut(t *testing.T) {
	s, _, _ := testScreen()

	_, cmd := s.Update(keyPress('h'))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg := cmd()
	goto_, ok := msg.(nav.GotoMsg)
	if !ok || goto_.State != session.StateHistory {
		t.Errorf("msg = %#v, want history navigation", msg)
	}
}
