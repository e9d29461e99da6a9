package completion

import (
	"context"
	"testing"

	"github.com/abhisek/bilan/internal/pack"
	"github.com/abhisek/bilan/internal/screens/nav"
	"github.com/abhisek/bilan/internal/session"
)

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

func testController(t *testing.T) (*session.Controller, *fakeSessionRepo, *fakeAssessmentRepo) {
	t.Helper()
	sessions := &fakeSessionRepo{records: make(map[string]*session.Record)}
	assessments := &fakeAssessmentRepo{}
	ctrl := session.NewController("local", sessions, assessments, session.DefaultConfig())
	return ctrl, sessions, assessments
}

func TestRunWritesPersistsAssessment(t *testing.T) {
	ctrl, sessions, assessments := testController(t)
	pkg, err := pack.Get("essentiel")
	if err != nil {
		t.Fatal(err)
	}
	ctrl.RequestNewAssessment()
	ctrl.ConfirmNewAssessment(context.Background(), pkg, "Claire")
	ctrl.AppendAnswer(session.Answer{QuestionID: "q-1", Value: "reponse"}, pkg)

	s := New(ctrl, nil)
	sum := session.Summary{Text: "Bilan complet.", Strengths: []string{"rigueur"}}

	msg, ok := s.runWrites(sum)().(writesDoneMsg)
	if !ok {
		t.Fatal("expected writesDoneMsg")
	}
	if msg.err != nil {
		t.Fatalf("completion writes failed: %v", msg.err)
	}
	if msg.summary == nil || msg.summary.Text != "Bilan complet." {
		t.Errorf("summary not carried forward: %+v", msg.summary)
	}
	if len(assessments.saved) != 1 {
		t.Fatalf("expected 1 saved assessment, got %d", len(assessments.saved))
	}
	if assessments.saved[0].AnswerCount != 1 {
		t.Errorf("assessment answer count = %d", assessments.saved[0].AnswerCount)
	}
	if len(sessions.records) != 0 {
		t.Error("session record should be deleted after completion")
	}
}

func TestRunWritesWithSuppressedSnapshot(t *testing.T) {
	// Before restore resolves PrepareSave yields no session copy; the
	// permanent write must still happen and the summary must survive.
	ctrl, sessions, assessments := testController(t)
	pkg, err := pack.Get("essentiel")
	if err != nil {
		t.Fatal(err)
	}
	ctrl.StartAssessment(pkg, "Claire")

	s := New(ctrl, nil)
	sum := session.Summary{Text: "Bilan complet."}

	msg, ok := s.runWrites(sum)().(writesDoneMsg)
	if !ok {
		t.Fatal("expected writesDoneMsg")
	}
	if msg.err != nil {
		t.Fatalf("completion writes failed: %v", msg.err)
	}
	if msg.summary == nil || msg.summary.Text != "Bilan complet." {
		t.Errorf("summary not carried forward: %+v", msg.summary)
	}
	if len(assessments.saved) != 1 {
		t.Fatalf("expected 1 saved assessment, got %d", len(assessments.saved))
	}
	if len(sessions.records) != 0 {
		t.Error("no session record should exist")
	}
}

func TestWritesDoneMovesToSummary(t *testing.T) {
	ctrl, _, _ := testController(t)
	s := New(ctrl, nil)
	sum := &session.Summary{Text: "Bilan complet."}

	_, cmd := s.Update(writesDoneMsg{summary: sum})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	goTo, ok := cmd().(nav.GotoMsg)
	if !ok {
		t.Fatal("expected nav.GotoMsg")
	}
	if goTo.State != session.StateSummary {
		t.Errorf("state = %v", goTo.State)
	}
	if goTo.Summary != sum {
		t.Error("summary should travel with the navigation message")
	}
}
