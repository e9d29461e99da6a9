package restoring

import (
	"context"
	"testing"
	"time"

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

type fakeAssessmentRepo struct{}

func (fakeAssessmentRepo) Save(_ context.Context, _ *session.Assessment) error { return nil }
func (fakeAssessmentRepo) Latest(_ context.Context, _ string) (*session.Assessment, error) {
	return nil, nil
}
func (fakeAssessmentRepo) List(_ context.Context, _ string) ([]*session.Assessment, error) {
	return nil, nil
}

func testController(records map[string]*session.Record) *session.Controller {
	if records == nil {
		records = make(map[string]*session.Record)
	}
	return session.NewController("local",
		&fakeSessionRepo{records: records}, fakeAssessmentRepo{}, session.DefaultConfig())
}

func TestFreshStoreLandsOnPackageSelection(t *testing.T) {
	ctrl := testController(nil)
	s := New(ctrl)

	res := ctrl.Load(context.Background())
	scr, cmd := s.Update(restoreResultMsg{Result: res})
	s = scr.(*RestoringScreen)

	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg := cmd()
	goto_, ok := msg.(nav.GotoMsg)
	if !ok || goto_.State != session.StatePackageSelection {
		t.Errorf("msg = %#v, want package selection navigation", msg)
	}
}

func TestResumeCarriesWelcomeBack(t *testing.T) {
	saved := &session.Record{
		State:     session.StateQuestionnaire,
		UserName:  "Claire",
		PackageID: "essentiel",
		Answers: []session.Answer{
			{QuestionID: "q1", Value: "r1"},
			{QuestionID: "q2", Value: "r2"},
		},
		UpdatedAt: time.Now().Add(-time.Hour),
	}
	ctrl := testController(map[string]*session.Record{"local": saved})
	s := New(ctrl)

	res := ctrl.Load(context.Background())
	_, cmd := s.Update(restoreResultMsg{Result: res})

	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg := cmd()
	goto_, ok := msg.(nav.GotoMsg)
	if !ok {
		t.Fatalf("msg = %T, want nav.GotoMsg", msg)
	}
	if goto_.State != session.StateQuestionnaire {
		t.Errorf("state = %v, want questionnaire", goto_.State)
	}
	if goto_.WelcomeBack == nil || goto_.WelcomeBack.AnswerCount != 2 {
		t.Errorf("WelcomeBack = %+v, want 2 answers", goto_.WelcomeBack)
	}
}

func TestTimeoutWinsRace(t *testing.T) {
	ctrl := testController(nil)
	s := New(ctrl)

	scr, cmd := s.Update(timeoutMsg{})
	s = scr.(*RestoringScreen)
	if cmd == nil {
		t.Fatal("expected navigation after timeout")
	}
	msg := cmd()
	if goto_, ok := msg.(nav.GotoMsg); !ok || goto_.State != session.StatePackageSelection {
		t.Errorf("msg = %#v, want package selection navigation", msg)
	}

	// The late restore result is discarded.
	res := ctrl.Load(context.Background())
	_, cmd = s.Update(restoreResultMsg{Result: res})
	if cmd != nil {
		t.Error("expected the race loser to be discarded")
	}
}

func TestRestoreWinsThenTimeoutIgnored(t *testing.T) {
	ctrl := testController(nil)
	s := New(ctrl)

	res := ctrl.Load(context.Background())
	scr, cmd := s.Update(restoreResultMsg{Result: res})
	s = scr.(*RestoringScreen)
	if cmd == nil {
		t.Fatal("expected navigation from the restore result")
	}

	_, cmd = s.Update(timeoutMsg{})
	if cmd != nil {
		t.Error("expected the late timeout to be ignored")
	}
}
