package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bilan/internal/pack"
)

// fakeSessionRepo is an in-memory SessionRepo with per-call error
// injection.
type fakeSessionRepo struct {
	records map[string]*Record
	getErr  error
	putErr  error
	delErr  error

	upserts int
	deletes int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{records: make(map[string]*Record)}
}

func (f *fakeSessionRepo) Get(_ context.Context, userID string) (*Record, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	rec, ok := f.records[userID]
	if !ok {
		return nil, nil
	}
	cp := rec.Clone()
	return cp, nil
}

func (f *fakeSessionRepo) Upsert(_ context.Context, userID string, rec *Record) error {
	f.upserts++
	if f.putErr != nil {
		return f.putErr
	}
	f.records[userID] = rec.Clone()
	return nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, userID string) error {
	f.deletes++
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.records, userID)
	return nil
}

type fakeAssessmentRepo struct {
	saved   []*Assessment
	saveErr error
}

func (f *fakeAssessmentRepo) Save(_ context.Context, a *Assessment) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, a)
	return nil
}

func (f *fakeAssessmentRepo) Latest(_ context.Context, userID string) (*Assessment, error) {
	for i := len(f.saved) - 1; i >= 0; i-- {
		if f.saved[i].UserID == userID {
			return f.saved[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAssessmentRepo) List(_ context.Context, userID string) ([]*Assessment, error) {
	var out []*Assessment
	for _, a := range f.saved {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func newTestController(sessions *fakeSessionRepo, assessments *fakeAssessmentRepo) *Controller {
	c := NewController("user-1", sessions, assessments, DefaultConfig())
	c.now = func() time.Time { return time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC) }
	return c
}

func testPkg() *pack.Package {
	return &pack.Package{
		ID:   "essentiel",
		Name: "Bilan Essentiel",
		PhaseEstimates: []pack.QuestionEstimate{
			{Target: 5}, {Target: 20}, {Target: 5},
		},
		TotalEstimate: pack.QuestionEstimate{Target: 30},
	}
}

func TestLoad_NoRecord(t *testing.T) {
	c := newTestController(newFakeSessionRepo(), &fakeAssessmentRepo{})

	res := c.Load(context.Background())

	assert.Equal(t, OutcomeFresh, res.Outcome)
	assert.Equal(t, StatePackageSelection, res.State)
}

func TestLoad_ReadFailureDegradesToFresh(t *testing.T) {
	sessions := newFakeSessionRepo()
	sessions.getErr = errors.New("backend down")
	c := newTestController(sessions, &fakeAssessmentRepo{})

	res := c.Load(context.Background())

	assert.Equal(t, OutcomeFresh, res.Outcome)
}

func TestLoad_ExpiredRecordPurged(t *testing.T) {
	sessions := newFakeSessionRepo()
	c := newTestController(sessions, &fakeAssessmentRepo{})
	sessions.records["user-1"] = &Record{
		State:     StateQuestionnaire,
		UpdatedAt: c.now().Add(-8 * 24 * time.Hour),
	}

	res := c.Load(context.Background())

	assert.Equal(t, OutcomeFresh, res.Outcome)
	assert.NotContains(t, sessions.records, "user-1", "expired record should be purged")
}

func TestLoad_ResumeWithWelcomeBack(t *testing.T) {
	sessions := newFakeSessionRepo()
	c := newTestController(sessions, &fakeAssessmentRepo{})
	saved := c.now().Add(-2 * time.Hour)
	sessions.records["user-1"] = &Record{
		State:      StateQuestionnaire,
		UserName:   "Nadia",
		PackageID:  "essentiel",
		Answers:    []Answer{{QuestionID: "q1", Value: "..."}, {QuestionID: "q2", Value: "..."}},
		LastPrompt: "Parlez-moi de votre dernier poste.",
		UpdatedAt:  saved,
	}

	res := c.Load(context.Background())

	require.Equal(t, OutcomeResume, res.Outcome)
	assert.Equal(t, StateQuestionnaire, res.State)
	require.NotNil(t, res.WelcomeBack)
	assert.Equal(t, 2, res.WelcomeBack.AnswerCount)
	assert.Equal(t, saved, res.WelcomeBack.LastSaved)
	assert.Equal(t, "Parlez-moi de votre dernier poste.", res.Record.LastPrompt)
}

func TestLoad_CompletionRecoversFromHistoryFirst(t *testing.T) {
	sessions := newFakeSessionRepo()
	assessments := &fakeAssessmentRepo{saved: []*Assessment{{
		UserID:  "user-1",
		Summary: Summary{Text: "permanent copy"},
	}}}
	c := newTestController(sessions, assessments)
	sessions.records["user-1"] = &Record{
		State:     StateCompletion,
		Summary:   &Summary{Text: "embedded copy"},
		UpdatedAt: c.now(),
	}

	res := c.Load(context.Background())

	require.Equal(t, OutcomeSummary, res.Outcome)
	assert.Equal(t, "permanent copy", res.Summary.Text)
}

func TestLoad_CompletionFallsBackToEmbeddedSummary(t *testing.T) {
	sessions := newFakeSessionRepo()
	c := newTestController(sessions, &fakeAssessmentRepo{})
	sessions.records["user-1"] = &Record{
		State:     StateCompletion,
		Summary:   &Summary{Text: "embedded copy"},
		UpdatedAt: c.now(),
	}

	res := c.Load(context.Background())

	require.Equal(t, OutcomeSummary, res.Outcome)
	assert.Equal(t, "embedded copy", res.Summary.Text)
}

func TestLoad_CompletionWithNoSummaryAnywhere(t *testing.T) {
	sessions := newFakeSessionRepo()
	c := newTestController(sessions, &fakeAssessmentRepo{})
	sessions.records["user-1"] = &Record{State: StateCompletion, UpdatedAt: c.now()}

	res := c.Load(context.Background())

	assert.Equal(t, OutcomeFresh, res.Outcome)
}

func TestRestoreRace_TimeoutWinsAndLateResultDiscarded(t *testing.T) {
	sessions := newFakeSessionRepo()
	c := newTestController(sessions, &fakeAssessmentRepo{})
	sessions.records["user-1"] = &Record{State: StateQuestionnaire, UpdatedAt: c.now()}

	require.True(t, c.ResolveTimeout())
	assert.True(t, c.Restored(), "timeout must still permit future saves")
	assert.Equal(t, StatePackageSelection, c.Record().State)

	// The query resolves late; its result must be discarded.
	res := c.Load(context.Background())
	assert.False(t, c.ApplyRestore(res))
	assert.Equal(t, StatePackageSelection, c.Record().State)
}

func TestRestoreRace_QueryWins(t *testing.T) {
	sessions := newFakeSessionRepo()
	c := newTestController(sessions, &fakeAssessmentRepo{})
	sessions.records["user-1"] = &Record{State: StatePersonalization, UpdatedAt: c.now()}

	res := c.Load(context.Background())
	require.True(t, c.ApplyRestore(res))
	assert.Equal(t, StatePersonalization, c.Record().State)

	// The timer fires late; no-op.
	assert.False(t, c.ResolveTimeout())
	assert.Equal(t, StatePersonalization, c.Record().State)
}

func TestSaveSuppressedBeforeRestore(t *testing.T) {
	c := newTestController(newFakeSessionRepo(), &fakeAssessmentRepo{})

	_, ok := c.PrepareSave()
	assert.False(t, ok, "no save before restore resolves")
}

func TestSaveSuppressedInNonResumableStates(t *testing.T) {
	c := newTestController(newFakeSessionRepo(), &fakeAssessmentRepo{})
	c.ApplyRestore(RestoreResult{Outcome: OutcomeFresh, State: StatePackageSelection})

	for _, st := range []AppState{StatePackageSelection, StateSummary, StateHistory} {
		c.Transition(st)
		_, ok := c.PrepareSave()
		assert.False(t, ok, "state %s must not persist", st)
	}

	c.Transition(StateQuestionnaire)
	_, ok := c.PrepareSave()
	assert.True(t, ok)
}

func TestSaveRoundTrip(t *testing.T) {
	sessions := newFakeSessionRepo()
	c := newTestController(sessions, &fakeAssessmentRepo{})
	c.ApplyRestore(RestoreResult{Outcome: OutcomeFresh, State: StatePackageSelection})
	c.StartAssessment(testPkg(), "Nadia")
	c.Transition(StateQuestionnaire)
	c.SetLastPrompt("Question 1")
	c.AppendAnswer(Answer{QuestionID: "q1", Value: "réponse"}, testPkg())

	rec, ok := c.PrepareSave()
	require.True(t, ok)
	require.NoError(t, c.Persist(context.Background(), rec))

	got, err := sessions.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, StateQuestionnaire, got.State)
	assert.Equal(t, "Nadia", got.UserName)
	assert.Equal(t, "essentiel", got.PackageID)
	assert.Equal(t, rec.Answers, got.Answers)
	assert.Equal(t, rec.Questions, got.Questions)
	assert.Equal(t, rec.ProgressPct, got.ProgressPct)
}

func TestSaveFailureSwallowedAndSelfHealing(t *testing.T) {
	sessions := newFakeSessionRepo()
	c := newTestController(sessions, &fakeAssessmentRepo{})
	c.ApplyRestore(RestoreResult{Outcome: OutcomeFresh, State: StatePackageSelection})
	c.StartAssessment(testPkg(), "Nadia")
	c.Transition(StateQuestionnaire)

	sessions.putErr = errors.New("write failed")
	rec, ok := c.PrepareSave()
	require.True(t, ok)
	c.NoteSaveResult(c.Persist(context.Background(), rec))
	assert.Error(t, c.LastSaveError())

	// Next trigger retries with the latest state and succeeds.
	sessions.putErr = nil
	c.AppendAnswer(Answer{QuestionID: "q1", Value: "x"}, testPkg())
	rec, ok = c.PrepareSave()
	require.True(t, ok)
	c.NoteSaveResult(c.Persist(context.Background(), rec))
	assert.NoError(t, c.LastSaveError())

	got, _ := sessions.Get(context.Background(), "user-1")
	require.NotNil(t, got)
	assert.Len(t, got.Answers, 1)
}

func TestDoubleConfirmation_IntentLeavesRecordUntouched(t *testing.T) {
	sessions := newFakeSessionRepo()
	c := newTestController(sessions, &fakeAssessmentRepo{})
	original := &Record{
		State:     StateQuestionnaire,
		UserName:  "Nadia",
		Answers:   []Answer{{QuestionID: "q1", Value: "v"}},
		UpdatedAt: c.now(),
	}
	sessions.records["user-1"] = original.Clone()
	c.ApplyRestore(c.Load(context.Background()))

	c.RequestNewAssessment()

	assert.Equal(t, ResetPending, c.ResetState())
	assert.Equal(t, StatePackageSelection, c.Record().State, "UI shows blank package selection")
	assert.Empty(t, c.Record().Answers)

	// Step 1 alone: the durable record is unchanged.
	got, err := sessions.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, original.Answers, got.Answers)

	// And persistence is suppressed while pending.
	_, ok := c.PrepareSave()
	assert.False(t, ok)
}

func TestDoubleConfirmation_CommitmentDeletesAndResets(t *testing.T) {
	sessions := newFakeSessionRepo()
	c := newTestController(sessions, &fakeAssessmentRepo{})
	sessions.records["user-1"] = &Record{State: StateQuestionnaire, UpdatedAt: c.now()}
	c.ApplyRestore(c.Load(context.Background()))

	c.RequestNewAssessment()
	c.ConfirmNewAssessment(context.Background(), testPkg(), "Nadia")

	assert.Equal(t, ResetActive, c.ResetState())
	assert.NotContains(t, sessions.records, "user-1", "commitment deletes the durable record")
	assert.Equal(t, StatePreliminary, c.Record().State)

	// Persistence is re-enabled: a fresh record appears on the next save.
	rec, ok := c.PrepareSave()
	require.True(t, ok)
	require.NoError(t, c.Persist(context.Background(), rec))
	got, _ := sessions.Get(context.Background(), "user-1")
	require.NotNil(t, got)
	assert.Equal(t, "essentiel", got.PackageID)
	assert.Empty(t, got.Answers)
}

func TestDoubleConfirmation_CancellationPreservesEverything(t *testing.T) {
	sessions := newFakeSessionRepo()
	c := newTestController(sessions, &fakeAssessmentRepo{})
	sessions.records["user-1"] = &Record{
		State:     StateQuestionnaire,
		Answers:   []Answer{{QuestionID: "q1", Value: "v"}},
		UpdatedAt: c.now(),
	}
	c.ApplyRestore(c.Load(context.Background()))

	c.RequestNewAssessment()
	c.CancelNewAssessment()

	assert.Equal(t, ResetIdle, c.ResetState())
	assert.Equal(t, StateQuestionnaire, c.Record().State, "working state restored")
	assert.Len(t, c.Record().Answers, 1)
	assert.Zero(t, sessions.deletes, "durable record never deleted")
}

func TestPendingResetDefersRestoredMark(t *testing.T) {
	sessions := newFakeSessionRepo()
	c := newTestController(sessions, &fakeAssessmentRepo{})

	// Intent arrives before restore resolves (--new flag at startup).
	c.RequestNewAssessment()
	c.ApplyRestore(RestoreResult{Outcome: OutcomeFresh, State: StatePackageSelection})

	assert.False(t, c.Restored(), "restored mark deferred while reset pending")
	_, ok := c.PrepareSave()
	assert.False(t, ok)

	c.CancelNewAssessment()
	assert.True(t, c.Restored(), "cancellation resolves the deferred mark")
}

func TestCompletion_DualWriteThenDelete(t *testing.T) {
	sessions := newFakeSessionRepo()
	assessments := &fakeAssessmentRepo{}
	c := newTestController(sessions, assessments)
	c.ApplyRestore(RestoreResult{Outcome: OutcomeFresh, State: StatePackageSelection})
	c.StartAssessment(testPkg(), "Nadia")
	c.Transition(StateQuestionnaire)
	c.AppendAnswer(Answer{QuestionID: "q1", Value: "v"}, testPkg())

	sum := Summary{Text: "synthèse", WrittenAt: c.now()}
	rec, a := c.PrepareCompletion("a-1", sum)
	require.NotNil(t, rec)
	require.NotNil(t, rec.Summary, "summary embedded in the session copy")

	err := c.RunCompletion(context.Background(), rec, a)
	require.NoError(t, err)
	c.FinishCompletion(err)

	assert.Equal(t, StateSummary, c.Record().State)
	assert.NotContains(t, sessions.records, "user-1", "session superseded by permanent record")
	require.Len(t, assessments.saved, 1)
	assert.Equal(t, "synthèse", assessments.saved[0].Summary.Text)
	assert.Equal(t, 1, assessments.saved[0].AnswerCount)
}

func TestCompletion_CrashBetweenWritesIsRecoverable(t *testing.T) {
	sessions := newFakeSessionRepo()
	assessments := &fakeAssessmentRepo{saveErr: errors.New("backend down")}
	c := newTestController(sessions, assessments)
	c.ApplyRestore(RestoreResult{Outcome: OutcomeFresh, State: StatePackageSelection})
	c.StartAssessment(testPkg(), "Nadia")
	c.Transition(StateQuestionnaire)

	rec, a := c.PrepareCompletion("a-1", Summary{Text: "synthèse"})
	err := c.RunCompletion(context.Background(), rec, a)
	require.Error(t, err)

	// The embedded copy survived; a later restore recovers the summary.
	c2 := newTestController(sessions, &fakeAssessmentRepo{})
	res := c2.Load(context.Background())
	require.Equal(t, OutcomeSummary, res.Outcome)
	assert.Equal(t, "synthèse", res.Summary.Text)
}

func TestAppendAnswer_TagsPhaseAndUpdatesProgress(t *testing.T) {
	c := newTestController(newFakeSessionRepo(), &fakeAssessmentRepo{})
	c.ApplyRestore(RestoreResult{Outcome: OutcomeFresh, State: StatePackageSelection})
	c.StartAssessment(testPkg(), "Nadia")
	c.Transition(StateQuestionnaire)

	var last Answer
	for i := 0; i < 5; i++ {
		c.AppendAnswer(Answer{QuestionID: "q", Value: "v"}, testPkg())
		last = c.Record().Answers[len(c.Record().Answers)-1]
	}

	// The fifth answer was asked while still in the preliminary phase but
	// crosses the boundary into investigation.
	assert.Equal(t, "preliminaire", last.PhaseAtAnswer)
	assert.Equal(t, "investigation", c.Record().Phase)
	assert.Equal(t, 20, c.Record().ProgressPct)
	assert.False(t, last.AnsweredAt.IsZero())
}
