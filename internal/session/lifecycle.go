package session

import (
	"context"
	"time"

	"github.com/abhisek/bilan/internal/pack"
	"github.com/abhisek/bilan/internal/profile"
	"github.com/abhisek/bilan/internal/progression"
)

// SessionRepo is the durable store for the single per-user session
// record. Implementations must be idempotent upserts keyed by user id:
// concurrent save triggers are safe to race because the last writer wins.
type SessionRepo interface {
	// Get returns the user's record, or (nil, nil) when absent.
	Get(ctx context.Context, userID string) (*Record, error)

	// Upsert writes the record, replacing any previous one for the user.
	Upsert(ctx context.Context, userID string, rec *Record) error

	// Delete removes the user's record. Deleting an absent record is not
	// an error.
	Delete(ctx context.Context, userID string) error
}

// AssessmentRepo is the permanent assessment history.
type AssessmentRepo interface {
	Save(ctx context.Context, a *Assessment) error

	// Latest returns the user's most recent completed assessment, or
	// (nil, nil) when none exist.
	Latest(ctx context.Context, userID string) (*Assessment, error)

	List(ctx context.Context, userID string) ([]*Assessment, error)
}

// Config holds the lifecycle timing policy. The values are arbitrary
// business constants, so they stay configurable.
type Config struct {
	// Expiry is the age past which a saved session is purged instead of
	// resumed.
	Expiry time.Duration

	// RestoreTimeout bounds the restore query; when it fires first the
	// app lands on package selection.
	RestoreTimeout time.Duration

	// SaveInterval is the periodic backstop save cadence.
	SaveInterval time.Duration
}

// DefaultConfig returns the standard lifecycle timing.
func DefaultConfig() Config {
	return Config{
		Expiry:         7 * 24 * time.Hour,
		RestoreTimeout: 5 * time.Second,
		SaveInterval:   60 * time.Second,
	}
}

// ResetState tracks the new-assessment double-confirmation protocol.
type ResetState int

const (
	// ResetIdle: no new-assessment request in flight.
	ResetIdle ResetState = iota

	// ResetPending: the user expressed intent to start over but has not
	// picked a package. Persistence is suppressed and the durable record
	// is untouched.
	ResetPending

	// ResetActive: the user committed by picking a package; the old
	// record is gone and the new assessment is underway.
	ResetActive
)

// RestoreOutcome says where the app should land after restore.
type RestoreOutcome int

const (
	// OutcomeFresh: no usable session; land on package selection.
	OutcomeFresh RestoreOutcome = iota

	// OutcomeResume: resume into the recorded application state.
	OutcomeResume

	// OutcomeSummary: the session was at completion and a summary was
	// recovered; show it.
	OutcomeSummary
)

// RestoreResult is what a restore attempt resolved to.
type RestoreResult struct {
	Outcome RestoreOutcome
	State   AppState

	// Record is the rehydrated session for OutcomeResume.
	Record *Record

	// Summary is the recovered synthesis for OutcomeSummary.
	Summary *Summary

	// WelcomeBack is set when at least one answer exists and the resumed
	// state is the questionnaire.
	WelcomeBack *WelcomeBack
}

// WelcomeBack summarizes an interrupted interview for the resume prompt.
type WelcomeBack struct {
	AnswerCount int
	LastSaved   time.Time
}

// Controller orchestrates session restore, debounced and periodic
// persistence, and the new-assessment double-confirmation protocol.
//
// The split between I/O and mutation follows the event-loop model: Load
// and persistAsync-style calls run off-loop inside commands and never
// touch controller state; Apply*, Save bookkeeping and the reset
// protocol run on the loop. No method is called concurrently with
// another mutator.
type Controller struct {
	userID      string
	sessions    SessionRepo
	assessments AssessmentRepo
	engine      *progression.Engine
	cfg         Config

	// now is the clock, replaceable in tests.
	now func() time.Time

	record *Record

	// restored gates persistence: nothing is saved until restore has
	// resolved one way or the other. resolved tracks the race between
	// the restore query and the safety timer; the loser is discarded.
	restored bool
	resolved bool

	reset ResetState

	// snapshot preserves the working state across a pending reset so a
	// cancellation loses nothing.
	snapshot *Record

	// baseTimeSpent is the time accumulated by previous runs; sessionAt
	// is when this run resumed or started.
	baseTimeSpent time.Duration
	sessionAt     time.Time

	lastSaveErr error
}

// NewController creates a Controller for the given user.
func NewController(userID string, sessions SessionRepo, assessments AssessmentRepo, cfg Config) *Controller {
	return &Controller{
		userID:      userID,
		sessions:    sessions,
		assessments: assessments,
		engine:      progression.NewEngine(progression.DefaultThresholds()),
		cfg:         cfg,
		now:         time.Now,
		record:      &Record{State: StateRestoring},
	}
}

// Config returns the lifecycle timing policy.
func (c *Controller) Config() Config { return c.cfg }

// UserID returns the user this controller serves.
func (c *Controller) UserID() string { return c.userID }

// Record returns the in-memory working copy of the session.
func (c *Controller) Record() *Record { return c.record }

// ResetState returns the state of the double-confirmation protocol.
func (c *Controller) ResetState() ResetState { return c.reset }

// Restored reports whether restore has resolved and saves are permitted.
func (c *Controller) Restored() bool { return c.restored }

// LastSaveError returns the most recent swallowed save failure, if any.
func (c *Controller) LastSaveError() error { return c.lastSaveErr }

// Load performs the restore read and decides where the app should land.
// It runs off the event loop and mutates nothing on the controller; the
// result is handed to ApplyRestore. It never returns an error: read
// failures degrade to "no session found".
func (c *Controller) Load(ctx context.Context) RestoreResult {
	fresh := RestoreResult{Outcome: OutcomeFresh, State: StatePackageSelection}

	rec, err := c.sessions.Get(ctx, c.userID)
	if err != nil || rec == nil {
		return fresh
	}

	if c.now().Sub(rec.UpdatedAt) > c.cfg.Expiry {
		// Stale session: purge rather than resume.
		_ = c.sessions.Delete(ctx, c.userID)
		return fresh
	}

	if rec.State == StateCompletion {
		return c.recoverCompletion(ctx, rec)
	}

	// Rehydrate verbatim.
	result := RestoreResult{Outcome: OutcomeResume, State: rec.State, Record: rec}
	if rec.State == StateQuestionnaire && len(rec.Answers) > 0 {
		result.WelcomeBack = &WelcomeBack{
			AnswerCount: len(rec.Answers),
			LastSaved:   rec.UpdatedAt,
		}
	}
	return result
}

// recoverCompletion handles a session interrupted at completion: the
// summary is double-written at completion time, so the permanent history
// is tried first and the embedded copy second. With neither, entering an
// unrenderable completion state is avoided.
func (c *Controller) recoverCompletion(ctx context.Context, rec *Record) RestoreResult {
	if a, err := c.assessments.Latest(ctx, c.userID); err == nil && a != nil {
		return RestoreResult{Outcome: OutcomeSummary, State: StateSummary, Summary: &a.Summary}
	}
	if rec.Summary != nil {
		return RestoreResult{Outcome: OutcomeSummary, State: StateSummary, Summary: rec.Summary}
	}
	return RestoreResult{Outcome: OutcomeFresh, State: StatePackageSelection}
}

// ApplyRestore installs a restore result. A result arriving after the
// safety timer already resolved the race is discarded. Marking the
// session restored is deferred while a new-assessment request is
// pending.
func (c *Controller) ApplyRestore(res RestoreResult) bool {
	if c.resolved {
		return false
	}
	c.resolved = true
	c.markRestored()

	switch res.Outcome {
	case OutcomeResume:
		if c.reset == ResetPending {
			// A reset request arrived before restore resolved: keep the
			// blank selection screen, but remember what to return to on
			// cancellation.
			c.snapshot = res.Record
		} else {
			c.record = res.Record
			c.baseTimeSpent = res.Record.TimeSpent
		}
	default:
		if c.reset == ResetPending {
			c.snapshot = nil
		} else {
			c.record = &Record{State: res.State}
		}
		c.baseTimeSpent = 0
	}
	c.sessionAt = c.now()
	return true
}

// ResolveTimeout abandons an overdue restore: the session is marked
// restored (so future saves work) and the app lands on package
// selection. This is a normal, expected outcome, not an error; a restore
// result arriving later is discarded by ApplyRestore.
func (c *Controller) ResolveTimeout() bool {
	if c.resolved {
		return false
	}
	c.resolved = true
	c.markRestored()
	if c.reset != ResetPending {
		c.record = &Record{State: StatePackageSelection}
	}
	c.sessionAt = c.now()
	c.baseTimeSpent = 0
	return true
}

// markRestored flips the restored gate — unless a new-assessment request
// is already pending, in which case marking is deferred until that flow
// resolves.
func (c *Controller) markRestored() {
	if c.reset == ResetPending {
		return
	}
	c.restored = true
}

// Transition moves the application to a new state.
func (c *Controller) Transition(state AppState) {
	c.record.State = state
}

// SetConsent records the compliance payload collected during the
// preliminary phase.
func (c *Controller) SetConsent(consent Consent) {
	c.record.Consent = consent
}

// SetCoachingStyle records the tone chosen during personalization.
func (c *Controller) SetCoachingStyle(style string) {
	c.record.CoachingStyle = style
}

// SetProfile installs the prior-experience profile. Passing nil keeps
// the assessment on full-length targets.
func (c *Controller) SetProfile(p *profile.Profile) {
	c.record.Profile = p
}

// StartAssessment initializes the working record for a newly chosen
// package.
func (c *Controller) StartAssessment(pkg *pack.Package, userName string) {
	now := c.now()
	c.record = &Record{
		State:     StatePreliminary,
		UserName:  userName,
		PackageID: pkg.ID,
		Phase:     pack.PhasePreliminary.String(),
		StartedAt: now,
	}
	c.baseTimeSpent = 0
	c.sessionAt = now
}

// AppendAnswer records one answer and refreshes the derived progression
// fields on the record. It returns the new snapshot so the caller can
// schedule an immediate save and drive phase-transition prompts.
func (c *Controller) AppendAnswer(a Answer, pkg *pack.Package) progression.Info {
	// Tag with the phase the user was in when answering, then recompute
	// the snapshot including the new answer.
	before := c.engine.Compute(len(c.record.Answers), pkg, c.record.Profile)
	a.PhaseAtAnswer = before.CurrentPhase.String()
	info := c.engine.Compute(len(c.record.Answers)+1, pkg, c.record.Profile)
	if a.AnsweredAt.IsZero() {
		a.AnsweredAt = c.now()
	}
	c.record.Answers = append(c.record.Answers, a)
	c.record.ProgressPct = info.GlobalPct
	c.record.Phase = info.CurrentPhase.String()
	return info
}

// Progression recomputes the current progression snapshot.
func (c *Controller) Progression(pkg *pack.Package) progression.Info {
	return c.engine.Compute(len(c.record.Answers), pkg, c.record.Profile)
}

// SetLastPrompt stores the latest AI-authored question text for exact
// resume. The caller schedules a save on change.
func (c *Controller) SetLastPrompt(question string) {
	c.record.LastPrompt = question
	c.record.Questions = append(c.record.Questions, question)
}

// PrepareSave stamps the working record and returns an isolated copy for
// the store write, or (nil, false) when persistence is suppressed: before
// restore resolves, while a reset is pending, and in non-resumable
// states. The copy means an in-flight write is unaffected by later
// mutations; a superseded write may still complete, its result simply no
// longer matters.
func (c *Controller) PrepareSave() (*Record, bool) {
	if !c.restored || c.reset == ResetPending || !c.record.State.Resumable() {
		return nil, false
	}

	now := c.now()
	c.record.TimeSpent = c.baseTimeSpent + now.Sub(c.sessionAt)
	c.record.UpdatedAt = now
	return c.record.Clone(), true
}

// Persist writes a prepared record copy. Safe to run off the event loop.
// The error is reported back via NoteSaveResult, never to the user.
func (c *Controller) Persist(ctx context.Context, rec *Record) error {
	return c.sessions.Upsert(ctx, c.userID, rec)
}

// NoteSaveResult records the outcome of a persist. Failures are
// swallowed: the next trigger retries with fresher state, so they are
// self-healing while the user keeps answering.
func (c *Controller) NoteSaveResult(err error) {
	c.lastSaveErr = err
}

// RequestNewAssessment is step 1 (intent) of the double-confirmation
// protocol: the working state is cleared so the UI shows a blank package
// selection, persistence is suppressed, and the durable record is left
// untouched.
func (c *Controller) RequestNewAssessment() {
	if c.reset == ResetPending {
		return
	}
	c.snapshot = c.record
	c.record = &Record{State: StatePackageSelection}
	c.reset = ResetPending
}

// ConfirmNewAssessment is step 2 (commitment): only now is the durable
// record deleted, synchronously, and persistence re-enabled.
func (c *Controller) ConfirmNewAssessment(ctx context.Context, pkg *pack.Package, userName string) {
	if err := c.sessions.Delete(ctx, c.userID); err != nil {
		// The upsert key is the user id, so a failed delete is healed by
		// the first save of the new assessment.
		c.lastSaveErr = err
	}
	c.reset = ResetActive
	c.snapshot = nil
	c.restored = true
	c.StartAssessment(pkg, userName)
}

// CancelNewAssessment clears a pending request without touching the
// durable record: the original assessment stays fully resumable.
func (c *Controller) CancelNewAssessment() {
	if c.reset != ResetPending {
		return
	}
	if c.snapshot != nil {
		c.record = c.snapshot
		c.baseTimeSpent = c.snapshot.TimeSpent
		c.sessionAt = c.now()
		c.snapshot = nil
	}
	c.reset = ResetIdle
	c.restored = true
}

// PrepareCompletion installs the finished summary on the working record
// and moves it to the completion state. It returns the prepared session
// copy and the permanent assessment record for RunCompletion to write.
func (c *Controller) PrepareCompletion(id string, sum Summary) (*Record, *Assessment) {
	c.record.Summary = &sum
	c.record.State = StateCompletion

	rec, _ := c.PrepareSave()
	a := &Assessment{
		ID:          id,
		UserID:      c.userID,
		PackageID:   c.record.PackageID,
		Summary:     sum,
		AnswerCount: len(c.record.Answers),
		Duration:    c.record.TimeSpent,
		CompletedAt: c.now(),
	}
	return rec, a
}

// RunCompletion performs the completion writes off the event loop. The
// summary is double-written on purpose: first embedded in the session
// record, then into the permanent history; only then is the session
// record deleted. A crash between the writes leaves a completion-state
// session whose restore recovers the summary from one of the two copies.
func (c *Controller) RunCompletion(ctx context.Context, rec *Record, a *Assessment) error {
	if rec != nil {
		// The embedded copy is the crash fallback; if this write fails
		// the permanent write below still carries the summary.
		_ = c.sessions.Upsert(ctx, c.userID, rec)
	}

	if err := c.assessments.Save(ctx, a); err != nil {
		return err
	}

	// The permanent record supersedes the session record.
	return c.sessions.Delete(ctx, c.userID)
}

// FinishCompletion moves to the summary state once the completion writes
// are done. A failed session delete is tolerated: delete is idempotent
// and the next assessment's confirmation repeats it.
func (c *Controller) FinishCompletion(err error) {
	if err != nil {
		c.lastSaveErr = err
	}
	c.record.State = StateSummary
}
