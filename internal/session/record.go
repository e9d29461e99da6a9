package session

import (
	"time"

	"github.com/abhisek/bilan/internal/profile"
)

// AppState identifies the screen-level state of the application. The
// entry state is always StateRestoring; it is transient and resolves
// within the restore timeout.
type AppState string

const (
	StateRestoring        AppState = "restoring"
	StatePackageSelection AppState = "package-selection"
	StatePreliminary      AppState = "preliminary"
	StatePersonalization  AppState = "personalization"
	StateQuestionnaire    AppState = "questionnaire"
	StateCompletion       AppState = "completion"
	StateSummary          AppState = "summary"
	StateHistory          AppState = "history"
)

// Resumable reports whether a session saved in this state is worth
// persisting and restoring. History browsing, summary viewing and the
// initial screens are terminal for persistence purposes.
func (s AppState) Resumable() bool {
	switch s {
	case StatePreliminary, StatePersonalization, StateQuestionnaire, StateCompletion:
		return true
	}
	return false
}

// Answer is one user response in the interview. Answers are append-only
// within a session.
type Answer struct {
	QuestionID string `json:"question_id"`
	Title      string `json:"title,omitempty"`
	Value      string `json:"value"`
	Complexity string `json:"complexity,omitempty"`
	Theme      string `json:"theme,omitempty"`

	// PhaseAtAnswer records the phase the user was in when answering.
	// The progression engine still attributes answers by position, so
	// legacy records without the tag stay readable; the tag exists so a
	// future reordering cannot silently change attribution.
	PhaseAtAnswer string `json:"phase_at_answer,omitempty"`

	AnsweredAt time.Time `json:"answered_at"`
}

// Consent is the compliance payload collected during the preliminary
// phase.
type Consent struct {
	Accepted   bool      `json:"accepted"`
	AcceptedAt time.Time `json:"accepted_at,omitempty"`
	Version    string    `json:"version,omitempty"`
}

// Summary is the AI-authored synthesis produced at completion. It is
// written twice on purpose: embedded in the session record and into the
// permanent assessment history, so a crash between the two writes stays
// recoverable.
type Summary struct {
	Text      string    `json:"text"`
	Strengths []string  `json:"strengths,omitempty"`
	Axes      []string  `json:"axes,omitempty"`
	WrittenAt time.Time `json:"written_at"`
}

// Record is the single durable per-user session record. At most one
// exists per user at any time; the store upserts it keyed by user id.
type Record struct {
	State         AppState         `json:"state"`
	UserName      string           `json:"user_name"`
	PackageID     string           `json:"package_id,omitempty"`
	CoachingStyle string           `json:"coaching_style,omitempty"`
	Answers       []Answer         `json:"answers"`
	Questions     []string         `json:"questions"`
	LastPrompt    string           `json:"last_prompt,omitempty"`
	Phase         string           `json:"phase"`
	ProgressPct   int              `json:"progress_pct"`
	StartedAt     time.Time        `json:"started_at"`
	TimeSpent     time.Duration    `json:"time_spent"`
	Consent       Consent          `json:"consent"`
	Profile       *profile.Profile `json:"profile,omitempty"`

	// Summary is only set once the assessment reaches completion; the
	// restore path prefers the permanent history copy and falls back to
	// this one.
	Summary *Summary `json:"summary,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a copy of the record whose slices are independent of the
// original, so an in-flight store write never observes later mutations.
func (r *Record) Clone() *Record {
	cp := *r
	if r.Answers != nil {
		cp.Answers = make([]Answer, len(r.Answers))
		copy(cp.Answers, r.Answers)
	}
	if r.Questions != nil {
		cp.Questions = make([]string, len(r.Questions))
		copy(cp.Questions, r.Questions)
	}
	if r.Profile != nil {
		p := *r.Profile
		if r.Profile.Skills != nil {
			p.Skills = make([]string, len(r.Profile.Skills))
			copy(p.Skills, r.Profile.Skills)
		}
		cp.Profile = &p
	}
	if r.Summary != nil {
		s := *r.Summary
		if r.Summary.Strengths != nil {
			s.Strengths = append([]string(nil), r.Summary.Strengths...)
		}
		if r.Summary.Axes != nil {
			s.Axes = append([]string(nil), r.Summary.Axes...)
		}
		cp.Summary = &s
	}
	return &cp
}

// Assessment is the permanent record written when an assessment
// completes. Unlike the session record, assessments accumulate.
type Assessment struct {
	ID          string
	UserID      string
	PackageID   string
	Summary     Summary
	AnswerCount int
	Duration    time.Duration
	CompletedAt time.Time
}
