package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/bilan/ent"
	"github.com/abhisek/bilan/ent/schema"
	"github.com/abhisek/bilan/ent/sessionrecord"
	"github.com/abhisek/bilan/internal/profile"
	"github.com/abhisek/bilan/internal/session"
)

// sessionRepo implements session.SessionRepo using the ent client. The
// unique user_id column makes Upsert a read-then-write; last writer
// wins, which is the contract the lifecycle controller relies on.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Get(ctx context.Context, userID string) (*session.Record, error) {
	sr, err := r.client.SessionRecord.Query().
		Where(sessionrecord.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session record: %w", err)
	}
	return entToRecord(sr)
}

func (r *sessionRepo) Upsert(ctx context.Context, userID string, rec *session.Record) error {
	answers, err := answersToData(rec.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	consent, err := toJSONMap(rec.Consent)
	if err != nil {
		return fmt.Errorf("marshal consent: %w", err)
	}
	var prof, summary map[string]any
	if rec.Profile != nil {
		if prof, err = toJSONMap(rec.Profile); err != nil {
			return fmt.Errorf("marshal profile: %w", err)
		}
	}
	if rec.Summary != nil {
		if summary, err = toJSONMap(rec.Summary); err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
	}

	id, err := r.client.SessionRecord.Query().
		Where(sessionrecord.UserIDEQ(userID)).
		OnlyID(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query session record: %w", err)
	}

	if ent.IsNotFound(err) {
		c := r.client.SessionRecord.Create().
			SetUserID(userID).
			SetState(string(rec.State)).
			SetUserName(rec.UserName).
			SetPackageID(rec.PackageID).
			SetCoachingStyle(rec.CoachingStyle).
			SetAnswers(answers).
			SetQuestions(rec.Questions).
			SetLastPrompt(rec.LastPrompt).
			SetPhase(rec.Phase).
			SetProgressPct(rec.ProgressPct).
			SetTimeSpentSecs(int64(rec.TimeSpent / time.Second)).
			SetConsent(consent).
			SetUpdatedAt(rec.UpdatedAt)
		if !rec.StartedAt.IsZero() {
			c.SetStartedAt(rec.StartedAt)
		}
		if prof != nil {
			c.SetProfile(prof)
		}
		if summary != nil {
			c.SetSummary(summary)
		}
		if _, err := c.Save(ctx); err != nil {
			return fmt.Errorf("create session record: %w", err)
		}
		return nil
	}

	u := r.client.SessionRecord.UpdateOneID(id).
		SetState(string(rec.State)).
		SetUserName(rec.UserName).
		SetPackageID(rec.PackageID).
		SetCoachingStyle(rec.CoachingStyle).
		SetAnswers(answers).
		SetQuestions(rec.Questions).
		SetLastPrompt(rec.LastPrompt).
		SetPhase(rec.Phase).
		SetProgressPct(rec.ProgressPct).
		SetTimeSpentSecs(int64(rec.TimeSpent / time.Second)).
		SetConsent(consent).
		SetUpdatedAt(rec.UpdatedAt)
	if rec.StartedAt.IsZero() {
		u.ClearStartedAt()
	} else {
		u.SetStartedAt(rec.StartedAt)
	}
	if prof == nil {
		u.ClearProfile()
	} else {
		u.SetProfile(prof)
	}
	if summary == nil {
		u.ClearSummary()
	} else {
		u.SetSummary(summary)
	}
	if _, err := u.Save(ctx); err != nil {
		return fmt.Errorf("update session record: %w", err)
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.client.SessionRecord.Delete().
		Where(sessionrecord.UserIDEQ(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session record: %w", err)
	}
	return nil
}

// entToRecord converts an ent SessionRecord to a session.Record.
func entToRecord(sr *ent.SessionRecord) (*session.Record, error) {
	rec := &session.Record{
		State:         session.AppState(sr.State),
		UserName:      sr.UserName,
		PackageID:     sr.PackageID,
		CoachingStyle: sr.CoachingStyle,
		Questions:     append([]string(nil), sr.Questions...),
		LastPrompt:    sr.LastPrompt,
		Phase:         sr.Phase,
		ProgressPct:   sr.ProgressPct,
		StartedAt:     sr.StartedAt,
		TimeSpent:     time.Duration(sr.TimeSpentSecs) * time.Second,
		UpdatedAt:     sr.UpdatedAt,
	}

	if len(sr.Answers) > 0 {
		answers, err := dataToAnswers(sr.Answers)
		if err != nil {
			return nil, fmt.Errorf("unmarshal answers: %w", err)
		}
		rec.Answers = answers
	}
	if len(sr.Consent) > 0 {
		if err := fromJSONMap(sr.Consent, &rec.Consent); err != nil {
			return nil, fmt.Errorf("unmarshal consent: %w", err)
		}
	}
	if len(sr.Profile) > 0 {
		var p profile.Profile
		if err := fromJSONMap(sr.Profile, &p); err != nil {
			return nil, fmt.Errorf("unmarshal profile: %w", err)
		}
		rec.Profile = &p
	}
	if len(sr.Summary) > 0 {
		var s session.Summary
		if err := fromJSONMap(sr.Summary, &s); err != nil {
			return nil, fmt.Errorf("unmarshal summary: %w", err)
		}
		rec.Summary = &s
	}
	return rec, nil
}

// answersToData converts session answers to their serialized form. The
// two types share JSON tags, so the conversion is a round trip.
func answersToData(answers []session.Answer) ([]schema.AnswerData, error) {
	if len(answers) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	var out []schema.AnswerData
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func dataToAnswers(data []schema.AnswerData) ([]session.Answer, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var out []session.Answer
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// toJSONMap converts a struct to map[string]any for ent JSON storage.
func toJSONMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromJSONMap(m map[string]any, out any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
