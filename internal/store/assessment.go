package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/bilan/ent"
	"github.com/abhisek/bilan/ent/assessment"
	"github.com/abhisek/bilan/internal/session"
)

// assessmentRepo implements session.AssessmentRepo using the ent client.
type assessmentRepo struct {
	client *ent.Client
}

func (r *assessmentRepo) Save(ctx context.Context, a *session.Assessment) error {
	summary, err := toJSONMap(a.Summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	_, err = r.client.Assessment.Create().
		SetAssessmentID(a.ID).
		SetUserID(a.UserID).
		SetPackageID(a.PackageID).
		SetSummary(summary).
		SetAnswerCount(a.AnswerCount).
		SetDurationSecs(int64(a.Duration / time.Second)).
		SetCompletedAt(a.CompletedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepo) Latest(ctx context.Context, userID string) (*session.Assessment, error) {
	a, err := r.client.Assessment.Query().
		Where(assessment.UserIDEQ(userID)).
		Order(ent.Desc(assessment.FieldCompletedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest assessment: %w", err)
	}
	return entToAssessment(a)
}

func (r *assessmentRepo) List(ctx context.Context, userID string) ([]*session.Assessment, error) {
	rows, err := r.client.Assessment.Query().
		Where(assessment.UserIDEQ(userID)).
		Order(ent.Desc(assessment.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}

	out := make([]*session.Assessment, 0, len(rows))
	for _, row := range rows {
		a, err := entToAssessment(row)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// entToAssessment converts an ent Assessment to a session.Assessment.
func entToAssessment(a *ent.Assessment) (*session.Assessment, error) {
	var summary session.Summary
	if len(a.Summary) > 0 {
		if err := fromJSONMap(a.Summary, &summary); err != nil {
			return nil, fmt.Errorf("unmarshal summary: %w", err)
		}
	}
	return &session.Assessment{
		ID:          a.AssessmentID,
		UserID:      a.UserID,
		PackageID:   a.PackageID,
		Summary:     summary,
		AnswerCount: a.AnswerCount,
		Duration:    time.Duration(a.DurationSecs) * time.Second,
		CompletedAt: a.CompletedAt,
	}, nil
}
