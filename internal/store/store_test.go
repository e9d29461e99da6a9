package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/bilan/internal/profile"
	"github.com/abhisek/bilan/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testRecord(now time.Time) *session.Record {
	return &session.Record{
		State:         session.StateQuestionnaire,
		UserName:      "Claire",
		PackageID:     "essentiel",
		CoachingStyle: "direct",
		Answers: []session.Answer{
			{
				QuestionID:    "q-1",
				Title:         "Parcours",
				Value:         "Quinze ans dans la logistique",
				Complexity:    "simple",
				Theme:         "parcours",
				PhaseAtAnswer: "preliminaire",
				AnsweredAt:    now.Add(-10 * time.Minute),
			},
		},
		Questions:   []string{"Parlez-moi de votre parcours."},
		LastPrompt:  "Quelles composantes de ce parcours vous ont marquee ?",
		Phase:       "preliminaire",
		ProgressPct: 3,
		StartedAt:   now.Add(-30 * time.Minute),
		TimeSpent:   25 * time.Minute,
		Consent:     session.Consent{Accepted: true, AcceptedAt: now.Add(-29 * time.Minute), Version: "v1"},
		Profile: &profile.Profile{
			Background:      "Responsable logistique pendant quinze ans.",
			Profession:      "logistique",
			YearsExperience: 15,
			Skills:          []string{"gestion", "planification"},
		},
		UpdatedAt: now,
	}
}

func TestSessionGetAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	rec, err := repo.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record when none exist")
	}
}

func TestSessionUpsertRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	in := testRecord(now)
	if err := repo.Upsert(ctx, "claire", in); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	out, err := repo.Get(ctx, "claire")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out == nil {
		t.Fatal("expected non-nil record")
	}
	if out.State != session.StateQuestionnaire {
		t.Errorf("state = %q, want %q", out.State, session.StateQuestionnaire)
	}
	if out.UserName != "Claire" || out.PackageID != "essentiel" {
		t.Errorf("identity fields = %q/%q", out.UserName, out.PackageID)
	}
	if len(out.Answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(out.Answers))
	}
	if out.Answers[0].PhaseAtAnswer != "preliminaire" {
		t.Errorf("phase tag = %q, want preliminaire", out.Answers[0].PhaseAtAnswer)
	}
	if out.LastPrompt != in.LastPrompt {
		t.Errorf("last prompt = %q", out.LastPrompt)
	}
	if out.TimeSpent != 25*time.Minute {
		t.Errorf("time spent = %v, want 25m", out.TimeSpent)
	}
	if !out.Consent.Accepted || out.Consent.Version != "v1" {
		t.Errorf("consent = %+v", out.Consent)
	}
	if out.Profile == nil || len(out.Profile.Skills) != 2 {
		t.Errorf("profile = %+v", out.Profile)
	}
	if out.Summary != nil {
		t.Errorf("summary should be unset, got %+v", out.Summary)
	}
	if !out.UpdatedAt.Equal(now) {
		t.Errorf("updated at = %v, want %v", out.UpdatedAt, now)
	}
}

func TestSessionUpsertReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	first := testRecord(now)
	first.Summary = &session.Summary{Text: "brouillon", WrittenAt: now}
	if err := repo.Upsert(ctx, "claire", first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := testRecord(now.Add(time.Minute))
	second.ProgressPct = 10
	second.Summary = nil
	if err := repo.Upsert(ctx, "claire", second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	count, err := s.Client().SessionRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("records = %d, want 1", count)
	}

	out, err := repo.Get(ctx, "claire")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.ProgressPct != 10 {
		t.Errorf("progress = %d, want 10", out.ProgressPct)
	}
	if out.Summary != nil {
		t.Error("summary should be cleared by the second upsert")
	}
}

func TestSessionDeleteIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if err := repo.Delete(ctx, "claire"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	if err := repo.Upsert(ctx, "claire", testRecord(now)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Delete(ctx, "claire"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rec, err := repo.Get(ctx, "claire")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Fatal("expected record gone after delete")
	}
}

func TestAssessmentSaveLatestList(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	latest, err := repo.Latest(ctx, "claire")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if latest != nil {
		t.Fatal("expected nil assessment when none exist")
	}

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &session.Assessment{
			ID:          string(rune('a'+i)) + "-assessment",
			UserID:      "claire",
			PackageID:   "essentiel",
			Summary:     session.Summary{Text: "synthese", WrittenAt: base},
			AnswerCount: 30 + i,
			Duration:    time.Duration(i+1) * time.Hour,
			CompletedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	latest, err = repo.Latest(ctx, "claire")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.AnswerCount != 32 {
		t.Errorf("latest answer count = %d, want 32", latest.AnswerCount)
	}
	if latest.Summary.Text != "synthese" {
		t.Errorf("summary text = %q", latest.Summary.Text)
	}

	list, err := repo.List(ctx, "claire")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("list = %d, want 3", len(list))
	}
	if !list[0].CompletedAt.After(list[2].CompletedAt) {
		t.Error("list should be newest first")
	}

	other, err := repo.List(ctx, "someone-else")
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("other user list = %d, want 0", len(other))
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "interview",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    950,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("events = %d, want 1", count)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"session_records", "assessments", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
