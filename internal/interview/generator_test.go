package interview

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/bilan/internal/llm"
	"github.com/abhisek/bilan/internal/pack"
)

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "Quelles competences mobilisez-vous le plus au quotidien ?",
		"theme": "competences",
		"complexity": "moyen"
	}`)
}

func TestNextQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	q, err := gen.NextQuestion(context.Background(), GenerateInput{
		Phase:    pack.PhaseInvestigation,
		UserName: "Claire",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID == "" {
		t.Error("expected non-empty question ID")
	}
	if q.Theme != ThemeCompetences {
		t.Errorf("theme = %q, want competences", q.Theme)
	}
	if q.Complexity != ComplexityMoyen {
		t.Errorf("complexity = %q, want moyen", q.Complexity)
	}
	if q.Phase != pack.PhaseInvestigation {
		t.Errorf("phase = %v, want investigation", q.Phase)
	}
}

func TestNextQuestion_PromptCarriesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.NextQuestion(context.Background(), GenerateInput{
		Phase:          pack.PhaseConclusion,
		UserName:       "Claire",
		CoachingStyle:  "direct",
		PriorQuestions: []string{"Parlez-moi de votre parcours."},
		RecentAnswers:  []string{"Je veux changer de secteur."},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 LLM call, got %d", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"conclusion", "Claire", "direct", "Parlez-moi de votre parcours.", "Je veux changer de secteur."} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
	if mock.Calls[0].Schema != QuestionSchema {
		t.Error("expected the interview question schema on the request")
	}
}

func TestNextQuestion_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	gen := New(mock, DefaultConfig())

	_, err := gen.NextQuestion(context.Background(), GenerateInput{Phase: pack.PhasePreliminary})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestNextQuestion_RejectsEmptyText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question_text": "  ", "theme": "parcours", "complexity": "simple"}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.NextQuestion(context.Background(), GenerateInput{Phase: pack.PhasePreliminary})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Validator != "structural" {
		t.Errorf("validator = %q, want structural", verr.Validator)
	}
	if !verr.Retryable {
		t.Error("empty text should be retryable")
	}
}

func TestNextQuestion_RejectsRepetition(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.NextQuestion(context.Background(), GenerateInput{
		Phase:          pack.PhaseInvestigation,
		PriorQuestions: []string{"quelles competences mobilisez-vous le plus au quotidien ?"},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Validator != "repetition" {
		t.Errorf("validator = %q, want repetition", verr.Validator)
	}
}

func TestNextQuestion_RejectsUnknownTheme(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question_text": "Question valide ?", "theme": "horoscope", "complexity": "simple"}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.NextQuestion(context.Background(), GenerateInput{Phase: pack.PhasePreliminary})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestWithFallback(t *testing.T) {
	failing := New(llm.NewMockProvider(llm.MockResponse{Err: errors.New("down")}), DefaultConfig())
	gen := WithFallback(failing, NewBank())

	q, err := gen.NextQuestion(context.Background(), GenerateInput{Phase: pack.PhasePreliminary})
	if err != nil {
		t.Fatalf("fallback should not fail: %v", err)
	}
	if q.Text == "" {
		t.Error("expected a bank question")
	}
}
