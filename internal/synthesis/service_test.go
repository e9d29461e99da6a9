package synthesis

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/bilan/internal/llm"
	"github.com/abhisek/bilan/internal/session"
)

func validSummaryJSON() json.RawMessage {
	return json.RawMessage(`{
		"summary_text": "Votre parcours temoigne d'une forte capacite d'adaptation.",
		"strengths": ["Organisation rigoureuse", "Aisance relationnelle"],
		"development_axes": ["Formaliser une cible de reconversion"]
	}`)
}

func testInput() Input {
	return Input{
		UserName:    "Claire",
		PackageName: "Essentiel",
		Exchanges: []Exchange{
			{Question: "Parlez-moi de votre parcours.", Answer: "Quinze ans en logistique.", Theme: "parcours", Phase: "preliminaire"},
			{Question: "Quelles competences mobilisez-vous ?", Answer: "La planification surtout.", Theme: "competences", Phase: "investigation"},
		},
	}
}

// consumeWithin polls until generation finishes or the deadline passes.
func consumeWithin(t *testing.T, svc *Service, d time.Duration) (*session.Summary, error) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		sum, done, err := svc.ConsumeSummary()
		if done {
			return sum, err
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("generation did not finish in time")
	return nil, nil
}

func TestService_GeneratesSummary(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSummaryJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestSummary(t.Context(), testInput())

	sum, err := consumeWithin(t, svc, 5*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum == nil {
		t.Fatal("expected a summary")
	}
	if !strings.Contains(sum.Text, "adaptation") {
		t.Errorf("unexpected text: %q", sum.Text)
	}
	if len(sum.Strengths) != 2 || len(sum.Axes) != 1 {
		t.Errorf("strengths/axes = %d/%d, want 2/1", len(sum.Strengths), len(sum.Axes))
	}
	if sum.WrittenAt.IsZero() {
		t.Error("expected WrittenAt to be stamped")
	}
}

func TestService_PromptCarriesTranscript(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSummaryJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestSummary(t.Context(), testInput())
	if _, err := consumeWithin(t, svc, 5*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 LLM call, got %d", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Claire", "Quinze ans en logistique.", "investigation"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestService_ErrorSurfacesOnConsume(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	svc.RequestSummary(t.Context(), testInput())

	sum, err := consumeWithin(t, svc, 5*time.Second)
	if err == nil {
		t.Fatal("expected error")
	}
	if sum != nil {
		t.Errorf("expected nil summary on error, got %+v", sum)
	}

	// Slot is cleared after consumption.
	if _, done, _ := svc.ConsumeSummary(); done {
		t.Error("expected done=false after the result was consumed")
	}
}

func TestService_NotDoneBeforeRequest(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if _, done, _ := svc.ConsumeSummary(); done {
		t.Error("expected done=false before any request")
	}
}
