package interview

import (
	"context"
	"testing"

	"github.com/abhisek/bilan/internal/pack"
)

func TestBankSkipsAskedQuestions(t *testing.T) {
	bank := NewBank()
	ctx := context.Background()

	var asked []string
	seen := make(map[string]bool)
	for i := 0; i < len(phaseBank[pack.PhaseInvestigation]); i++ {
		q, err := bank.NextQuestion(ctx, GenerateInput{
			Phase:          pack.PhaseInvestigation,
			PriorQuestions: asked,
		})
		if err != nil {
			t.Fatalf("next question %d: %v", i, err)
		}
		if seen[q.Text] {
			t.Fatalf("question repeated before bank exhausted: %q", q.Text)
		}
		seen[q.Text] = true
		asked = append(asked, q.Text)
	}
}

func TestBankCyclesWhenExhausted(t *testing.T) {
	bank := NewBank()
	ctx := context.Background()

	var asked []string
	for _, e := range phaseBank[pack.PhasePreliminary] {
		asked = append(asked, e.text)
	}

	q, err := bank.NextQuestion(ctx, GenerateInput{
		Phase:          pack.PhasePreliminary,
		PriorQuestions: asked,
	})
	if err != nil {
		t.Fatalf("next question: %v", err)
	}
	if q.Text == "" {
		t.Fatal("expected a question even when the bank is exhausted")
	}
}

func TestBankPhaseSpecific(t *testing.T) {
	bank := NewBank()

	q, err := bank.NextQuestion(context.Background(), GenerateInput{Phase: pack.PhaseConclusion})
	if err != nil {
		t.Fatalf("next question: %v", err)
	}
	if q.Phase != pack.PhaseConclusion {
		t.Errorf("phase = %v, want conclusion", q.Phase)
	}
	if q.Theme != ThemeProjet {
		t.Errorf("theme = %q, want projet for the first conclusion question", q.Theme)
	}
}
