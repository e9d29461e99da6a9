package synthesis

import (
	"strings"
	"testing"

	"github.com/abhisek/bilan/internal/profile"
)

func TestFallback_CountsAndThemes(t *testing.T) {
	sum := Fallback(Input{
		UserName: "Claire",
		Exchanges: []Exchange{
			{Theme: "competences"},
			{Theme: "competences"},
			{Theme: "parcours"},
		},
	})

	if !strings.Contains(sum.Text, "3 questions") {
		t.Errorf("text should mention the answer count: %q", sum.Text)
	}
	if !strings.Contains(sum.Text, "competences, parcours") {
		t.Errorf("themes should be ordered by frequency: %q", sum.Text)
	}
	if sum.WrittenAt.IsZero() {
		t.Error("expected WrittenAt to be stamped")
	}
}

func TestFallback_DeclaredSkillsBecomeStrengths(t *testing.T) {
	sum := Fallback(Input{
		Profile: &profile.Profile{Skills: []string{"gestion", "planification"}},
	})

	if len(sum.Strengths) != 2 {
		t.Fatalf("strengths = %d, want 2", len(sum.Strengths))
	}
	if !strings.Contains(sum.Strengths[0], "gestion") {
		t.Errorf("first strength = %q", sum.Strengths[0])
	}
}

func TestFallback_EmptyInput(t *testing.T) {
	sum := Fallback(Input{})
	if sum.Text == "" {
		t.Fatal("expected non-empty text even with no input")
	}
}
