package profile

import (
	"strings"
	"testing"
)

func TestEstimateReduction_NoProfile(t *testing.T) {
	if got := EstimateReduction(nil); got != 0 {
		t.Errorf("EstimateReduction(nil) = %d, want 0", got)
	}
	if got := EstimateReduction(&Profile{}); got != 0 {
		t.Errorf("EstimateReduction(empty) = %d, want 0", got)
	}
}

func TestEstimateReduction_EmptyStringsAndNegativeYears(t *testing.T) {
	p := &Profile{
		Background:      "   ",
		Profession:      "",
		YearsExperience: -3,
		Education:       "",
	}
	got := EstimateReduction(p)
	if got < 0 || got > MaxReduction {
		t.Fatalf("EstimateReduction = %d, want value in [0,%d]", got, MaxReduction)
	}
}

func TestBackgroundLengthPoints(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"below minimum", 499, 0},
		{"at minimum", 500, 5},
		{"midpoint", 1250, 10},
		{"at maximum", 2000, 15},
		{"above maximum", 5000, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := backgroundLengthPoints(tt.n); got != tt.want {
				t.Errorf("backgroundLengthPoints(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestKeywordPoints_DistinctFamiliesCapped(t *testing.T) {
	text := "compétence expérience formation projet management responsable certification"
	if got := keywordPoints(text); got != maxKeywordPoints {
		t.Errorf("keywordPoints = %d, want cap %d", got, maxKeywordPoints)
	}

	if got := keywordPoints("formation continue"); got != 1 {
		t.Errorf("keywordPoints = %d, want 1", got)
	}

	// Accented and plain spellings count once per family.
	if got := keywordPoints("experience et expérience"); got != 1 {
		t.Errorf("keywordPoints = %d, want 1 (same family)", got)
	}
}

func TestEstimateReduction_RichProfileClamped(t *testing.T) {
	// 2500-char background mentioning two keyword families, positive
	// experience years, several skills: lands in the upper band but never
	// above the ceiling.
	p := &Profile{
		Background:      strings.Repeat("a", 2400) + " expérience et formation ",
		Profession:      "Cheffe de projet",
		YearsExperience: 12,
		Education:       "Master",
		Skills:          []string{"gestion", "communication", "anglais"},
	}

	got := EstimateReduction(p)
	// 15 (length) + 2 (keywords) + 2 + 2 + 2 + 3 (skills) = 26.
	if got != 26 {
		t.Errorf("EstimateReduction = %d, want 26", got)
	}

	// Pile on everything: clamp applies.
	p.Skills = []string{"a", "b", "c", "d", "e", "f"}
	p.Background = strings.Repeat("compétence expérience formation projet management ", 60)
	if got := EstimateReduction(p); got != MaxReduction {
		t.Errorf("EstimateReduction = %d, want clamp %d", got, MaxReduction)
	}
}

func TestEstimateReduction_Deterministic(t *testing.T) {
	p := &Profile{
		Background:      strings.Repeat("parcours professionnel riche ", 40),
		Profession:      "Consultant",
		YearsExperience: 5,
		Skills:          []string{"audit"},
	}
	first := EstimateReduction(p)
	for range 10 {
		if got := EstimateReduction(p); got != first {
			t.Fatalf("EstimateReduction not deterministic: %d then %d", first, got)
		}
	}
}
