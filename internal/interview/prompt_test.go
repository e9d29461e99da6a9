package interview

import (
	"strings"
	"testing"

	"github.com/abhisek/bilan/internal/pack"
	"github.com/abhisek/bilan/internal/profile"
)

func TestBuildUserMessage_IncludesProfile(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Phase: pack.PhaseInvestigation,
		Profile: &profile.Profile{
			Profession:      "logistique",
			YearsExperience: 15,
			Skills:          []string{"gestion", "planification"},
		},
	}, DefaultConfig())

	for _, want := range []string{"investigation", "logistique", "Experience: 15 ans", "gestion, planification"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildUserMessage_EmptyListsSayNone(t *testing.T) {
	msg := buildUserMessage(GenerateInput{Phase: pack.PhasePreliminary}, DefaultConfig())

	if strings.Count(msg, "None") != 2 {
		t.Errorf("expected 'None' for both empty lists:\n%s", msg)
	}
}

func TestBuildList_TruncatesToMostRecent(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	got := buildList(items, 3)

	if strings.Contains(got, "a") || strings.Contains(got, "b") {
		t.Errorf("oldest items should be dropped: %q", got)
	}
	for _, want := range []string{"c", "d", "e"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing recent item %q: %q", want, got)
		}
	}
}

func TestPhaseOpening(t *testing.T) {
	if got := PhaseOpening(pack.PhaseConclusion); !strings.Contains(got, "projet") {
		t.Errorf("conclusion opening = %q", got)
	}
	if PhaseOpening(pack.PhasePreliminary) == PhaseOpening(pack.PhaseInvestigation) {
		t.Error("phase openings should differ")
	}
}
