package synthesis

import (
	"strings"
	"testing"

	"github.com/abhisek/bilan/internal/profile"
)

func TestBuildSummaryUserMessage_IncludesProfile(t *testing.T) {
	msg := buildSummaryUserMessage(Input{
		UserName:    "Claire",
		PackageName: "Bilan Essentiel",
		Profile: &profile.Profile{
			Profession:      "logistique",
			YearsExperience: 15,
			Skills:          []string{"gestion", "planification"},
		},
		Exchanges: []Exchange{
			{Question: "Parlez-moi de votre parcours.", Answer: "Quinze ans en logistique.", Phase: "preliminaire"},
		},
	}, DefaultConfig())

	for _, want := range []string{"Claire", "Bilan Essentiel", "Experience: 15 ans", "preliminaire", "Quinze ans en logistique."} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildSummaryUserMessage_TruncatesOldExchanges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxExchanges = 2

	msg := buildSummaryUserMessage(Input{
		Exchanges: []Exchange{
			{Question: "q1", Answer: "r1"},
			{Question: "q2", Answer: "r2"},
			{Question: "q3", Answer: "r3"},
		},
	}, cfg)

	if strings.Contains(msg, "r1") {
		t.Errorf("oldest exchange should be dropped:\n%s", msg)
	}
	for _, want := range []string{"r2", "r3"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}
