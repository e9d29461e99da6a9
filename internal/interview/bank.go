package interview

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhisek/bilan/internal/pack"
)

// bankEntry is one pre-written question in the static bank.
type bankEntry struct {
	text       string
	theme      Theme
	complexity Complexity
}

// phaseBank holds the pre-written questions per phase, in asking order.
var phaseBank = map[pack.Phase][]bankEntry{
	pack.PhasePreliminary: {
		{"Pouvez-vous me retracer les grandes etapes de votre parcours professionnel ?", ThemeParcours, ComplexitySimple},
		{"Qu'est-ce qui vous amene a entreprendre ce bilan aujourd'hui ?", ThemeContexte, ComplexitySimple},
		{"Comment decririez-vous votre situation professionnelle actuelle ?", ThemeContexte, ComplexitySimple},
		{"Quelles experiences de votre parcours vous ont le plus marque, et pourquoi ?", ThemeParcours, ComplexityMoyen},
		{"Quelles etaient vos aspirations au debut de votre carriere ?", ThemeParcours, ComplexityMoyen},
	},
	pack.PhaseInvestigation: {
		{"Quelles competences mobilisez-vous le plus dans votre quotidien professionnel ?", ThemeCompetences, ComplexityMoyen},
		{"Racontez-moi une realisation dont vous etes particulierement fier. Quel role y avez-vous joue ?", ThemeCompetences, ComplexityMoyen},
		{"Qu'est-ce qui vous donne de l'energie dans votre travail ?", ThemeMotivations, ComplexityMoyen},
		{"A l'inverse, quelles situations de travail vous pesent le plus ?", ThemeMotivations, ComplexityMoyen},
		{"Quelles valeurs doivent absolument etre respectees dans votre environnement de travail ?", ThemeValeurs, ComplexityComplexe},
		{"Quelles competences aimeriez-vous developper ou utiliser davantage ?", ThemeCompetences, ComplexityMoyen},
		{"Comment vos collegues decriraient-ils votre facon de travailler ?", ThemeCompetences, ComplexityMoyen},
		{"Quels compromis n'etes-vous plus pret a faire professionnellement ?", ThemeValeurs, ComplexityComplexe},
	},
	pack.PhaseConclusion: {
		{"Si tout etait possible, a quoi ressemblerait votre situation professionnelle ideale dans trois ans ?", ThemeProjet, ComplexityComplexe},
		{"Quelles pistes professionnelles se degagent pour vous de nos echanges ?", ThemeProjet, ComplexityComplexe},
		{"Quels seraient les premiers pas concrets pour avancer vers ce projet ?", ThemeProjet, ComplexityMoyen},
		{"Quels obstacles anticipez-vous, et comment pourriez-vous les contourner ?", ThemeProjet, ComplexityComplexe},
		{"De quoi auriez-vous besoin pour vous sentir pret a vous lancer ?", ThemeProjet, ComplexityMoyen},
	},
}

// Bank is a deterministic Generator backed by pre-written questions.
// It serves as the offline fallback when no LLM provider is configured
// or a generation attempt fails.
type Bank struct{}

// NewBank creates a static question bank.
func NewBank() *Bank {
	return &Bank{}
}

// NextQuestion returns the first bank question for the phase that has
// not been asked yet. When the phase bank is exhausted it cycles from
// the start; the interview keeps moving even on long packages.
func (b *Bank) NextQuestion(_ context.Context, input GenerateInput) (*Question, error) {
	entries := phaseBank[input.Phase]
	if len(entries) == 0 {
		entries = phaseBank[pack.PhaseInvestigation]
	}

	asked := make(map[string]bool, len(input.PriorQuestions))
	for _, q := range input.PriorQuestions {
		asked[normalize(q)] = true
	}

	entry := entries[len(input.PriorQuestions)%len(entries)]
	for _, e := range entries {
		if !asked[normalize(e.text)] {
			entry = e
			break
		}
	}

	return &Question{
		ID:         uuid.NewString(),
		Text:       entry.text,
		Theme:      entry.theme,
		Complexity: entry.complexity,
		Phase:      input.Phase,
	}, nil
}

// WithFallback returns a Generator that tries primary first and falls
// back to secondary when primary fails for any reason.
func WithFallback(primary, secondary Generator) Generator {
	return &fallbackGenerator{primary: primary, secondary: secondary}
}

type fallbackGenerator struct {
	primary   Generator
	secondary Generator
}

func (f *fallbackGenerator) NextQuestion(ctx context.Context, input GenerateInput) (*Question, error) {
	q, err := f.primary.NextQuestion(ctx, input)
	if err == nil {
		return q, nil
	}
	return f.secondary.NextQuestion(ctx, input)
}
