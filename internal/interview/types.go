package interview

import (
	"context"

	"github.com/abhisek/bilan/internal/pack"
	"github.com/abhisek/bilan/internal/profile"
)

// Question represents a generated interview question ready for display.
type Question struct {
	// ID uniquely identifies the question so answers can reference it.
	ID string

	// Text is the question shown to the user, in French.
	Text string

	// Theme classifies what the question explores.
	Theme Theme

	// Complexity is the LLM's self-assessed depth of the question.
	// Used for analytics, not for gating.
	Complexity Complexity

	// Phase is the phase this question was generated for.
	Phase pack.Phase
}

// Theme classifies an interview question.
type Theme string

const (
	ThemeParcours    Theme = "parcours"
	ThemeCompetences Theme = "competences"
	ThemeMotivations Theme = "motivations"
	ThemeValeurs     Theme = "valeurs"
	ThemeProjet      Theme = "projet"
	ThemeContexte    Theme = "contexte"
)

// Complexity describes how demanding a question is to answer.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityMoyen    Complexity = "moyen"
	ComplexityComplexe Complexity = "complexe"
)

// GenerateInput holds all context needed to generate the next question.
type GenerateInput struct {
	// Phase is the current interview phase.
	Phase pack.Phase

	// UserName is the user's display name, for addressing them.
	UserName string

	// CoachingStyle is the tone chosen during personalization.
	CoachingStyle string

	// PackageName is the selected package, for pacing context.
	PackageName string

	// Profile is the optional prior-experience profile.
	Profile *profile.Profile

	// PriorQuestions contains the text of questions already asked in
	// this session. Used for deduplication in the prompt.
	PriorQuestions []string

	// RecentAnswers contains the user's most recent answers, newest
	// last, so the next question can build on them.
	RecentAnswers []string
}

// Generator produces interview questions.
type Generator interface {
	// NextQuestion produces a single question for the given input.
	// All configured validators are run before returning.
	NextQuestion(ctx context.Context, input GenerateInput) (*Question, error)
}
