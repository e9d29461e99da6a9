package interview

import (
	"fmt"
	"strings"
)

// Validator checks a generated question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "repetition".
	Name() string

	// Validate checks the question and returns nil if it passes.
	Validate(q *Question, input GenerateInput) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if strings.TrimSpace(q.Text) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 500 characters",
			Retryable: true,
		}
	}
	switch q.Theme {
	case ThemeParcours, ThemeCompetences, ThemeMotivations, ThemeValeurs, ThemeProjet, ThemeContexte:
	default:
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown theme %q", q.Theme),
			Retryable: true,
		}
	}
	switch q.Complexity {
	case ComplexitySimple, ComplexityMoyen, ComplexityComplexe:
	default:
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown complexity %q", q.Complexity),
			Retryable: true,
		}
	}
	return nil
}

// RepetitionValidator rejects questions already asked verbatim. The
// prompt asks the model not to repeat; this catches the cases where it
// does anyway.
type RepetitionValidator struct{}

func (v *RepetitionValidator) Name() string { return "repetition" }

func (v *RepetitionValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	want := normalize(q.Text)
	for _, prior := range input.PriorQuestions {
		if normalize(prior) == want {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "question repeats one already asked",
				Retryable: true,
			}
		}
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
