package pack

// QuestionEstimate bounds the number of interview questions for a phase.
type QuestionEstimate struct {
	Min    int
	Target int
	Max    int
}

// Phase identifies one of the three mandatory assessment phases.
type Phase int

const (
	PhasePreliminary Phase = iota
	PhaseInvestigation
	PhaseConclusion

	// NumPhases is the number of mandatory phases in every assessment.
	NumPhases = 3
)

// String returns the canonical phase name used in records and displays.
func (p Phase) String() string {
	switch p {
	case PhasePreliminary:
		return "preliminaire"
	case PhaseInvestigation:
		return "investigation"
	case PhaseConclusion:
		return "conclusion"
	}
	return "unknown"
}

// PhaseFromString parses a stored phase name. Unknown values map to the
// preliminary phase, matching the engine's forward-only assumption.
func PhaseFromString(s string) Phase {
	switch s {
	case "investigation":
		return PhaseInvestigation
	case "conclusion":
		return PhaseConclusion
	}
	return PhasePreliminary
}

// Package is a purchasable assessment tier. Packages are immutable and
// loaded from the static catalog.
type Package struct {
	ID    string
	Name  string
	Hours int

	// PhaseEstimates holds the question-count estimate per phase, indexed
	// by Phase. Empty when the tier ships without estimates.
	PhaseEstimates []QuestionEstimate

	// TotalEstimate is the question-count estimate across all phases.
	TotalEstimate QuestionEstimate
}

// HasEstimates reports whether the package carries question estimates for
// all phases. Callers must fall back to default targets when it does not.
func (p *Package) HasEstimates() bool {
	return p != nil && len(p.PhaseEstimates) == NumPhases && p.TotalEstimate.Target > 0
}
