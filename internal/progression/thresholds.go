package progression

// Thresholds holds the pacing policy of the progression engine. The
// ratios compare current-phase answers to the current-phase target; the
// weights blend per-phase percentages into the global one. These are
// business policy, kept configurable rather than hard-coded.
type Thresholds struct {
	// MinimumRatio is the ratio at which a phase may be considered done.
	MinimumRatio float64

	// OptimalRatio is the ratio at which a phase is nominally done. Phase
	// boundaries are placed at the optimal ratio of cumulative targets.
	OptimalRatio float64

	// MaximumRatio is the ratio past which the phase must end.
	MaximumRatio float64

	// PhaseWeights blends per-phase percentages into the global progress
	// percentage. Must sum to 1. The investigation phase dominates.
	PhaseWeights [3]float64

	// DefaultTotalTarget and DefaultPhaseTarget back the degenerate
	// result for packages without question estimates.
	DefaultTotalTarget int
	DefaultPhaseTarget int
}

// DefaultThresholds returns the standard pacing policy.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinimumRatio:       0.90,
		OptimalRatio:       1.00,
		MaximumRatio:       1.30,
		PhaseWeights:       [3]float64{0.20, 0.60, 0.20},
		DefaultTotalTarget: 30,
		DefaultPhaseTarget: 10,
	}
}
