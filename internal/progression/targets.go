package progression

import (
	"math"

	"github.com/abhisek/bilan/internal/pack"
)

// Targets holds the question-count targets after applying a profile
// reduction.
type Targets struct {
	Phases [pack.NumPhases]int
	Total  int
}

// AdjustedTargets shrinks the package's phase targets by reductionPct
// (0-100, in practice 0-30). Each phase target is rounded independently;
// the total is rounded from the package total, not summed from phases.
// The package must carry question estimates.
func AdjustedTargets(pkg *pack.Package, reductionPct int) Targets {
	factor := 1 - float64(reductionPct)/100

	var t Targets
	for i, est := range pkg.PhaseEstimates {
		t.Phases[i] = roundTarget(float64(est.Target) * factor)
	}
	t.Total = roundTarget(float64(pkg.TotalEstimate.Target) * factor)
	return t
}

func roundTarget(v float64) int {
	return int(math.Round(v))
}
