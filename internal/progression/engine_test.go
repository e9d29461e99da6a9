package progression

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bilan/internal/pack"
	"github.com/abhisek/bilan/internal/profile"
)

// testPackage matches the worked example: phase targets 5/20/5.
func testPackage() *pack.Package {
	return &pack.Package{
		ID:   "test",
		Name: "Test",
		PhaseEstimates: []pack.QuestionEstimate{
			{Min: 4, Target: 5, Max: 7},
			{Min: 15, Target: 20, Max: 26},
			{Min: 4, Target: 5, Max: 7},
		},
		TotalEstimate: pack.QuestionEstimate{Min: 23, Target: 30, Max: 40},
	}
}

func TestCompute_ZeroAnswers(t *testing.T) {
	e := NewEngine(DefaultThresholds())

	info := e.Compute(0, testPackage(), nil)

	assert.Equal(t, 0, info.GlobalPct)
	assert.Equal(t, pack.PhasePreliminary, info.CurrentPhase)
	assert.False(t, info.MinimumReached)
	assert.False(t, info.OptimalReached)
	assert.False(t, info.MaximumReached)
}

func TestCompute_PhaseBoundaryExample(t *testing.T) {
	// 5 answers against targets 5/20/5: the preliminary phase is exactly
	// done, the engine has just crossed into investigation, and the
	// global percentage is the preliminary weight alone.
	e := NewEngine(DefaultThresholds())

	info := e.Compute(5, testPackage(), nil)

	assert.Equal(t, pack.PhaseInvestigation, info.CurrentPhase)
	assert.Equal(t, 100, info.PhasePcts[0])
	assert.Equal(t, 0, info.PhasePcts[1])
	assert.Equal(t, 20, info.GlobalPct)
	assert.Equal(t, 0, info.CurrentPhaseAnswers)
	assert.Equal(t, 20, info.CurrentPhaseTarget)
}

func TestCompute_DegeneratePackage(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	flash := &pack.Package{ID: "flash", Name: "Flash"}

	info := e.Compute(12, flash, nil)

	assert.Equal(t, 0, info.GlobalPct)
	assert.Equal(t, pack.PhasePreliminary, info.CurrentPhase)
	assert.Equal(t, 30, info.Targets.Total)
	assert.Equal(t, 10, info.CurrentPhaseTarget)
	assert.False(t, info.MinimumReached)
}

func TestCompute_NilPackage(t *testing.T) {
	e := NewEngine(DefaultThresholds())

	info := e.Compute(3, nil, nil)

	assert.Equal(t, 0, info.GlobalPct)
	assert.Equal(t, pack.PhasePreliminary, info.CurrentPhase)
}

func TestCompute_ConclusionAndMaximum(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	pkg := testPackage()

	// All targets met: conclusion phase, maximum threshold once the
	// conclusion's own ratio reaches 1.30 (ceil of 5*1.3 = 7 answers in
	// phase 3, i.e. 32 total).
	info := e.Compute(32, pkg, nil)

	require.Equal(t, pack.PhaseConclusion, info.CurrentPhase)
	assert.Equal(t, 7, info.CurrentPhaseAnswers)
	assert.True(t, info.MinimumReached)
	assert.True(t, info.OptimalReached)
	assert.True(t, info.MaximumReached)
	assert.Equal(t, 100, info.GlobalPct)
	assert.True(t, info.MustForceNextPhase())
	assert.False(t, info.ShouldProposeNextPhase())
}

func TestCompute_ThresholdOrdering(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	pkg := testPackage()

	for n := 0; n <= 60; n++ {
		info := e.Compute(n, pkg, nil)
		if info.MaximumReached {
			assert.True(t, info.OptimalReached, "n=%d: maximum without optimal", n)
		}
		if info.OptimalReached {
			assert.True(t, info.MinimumReached, "n=%d: optimal without minimum", n)
		}
	}
}

func TestCompute_ThresholdMonotonicity(t *testing.T) {
	// Within a phase, threshold flags never flip back off as the answer
	// count grows. (Crossing a phase boundary resets them for the new
	// phase by definition.)
	e := NewEngine(DefaultThresholds())
	pkg := testPackage()

	prev := e.Compute(0, pkg, nil)
	for n := 1; n <= 80; n++ {
		info := e.Compute(n, pkg, nil)
		if info.CurrentPhase == prev.CurrentPhase {
			if prev.MinimumReached {
				assert.True(t, info.MinimumReached, "n=%d: minimum regressed", n)
			}
			if prev.OptimalReached {
				assert.True(t, info.OptimalReached, "n=%d: optimal regressed", n)
			}
			if prev.MaximumReached {
				assert.True(t, info.MaximumReached, "n=%d: maximum regressed", n)
			}
		}
		prev = info
	}
}

func TestCompute_GlobalPctMonotonicAndCapped(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	pkg := testPackage()

	prevPct := -1
	for n := 0; n <= 120; n++ {
		info := e.Compute(n, pkg, nil)
		require.LessOrEqual(t, info.GlobalPct, 100, "n=%d", n)
		require.GreaterOrEqual(t, info.GlobalPct, prevPct, "n=%d", n)
		prevPct = info.GlobalPct
	}
}

func TestCompute_WithProfileReduction(t *testing.T) {
	// A rich profile (~30% reduction) shrinks the preliminary target from
	// 5 to 4, so the phase boundary moves earlier.
	e := NewEngine(DefaultThresholds())
	pkg := testPackage()
	prof := &profile.Profile{
		Background: strings.Repeat("compétence expérience formation projet management ", 60),
		Profession: "Consultante",
		Education:  "Master",
		Skills:     []string{"a", "b", "c", "d", "e"},

		YearsExperience: 12,
	}

	require.Equal(t, 30, profile.EstimateReduction(prof))

	info := e.Compute(4, pkg, prof)

	assert.Equal(t, 30, info.ReductionPct)
	assert.Equal(t, 4, info.Targets.Phases[0]) // round(5*0.70)
	assert.Equal(t, 14, info.Targets.Phases[1])
	assert.Equal(t, pack.PhaseInvestigation, info.CurrentPhase)
	assert.Equal(t, 100, info.PhasePcts[0])
}

func TestAdjustedTargets(t *testing.T) {
	pkg := testPackage()

	tests := []struct {
		name      string
		reduction int
		phases    [pack.NumPhases]int
		total     int
	}{
		{"no reduction", 0, [pack.NumPhases]int{5, 20, 5}, 30},
		{"thirty percent", 30, [pack.NumPhases]int{4, 14, 4}, 21},
		{"fifteen percent", 15, [pack.NumPhases]int{4, 17, 4}, 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustedTargets(pkg, tt.reduction)
			assert.Equal(t, tt.phases, got.Phases)
			assert.Equal(t, tt.total, got.Total)
		})
	}
}
