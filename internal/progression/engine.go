package progression

import (
	"math"

	"github.com/abhisek/bilan/internal/pack"
	"github.com/abhisek/bilan/internal/profile"
)

// Info is the computed progression snapshot. It is derived on every
// answer-count change and never persisted; only its inputs are.
type Info struct {
	// GlobalPct is the weighted overall completion percentage (0-100).
	GlobalPct int

	// PhasePcts holds the per-phase completion percentages (each 0-100).
	PhasePcts [pack.NumPhases]int

	// CurrentPhase is the phase the user is currently in.
	CurrentPhase pack.Phase

	// AnswerCount is the total number of answers given so far.
	AnswerCount int

	// CurrentPhaseAnswers is the number of answers attributed to the
	// current phase.
	CurrentPhaseAnswers int

	// Targets holds the adjusted per-phase and total question targets.
	Targets Targets

	// CurrentPhaseTarget is the adjusted target of the current phase.
	CurrentPhaseTarget int

	// Threshold flags for the current phase. Ordered and cumulative:
	// MaximumReached implies OptimalReached implies MinimumReached.
	MinimumReached bool
	OptimalReached bool
	MaximumReached bool

	// ReductionPct is the profile reduction applied to the targets.
	ReductionPct int
}

// ShouldProposeNextPhase reports whether the UI should offer a move to
// the next phase: the minimum threshold is met but the hard ceiling is
// not yet hit.
func (i Info) ShouldProposeNextPhase() bool {
	return i.MinimumReached && !i.MaximumReached
}

// MustForceNextPhase reports whether the engine requires a move to the
// next phase.
func (i Info) MustForceNextPhase() bool {
	return i.MaximumReached
}

// Engine turns a raw answer count into a phase-aware progression
// snapshot. It is pure: no I/O, no stored state beyond its thresholds,
// and it never fails — every input has a defined result.
type Engine struct {
	t Thresholds
}

// NewEngine creates an Engine with the given pacing policy.
func NewEngine(t Thresholds) *Engine {
	return &Engine{t: t}
}

// Compute derives the progression snapshot for answerCount answers under
// the given package and optional profile. Answers are attributed to
// phases strictly by arrival position, so only their count matters here.
// A nil profile means no reduction; a package without question estimates
// yields the degenerate default result rather than an error.
func (e *Engine) Compute(answerCount int, pkg *pack.Package, prof *profile.Profile) Info {
	if answerCount < 0 {
		answerCount = 0
	}

	if !pkg.HasEstimates() {
		return Info{
			CurrentPhase: pack.PhasePreliminary,
			AnswerCount:  answerCount,
			Targets: Targets{
				Phases: [pack.NumPhases]int{
					e.t.DefaultPhaseTarget,
					e.t.DefaultPhaseTarget,
					e.t.DefaultPhaseTarget,
				},
				Total: e.t.DefaultTotalTarget,
			},
			CurrentPhaseTarget: e.t.DefaultPhaseTarget,
		}
	}

	reduction := profile.EstimateReduction(prof)
	targets := AdjustedTargets(pkg, reduction)

	info := Info{
		AnswerCount:  answerCount,
		Targets:      targets,
		ReductionPct: reduction,
	}

	// Phase boundaries sit at the optimal ratio of cumulative targets.
	boundary1 := round(float64(targets.Phases[0]) * e.t.OptimalRatio)
	boundary2 := round(float64(targets.Phases[0]+targets.Phases[1]) * e.t.OptimalRatio)
	switch {
	case answerCount < boundary1:
		info.CurrentPhase = pack.PhasePreliminary
	case answerCount < boundary2:
		info.CurrentPhase = pack.PhaseInvestigation
	default:
		info.CurrentPhase = pack.PhaseConclusion
	}

	// Positional attribution: the first target1 answers belong to the
	// preliminary phase, the next target2 to investigation, the rest to
	// conclusion.
	phaseAnswers := attribute(answerCount, targets)

	for i := range info.PhasePcts {
		info.PhasePcts[i] = percent(phaseAnswers[i], targets.Phases[i])
	}

	global := 0.0
	for i, w := range e.t.PhaseWeights {
		global += float64(info.PhasePcts[i]) * w
	}
	info.GlobalPct = round(global)
	if info.GlobalPct > 100 {
		info.GlobalPct = 100
	}

	info.CurrentPhaseAnswers = phaseAnswers[info.CurrentPhase]
	info.CurrentPhaseTarget = targets.Phases[info.CurrentPhase]

	if info.CurrentPhaseTarget > 0 {
		ratio := float64(info.CurrentPhaseAnswers) / float64(info.CurrentPhaseTarget)
		info.MinimumReached = ratio >= e.t.MinimumRatio
		info.OptimalReached = ratio >= e.t.OptimalRatio
		info.MaximumReached = ratio >= e.t.MaximumRatio
	}

	return info
}

// attribute splits a total answer count across phases by position.
func attribute(total int, targets Targets) [pack.NumPhases]int {
	var out [pack.NumPhases]int
	out[0] = min(total, targets.Phases[0])
	out[1] = min(max(0, total-targets.Phases[0]), targets.Phases[1])
	out[2] = total - out[0] - out[1]
	return out
}

// percent computes a completion percentage capped at 100. A zero target
// is defined as 0%.
func percent(answers, target int) int {
	if target <= 0 {
		return 0
	}
	pct := round(100 * float64(answers) / float64(target))
	if pct > 100 {
		return 100
	}
	return pct
}

func round(v float64) int {
	return int(math.Round(v))
}
