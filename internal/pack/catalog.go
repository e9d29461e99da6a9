package pack

import "fmt"

// catalog is the static set of assessment tiers. Order matters: tiers are
// displayed cheapest first.
var catalog = []Package{
	{
		ID:    "flash",
		Name:  "Bilan Flash",
		Hours: 8,
		// No question estimates: the flash tier is a fixed short interview
		// and relies on the engine's default targets.
	},
	{
		ID:    "essentiel",
		Name:  "Bilan Essentiel",
		Hours: 16,
		PhaseEstimates: []QuestionEstimate{
			{Min: 4, Target: 5, Max: 7},
			{Min: 15, Target: 20, Max: 26},
			{Min: 4, Target: 5, Max: 7},
		},
		TotalEstimate: QuestionEstimate{Min: 23, Target: 30, Max: 40},
	},
	{
		ID:    "approfondi",
		Name:  "Bilan Approfondi",
		Hours: 24,
		PhaseEstimates: []QuestionEstimate{
			{Min: 6, Target: 8, Max: 10},
			{Min: 22, Target: 28, Max: 36},
			{Min: 6, Target: 8, Max: 10},
		},
		TotalEstimate: QuestionEstimate{Min: 34, Target: 44, Max: 56},
	},
	{
		ID:    "premium",
		Name:  "Bilan Premium",
		Hours: 32,
		PhaseEstimates: []QuestionEstimate{
			{Min: 8, Target: 10, Max: 13},
			{Min: 28, Target: 36, Max: 47},
			{Min: 8, Target: 10, Max: 13},
		},
		TotalEstimate: QuestionEstimate{Min: 44, Target: 56, Max: 73},
	},
}

// All returns the full catalog in display order.
func All() []Package {
	out := make([]Package, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the package with the given id.
func Get(id string) (*Package, error) {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], nil
		}
	}
	return nil, fmt.Errorf("unknown package: %q", id)
}
