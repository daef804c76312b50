package evolve_test

import (
	"fmt"

	"github.com/katalvlaran/mome/core"
	"github.com/katalvlaran/mome/evolve"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRun
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Minimize f(x) = [x0, x1] over the unit square — both objectives pull
//	toward the origin, so the global front collapses to the best sampled
//	corner. A tiny fixed budget with a fixed seed keeps the run
//	reproducible.
//
// Options:
//   - BinsPerDim = 2   (2×2 behavior grid over (x0, x1))
//   - MaxPerCell = 2   (each cell keeps at most two trade-offs)
//   - Seed = 1234      (deterministic archive)
//
// Use case:
//
//	Smoke-testing a custom objective before committing to a big budget.
func ExampleRun() {
	opts := evolve.Options{
		Dimensions:               2,
		NumObjectives:            2,
		BinsPerDim:               2,
		Bounds:                   core.Bounds{Lower: 0, Upper: 1},
		EvaluationsPerGeneration: 10,
		Generations:              1,
		InitialRandom:            10,
		MutationSigma:            0.1,
		MaxPerCell:               2,
		Seed:                     1234,
	}

	arch, err := evolve.Run(func(x []float64) []float64 {
		return []float64{x[0], x[1]}
	}, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	s := arch.Summary()
	fmt.Printf("capacity respected: %v\n", s.MaxPerCell <= 2)
	fmt.Printf("front non-empty: %v\n", len(arch.FrontPoints()) > 0)
	// Output:
	// capacity respected: true
	// front non-empty: true
}
