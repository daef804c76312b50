// Package evolve - run configuration, sentinel errors, defaults.
package evolve

import (
	"errors"

	"github.com/katalvlaran/mome/archive"
	"github.com/katalvlaran/mome/core"
)

// Sentinel errors returned by Options.Validate. Malformed configuration
// is rejected at construction time; the loop itself never errors on
// well-formed input.
var (
	// ErrBadDimensions indicates Dimensions < 1.
	ErrBadDimensions = errors.New("evolve: dimensions must be at least 1")
	// ErrBadObjectives indicates NumObjectives < 1.
	ErrBadObjectives = errors.New("evolve: number of objectives must be at least 1")
	// ErrNoBins indicates BinsPerDim < 1.
	ErrNoBins = errors.New("evolve: bins per dimension must be at least 1")
	// ErrBadBounds indicates Bounds.Lower >= Bounds.Upper.
	ErrBadBounds = errors.New("evolve: lower bound must be strictly below upper bound")
	// ErrNegativeBudget indicates a negative evaluation budget component.
	ErrNegativeBudget = errors.New("evolve: generations, evaluations per generation and initial seeds must be non-negative")
	// ErrNegativeSigma indicates MutationSigma < 0.
	ErrNegativeSigma = errors.New("evolve: mutation sigma must be non-negative")
	// ErrNilEvaluator indicates Run was given no objective function.
	ErrNilEvaluator = errors.New("evolve: evaluator must be non-nil")
)

// tournamentSize is the k of best-of-k parent selection, capped by the
// pool size at draw time.
const tournamentSize = 5

// Observer receives the archive summary after every generation of the
// evolving phase. Generation numbering starts at 0; the seeding phase
// reports as generation -1.
type Observer func(generation int, s archive.Summary)

// Options configures one MAP-Elites run.
//
// Dimensions               – decision vector length D (>= 1).
// NumObjectives            – objective vector length M (>= 1).
// BinsPerDim               – behavior grid resolution per axis (>= 1).
// Bounds                   – decision box shared by all variables.
// EvaluationsPerGeneration – offspring per generation (>= 0).
// Generations              – outer loop iterations (>= 0).
// InitialRandom            – random seeds before evolving (>= 0; a run
//
//	always produces at least one seed so selection never starts from an
//	empty archive).
//
// MutationSigma            – Gaussian mutation std dev (>= 0).
// MaxPerCell               – per-cell Pareto set bound (coerced to >= 1).
// Seed                     – RNG seed; 0 selects the fixed default stream.
type Options struct {
	Dimensions               int
	NumObjectives            int
	BinsPerDim               int
	Bounds                   core.Bounds
	EvaluationsPerGeneration int
	Generations              int
	InitialRandom            int
	MutationSigma            float64
	MaxPerCell               int
	Seed                     int64

	// Observer, when non-nil, is invoked after seeding and after each
	// generation. Purely observational; must not mutate the archive.
	Observer Observer
}

// DefaultOptions returns a configuration sized for quick experiments on
// the unit box: 20×20 grid, 2 objectives, modest budget.
func DefaultOptions() Options {
	return Options{
		Dimensions:               10,
		NumObjectives:            2,
		BinsPerDim:               20,
		Bounds:                   core.Bounds{Lower: 0, Upper: 1},
		EvaluationsPerGeneration: 500,
		Generations:              100,
		InitialRandom:            200,
		MutationSigma:            0.05,
		MaxPerCell:               8,
	}
}

// Validate checks Options in stages and returns the first violated
// sentinel. MaxPerCell below 1 is NOT an error: the archive coerces it
// (a defensive default, not a precondition).
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.Dimensions < 1 {
		return ErrBadDimensions
	}
	if o.NumObjectives < 1 {
		return ErrBadObjectives
	}
	if o.BinsPerDim < 1 {
		return ErrNoBins
	}
	if err := o.Bounds.Validate(); err != nil {
		return ErrBadBounds
	}
	if o.EvaluationsPerGeneration < 0 || o.Generations < 0 || o.InitialRandom < 0 {
		return ErrNegativeBudget
	}
	if o.MutationSigma < 0 {
		return ErrNegativeSigma
	}

	return nil
}
