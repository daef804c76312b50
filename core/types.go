// Package core defines shared types and sentinel errors for the
// optimizer packages.
package core

import "errors"

// Sentinel errors for core value construction.
var (
	// ErrBadBounds indicates Lower >= Upper for a decision box.
	ErrBadBounds = errors.New("core: lower bound must be strictly below upper bound")
)

// Evaluator is the external objective-function contract: a pure, total
// function over the decision box mapping a genome of length D to an
// objective vector of length M, every component minimized.
//
// Implementations must not retain or mutate x.
type Evaluator func(x []float64) []float64

// Bounds describes the symmetric decision box [Lower, Upper]^D shared
// by all decision variables.
type Bounds struct {
	Lower, Upper float64
}

// Validate returns ErrBadBounds unless Lower < Upper.
//
// Complexity: O(1).
func (b Bounds) Validate() error {
	if b.Lower >= b.Upper {
		return ErrBadBounds
	}

	return nil
}

// Clamp forces v into [Lower, Upper].
//
// Complexity: O(1).
func (b Bounds) Clamp(v float64) float64 {
	if v < b.Lower {
		return b.Lower
	}
	if v > b.Upper {
		return b.Upper
	}

	return v
}

// Width returns Upper - Lower.
func (b Bounds) Width() float64 { return b.Upper - b.Lower }
