// Package benchmark - the named problem catalog.
package benchmark

import (
	"errors"
	"sort"

	"github.com/katalvlaran/mome/core"
)

// ErrUnknownProblem is returned by ByName for an unrecognized problem name.
var ErrUnknownProblem = errors.New("benchmark: unknown problem name")

// kursaweFrontSamples sizes the sampling run behind Kursawe's
// approximated front; large enough for a smooth curve, small enough to
// stay interactive.
const kursaweFrontSamples = 200_000

// Problem bundles an evaluator with the configuration it was defined
// for: recommended dimensionality, decision box, and true front.
type Problem struct {
	// Name is the catalog key, lower-case.
	Name string
	// Dims is the recommended decision vector length.
	Dims int
	// Bounds is the decision box the formulas are defined over.
	Bounds core.Bounds
	// Eval is the objective function (minimization).
	Eval core.Evaluator
	// TrueFront produces the reference front for quality metrics.
	TrueFront func() [][2]float64
}

// catalog holds every named problem with its literature-recommended
// setup. Dimensions mirror the usual experimental configurations.
var catalog = map[string]func() Problem{
	"schaffer-n1": func() Problem {
		return Problem{
			Name:      "schaffer-n1",
			Dims:      1,
			Bounds:    core.Bounds{Lower: -100, Upper: 100},
			Eval:      SchafferN1(),
			TrueFront: func() [][2]float64 { return SchafferN1TrueFront(400) },
		}
	},
	"fonseca-fleming": func() Problem {
		const n = 3
		return Problem{
			Name:      "fonseca-fleming",
			Dims:      n,
			Bounds:    core.Bounds{Lower: -4, Upper: 4},
			Eval:      FonsecaFleming(n),
			TrueFront: func() [][2]float64 { return FonsecaFlemingTrueFront(400, n) },
		}
	},
	"zdt1": func() Problem {
		const n = 30
		return Problem{
			Name:      "zdt1",
			Dims:      n,
			Bounds:    core.Bounds{Lower: 0, Upper: 1},
			Eval:      ZDT1(n),
			TrueFront: func() [][2]float64 { return ZDT1TrueFront(400) },
		}
	},
	"zdt3": func() Problem {
		const n = 30
		return Problem{
			Name:      "zdt3",
			Dims:      n,
			Bounds:    core.Bounds{Lower: 0, Upper: 1},
			Eval:      ZDT3(n),
			TrueFront: func() [][2]float64 { return ZDT3TrueFront(200) },
		}
	},
	"zdt6": func() Problem {
		const n = 10
		return Problem{
			Name:      "zdt6",
			Dims:      n,
			Bounds:    core.Bounds{Lower: 0, Upper: 1},
			Eval:      ZDT6(n),
			TrueFront: func() [][2]float64 { return ZDT6TrueFront(400) },
		}
	},
	"kursawe": func() Problem {
		const n = 3
		return Problem{
			Name:      "kursawe",
			Dims:      n,
			Bounds:    core.Bounds{Lower: -5, Upper: 5},
			Eval:      Kursawe(n),
			TrueFront: func() [][2]float64 { return KursaweApproxFront(n, kursaweFrontSamples, 42) },
		}
	},
}

// ByName returns the catalog problem for name, or ErrUnknownProblem.
func ByName(name string) (Problem, error) {
	build, ok := catalog[name]
	if !ok {
		return Problem{}, ErrUnknownProblem
	}

	return build(), nil
}

// Names returns the sorted catalog keys, for help texts.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
