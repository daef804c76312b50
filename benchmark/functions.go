// Package benchmark - evaluator constructors.
//
// Formulas follow the canonical literature definitions. Constructors
// close over the problem size n so the returned Evaluator is a plain
// pure function of the genome.
package benchmark

import (
	"math"

	"github.com/katalvlaran/mome/core"
)

// SchafferN1 returns the Schaffer N.1 problem: 2 objectives over a
// single variable.
//
//	f1 = x², f2 = (x-2)²
//
// Pareto set: x ∈ [0, 2]. Recommended bounds: [-100, 100].
func SchafferN1() core.Evaluator {
	return func(x []float64) []float64 {
		f1 := x[0] * x[0]
		f2 := (x[0] - 2) * (x[0] - 2)

		return []float64{f1, f2}
	}
}

// FonsecaFleming returns the Fonseca–Fleming problem over n variables
// (typically 3). Recommended bounds: [-4, 4].
//
//	f1 = 1 - exp(-Σ (xi - 1/√n)²)
//	f2 = 1 - exp(-Σ (xi + 1/√n)²)
func FonsecaFleming(n int) core.Evaluator {
	invSqrtN := 1.0 / math.Sqrt(float64(n))

	return func(x []float64) []float64 {
		var sum1, sum2 float64
		for i := 0; i < n; i++ {
			sum1 += (x[i] - invSqrtN) * (x[i] - invSqrtN)
			sum2 += (x[i] + invSqrtN) * (x[i] + invSqrtN)
		}

		return []float64{1 - math.Exp(-sum1), 1 - math.Exp(-sum2)}
	}
}

// ZDT1 returns the ZDT1 problem over n variables (typically 30), convex
// front, bounds [0, 1].
//
//	f1 = x0
//	g  = 1 + 9/(n-1) · Σ_{i≥1} xi
//	f2 = g · (1 - √(f1/g))
func ZDT1(n int) core.Evaluator {
	return func(x []float64) []float64 {
		f1 := x[0]
		g := 1.0 + 9.0/float64(n-1)*tailSum(x, 1, n)
		f2 := g * (1.0 - math.Sqrt(f1/g))

		return []float64{f1, f2}
	}
}

// ZDT3 returns the ZDT3 problem over n variables (typically 30):
// disconnected front, bounds [0, 1].
//
//	f2 = g · (1 - √(f1/g) - (f1/g)·sin(10π·f1))
func ZDT3(n int) core.Evaluator {
	return func(x []float64) []float64 {
		f1 := x[0]
		g := 1.0 + 9.0/float64(n-1)*tailSum(x, 1, n)
		f2 := g * (1.0 - math.Sqrt(f1/g) - (f1/g)*math.Sin(10*math.Pi*f1))

		return []float64{f1, f2}
	}
}

// ZDT6 returns the ZDT6 problem over n variables (typically 10):
// non-uniformly distributed concave front, bounds [0, 1].
//
//	f1 = 1 - exp(-4·x0)·sin⁶(6π·x0)
//	g  = 1 + 9·(Σ_{i≥1} xi / (n-1))^0.25
//	f2 = g · (1 - (f1/g)²)
func ZDT6(n int) core.Evaluator {
	return func(x []float64) []float64 {
		x1 := x[0]
		f1 := 1.0 - math.Exp(-4.0*x1)*math.Pow(math.Sin(6.0*math.Pi*x1), 6)
		avg := tailSum(x, 1, n) / float64(n-1)
		g := 1.0 + 9.0*math.Pow(avg, 0.25)
		f2 := g * (1.0 - (f1/g)*(f1/g))

		return []float64{f1, f2}
	}
}

// Kursawe returns the Kursawe problem over n variables (typically 3):
// disconnected non-convex front, bounds [-5, 5].
//
//	f1 = Σ_{i<n-1} -10·exp(-0.2·√(xi² + x(i+1)²))
//	f2 = Σ |xi|^0.8 + 5·sin(xi³)
func Kursawe(n int) core.Evaluator {
	return func(x []float64) []float64 {
		var f1, f2 float64
		for i := 0; i < n-1; i++ {
			f1 += -10 * math.Exp(-0.2*math.Sqrt(x[i]*x[i]+x[i+1]*x[i+1]))
		}
		for i := 0; i < n; i++ {
			f2 += math.Pow(math.Abs(x[i]), 0.8) + 5*math.Sin(x[i]*x[i]*x[i])
		}

		return []float64{f1, f2}
	}
}

// tailSum sums x[start:end].
func tailSum(x []float64, start, end int) float64 {
	var s float64
	for i := start; i < end; i++ {
		s += x[i]
	}

	return s
}
