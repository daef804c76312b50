// Package benchmark - true Pareto fronts.
//
// Analytic fronts exist in closed form for every problem except
// Kursawe, which is approximated by dense random sampling followed by a
// non-dominated sweep. Fronts are returned as (f1, f2) pairs
// sorted by f1, the same reporting shape the archive emits, so metrics
// and plotting consume both sides uniformly.
package benchmark

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// zdt3Segments are the f1 intervals on which the ZDT3 front is defined,
// from the original problem statement.
var zdt3Segments = [][2]float64{
	{0.0, 0.0830015349},
	{0.1822287280, 0.2577623634},
	{0.4093136748, 0.4538821041},
	{0.6183967944, 0.6525117038},
	{0.8233317983, 0.8518328654},
}

// ZDT1TrueFront samples n points of the ZDT1 (and ZDT4) front:
// f2 = 1 - √f1, f1 ∈ [0, 1].
//
// Contract: n >= 2.
func ZDT1TrueFront(n int) [][2]float64 {
	f1 := floats.Span(make([]float64, n), 0, 1)

	pts := make([][2]float64, n)
	for i, v := range f1 {
		pts[i] = [2]float64{v, 1.0 - math.Sqrt(v)}
	}

	return pts
}

// ZDT6TrueFront samples n points of the ZDT6 front: f2 = 1 - f1²,
// f1 ∈ [0, 1].
//
// Contract: n >= 2.
func ZDT6TrueFront(n int) [][2]float64 {
	f1 := floats.Span(make([]float64, n), 0, 1)

	pts := make([][2]float64, n)
	for i, v := range f1 {
		pts[i] = [2]float64{v, 1.0 - v*v}
	}

	return pts
}

// ZDT3TrueFront samples the piecewise ZDT3 front with pointsPerSegment
// points on each of its five segments:
// f2 = 1 - √f1 - f1·sin(10π·f1).
//
// Contract: pointsPerSegment >= 2.
func ZDT3TrueFront(pointsPerSegment int) [][2]float64 {
	pts := make([][2]float64, 0, len(zdt3Segments)*pointsPerSegment)
	buf := make([]float64, pointsPerSegment)

	for _, seg := range zdt3Segments {
		for _, f1 := range floats.Span(buf, seg[0], seg[1]) {
			f2 := 1 - math.Sqrt(f1) - f1*math.Sin(10*math.Pi*f1)
			pts = append(pts, [2]float64{f1, f2})
		}
	}

	return pts
}

// SchafferN1TrueFront samples n points of the Schaffer N.1 front,
// parameterized by the Pareto set x ∈ [0, 2]: (x², (x-2)²).
//
// Contract: n >= 2.
func SchafferN1TrueFront(n int) [][2]float64 {
	xs := floats.Span(make([]float64, n), 0, 2)

	pts := make([][2]float64, n)
	for i, x := range xs {
		pts[i] = [2]float64{x * x, (x - 2) * (x - 2)}
	}

	return pts
}

// FonsecaFlemingTrueFront samples points of the Fonseca–Fleming front
// for problem size n by setting every variable to t ∈ [-1/√n, 1/√n]:
//
//	f1 = 1 - exp(-n·(t - 1/√n)²)
//	f2 = 1 - exp(-n·(t + 1/√n)²)
//
// Contract: points >= 2, n >= 1.
func FonsecaFlemingTrueFront(points, n int) [][2]float64 {
	invSqrtN := 1.0 / math.Sqrt(float64(n))
	ts := floats.Span(make([]float64, points), -invSqrtN, invSqrtN)

	pts := make([][2]float64, points)
	fn := float64(n)
	for i, t := range ts {
		s1 := fn * (t - invSqrtN) * (t - invSqrtN)
		s2 := fn * (t + invSqrtN) * (t + invSqrtN)
		pts[i] = [2]float64{1 - math.Exp(-s1), 1 - math.Exp(-s2)}
	}

	return pts
}

// KursaweApproxFront approximates the Kursawe front (no closed form)
// for problem size n by evaluating samples uniform points in [-5, 5]^n
// and keeping the non-dominated subset, sorted by f1. With exactly two
// objectives the filter is a sort-and-sweep skyline rather than the
// generic pairwise pass, so large sample counts stay cheap.
// Deterministic for a fixed seed; more samples give a tighter curve.
//
// Complexity: O(samples·n) evaluation + O(samples·log samples) filtering.
func KursaweApproxFront(n, samples int, seed int64) [][2]float64 {
	rng := rand.New(rand.NewSource(seed))
	eval := Kursawe(n)

	objs := make([][2]float64, 0, samples)
	x := make([]float64, n)
	for s := 0; s < samples; s++ {
		for i := range x {
			x[i] = -5.0 + 10.0*rng.Float64()
		}
		f := eval(x)
		objs = append(objs, [2]float64{f[0], f[1]})
	}

	// Skyline sweep: after sorting by (f1 asc, f2 asc), a point is
	// non-dominated iff its f2 strictly improves on everything before it.
	sort.Slice(objs, func(i, j int) bool {
		if objs[i][0] != objs[j][0] {
			return objs[i][0] < objs[j][0]
		}

		return objs[i][1] < objs[j][1]
	})

	pts := make([][2]float64, 0, 1024)
	bestF2 := math.Inf(1)
	for _, f := range objs {
		if f[1] < bestF2 {
			pts = append(pts, f)
			bestF2 = f[1]
		}
	}

	return pts
}
