// Package archive - global front extraction.
//
// The global front is a derived, read-only view: the set of archived
// individuals not dominated by any other archived individual, taken
// across all cells. It is recomputed on demand and never persisted;
// cell-local antichains do not imply global non-dominance, so a full
// pairwise filter runs here.
package archive

import (
	"sort"

	"github.com/katalvlaran/mome/core"
	"github.com/katalvlaran/mome/pareto"
)

// GlobalFront returns every archived individual not dominated by any
// other archived individual. The result is a fresh snapshot slice; the
// individuals themselves are shared and must be treated as immutable.
//
// Complexity: O(n²·M) over n archived individuals.
func (a *Archive) GlobalFront() []*core.Individual {
	all := a.All()

	nd := make([]*core.Individual, 0, len(all))
	for i, cand := range all {
		dominated := false
		for j, other := range all {
			if i == j {
				continue
			}
			if pareto.Dominates(other.Objectives, cand.Objectives) {
				dominated = true
				break
			}
		}
		if !dominated {
			nd = append(nd, cand)
		}
	}

	return nd
}

// FrontPoints returns the global front as (f1, f2) objective pairs
// sorted by f1 — the reporting artifact consumed by quality metrics,
// CSV export and plotting. The first two objectives are reported; a
// bi-objective run reports everything.
//
// Complexity: O(n²·M) extraction + O(f·log f) sort.
func (a *Archive) FrontPoints() [][2]float64 {
	front := a.GlobalFront()

	pts := make([][2]float64, 0, len(front))
	for _, ind := range front {
		var p [2]float64
		p[0] = ind.Objectives[0]
		if len(ind.Objectives) > 1 {
			p[1] = ind.Objectives[1]
		}
		pts = append(pts, p)
	}

	// All() is grid-ordered; reporting wants objective order instead.
	sort.Slice(pts, func(i, j int) bool {
		if pts[i][0] != pts[j][0] {
			return pts[i][0] < pts[j][0]
		}
		return pts[i][1] < pts[j][1]
	})

	return pts
}
