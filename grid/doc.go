// Package grid maps continuous behavior descriptors onto a discrete
// 2D grid of cells.
//
// A MAP-Elites archive partitions behavior space into bins; this
// package owns the binning arithmetic and the Cell key type:
//
//   - BinIndex — clamped linear binning of one descriptor value.
//   - Cell     — comparable (X, Y) bin coordinate, usable as a map key.
//   - Indexer  — validated (bounds, resolution) pair that derives the
//     Cell of a genome from its first two components.
//
// Out-of-range descriptor values are clamped to the boundary bins
// rather than rejected: the indexer never errors on finite input.
// A 1-D genome degrades to a single-row grid by substituting 0.0 for
// the missing second descriptor.
package grid
