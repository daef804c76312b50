// Package viz renders fronts produced by a run as image files: the
// true (reference) front as a line overlaid with the found global front
// as a scatter. It is a presentation-only consumer of the archive's
// reporting output and never touches archive internals.
package viz
