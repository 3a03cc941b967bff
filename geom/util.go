package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Two segments whose direction cross product is smaller than this are treated
// as parallel. Coincident segments fall into the same bucket; they are never
// detected separately.
const ParallelTolerance = 1e-4

func Distance(a, b Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Near reports whether both coordinates of a and b differ by less than tol.
// This is a box test, not a Euclidean one.
func Near(a, b Vec, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}

// Less orders coordinates left to right, then top to bottom. Comparisons are
// exact so that the ordering is total and repeatable.
func Less(a, b Vec) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
