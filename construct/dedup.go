package construct

import (
	"math"

	"github.com/thiagovscoelho/geometrycanvas/geom"
)

// Default tolerances. Location checks use a box of DedupTolerance around the
// candidate; circle identity compares derived radii within RadiusTolerance.
const (
	DedupTolerance  = 0.1
	RadiusTolerance = 0.1
	SnapRadius      = 10
)

// There are two unrelated notions of "already there" and they must not be
// mixed up:
//
// - PointExists is about location. It answers "is there a point close enough
//   to this coordinate" and is used to drop duplicate intersection points.
// - LineExists and CircleExists are about identity. They compare point IDs,
//   so a line between two coincident but distinct points is a new line.

// PointExists reports whether any stored point lies within tol of at on both
// axes.
func (s *Store) PointExists(at geom.Vec, tol float64) bool {
	return pointNear(s.points, at, tol)
}

// LineExists reports whether a line joins exactly p and q, in either order.
func (s *Store) LineExists(p, q PointID) bool {
	for _, l := range s.lines {
		if l.Joins(p, q) {
			return true
		}
	}
	return false
}

// CircleExists reports whether a circle around exactly this center point has
// a radius within tol of the circle through rim. The rim point itself is not
// compared, so two rim points at the same distance describe the same circle.
func (s *Store) CircleExists(center, rim PointID, tol float64) bool {
	radius := geom.Distance(s.Point(center).Vec(), s.Point(rim).Vec())
	for _, c := range s.circles {
		if c.Center != center {
			continue
		}
		if math.Abs(s.Shape(c).Radius()-radius) < tol {
			return true
		}
	}
	return false
}

// NearbyPoint finds the first point, in creation order, whose distance to at
// is less than radius. This is how a click "hits" an existing point.
func (s *Store) NearbyPoint(at geom.Vec, radius float64) (Point, bool) {
	for _, p := range s.points {
		if geom.Distance(p.Vec(), at) < radius {
			return p, true
		}
	}
	return Point{}, false
}

// PointExists on a batch also sees the points staged so far. Two candidates
// that fall on the same spot within one action (a tangent pair of roots, or an
// intersection sitting on the new endpoint) become one point.
func (b *Batch) PointExists(at geom.Vec, tol float64) bool {
	return b.store.PointExists(at, tol) || pointNear(b.points, at, tol)
}

func pointNear(points []Point, at geom.Vec, tol float64) bool {
	for _, p := range points {
		if geom.Near(p.Vec(), at, tol) {
			return true
		}
	}
	return false
}
