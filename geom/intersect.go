package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// SegmentSegment finds where two segments cross. Touching at an endpoint
// counts. Parallel and coincident segments never intersect.
func SegmentSegment(s1, s2 Segment) (Vec, bool) {
	x1, y1 := s1.Start.X, s1.Start.Y
	x2, y2 := s1.End.X, s1.End.Y
	x3, y3 := s2.Start.X, s2.Start.Y
	x4, y4 := s2.End.X, s2.End.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < ParallelTolerance {
		return Vec{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vec{}, false
	}
	return s1.At(t), true
}

// SegmentCircle returns the points where the segment meets the circle's rim.
// A tangent segment yields the same coordinate twice; collapsing duplicates is
// left to the caller.
func SegmentCircle(s Segment, c Circle) []Vec {
	r := c.Radius()

	// Work relative to the center so the circle equation is x² + y² = r²
	p := r2.Sub(s.Start, c.Center)
	d := s.Delta()

	a := d.X*d.X + d.Y*d.Y
	if a == 0 {
		// A degenerate segment has no direction to solve along
		return nil
	}
	b := 2 * (p.X*d.X + p.Y*d.Y)
	cc := p.X*p.X + p.Y*p.Y - r*r

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil
	}

	root := math.Sqrt(discriminant)
	var result []Vec
	for _, t := range [2]float64{(-b + root) / (2 * a), (-b - root) / (2 * a)} {
		if t >= 0 && t <= 1 {
			result = append(result, s.At(t))
		}
	}
	return result
}

// CircleCircle returns the two points where the rims of two circles meet. The
// points coincide when the circles are tangent. Circles that are apart, nested
// without touching, or exactly concentric with exactly equal radii have no
// intersection. Only the exact concentric case is caught; two circles that
// are nearly identical still produce a pair of (numerically noisy) points.
func CircleCircle(c1, c2 Circle) []Vec {
	ra := c1.Radius()
	rb := c2.Radius()
	d := Distance(c1.Center, c2.Center)

	if d > ra+rb || d < math.Abs(ra-rb) || (d == 0 && ra == rb) {
		return nil
	}

	// a is the distance from c1's center to the chord midpoint along the line
	// of centers, h the half chord length perpendicular to it.
	a := (ra*ra - rb*rb + d*d) / (2 * d)
	h2 := ra*ra - a*a
	if h2 < 0 {
		// Rounding on a tangent pair can push this just below zero
		h2 = 0
	}
	h := math.Sqrt(h2)

	along := r2.Scale(1/d, r2.Sub(c2.Center, c1.Center))
	mid := r2.Add(c1.Center, r2.Scale(a, along))
	offset := Vec{X: h * along.Y, Y: h * along.X}

	return []Vec{
		{X: mid.X + offset.X, Y: mid.Y - offset.Y},
		{X: mid.X - offset.X, Y: mid.Y + offset.Y},
	}
}
