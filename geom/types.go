package geom

import "gonum.org/v1/gonum/spatial/r2"

// Vec is a coordinate in the construction plane. Y grows downward, the same
// way pointer coordinates do on a drawing surface.
type Vec = r2.Vec

type Segment struct {
	Start Vec
	End   Vec
}

// A circle is defined by its center and any point on its rim. The radius is
// always derived from the two, so moving either point can never leave a
// stale radius behind.
type Circle struct {
	Center Vec
	Rim    Vec
}

func (c Circle) Radius() float64 {
	return Distance(c.Center, c.Rim)
}

func (s Segment) Delta() Vec {
	return r2.Sub(s.End, s.Start)
}

// Point along the segment at parameter t, where 0 is the start and 1 is the end.
func (s Segment) At(t float64) Vec {
	return r2.Add(s.Start, r2.Scale(t, s.Delta()))
}
