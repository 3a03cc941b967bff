package construct

import "github.com/thiagovscoelho/geometrycanvas/geom"

// A Snapshot is a read-only copy of the scene for whoever draws it. Nothing in
// it aliases the store.
type Snapshot struct {
	Points    []PointView
	Lines     []LineView
	Circles   []CircleView
	Selection []PointID // in the order the points were picked
	Cursor    LabelCursor
}

type PointView struct {
	Point
	Selected bool
}

type LineView struct {
	Line    Line
	Segment geom.Segment
}

type CircleView struct {
	Circle Circle
	Shape  geom.Circle
}

func (c CircleView) Radius() float64 {
	return c.Shape.Radius()
}

func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Points:    make([]PointView, len(s.points)),
		Lines:     make([]LineView, len(s.lines)),
		Circles:   make([]CircleView, len(s.circles)),
		Selection: s.Selection(),
		Cursor:    s.cursor,
	}
	for i, p := range s.points {
		snap.Points[i] = PointView{Point: p, Selected: s.Selected(p.ID)}
	}
	for i, l := range s.lines {
		snap.Lines[i] = LineView{Line: l, Segment: s.Segment(l)}
	}
	for i, c := range s.circles {
		snap.Circles[i] = CircleView{Circle: c, Shape: s.Shape(c)}
	}
	return snap
}

// Find a point by label. Labels are unique, so there is at most one.
func (snap Snapshot) Lookup(label string) (PointView, bool) {
	for _, p := range snap.Points {
		if p.Label == label {
			return p, true
		}
	}
	return PointView{}, false
}
