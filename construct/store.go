package construct

import (
	"fmt"

	"github.com/thiagovscoelho/geometrycanvas/geom"
)

// Store owns every primitive in the scene. All collections are append-only;
// the only way anything disappears is Reset. The store has a single writer
// (the Controller) and is not safe for concurrent use.
type Store struct {
	points    []Point
	lines     []Line
	circles   []Circle
	selection []PointID
	cursor    LabelCursor
}

func NewStore() *Store {
	return &Store{cursor: InitialCursor}
}

// Reset empties the scene and rewinds the label cursor. Every PointID handed
// out before is invalid afterwards.
func (s *Store) Reset() {
	s.points = nil
	s.lines = nil
	s.circles = nil
	s.selection = nil
	s.cursor = InitialCursor
}

// AddPoint stores a new point and gives it the next label.
func (s *Store) AddPoint(at geom.Vec, kind Kind) Point {
	var label string
	label, s.cursor = s.cursor.Next()
	p := Point{ID: PointID(len(s.points)), X: at.X, Y: at.Y, Label: label, Kind: kind}
	s.points = append(s.points, p)
	return p
}

func (s *Store) AddLine(l Line) {
	s.mustHave(l.Start, l.End)
	s.lines = append(s.lines, l)
}

func (s *Store) AddCircle(c Circle) {
	s.mustHave(c.Center, c.Rim)
	s.circles = append(s.circles, c)
}

func (s *Store) SetSelection(ids ...PointID) {
	s.mustHave(ids...)
	s.selection = append([]PointID(nil), ids...)
}

func (s *Store) Selection() []PointID {
	return append([]PointID(nil), s.selection...)
}

func (s *Store) Selected(id PointID) bool {
	for _, sel := range s.selection {
		if sel == id {
			return true
		}
	}
	return false
}

func (s *Store) Cursor() LabelCursor {
	return s.cursor
}

func (s *Store) Point(id PointID) Point {
	s.mustHave(id)
	return s.points[id]
}

func (s *Store) Points() []Point {
	return append([]Point(nil), s.points...)
}

func (s *Store) Lines() []Line {
	return append([]Line(nil), s.lines...)
}

func (s *Store) Circles() []Circle {
	return append([]Circle(nil), s.circles...)
}

// The coordinates of a line's endpoints.
func (s *Store) Segment(l Line) geom.Segment {
	return geom.Segment{Start: s.Point(l.Start).Vec(), End: s.Point(l.End).Vec()}
}

// The coordinates of a circle's center and rim point.
func (s *Store) Shape(c Circle) geom.Circle {
	return geom.Circle{Center: s.Point(c.Center).Vec(), Rim: s.Point(c.Rim).Vec()}
}

func (s *Store) has(id PointID) bool {
	return id >= 0 && int(id) < len(s.points)
}

// A dangling reference is a programming error, not a user error.
func (s *Store) mustHave(ids ...PointID) {
	for _, id := range ids {
		if !s.has(id) {
			panic(fmt.Sprintf("point %d does not exist (store has %d points)", id, len(s.points)))
		}
	}
}
