package construct

import (
	"fmt"

	"github.com/thiagovscoelho/geometrycanvas/geom"
)

// A Batch stages everything one action changes so that it lands in the store
// at once. Points added to a batch already have their final IDs and labels;
// the batch carries its own copy of the label cursor, and the store only
// adopts it on Commit. Dropping a batch therefore costs nothing, not even a
// label.
type Batch struct {
	store     *Store
	base      int // len(store.points) when the batch was opened
	cursor    LabelCursor
	points    []Point
	lines     []Line
	circles   []Circle
	selection []PointID
	selects   bool // replace the selection on commit (nil selection clears it)
}

func (s *Store) Begin() *Batch {
	return &Batch{store: s, base: len(s.points), cursor: s.cursor}
}

// Commit applies a batch. A batch can only be committed to the store that
// opened it, and only if nothing else was written in between.
func (s *Store) Commit(b *Batch) {
	if b.store != s {
		panic("batch belongs to a different store")
	}
	if b.base != len(s.points) {
		panic(fmt.Sprintf("store changed under batch (opened at %d points, now %d)", b.base, len(s.points)))
	}
	s.points = append(s.points, b.points...)
	s.lines = append(s.lines, b.lines...)
	s.circles = append(s.circles, b.circles...)
	s.cursor = b.cursor
	if b.selects {
		s.selection = b.selection
	}
	// A committed batch must not be reused
	b.store = nil
}

func (b *Batch) AddPoint(at geom.Vec, kind Kind) PointID {
	var label string
	label, b.cursor = b.cursor.Next()
	id := PointID(b.base + len(b.points))
	b.points = append(b.points, Point{ID: id, X: at.X, Y: at.Y, Label: label, Kind: kind})
	return id
}

func (b *Batch) AddLine(l Line) {
	b.mustHave(l.Start, l.End)
	b.lines = append(b.lines, l)
}

func (b *Batch) AddCircle(c Circle) {
	b.mustHave(c.Center, c.Rim)
	b.circles = append(b.circles, c)
}

func (b *Batch) SetSelection(ids ...PointID) {
	b.mustHave(ids...)
	b.selection = append([]PointID(nil), ids...)
	b.selects = true
}

// Point resolves an ID against the store and the staged points.
func (b *Batch) Point(id PointID) Point {
	b.mustHave(id)
	if int(id) < b.base {
		return b.store.points[id]
	}
	return b.points[int(id)-b.base]
}

// Staged points, in label order.
func (b *Batch) Points() []Point {
	return append([]Point(nil), b.points...)
}

func (b *Batch) Lines() []Line {
	return append([]Line(nil), b.lines...)
}

func (b *Batch) Circles() []Circle {
	return append([]Circle(nil), b.circles...)
}

func (b *Batch) mustHave(ids ...PointID) {
	for _, id := range ids {
		if id < 0 || int(id) >= b.base+len(b.points) {
			panic(fmt.Sprintf("point %d does not exist (batch sees %d points)", id, b.base+len(b.points)))
		}
	}
}
