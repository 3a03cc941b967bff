// Package construct holds the scene (points, lines, circles, selection) and
// the tool controller that turns clicks into changes to it. Changes are staged
// in a Batch and committed all at once, so a rejected action never leaves a
// partial construction behind.
package construct

import (
	"fmt"

	"github.com/thiagovscoelho/geometrycanvas/geom"
)

// Points are identified by their index in the store's append-only point list.
// Lines, circles and the selection refer to points by ID only. Two points
// with identical coordinates are still different objects; "same location" is
// a separate, tolerance based question (see PointExists).
type PointID int

// Which intersection produced a point. This is metadata for display only; no
// geometry decision looks at it.
type Kind int

const (
	KindNone Kind = iota
	KindLineLine
	KindLineCircle
	KindCircleCircle
)

var kindNames = [...]string{"", "line-line", "line-circle", "circle-circle"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

type Point struct {
	ID    PointID
	X, Y  float64
	Label string
	Kind  Kind
}

func (p Point) Vec() geom.Vec {
	return geom.Vec{X: p.X, Y: p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("%s(%g, %g)", p.Label, p.X, p.Y)
}

// A line segment between two stored points. Lines are undirected as far as
// existence goes: A–B and B–A are the same line.
type Line struct {
	Start, End PointID
}

func (l Line) Joins(p, q PointID) bool {
	return (l.Start == p && l.End == q) || (l.Start == q && l.End == p)
}

// A circle through Rim around Center. There is deliberately no radius field.
type Circle struct {
	Center, Rim PointID
}
