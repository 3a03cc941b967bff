package construct

import (
	"github.com/thiagovscoelho/geometrycanvas/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// The controller is a small state machine. Its state is the active tool plus
// the number of points selected so far, and every reachable state has exactly
// one handler. A handler consumes one click and either updates the selection
// or completes the compound action and commits a batch.
//
//   line/0   --click-->  line/1      (hit or new point)
//   line/1   --click-->  line/0      (line committed unless it exists)
//   extend/0 --hit-->    extend/1
//   extend/1 --hit-->    extend/2    (must differ from the first)
//   extend/2 --click-->  extend/0    (extension committed)
//   circle/0 --hit-->    circle/1
//   circle/1 --hit-->    circle/0    (circle committed unless it exists)
//
// A click that hits nothing in a hit-only state leaves the state unchanged.
// Changing tools always drops back to selection size 0.

type state struct {
	tool     Tool
	selected int
}

type handler func(c *Controller, at geom.Vec)

var transitions = map[state]handler{
	{ToolLine, 0}:   (*Controller).lineStart,
	{ToolLine, 1}:   (*Controller).lineEnd,
	{ToolExtend, 0}: (*Controller).extendPick,
	{ToolExtend, 1}: (*Controller).extendPick,
	{ToolExtend, 2}: (*Controller).extendCommit,
	{ToolCircle, 0}: (*Controller).circleCenter,
	{ToolCircle, 1}: (*Controller).circleRim,
}

type Controller struct {
	store *Store
	tool  Tool
	opts  Options
}

func NewController(store *Store, opts Options) *Controller {
	return &Controller{store: store, tool: ToolLine, opts: opts.withDefaults()}
}

func (c *Controller) Store() *Store {
	return c.store
}

func (c *Controller) Tool() Tool {
	return c.tool
}

// SetTool switches tools. Any half-finished compound action is abandoned, even
// when switching to the tool that is already active.
func (c *Controller) SetTool(tool Tool) {
	if !tool.Valid() {
		panic("invalid tool")
	}
	c.tool = tool
	c.store.SetSelection()
}

func (c *Controller) state() state {
	return state{tool: c.tool, selected: len(c.store.selection)}
}

// Apply feeds one click at scene coordinate at, made with the given tool. If
// the tool differs from the active one, the switch happens first. The only
// error is an ErrRejected for an action that could not be completed, in which
// case the scene has not changed at all.
func (c *Controller) Apply(tool Tool, at geom.Vec) (err error) {
	defer func() {
		recoveredErr := HandleConstructPanicRecover(recover())
		if recoveredErr != nil {
			c.tracef("%s at (%g, %g): %v", tool, at.X, at.Y, recoveredErr)
			err = recoveredErr
		}
	}()

	if !tool.Valid() {
		fatalf("unknown tool %d", int(tool))
	}
	if tool != c.tool {
		c.SetTool(tool)
	}
	st := c.state()
	h, ok := transitions[st]
	if !ok {
		fatalf("no transition from %s with %d selected", st.tool, st.selected)
	}
	h(c, at)
	return nil
}

// Clear empties the scene. The active tool stays.
func (c *Controller) Clear() {
	c.store.Reset()
	c.tracef("cleared")
}

// The point a click lands on, if any.
func (c *Controller) hit(at geom.Vec) (Point, bool) {
	return c.store.NearbyPoint(at, c.opts.SnapRadius)
}

func (c *Controller) selected(i int) Point {
	return c.store.Point(c.store.selection[i])
}

func (c *Controller) lineStart(at geom.Vec) {
	if p, ok := c.hit(at); ok {
		c.store.SetSelection(p.ID)
		return
	}
	b := c.store.Begin()
	b.SetSelection(b.AddPoint(at, KindNone))
	c.commit(b, "line start")
}

func (c *Controller) lineEnd(at geom.Vec) {
	start := c.selected(0)
	b := c.store.Begin()
	b.SetSelection()

	// Clicking back on the start point does not snap to it; it makes a new
	// point right there instead.
	var end PointID
	if p, ok := c.hit(at); ok && p.ID != start.ID {
		end = p.ID
	} else {
		end = b.AddPoint(at, KindNone)
	}

	if c.store.LineExists(start.ID, end) {
		c.store.SetSelection()
		c.tracef("line %s–%s exists", start.Label, b.Point(end).Label)
		return
	}

	segment := geom.Segment{Start: start.Vec(), End: b.Point(end).Vec()}
	c.addIntersections(b, c.segmentCandidates(segment), nil)
	b.AddLine(Line{Start: start.ID, End: end})
	c.commit(b, "line")
}

func (c *Controller) extendPick(at geom.Vec) {
	p, ok := c.hit(at)
	if !ok {
		return
	}
	selection := c.store.Selection()
	if len(selection) == 1 && selection[0] == p.ID {
		return
	}
	c.store.SetSelection(append(selection, p.ID)...)
}

// The extension continues the ray from the first selected point through the
// second one. The click is projected onto that ray, and the new endpoint sits
// at the projected (signed) distance from the second point.
func (c *Controller) extendCommit(at geom.Vec) {
	first, second := c.selected(0), c.selected(1)

	direction := r2.Sub(first.Vec(), second.Vec())
	if r2.Norm(direction) == 0 {
		fatalf("cannot extend %s through %s: the points coincide", first.Label, second.Label)
	}
	// unit points back toward the first point, outward is the extension
	unit := r2.Unit(direction)
	outward := r2.Scale(-1, unit)

	// Signed: a click level with or behind the second point puts the endpoint
	// there, and no intersection passes the filter below.
	clickDistance := r2.Dot(r2.Sub(at, second.Vec()), outward)

	b := c.store.Begin()
	tip := r2.Sub(second.Vec(), r2.Scale(clickDistance, unit))
	end := b.AddPoint(tip, KindNone)

	along := func(p geom.Vec) bool {
		d := r2.Dot(r2.Sub(p, second.Vec()), outward)
		return d > 0 && d <= clickDistance
	}
	segment := geom.Segment{Start: second.Vec(), End: tip}
	c.addIntersections(b, c.segmentCandidates(segment), along)
	b.AddLine(Line{Start: second.ID, End: end})
	b.SetSelection()
	c.commit(b, "extension")
}

func (c *Controller) circleCenter(at geom.Vec) {
	if p, ok := c.hit(at); ok {
		c.store.SetSelection(p.ID)
	}
}

func (c *Controller) circleRim(at geom.Vec) {
	center := c.selected(0)
	rim, ok := c.hit(at)
	if !ok || rim.ID == center.ID {
		return
	}

	if c.store.CircleExists(center.ID, rim.ID, c.opts.RadiusTolerance) {
		c.store.SetSelection()
		c.tracef("circle around %s through %s exists", center.Label, rim.Label)
		return
	}

	circle := Circle{Center: center.ID, Rim: rim.ID}
	b := c.store.Begin()
	c.addIntersections(b, c.circleCandidates(c.store.Shape(circle)), nil)
	b.AddCircle(circle)
	b.SetSelection()
	c.commit(b, "circle")
}
