// A geometric construction canvas for Go.
//
// Clicks made with one of three tools (line, extend, circle) build up a scene
// of labeled points, line segments and circles. Every time a line or circle is
// added, its intersections with everything already on the canvas become new
// labeled points, so later clicks can snap to them.
//
// Canvas is safe for concurrent use. For lower level access, see the
// construct package.
package geometrycanvas

import (
	"sync"

	"github.com/thiagovscoelho/geometrycanvas/construct"
	"github.com/thiagovscoelho/geometrycanvas/geom"
)

type Tool = construct.Tool
type Options = construct.Options
type Snapshot = construct.Snapshot
type Point = construct.Point

const (
	ToolLine   = construct.ToolLine
	ToolExtend = construct.ToolExtend
	ToolCircle = construct.ToolCircle
)

var ErrRejected = construct.ErrRejected

type Canvas struct {
	mu         sync.Mutex
	controller *construct.Controller
}

func New(opts Options) *Canvas {
	return &Canvas{controller: construct.NewController(construct.NewStore(), opts)}
}

// Apply a click at (x, y) with the given tool. The returned error, if any,
// wraps ErrRejected, and the scene is unchanged.
func (c *Canvas) ApplyAction(tool Tool, x, y float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller.Apply(tool, geom.Vec{X: x, Y: y})
}

func (c *Canvas) SetTool(tool Tool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller.SetTool(tool)
}

func (c *Canvas) Tool() Tool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller.Tool()
}

func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller.Clear()
}

func (c *Canvas) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller.Store().Snapshot()
}
