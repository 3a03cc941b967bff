package construct

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thiagovscoelho/geometrycanvas/geom"
)

// Helpers

func newController() *Controller {
	return NewController(NewStore(), DefaultOptions())
}

func click(t *testing.T, c *Controller, tool Tool, x, y float64) {
	t.Helper()
	require.NoError(t, c.Apply(tool, geom.Vec{X: x, Y: y}))
}

// Drop a lone point: start a line and abandon it.
func place(t *testing.T, c *Controller, x, y float64) {
	t.Helper()
	click(t, c, ToolLine, x, y)
	c.SetTool(ToolLine)
}

func labels(c *Controller) []string {
	var result []string
	for _, p := range c.Store().Points() {
		result = append(result, p.Label)
	}
	return result
}

func pointAt(t *testing.T, c *Controller, label string) Point {
	t.Helper()
	p, ok := c.Store().Snapshot().Lookup(label)
	require.True(t, ok, "no point %s", label)
	return p.Point
}

func assertPoint(t *testing.T, c *Controller, label string, x, y float64) {
	t.Helper()
	p := pointAt(t, c, label)
	assert.InDelta(t, x, p.X, 1e-3, "x of %s", label)
	assert.InDelta(t, y, p.Y, 1e-3, "y of %s", label)
}

func TestLineTool(t *testing.T) {
	t.Run("crossing lines", func(t *testing.T) {
		c := newController()
		click(t, c, ToolLine, 100, 100)
		assert.Equal(t, []string{"A"}, labels(c))
		assert.Len(t, c.Store().Selection(), 1)

		click(t, c, ToolLine, 300, 100)
		assert.Equal(t, []string{"A", "B"}, labels(c))
		assert.Equal(t, []Line{{Start: 0, End: 1}}, c.Store().Lines())
		assert.Empty(t, c.Store().Selection())

		click(t, c, ToolLine, 200, 50)
		click(t, c, ToolLine, 200, 150)
		assert.Equal(t, []string{"A", "B", "C", "D", "E"}, labels(c))
		assertPoint(t, c, "C", 200, 50)
		assertPoint(t, c, "D", 200, 150)
		assertPoint(t, c, "E", 200, 100)
		assert.Equal(t, KindLineLine, pointAt(t, c, "E").Kind)

		lines := c.Store().Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, Line{Start: 2, End: 3}, lines[1], "the intersection is not linked into either line")
	})

	t.Run("existing line is not added twice", func(t *testing.T) {
		for _, order := range [][2]geom.Vec{
			{{X: 100, Y: 100}, {X: 300, Y: 100}},
			{{X: 300, Y: 100}, {X: 100, Y: 100}},
		} {
			t.Run(fmt.Sprintf("from %v", order[0]), func(t *testing.T) {
				c := newController()
				click(t, c, ToolLine, 100, 100)
				click(t, c, ToolLine, 300, 100)
				cursor := c.Store().Cursor()

				// Clicks land within snapping distance of A and B
				click(t, c, ToolLine, order[0].X+3, order[0].Y-2)
				click(t, c, ToolLine, order[1].X-1, order[1].Y+4)

				assert.Len(t, c.Store().Lines(), 1)
				assert.Len(t, c.Store().Points(), 2)
				assert.Equal(t, cursor, c.Store().Cursor(), "no label was allocated")
				assert.Empty(t, c.Store().Selection())
			})
		}
	})

	t.Run("clicking back on the start makes a new point", func(t *testing.T) {
		c := newController()
		click(t, c, ToolLine, 100, 100)
		click(t, c, ToolLine, 105, 100)
		assert.Equal(t, []string{"A", "B"}, labels(c))
		assertPoint(t, c, "B", 105, 100)
		assert.Equal(t, []Line{{Start: 0, End: 1}}, c.Store().Lines())
	})

	t.Run("snaps to an existing end point", func(t *testing.T) {
		c := newController()
		place(t, c, 300, 300)
		click(t, c, ToolLine, 100, 100)
		click(t, c, ToolLine, 296, 305)
		assert.Equal(t, []string{"A", "B"}, labels(c))
		assert.Equal(t, []Line{{Start: 1, End: 0}}, c.Store().Lines())
	})

	t.Run("intersections are labeled left to right", func(t *testing.T) {
		c := newController()
		for _, x := range []float64{300, 100, 200} {
			click(t, c, ToolLine, x, 0)
			click(t, c, ToolLine, x, 200)
		}
		click(t, c, ToolLine, 0, 100)
		click(t, c, ToolLine, 400, 100)

		assertPoint(t, c, "I", 100, 100)
		assertPoint(t, c, "J", 200, 100)
		assertPoint(t, c, "K", 300, 100)
	})

	t.Run("ties on x are broken top to bottom", func(t *testing.T) {
		c := newController()
		// Two horizontal lines, then one vertical line across both
		click(t, c, ToolLine, 0, 200)
		click(t, c, ToolLine, 100, 200)
		click(t, c, ToolLine, 0, 50)
		click(t, c, ToolLine, 100, 50)
		click(t, c, ToolLine, 50, 0)
		click(t, c, ToolLine, 50, 300)

		assertPoint(t, c, "G", 50, 50)
		assertPoint(t, c, "H", 50, 200)
	})

	t.Run("no duplicate point near an existing one", func(t *testing.T) {
		c := newController()
		click(t, c, ToolLine, 100, 100)
		click(t, c, ToolLine, 300, 100)
		click(t, c, ToolLine, 200, 50)
		click(t, c, ToolLine, 200, 150)

		// This line passes through E, where it crosses both existing lines
		click(t, c, ToolLine, 150, 60)
		click(t, c, ToolLine, 250, 140)
		assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G"}, labels(c))
		assert.Len(t, c.Store().Lines(), 3)
	})

	t.Run("crossing a circle", func(t *testing.T) {
		c := newController()
		place(t, c, 200, 200)
		place(t, c, 250, 200)
		click(t, c, ToolCircle, 200, 200)
		click(t, c, ToolCircle, 250, 200)

		click(t, c, ToolLine, 100, 200)
		click(t, c, ToolLine, 300, 200)

		// (250, 200) is already B, so only the left crossing is new
		assert.Equal(t, []string{"A", "B", "C", "D", "E"}, labels(c))
		assertPoint(t, c, "E", 150, 200)
		assert.Equal(t, KindLineCircle, pointAt(t, c, "E").Kind)
	})

	t.Run("tangent circle gives one point", func(t *testing.T) {
		c := newController()
		click(t, c, ToolLine, 0, 100)
		click(t, c, ToolLine, 200, 100)
		place(t, c, 100, 50)
		place(t, c, 100, 0)
		click(t, c, ToolCircle, 100, 50)
		click(t, c, ToolCircle, 100, 0)

		assert.Equal(t, []string{"A", "B", "C", "D", "E"}, labels(c))
		assertPoint(t, c, "E", 100, 100)
	})
}

func TestExtendTool(t *testing.T) {
	setup := func(t *testing.T) *Controller {
		c := newController()
		click(t, c, ToolLine, 100, 100)
		click(t, c, ToolLine, 200, 100)
		click(t, c, ToolLine, 250, 50)
		click(t, c, ToolLine, 250, 150)
		return c
	}

	t.Run("extends beyond the second point", func(t *testing.T) {
		c := setup(t)
		click(t, c, ToolExtend, 101, 101)
		click(t, c, ToolExtend, 199, 99)
		assert.Len(t, c.Store().Selection(), 2)

		// Only the projection of the click onto the ray matters
		click(t, c, ToolExtend, 300, 130)
		assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, labels(c))
		assertPoint(t, c, "E", 300, 100)
		assertPoint(t, c, "F", 250, 100)
		assert.Equal(t, KindNone, pointAt(t, c, "E").Kind)
		assert.Equal(t, KindLineLine, pointAt(t, c, "F").Kind)

		lines := c.Store().Lines()
		require.Len(t, lines, 3)
		assert.Equal(t, Line{Start: 1, End: 4}, lines[2])
		assert.Empty(t, c.Store().Selection())
	})

	t.Run("ignores crossings past the click", func(t *testing.T) {
		c := setup(t)
		click(t, c, ToolExtend, 100, 100)
		click(t, c, ToolExtend, 200, 100)
		click(t, c, ToolExtend, 240, 0)
		assert.Equal(t, []string{"A", "B", "C", "D", "E"}, labels(c))
		assertPoint(t, c, "E", 240, 100)
	})

	t.Run("selection needs existing points", func(t *testing.T) {
		c := setup(t)
		click(t, c, ToolExtend, 500, 500)
		assert.Empty(t, c.Store().Selection())
		click(t, c, ToolExtend, 100, 100)
		click(t, c, ToolExtend, 102, 100)
		assert.Len(t, c.Store().Selection(), 1, "the second point must differ from the first")
		click(t, c, ToolExtend, 500, 500)
		assert.Len(t, c.Store().Selection(), 1)
		assert.Len(t, c.Store().Points(), 4)
	})

	t.Run("click behind the second point", func(t *testing.T) {
		c := setup(t)
		click(t, c, ToolExtend, 100, 100)
		click(t, c, ToolExtend, 200, 100)

		// The signed distance is negative, so the endpoint lands between A
		// and B and nothing along the way counts as an intersection.
		click(t, c, ToolExtend, 150, 100)
		assert.Equal(t, []string{"A", "B", "C", "D", "E"}, labels(c))
		assertPoint(t, c, "E", 150, 100)
		lines := c.Store().Lines()
		require.Len(t, lines, 3)
		assert.Equal(t, Line{Start: 1, End: 4}, lines[2])
		assert.Empty(t, c.Store().Selection())
	})

	t.Run("click level with the second point", func(t *testing.T) {
		c := setup(t)
		click(t, c, ToolExtend, 100, 100)
		click(t, c, ToolExtend, 200, 100)

		click(t, c, ToolExtend, 200, 300)
		assert.Equal(t, []string{"A", "B", "C", "D", "E"}, labels(c))
		assertPoint(t, c, "E", 200, 100)
		lines := c.Store().Lines()
		require.Len(t, lines, 3)
		assert.Equal(t, Line{Start: 1, End: 4}, lines[2])
		assert.Empty(t, c.Store().Selection())
	})

	t.Run("intersections along the extension", func(t *testing.T) {
		c := newController()
		click(t, c, ToolLine, 100, 100)
		click(t, c, ToolLine, 200, 100)
		// Verticals at 300 and 250 lie ahead; the one at 200 runs through B
		for _, x := range []float64{300, 250, 200} {
			click(t, c, ToolLine, x, 50)
			click(t, c, ToolLine, x, 150)
		}
		require.Len(t, c.Store().Points(), 8)

		click(t, c, ToolExtend, 100, 100)
		click(t, c, ToolExtend, 200, 100)
		click(t, c, ToolExtend, 350, 120)

		// Endpoint first, then crossings in spatial order. The crossing at B
		// itself is not part of the extension.
		assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}, labels(c))
		assertPoint(t, c, "I", 350, 100)
		assertPoint(t, c, "J", 250, 100)
		assertPoint(t, c, "K", 300, 100)
		assert.Equal(t, KindLineLine, pointAt(t, c, "J").Kind)
		assert.Equal(t, KindLineLine, pointAt(t, c, "K").Kind)
	})

	t.Run("coincident points are rejected", func(t *testing.T) {
		c := newController()
		s := c.Store()
		a := s.AddPoint(geom.Vec{X: 10, Y: 10}, KindNone)
		b := s.AddPoint(geom.Vec{X: 10, Y: 10}, KindNone)
		c.SetTool(ToolExtend)
		s.SetSelection(a.ID, b.ID)

		err := c.Apply(ToolExtend, geom.Vec{X: 50, Y: 50})
		assert.True(t, errors.Is(err, ErrRejected))
		assert.Len(t, s.Points(), 2)
		assert.Empty(t, s.Lines())
		assert.Equal(t, "C", s.Cursor().String())
	})
}

func TestCircleTool(t *testing.T) {
	t.Run("two circles crossing", func(t *testing.T) {
		c := newController()
		place(t, c, 100, 100)
		place(t, c, 100, 80)
		place(t, c, 130, 100)
		place(t, c, 130, 115)

		click(t, c, ToolCircle, 100, 100)
		click(t, c, ToolCircle, 100, 80)
		assert.Len(t, c.Store().Circles(), 1)
		assert.Len(t, c.Store().Points(), 4)

		click(t, c, ToolCircle, 130, 100)
		click(t, c, ToolCircle, 130, 115)
		assert.Len(t, c.Store().Circles(), 2)
		assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, labels(c))

		e, f := pointAt(t, c, "E"), pointAt(t, c, "F")
		assert.Less(t, e.Y, f.Y)
		for _, p := range []Point{e, f} {
			assert.Equal(t, KindCircleCircle, p.Kind)
			assert.InDelta(t, 20, geom.Distance(p.Vec(), geom.Vec{X: 100, Y: 100}), 1e-3)
			assert.InDelta(t, 15, geom.Distance(p.Vec(), geom.Vec{X: 130, Y: 100}), 1e-3)
		}
	})

	t.Run("crossing a line", func(t *testing.T) {
		c := newController()
		click(t, c, ToolLine, 0, 100)
		click(t, c, ToolLine, 400, 100)
		place(t, c, 200, 100)
		place(t, c, 200, 40)

		click(t, c, ToolCircle, 200, 100)
		click(t, c, ToolCircle, 200, 40)
		assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, labels(c))
		assertPoint(t, c, "E", 140, 100)
		assertPoint(t, c, "F", 260, 100)
		assert.Equal(t, KindLineCircle, pointAt(t, c, "E").Kind)
		assert.Equal(t, KindLineCircle, pointAt(t, c, "F").Kind)
	})

	t.Run("crossing a circle and a line at once", func(t *testing.T) {
		c := newController()
		click(t, c, ToolLine, 0, 100)
		click(t, c, ToolLine, 400, 100)
		place(t, c, 300, 100)
		place(t, c, 300, 40)
		click(t, c, ToolCircle, 300, 100)
		click(t, c, ToolCircle, 300, 40)
		// That circle crossed the line at E and F
		require.Len(t, c.Store().Points(), 6)

		place(t, c, 200, 100)
		place(t, c, 200, 40)
		click(t, c, ToolCircle, 200, 100)
		click(t, c, ToolCircle, 200, 40)

		// Both kinds of crossing share one left to right, top to bottom order
		assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}, labels(c))
		assertPoint(t, c, "I", 140, 100)
		assertPoint(t, c, "J", 250, 100-math.Sqrt(1100))
		assertPoint(t, c, "K", 250, 100+math.Sqrt(1100))
		assertPoint(t, c, "L", 260, 100)
		assert.Equal(t, KindLineCircle, pointAt(t, c, "I").Kind)
		assert.Equal(t, KindCircleCircle, pointAt(t, c, "J").Kind)
		assert.Equal(t, KindCircleCircle, pointAt(t, c, "K").Kind)
		assert.Equal(t, KindLineCircle, pointAt(t, c, "L").Kind)
	})

	t.Run("concentric circles with equal radius", func(t *testing.T) {
		c := newController()
		place(t, c, 100, 100)
		place(t, c, 150, 100)
		place(t, c, 100, 150)

		click(t, c, ToolCircle, 100, 100)
		click(t, c, ToolCircle, 150, 100)
		// Same center and radius through a different rim point
		click(t, c, ToolCircle, 100, 100)
		click(t, c, ToolCircle, 100, 150)

		assert.Len(t, c.Store().Circles(), 1, "the second circle already exists")
		assert.Len(t, c.Store().Points(), 3)
		assert.Empty(t, c.Store().Selection())
	})

	t.Run("needs existing points", func(t *testing.T) {
		c := newController()
		place(t, c, 100, 100)

		click(t, c, ToolCircle, 300, 300)
		assert.Empty(t, c.Store().Selection())
		click(t, c, ToolCircle, 100, 100)
		click(t, c, ToolCircle, 300, 300)
		assert.Len(t, c.Store().Selection(), 1)
		click(t, c, ToolCircle, 101, 101)
		assert.Len(t, c.Store().Selection(), 1, "the rim must differ from the center")
		assert.Empty(t, c.Store().Circles())
		assert.Len(t, c.Store().Points(), 1)
	})
}

func TestToolSwitch(t *testing.T) {
	c := newController()
	click(t, c, ToolLine, 100, 100)
	require.Len(t, c.Store().Selection(), 1)

	click(t, c, ToolCircle, 400, 400)
	assert.Equal(t, ToolCircle, c.Tool())
	assert.Empty(t, c.Store().Selection(), "the pending line was abandoned")
	assert.Empty(t, c.Store().Lines())

	c.SetTool(ToolCircle)
	click(t, c, ToolCircle, 100, 100)
	assert.Len(t, c.Store().Selection(), 1)
	c.SetTool(ToolCircle)
	assert.Empty(t, c.Store().Selection(), "setting the same tool also resets")
}

func TestApplyUnknownTool(t *testing.T) {
	c := newController()
	err := c.Apply(Tool(42), geom.Vec{})
	assert.True(t, errors.Is(err, ErrRejected))
	assert.Equal(t, ToolLine, c.Tool())
}

func TestClear(t *testing.T) {
	c := newController()
	click(t, c, ToolLine, 100, 100)
	click(t, c, ToolLine, 300, 100)
	click(t, c, ToolExtend, 100, 100)

	c.Clear()
	snap := c.Store().Snapshot()
	assert.Empty(t, snap.Points)
	assert.Empty(t, snap.Lines)
	assert.Empty(t, snap.Selection)
	assert.Equal(t, ToolExtend, c.Tool())

	click(t, c, ToolLine, 10, 10)
	assert.Equal(t, []string{"A"}, labels(c))
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = log.New(&buf, "", 0)
	c := NewController(NewStore(), opts)

	click(t, c, ToolLine, 100, 100)
	click(t, c, ToolLine, 300, 100)
	assert.Contains(t, buf.String(), "line start: +1 points")
	assert.Contains(t, buf.String(), "line: +1 points")
	assert.Contains(t, buf.String(), "+1 lines +0 circles")
}

func TestTransitionsCoverEveryState(t *testing.T) {
	limits := map[Tool]int{ToolLine: 1, ToolExtend: 2, ToolCircle: 1}
	for _, tool := range Tools() {
		for n := 0; n <= limits[tool]; n++ {
			_, ok := transitions[state{tool, n}]
			assert.True(t, ok, "%s/%d", tool, n)
		}
	}
	assert.Len(t, transitions, 7)
}
