package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/thiagovscoelho/geometrycanvas/construct"
)

// Write the scene as SVG. The SVG canvas works in whole pixels, so every
// coordinate is rounded.
func WriteSVG(w io.Writer, snap construct.Snapshot, opts Options) {
	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:"+hex(opts.Background))

	stroke := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", hex(opts.ShapeColor), opts.LineWidth)
	for _, l := range snap.Lines {
		canvas.Line(round(l.Segment.Start.X), round(l.Segment.Start.Y),
			round(l.Segment.End.X), round(l.Segment.End.Y), stroke)
	}
	for _, circle := range snap.Circles {
		canvas.Circle(round(circle.Shape.Center.X), round(circle.Shape.Center.Y), round(circle.Radius()), stroke)
	}

	labelStyle := "font-family:monospace;font-size:13px;fill:" + hex(opts.LabelColor)
	for _, p := range snap.Points {
		fill := opts.PointColor
		if p.Selected {
			fill = opts.SelectedColor
		}
		canvas.Circle(round(p.X), round(p.Y), round(opts.PointRadius), "fill:"+hex(fill))
		canvas.Text(round(p.X+opts.LabelDX), round(p.Y+opts.LabelDY), p.Label, labelStyle)
	}
	canvas.End()
}

func round(f float64) int {
	return int(math.Round(f))
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
