package render

import (
	"io"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"github.com/thiagovscoelho/geometrycanvas/construct"
	"golang.org/x/image/font/basicfont"
)

// Draw the scene onto a fresh context. Scene coordinates are pixels with the
// origin at the top left, so no transform is applied.
func Draw(snap construct.Snapshot, opts Options) *gg.Context {
	c := gg.NewContext(opts.Width, opts.Height)
	c.SetColor(opts.Background)
	c.DrawRectangle(0, 0, float64(opts.Width), float64(opts.Height))
	c.Fill()

	c.SetColor(opts.ShapeColor)
	c.SetLineWidth(opts.LineWidth)
	for _, l := range snap.Lines {
		c.DrawLine(l.Segment.Start.X, l.Segment.Start.Y, l.Segment.End.X, l.Segment.End.Y)
		c.Stroke()
	}
	for _, circle := range snap.Circles {
		c.DrawCircle(circle.Shape.Center.X, circle.Shape.Center.Y, circle.Radius())
		c.Stroke()
	}

	// Points go on top so they stay visible where shapes cross them
	c.SetFontFace(basicfont.Face7x13)
	for _, p := range snap.Points {
		if p.Selected {
			c.SetColor(opts.SelectedColor)
		} else {
			c.SetColor(opts.PointColor)
		}
		c.DrawCircle(p.X, p.Y, opts.PointRadius)
		c.Fill()

		c.SetColor(opts.LabelColor)
		c.DrawString(p.Label, p.X+opts.LabelDX, p.Y+opts.LabelDY)
	}
	return c
}

func EncodePNG(w io.Writer, snap construct.Snapshot, opts Options) error {
	return errors.Wrap(Draw(snap, opts).EncodePNG(w), "encoding png")
}

func SavePNG(path string, snap construct.Snapshot, opts Options) error {
	return errors.Wrapf(Draw(snap, opts).SavePNG(path), "saving %s", path)
}

// Print a PNG file in the terminal (iTerm only).
func Cat(path string, w io.Writer) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrap(err, "cat")
	}
	imgcat.CatFile(path, w)
	return nil
}
