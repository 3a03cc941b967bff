package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/thiagovscoelho/geometrycanvas"
	"github.com/thiagovscoelho/geometrycanvas/render"
)

// The drawing surface. The scene is rendered to an image at the widget's size,
// so a tap position is a scene coordinate as is.
type board struct {
	widget.BaseWidget
	canvas   *geometrycanvas.Canvas
	image    *canvas.Image
	onChange func(err error)
}

func newBoard(gc *geometrycanvas.Canvas) *board {
	b := &board{canvas: gc}
	b.image = canvas.NewImageFromImage(nil)
	b.image.FillMode = canvas.ImageFillStretch
	b.image.ScaleMode = canvas.ImageScalePixels
	b.image.SetMinSize(fyne.NewSize(400, 300))
	b.ExtendBaseWidget(b)
	return b
}

func (b *board) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.image)
}

func (b *board) Resize(size fyne.Size) {
	b.BaseWidget.Resize(size)
	b.redraw(nil)
}

func (b *board) Tapped(ev *fyne.PointEvent) {
	err := b.canvas.ApplyAction(b.canvas.Tool(), float64(ev.Position.X), float64(ev.Position.Y))
	b.redraw(err)
}

func (b *board) redraw(err error) {
	size := b.Size()
	if size.Width < 1 || size.Height < 1 {
		return
	}
	opts := render.DefaultOptions()
	opts.Width, opts.Height = int(size.Width), int(size.Height)
	b.image.Image = render.Draw(b.canvas.Snapshot(), opts).Image()
	b.image.Refresh()
	if b.onChange != nil {
		b.onChange(err)
	}
}
