package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/thiagovscoelho/geometrycanvas"
	"github.com/thiagovscoelho/geometrycanvas/construct"
	"github.com/thiagovscoelho/geometrycanvas/script"
)

func main() {
	a := app.New()
	w := a.NewWindow("Geometry Canvas")

	opts := construct.DefaultOptions()
	if len(os.Getenv("GEOMETRYCANVAS_TRACE")) > 0 {
		opts.Logger = log.New(os.Stderr, "trace: ", log.Lmicroseconds)
	}
	gc := geometrycanvas.New(opts)

	// Optionally start from a script
	if len(os.Args) > 1 {
		s, err := script.LoadFile(os.Args[1])
		if err != nil {
			log.Fatalf("%v", err)
		}
		if _, err := s.Replay(gc, log.New(os.Stderr, "", 0)); err != nil {
			log.Fatalf("%v", err)
		}
	}

	status := widget.NewLabel("")
	b := newBoard(gc)
	b.onChange = func(err error) {
		snap := gc.Snapshot()
		text := fmt.Sprintf("%s  |  %d points, %d lines, %d circles  |  next label %s",
			gc.Tool(), len(snap.Points), len(snap.Lines), len(snap.Circles), snap.Cursor)
		if err != nil {
			text += "  |  " + err.Error()
		}
		status.SetText(text)
	}

	var names []string
	for _, tool := range construct.Tools() {
		names = append(names, tool.String())
	}
	tools := widget.NewSelect(names, func(name string) {
		tool, err := construct.ParseTool(name)
		if err != nil {
			return
		}
		gc.SetTool(tool)
		b.redraw(nil)
	})
	tools.SetSelected(gc.Tool().String())

	clearButton := widget.NewButton("Clear", func() {
		gc.Clear()
		b.redraw(nil)
	})

	toolbar := container.NewHBox(widget.NewLabel("Tool:"), tools, clearButton, layout.NewSpacer())
	w.SetContent(container.NewBorder(toolbar, status, nil, nil, b))
	w.Resize(fyne.NewSize(900, 700))
	w.ShowAndRun()
}
