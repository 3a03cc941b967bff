package render

import "image/color"

type Options struct {
	Width, Height int

	PointRadius float64
	LineWidth   float64

	// Labels are drawn at the point offset by this much
	LabelDX, LabelDY float64

	Background    color.Color
	PointColor    color.Color
	SelectedColor color.Color
	ShapeColor    color.Color
	LabelColor    color.Color
}

func DefaultOptions() Options {
	return Options{
		Width:         800,
		Height:        600,
		PointRadius:   4,
		LineWidth:     2,
		LabelDX:       8,
		LabelDY:       -8,
		Background:    color.White,
		PointColor:    color.RGBA{R: 0xff, A: 0xff},
		SelectedColor: color.RGBA{B: 0xff, A: 0xff},
		ShapeColor:    color.Black,
		LabelColor:    color.Black,
	}
}
