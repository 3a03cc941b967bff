package construct

import "log"

type Options struct {
	// How far from an existing point a click still hits it
	SnapRadius float64

	// Box half-width within which an intersection duplicates a point
	DedupTolerance float64

	// How close two radii around the same center must be to be one circle
	RadiusTolerance float64

	// Receives trace lines for every action when set
	Logger *log.Logger
}

func DefaultOptions() Options {
	return Options{
		SnapRadius:      SnapRadius,
		DedupTolerance:  DedupTolerance,
		RadiusTolerance: RadiusTolerance,
	}
}

// Fill in zero values with defaults.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SnapRadius <= 0 {
		o.SnapRadius = d.SnapRadius
	}
	if o.DedupTolerance <= 0 {
		o.DedupTolerance = d.DedupTolerance
	}
	if o.RadiusTolerance <= 0 {
		o.RadiusTolerance = d.RadiusTolerance
	}
	return o
}
