package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thiagovscoelho/geometrycanvas"
	"github.com/thiagovscoelho/geometrycanvas/construct"
	"github.com/thiagovscoelho/geometrycanvas/script"
)

var rootCmd = &cobra.Command{
	Use:   "geometrycanvas",
	Short: "Replay and render ruler-and-compass constructions",
	Long: `geometrycanvas replays construction scripts: sequences of clicks made with
the line, extend and circle tools. Every new line or circle is intersected
with the rest of the scene, and the intersections become labeled points.`,
	Version:      "1.0.0",
	SilenceUsage: true,
}

var (
	verbose    bool
	snapRadius float64
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace every action")
	rootCmd.PersistentFlags().Float64Var(&snapRadius, "snap-radius", construct.SnapRadius, "How close a click must be to hit a point")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var logger = log.New(os.Stderr, "", 0)

// Load and replay a script onto a fresh canvas.
func replay(path string) (*geometrycanvas.Canvas, error) {
	s, err := script.LoadFile(path)
	if err != nil {
		return nil, err
	}

	opts := construct.DefaultOptions()
	opts.SnapRadius = snapRadius
	if verbose {
		opts.Logger = log.New(os.Stderr, "trace: ", log.Lmicroseconds)
	}
	canvas := geometrycanvas.New(opts)
	rejected, err := s.Replay(canvas, logger)
	if err != nil {
		return nil, err
	}
	if rejected > 0 {
		logger.Printf("%s: %d of %d steps rejected", path, rejected, len(s.Steps))
	}
	return canvas, nil
}
