package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/thiagovscoelho/geometrycanvas/dbg"
	"github.com/thiagovscoelho/geometrycanvas/internal/watch"
	"github.com/thiagovscoelho/geometrycanvas/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [script]",
	Short: "Replay a script and draw the result",
	Long: `Replay a construction script and write the scene as PNG or SVG. Without
--out, the image gets a random readable name in the current directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var (
	renderFormat string
	renderOut    string
	renderWidth  int
	renderHeight int
	renderImgcat bool
	renderWatch  bool
)

func init() {
	defaults := render.DefaultOptions()
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "png", "Output format (png or svg)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file")
	renderCmd.Flags().IntVar(&renderWidth, "width", defaults.Width, "Image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", defaults.Height, "Image height in pixels")
	renderCmd.Flags().BoolVar(&renderImgcat, "imgcat", false, "Also print the image in the terminal (iTerm, png only)")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "Render again whenever the script changes")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	path := args[0]
	if renderFormat != "png" && renderFormat != "svg" {
		return errors.Errorf("unknown format %q", renderFormat)
	}
	out := renderOut
	if out == "" {
		out = dbg.Fresh() + "." + renderFormat
	}
	if err := renderScript(path, out); err != nil {
		return err
	}
	if !renderWatch {
		return nil
	}

	w, err := watch.New(200*time.Millisecond, logger)
	if err != nil {
		return err
	}
	defer w.Close()
	err = w.Watch(path, func(string) {
		if err := renderScript(path, out); err != nil {
			logger.Printf("Error: %v", err)
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	logger.Printf("watching %s, ^C to stop", path)
	w.Run(ctx)
	return nil
}

func renderScript(path, out string) error {
	canvas, err := replay(path)
	if err != nil {
		return err
	}
	snap := canvas.Snapshot()
	opts := render.DefaultOptions()
	opts.Width, opts.Height = renderWidth, renderHeight

	switch renderFormat {
	case "svg":
		f, err := os.Create(out)
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		render.WriteSVG(f, snap, opts)
		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "writing %s", out)
		}
	default:
		if err := render.SavePNG(out, snap, opts); err != nil {
			return err
		}
		if renderImgcat {
			if err := render.Cat(out, os.Stdout); err != nil {
				return err
			}
		}
	}
	logger.Printf("%s: %d points, %d lines, %d circles -> %s",
		path, len(snap.Points), len(snap.Lines), len(snap.Circles), out)
	return nil
}
