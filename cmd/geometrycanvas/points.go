package main

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
	"github.com/thiagovscoelho/geometrycanvas/construct"
)

var pointsCmd = &cobra.Command{
	Use:   "points [script]",
	Short: "List the points a script constructs",
	Long:  "Replay a construction script and list every point with its label, coordinates, and how it was made.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPoints,
}

var noColor bool

func init() {
	pointsCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(pointsCmd)
}

func runPoints(cmd *cobra.Command, args []string) error {
	canvas, err := replay(args[0])
	if err != nil {
		return err
	}
	snap := canvas.Snapshot()
	au := aurora.NewAurora(!noColor)
	out := cmd.OutOrStdout()

	for _, p := range snap.Points {
		label := au.Cyan(fmt.Sprintf("%-4s", p.Label))
		kind := "clicked"
		if p.Kind != construct.KindNone {
			label = au.Green(fmt.Sprintf("%-4s", p.Label))
			kind = p.Kind.String()
		}
		fmt.Fprintf(out, "%s %10.3f %10.3f  %s\n", label, p.X, p.Y, au.Gray(12, kind))
	}
	fmt.Fprintf(out, "\n%d points, %d lines, %d circles\n", len(snap.Points), len(snap.Lines), len(snap.Circles))
	return nil
}
