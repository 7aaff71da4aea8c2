package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ytget/func-grapher/internal/model"
)

var sampleAxes bool

var sampleCmd = &cobra.Command{
	Use:   "sample <expression>",
	Short: "Print the screen-space segments of a function",
	Long: `Samples the expression and prints one segment per line as
"x0 y0 x1 y1" in pixel coordinates, in increasing x order.
Put expressions that start with "-" after "--".

Examples:
  func-grapher sample "sqrt(x)"
  func-grapher sample "tan(x)" --axes
  func-grapher sample -- "-x"`,
	Args: cobra.ExactArgs(1),
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().BoolVar(&sampleAxes, "axes", false, "print the axis segments first")
}

func runSample(cmd *cobra.Command, args []string) error {
	_, vp, err := loadConfig()
	if err != nil {
		return err
	}

	scene, err := plotExpression(args[0], vp)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if sampleAxes {
		writeSegments(out, scene.Axes)
	}
	writeSegments(out, scene.Curve)
	return nil
}

func writeSegments(w io.Writer, segments []model.Segment) {
	for _, s := range segments {
		fmt.Fprintf(w, "%g %g %g %g\n", s.From.X, s.From.Y, s.To.X, s.To.Y)
	}
}
