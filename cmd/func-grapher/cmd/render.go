package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/func-grapher/internal/render"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render <expression>",
	Short: "Render a function to PNG or SVG",
	Long: `Samples the expression once per pixel column and writes the axes and
the curve to an image. The format follows the output extension.
Put expressions that start with "-" after "--".

Examples:
  func-grapher render "sin(x)" -o sin.png
  func-grapher render "x^2 - 4" -o parabola.svg --config plot.toml
  func-grapher render -o neg.png -- "-x^2"`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (.png or .svg)")
	_ = renderCmd.MarkFlagRequired("output")
}

func runRender(cmd *cobra.Command, args []string) error {
	if _, err := render.FormatFromPath(renderOutput); err != nil {
		return err
	}

	cfg, vp, err := loadConfig()
	if err != nil {
		return err
	}
	style, err := cfg.ToStyle()
	if err != nil {
		return err
	}

	scene, err := plotExpression(args[0], vp)
	if err != nil {
		return err
	}

	if err := render.WriteFile(renderOutput, vp, scene, style); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d segments)\n", renderOutput, len(scene.Curve))
	return nil
}
