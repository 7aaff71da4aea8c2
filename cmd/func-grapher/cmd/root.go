package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ytget/func-grapher/internal/config"
	"github.com/ytget/func-grapher/internal/model"
	"github.com/ytget/func-grapher/internal/plot"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "func-grapher",
	Short: "Plot functions of x without a window",
	Long: `func-grapher samples a function of x over a fixed data window and
renders the result to PNG or SVG, or prints the screen-space segments.

The data window, output size and colours come from a TOML file
(--config); without one the defaults are [-10,10]x[-10,10] on 580x360.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML config file")
}

// loadConfig reads --config and returns the viewport it describes
func loadConfig() (*config.FileConfig, model.Viewport, error) {
	cfg, err := config.LoadFile(cfgFile)
	if err != nil {
		return nil, model.Viewport{}, err
	}
	vp, err := cfg.ToViewport()
	if err != nil {
		return nil, model.Viewport{}, err
	}
	return cfg, vp, nil
}

// plotExpression samples expression over vp and returns the scene to draw
func plotExpression(expression string, vp model.Viewport) (plot.Scene, error) {
	svc, err := plot.NewService(vp)
	if err != nil {
		return plot.Scene{}, err
	}
	return svc.Plot(expression)
}
