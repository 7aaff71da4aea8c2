package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ytget/func-grapher/internal/model"
	"github.com/ytget/func-grapher/internal/render"
)

// FileConfig is the TOML configuration of the command-line renderer.
//
//	[viewport]
//	x_min = -10
//	x_max = 10
//	y_min = -10
//	y_max = 10
//	width = 580
//	height = 360
//
//	[style]
//	background = "#22223b"
//	axis = "#f2e9e4"
//	curve = "#f2e9e4"
//	line_width = 1.5
type FileConfig struct {
	Viewport ViewportConfig `toml:"viewport"`
	Style    StyleConfig    `toml:"style"`
}

// ViewportConfig describes the data window and output size
type ViewportConfig struct {
	XMin   float64 `toml:"x_min"`
	XMax   float64 `toml:"x_max"`
	YMin   float64 `toml:"y_min"`
	YMax   float64 `toml:"y_max"`
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
}

// StyleConfig describes output colours and stroke width
type StyleConfig struct {
	Background string  `toml:"background"`
	Axis       string  `toml:"axis"`
	Curve      string  `toml:"curve"`
	LineWidth  float32 `toml:"line_width"`
}

// DefaultFileConfig returns the configuration used when no file is given
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Viewport: ViewportConfig{
			XMin:   model.DefaultXMin,
			XMax:   model.DefaultXMax,
			YMin:   model.DefaultYMin,
			YMax:   model.DefaultYMax,
			Width:  model.DefaultWidth,
			Height: model.DefaultHeight,
		},
		Style: StyleConfig{
			Background: render.HexColor(render.ColorBackground),
			Axis:       render.HexColor(render.ColorForeground),
			Curve:      render.HexColor(render.ColorForeground),
			LineWidth:  render.DefaultLineWidth,
		},
	}
}

// LoadFile reads a TOML file over the defaults. An empty path returns the
// defaults; keys the file sets override them one by one.
func LoadFile(path string) (*FileConfig, error) {
	cfg := DefaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	if _, err := cfg.ToViewport(); err != nil {
		return nil, err
	}
	if _, err := cfg.ToStyle(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ToViewport builds the validated viewport
func (c *FileConfig) ToViewport() (model.Viewport, error) {
	v := c.Viewport
	return model.NewViewport(v.XMin, v.XMax, v.YMin, v.YMax, v.Width, v.Height)
}

// ToStyle parses the colours into a render style
func (c *FileConfig) ToStyle() (render.Style, error) {
	bg, err := render.ParseColor(c.Style.Background)
	if err != nil {
		return render.Style{}, fmt.Errorf("style.background: %w", err)
	}
	axis, err := render.ParseColor(c.Style.Axis)
	if err != nil {
		return render.Style{}, fmt.Errorf("style.axis: %w", err)
	}
	curve, err := render.ParseColor(c.Style.Curve)
	if err != nil {
		return render.Style{}, fmt.Errorf("style.curve: %w", err)
	}

	return render.Style{
		Background: bg,
		Axis:       axis,
		Curve:      curve,
		LineWidth:  c.Style.LineWidth,
	}, nil
}
