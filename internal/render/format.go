package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ytget/func-grapher/internal/model"
	"github.com/ytget/func-grapher/internal/plot"
)

// Format is an output file format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".svg":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want .png or .svg)", filepath.Ext(path))
	}
}

// Write renders the scene in the given format.
func Write(w io.Writer, format Format, vp model.Viewport, scene plot.Scene, style Style) error {
	switch format {
	case FormatPNG:
		return PNG(w, vp, scene, style)
	case FormatSVG:
		return SVG(w, vp, scene, style)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// WriteFile renders the scene to path, choosing the format from its extension.
func WriteFile(path string, vp model.Viewport, scene plot.Scene, style Style) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(f, format, vp, scene, style); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return f.Close()
}
