package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/ytget/func-grapher/internal/model"
	"github.com/ytget/func-grapher/internal/plot"
)

// SVG writes the scene as an SVG document with one <line> per segment.
// Segments are clipped to the surface and rounded to whole pixels.
func SVG(w io.Writer, vp model.Viewport, scene plot.Scene, style Style) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(vp.Width, vp.Height)
	if scene.Expression != "" {
		canvas.Title("y = " + scene.Expression)
	}
	canvas.Rect(0, 0, vp.Width, vp.Height, "fill:"+HexColor(style.Background))

	writeLines(canvas, vp, scene.Axes, lineStyle(HexColor(style.Axis), style.lineWidth()))
	writeLines(canvas, vp, scene.Curve, lineStyle(HexColor(style.Curve), style.lineWidth()))

	canvas.End()
	return ew.err
}

func lineStyle(stroke string, width float32) string {
	return fmt.Sprintf("stroke:%s;stroke-width:%g;stroke-linecap:round", stroke, width)
}

func writeLines(canvas *svg.SVG, vp model.Viewport, segments []model.Segment, style string) {
	for _, s := range segments {
		s, ok := vp.ClipToSurface(s)
		if !ok {
			continue
		}
		canvas.Line(round(s.From.X), round(s.From.Y), round(s.To.X), round(s.To.Y), style)
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
