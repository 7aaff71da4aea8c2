package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/ytget/func-grapher/internal/model"
	"github.com/ytget/func-grapher/internal/plot"
)

// Rasterize paints the scene onto a new image the size of the viewport.
func Rasterize(vp model.Viewport, scene plot.Scene, style Style) *image.RGBA {
	bounds := image.Rect(0, 0, vp.Width, vp.Height)
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.NewUniform(style.Background), image.Point{}, draw.Src)

	strokeSegments(dst, vp, scene.Axes, style.Axis, style.lineWidth())
	strokeSegments(dst, vp, scene.Curve, style.Curve, style.lineWidth())
	return dst
}

// PNG rasterises the scene and encodes it as PNG.
func PNG(w io.Writer, vp model.Viewport, scene plot.Scene, style Style) error {
	return png.Encode(w, Rasterize(vp, scene, style))
}

// strokeSegments fills one quad per segment, clipped to the surface first.
// All quads share the same winding, so overlaps at joints accumulate instead
// of cancelling.
func strokeSegments(dst *image.RGBA, vp model.Viewport, segments []model.Segment, c color.Color, width float32) {
	if len(segments) == 0 {
		return
	}

	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	half := float64(width) / 2

	for _, s := range segments {
		s, ok := vp.ClipToSurface(s)
		if !ok {
			continue
		}
		dx := s.To.X - s.From.X
		dy := s.To.Y - s.From.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx := -dy / length * half
		ny := dx / length * half

		r.MoveTo(float32(s.From.X+nx), float32(s.From.Y+ny))
		r.LineTo(float32(s.To.X+nx), float32(s.To.Y+ny))
		r.LineTo(float32(s.To.X-nx), float32(s.To.Y-ny))
		r.LineTo(float32(s.From.X-nx), float32(s.From.Y-ny))
		r.ClosePath()
	}

	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}
