package model

import (
	"errors"
	"fmt"
)

// Default viewport: data window [-10,10]×[-10,10] on a 580×360 surface.
const (
	DefaultXMin = -10.0
	DefaultXMax = 10.0
	DefaultYMin = -10.0
	DefaultYMax = 10.0

	DefaultWidth  = 580
	DefaultHeight = 360

	// MaxSurfaceSide bounds the width and height of a drawing surface.
	MaxSurfaceSide = 8192
)

// ErrInvalidViewport is returned when bounds are inverted or the surface is empty.
var ErrInvalidViewport = errors.New("invalid viewport")

// Point is a pair of coordinates in either data or screen space.
type Point struct {
	X float64
	Y float64
}

// Segment is one straight screen-space line between two points.
type Segment struct {
	From Point
	To   Point
}

// Viewport maps a data window onto a pixel surface with its origin at the
// top-left corner. Build it with NewViewport; the zero value is not usable.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
	Width      int
	Height     int
}

// NewViewport validates the bounds and returns the viewport.
func NewViewport(xMin, xMax, yMin, yMax float64, width, height int) (Viewport, error) {
	vp := Viewport{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax, Width: width, Height: height}
	if err := vp.Validate(); err != nil {
		return Viewport{}, err
	}
	return vp, nil
}

// DefaultViewport returns the startup viewport.
func DefaultViewport() Viewport {
	return Viewport{
		XMin:   DefaultXMin,
		XMax:   DefaultXMax,
		YMin:   DefaultYMin,
		YMax:   DefaultYMax,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Validate reports whether the viewport invariants hold.
func (v Viewport) Validate() error {
	// Written as negations so NaN bounds fail too.
	if !(v.XMax > v.XMin) {
		return fmt.Errorf("%w: x_max (%g) must be greater than x_min (%g)", ErrInvalidViewport, v.XMax, v.XMin)
	}
	if !(v.YMax > v.YMin) {
		return fmt.Errorf("%w: y_max (%g) must be greater than y_min (%g)", ErrInvalidViewport, v.YMax, v.YMin)
	}
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: surface %dx%d must be positive", ErrInvalidViewport, v.Width, v.Height)
	}
	if v.Width > MaxSurfaceSide || v.Height > MaxSurfaceSide {
		return fmt.Errorf("%w: surface %dx%d exceeds %d pixels per side", ErrInvalidViewport, v.Width, v.Height, MaxSurfaceSide)
	}
	return nil
}

// ToScreen maps a data-space point to pixel coordinates. The y axis is
// inverted because screen rows grow downwards.
func (v Viewport) ToScreen(x, y float64) Point {
	w := float64(v.Width)
	h := float64(v.Height)
	return Point{
		X: (x - v.XMin) / (v.XMax - v.XMin) * w,
		Y: h - (y-v.YMin)/(v.YMax-v.YMin)*h,
	}
}

// ToData maps a pixel position back to data space.
func (v Viewport) ToData(sx, sy float64) Point {
	w := float64(v.Width)
	h := float64(v.Height)
	return Point{
		X: v.XMin + sx/w*(v.XMax-v.XMin),
		Y: v.YMin + (h-sy)/h*(v.YMax-v.YMin),
	}
}

// Step returns the data-space distance between two neighbouring samples.
func (v Viewport) Step() float64 {
	return (v.XMax - v.XMin) / float64(v.Width)
}

// SampleCount returns how many x values a plot evaluates: one per pixel
// column plus the closing edge.
func (v Viewport) SampleCount() int {
	return v.Width + 1
}

// SampleX returns the i-th sample position. SampleX(Width) is exactly XMax.
func (v Viewport) SampleX(i int) float64 {
	if i >= v.Width {
		return v.XMax
	}
	return v.XMin + float64(i)*(v.XMax-v.XMin)/float64(v.Width)
}

// Axes returns the axis lines visible in the viewport: a horizontal line at
// y=0 and a vertical line at x=0, each only when zero lies strictly inside
// the corresponding range.
func (v Viewport) Axes() []Segment {
	var axes []Segment
	w := float64(v.Width)
	h := float64(v.Height)

	if v.YMin < 0 && 0 < v.YMax {
		origin := v.ToScreen(0, 0)
		axes = append(axes, Segment{From: Point{X: 0, Y: origin.Y}, To: Point{X: w, Y: origin.Y}})
	}
	if v.XMin < 0 && 0 < v.XMax {
		origin := v.ToScreen(0, 0)
		axes = append(axes, Segment{From: Point{X: origin.X, Y: 0}, To: Point{X: origin.X, Y: h}})
	}
	return axes
}

// String returns a compact description for logs.
func (v Viewport) String() string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]@%dx%d", v.XMin, v.XMax, v.YMin, v.YMax, v.Width, v.Height)
}
