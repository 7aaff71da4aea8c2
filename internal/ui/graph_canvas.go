package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/func-grapher/internal/model"
	"github.com/ytget/func-grapher/internal/plot"
	"github.com/ytget/func-grapher/internal/render"
)

// GraphCanvas draws a plot scene: axes and curve segments over a solid
// background. Segments arrive in viewport pixels and are scaled to the
// widget's current size.
type GraphCanvas struct {
	widget.BaseWidget

	viewport model.Viewport
	scene    plot.Scene
	style    render.Style

	// OnHover receives the data-space point under the cursor
	OnHover func(p model.Point)
	// OnLeave is called when the cursor leaves the canvas
	OnLeave func()
}

var _ desktop.Hoverable = (*GraphCanvas)(nil)

// NewGraphCanvas creates a graph canvas for the given viewport
func NewGraphCanvas(vp model.Viewport, style render.Style) *GraphCanvas {
	g := &GraphCanvas{
		viewport: vp,
		style:    style,
		scene:    plot.Scene{Axes: vp.Axes()},
	}
	g.ExtendBaseWidget(g)
	return g
}

// SetScene replaces the drawn scene
func (g *GraphCanvas) SetScene(scene plot.Scene) {
	g.scene = scene
	g.Refresh()
}

// Scene returns the scene currently drawn
func (g *GraphCanvas) Scene() plot.Scene {
	return g.scene
}

// SetViewport changes the viewport used for scaling and the cursor readout
func (g *GraphCanvas) SetViewport(vp model.Viewport) {
	g.viewport = vp
	g.Refresh()
}

// MouseIn is called when a desktop pointer enters the widget
func (g *GraphCanvas) MouseIn(ev *desktop.MouseEvent) {
	g.MouseMoved(ev)
}

// MouseMoved is called when a desktop pointer hovers over the widget
func (g *GraphCanvas) MouseMoved(ev *desktop.MouseEvent) {
	if g.OnHover == nil {
		return
	}
	g.OnHover(canvasToData(g.viewport, g.Size(), ev.Position))
}

// MouseOut is called when a desktop pointer exits the widget
func (g *GraphCanvas) MouseOut() {
	if g.OnLeave != nil {
		g.OnLeave()
	}
}

// CreateRenderer creates the widget renderer
func (g *GraphCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &graphCanvasRenderer{
		graph:      g,
		background: canvas.NewRectangle(g.style.Background),
	}
	r.rebuild()
	return r
}

// scalePoint maps a viewport pixel to a position on a widget of the given size
func scalePoint(vp model.Viewport, size fyne.Size, p model.Point) fyne.Position {
	return fyne.NewPos(
		float32(p.X)*size.Width/float32(vp.Width),
		float32(p.Y)*size.Height/float32(vp.Height),
	)
}

// canvasToData maps a widget position back to data coordinates
func canvasToData(vp model.Viewport, size fyne.Size, pos fyne.Position) model.Point {
	if size.Width <= 0 || size.Height <= 0 {
		return vp.ToData(float64(pos.X), float64(pos.Y))
	}
	sx := float64(pos.X) * float64(vp.Width) / float64(size.Width)
	sy := float64(pos.Y) * float64(vp.Height) / float64(size.Height)
	return vp.ToData(sx, sy)
}

type graphCanvasRenderer struct {
	graph      *GraphCanvas
	background *canvas.Rectangle
	lines      []*canvas.Line
	segments   []model.Segment
	objects    []fyne.CanvasObject
}

// Layout positions the background and every line for the given size
func (r *graphCanvasRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	vp := r.graph.viewport
	for i, seg := range r.segments {
		r.lines[i].Position1 = scalePoint(vp, size, seg.From)
		r.lines[i].Position2 = scalePoint(vp, size, seg.To)
	}
}

// MinSize is the viewport's pixel size
func (r *graphCanvasRenderer) MinSize() fyne.Size {
	vp := r.graph.viewport
	return fyne.NewSize(float32(vp.Width), float32(vp.Height))
}

// Refresh rebuilds the line objects from the current scene
func (r *graphCanvasRenderer) Refresh() {
	r.background.FillColor = r.graph.style.Background
	r.rebuild()
	r.Layout(r.graph.Size())
	canvas.Refresh(r.graph)
}

// Objects returns the background followed by axes and curve lines
func (r *graphCanvasRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up the renderer
func (r *graphCanvasRenderer) Destroy() {}

func (r *graphCanvasRenderer) rebuild() {
	scene := r.graph.scene
	style := r.graph.style

	r.segments = r.segments[:0]
	r.lines = r.lines[:0]
	r.objects = append(r.objects[:0], r.background)

	r.addLines(scene.Axes, style.Axis, AxisStrokeWidth)
	r.addLines(scene.Curve, style.Curve, CurveStrokeWidth)
}

// addLines creates one line per segment left after clipping to the viewport surface
func (r *graphCanvasRenderer) addLines(segments []model.Segment, stroke color.Color, width float32) {
	vp := r.graph.viewport
	for _, seg := range segments {
		seg, ok := vp.ClipToSurface(seg)
		if !ok {
			continue
		}

		line := canvas.NewLine(stroke)
		line.StrokeWidth = width
		line.Position1 = fyne.NewPos(float32(seg.From.X), float32(seg.From.Y))
		line.Position2 = fyne.NewPos(float32(seg.To.X), float32(seg.To.Y))

		r.segments = append(r.segments, seg)
		r.lines = append(r.lines, line)
		r.objects = append(r.objects, line)
	}
}
