package ui

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/func-grapher/internal/model"
	"github.com/ytget/func-grapher/internal/plot"
	"github.com/ytget/func-grapher/internal/render"
)

func TestScalePoint(t *testing.T) {
	vp := model.DefaultViewport()

	tests := []struct {
		name string
		size fyne.Size
		in   model.Point
		want fyne.Position
	}{
		{"native size", fyne.NewSize(580, 360), model.Point{X: 290, Y: 180}, fyne.NewPos(290, 180)},
		{"double size", fyne.NewSize(1160, 720), model.Point{X: 290, Y: 180}, fyne.NewPos(580, 360)},
		{"origin", fyne.NewSize(100, 100), model.Point{}, fyne.NewPos(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scalePoint(vp, tt.size, tt.in)
			if got != tt.want {
				t.Errorf("scalePoint() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanvasToData(t *testing.T) {
	vp := model.DefaultViewport()

	got := canvasToData(vp, fyne.NewSize(1160, 720), fyne.NewPos(580, 360))
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y) > 1e-9 {
		t.Errorf("Expected the centre to map to the origin, got %+v", got)
	}

	got = canvasToData(vp, fyne.NewSize(580, 360), fyne.NewPos(0, 0))
	if got.X != -10 || got.Y != 10 {
		t.Errorf("Expected top-left to be (-10, 10), got %+v", got)
	}
}

func TestGraphCanvasDrawsScene(t *testing.T) {
	test.NewApp()

	vp := model.DefaultViewport()
	g := NewGraphCanvas(vp, render.DefaultStyle())
	r := test.WidgetRenderer(g)

	// Background plus two axes
	if n := len(r.Objects()); n != 3 {
		t.Fatalf("Expected 3 objects on a fresh canvas, got %d", n)
	}

	svc, err := plot.NewService(vp)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	scene, err := svc.Plot("x")
	if err != nil {
		t.Fatalf("Plot failed: %v", err)
	}

	g.SetScene(scene)
	want := 1 + len(scene.Axes) + len(scene.Curve)
	if n := len(r.Objects()); n != want {
		t.Errorf("Expected %d objects, got %d", want, n)
	}

	line, ok := r.Objects()[len(r.Objects())-1].(*canvas.Line)
	if !ok {
		t.Fatalf("Expected the last object to be a line")
	}
	if line.StrokeColor != render.DefaultStyle().Curve {
		t.Errorf("Expected curve colour, got %v", line.StrokeColor)
	}

	g.SetScene(svc.Clear())
	if n := len(r.Objects()); n != 3 {
		t.Errorf("Expected axes only after clear, got %d objects", n)
	}
}

func TestGraphCanvasClipsLines(t *testing.T) {
	test.NewApp()

	vp := model.DefaultViewport()
	g := NewGraphCanvas(vp, render.DefaultStyle())
	g.Resize(fyne.NewSize(580, 360))
	r := test.WidgetRenderer(g)

	svc, err := plot.NewService(vp)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	scene, err := svc.Plot("(x-5)*1e300")
	if err != nil {
		t.Fatalf("Plot failed: %v", err)
	}
	g.SetScene(scene)

	// Segments wholly above or below the surface are dropped
	if n := len(r.Objects()); n >= 1+len(scene.Axes)+len(scene.Curve) {
		t.Errorf("Expected off-surface segments to be dropped, got %d objects", n)
	}

	margin := float32(model.ClipMargin)
	for _, obj := range r.Objects()[1:] {
		line := obj.(*canvas.Line)
		for _, p := range []fyne.Position{line.Position1, line.Position2} {
			if p.X < -margin || p.X > 580+margin || p.Y < -margin || p.Y > 360+margin {
				t.Errorf("Line endpoint %v lies outside the canvas", p)
			}
		}
	}
}

func TestGraphCanvasHover(t *testing.T) {
	test.NewApp()

	g := NewGraphCanvas(model.DefaultViewport(), render.DefaultStyle())
	g.Resize(fyne.NewSize(580, 360))

	var hovered model.Point
	left := false
	g.OnHover = func(p model.Point) { hovered = p }
	g.OnLeave = func() { left = true }

	g.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(580, 0)}})
	if hovered.X != 10 || hovered.Y != 10 {
		t.Errorf("Expected (10, 10), got %+v", hovered)
	}

	g.MouseOut()
	if !left {
		t.Error("Expected OnLeave to be called")
	}
}
