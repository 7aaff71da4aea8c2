package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/func-grapher/internal/config"
	"github.com/ytget/func-grapher/internal/model"
	"github.com/ytget/func-grapher/internal/plot"
	"github.com/ytget/func-grapher/internal/render"
)

func newTestRootUI(t *testing.T) (*RootUI, *config.Settings) {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app)
	svc, err := plot.NewService(settings.Viewport())
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	return NewRootUI(w, svc, settings), settings
}

func TestRootUIPlotAndClear(t *testing.T) {
	ui, _ := newTestRootUI(t)

	if n := len(ui.graph.Scene().Curve); n != 0 {
		t.Fatalf("Expected no curve at startup, got %d segments", n)
	}
	if n := len(ui.graph.Scene().Axes); n != 2 {
		t.Fatalf("Expected both axes at startup, got %d", n)
	}

	ui.exprEntry.SetText("x")
	ui.onPlotClick()

	scene := ui.graph.Scene()
	if n := len(scene.Curve); n != 580 {
		t.Errorf("Expected 580 segments for y = x, got %d", n)
	}
	if scene.Expression != "x" {
		t.Errorf("Expected scene expression x, got %q", scene.Expression)
	}

	ui.onClearClick()
	if ui.exprEntry.Text != "" {
		t.Errorf("Expected input to be cleared, got %q", ui.exprEntry.Text)
	}
	if n := len(ui.graph.Scene().Curve); n != 0 {
		t.Errorf("Expected no curve after clear, got %d segments", n)
	}
	if n := len(ui.graph.Scene().Axes); n != 2 {
		t.Errorf("Expected axes after clear, got %d", n)
	}
}

func TestRootUIErrorKeepsPreviousDrawing(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.exprEntry.SetText("sin(x)")
	ui.onPlotClick()
	before := len(ui.graph.Scene().Curve)
	if before == 0 {
		t.Fatal("Expected a curve for sin(x)")
	}

	for _, input := range []string{"foo(x)", "   ", "1/x"} {
		ui.exprEntry.SetText(input)
		ui.onPlotClick()
		if got := len(ui.graph.Scene().Curve); got != before {
			t.Errorf("Input %q changed the drawing: %d segments, want %d", input, got, before)
		}
	}

	// Every request lands in history, newest first
	if got := ui.recordAt(0); got == nil || got.Expression != "1/x" || got.Status != model.PlotStatusError {
		t.Errorf("Unexpected newest record: %+v", got)
	}
	if got := ui.recordAt(1); got == nil || got.Status != model.PlotStatusEmpty {
		t.Errorf("Expected an empty record second, got %+v", got)
	}
	if got := ui.recordAt(3); got == nil || !got.Status.IsSuccess() {
		t.Errorf("Expected the first plot to succeed, got %+v", got)
	}
}

func TestRootUIPlotErrorMessages(t *testing.T) {
	ui, _ := newTestRootUI(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty input", "   ", "Invalid input\nPlease enter a function to plot."},
		{"unknown function", "foo(x)", "Invalid function:\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ui.grapher.Plot(tt.input)
			if err == nil {
				t.Fatalf("Expected %q to fail", tt.input)
			}
			if got := ui.plotError(err).Error(); !strings.HasPrefix(got, tt.want) {
				t.Errorf("plotError() = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestRootUIEmptyInputShowsErrorDialog(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.exprEntry.SetText("")
	ui.onPlotClick()

	if ui.window.Canvas().Overlays().Top() == nil {
		t.Error("Expected an error dialog for empty input")
	}
}

func TestRootUIHistorySelection(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.exprEntry.SetText("x^2")
	ui.onPlotClick()
	ui.onClearClick()

	ui.onHistorySelected(0)
	if ui.exprEntry.Text != "x^2" {
		t.Errorf("Expected entry to be restored to x^2, got %q", ui.exprEntry.Text)
	}
	if ui.graph.Scene().Expression != "x^2" {
		t.Errorf("Expected x^2 to be re-plotted, got %q", ui.graph.Scene().Expression)
	}

	ui.onClearHistory()
	if ui.recordAt(0) != nil {
		t.Error("Expected history to be empty")
	}
}

func TestRootUIExport(t *testing.T) {
	ui, settings := newTestRootUI(t)
	dir := filepath.Join(t.TempDir(), "exports")
	settings.SetExportDirectory(dir)

	ui.exprEntry.SetText("sin(x)")
	ui.onPlotClick()

	now := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	for _, format := range []render.Format{render.FormatPNG, render.FormatSVG} {
		path, err := ui.exportScene(format, now)
		if err != nil {
			t.Fatalf("exportScene(%s) failed: %v", format, err)
		}
		if filepath.Dir(path) != dir {
			t.Errorf("Expected export in %s, got %s", dir, path)
		}
		if !strings.HasSuffix(path, "graph-sin_x-20250102-150405"+format.Extension()) {
			t.Errorf("Unexpected export name %s", filepath.Base(path))
		}
		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			t.Errorf("Expected a non-empty file at %s: %v", path, err)
		}
		if ui.lastExport != path {
			t.Errorf("Expected last export %s, got %s", path, ui.lastExport)
		}
	}
}

func TestRootUISettingsApplyViewport(t *testing.T) {
	ui, settings := newTestRootUI(t)

	ui.exprEntry.SetText("x")
	ui.onPlotClick()

	if err := settings.SetBounds(0, 20, -10, 10); err != nil {
		t.Fatalf("SetBounds failed: %v", err)
	}
	ui.onSettingsSaved()

	if vp := ui.grapher.Viewport(); vp.XMin != 0 || vp.XMax != 20 {
		t.Errorf("Expected grapher viewport [0, 20], got %s", vp)
	}

	// x = 0 is now the left edge, so only the horizontal axis remains
	scene := ui.graph.Scene()
	if n := len(scene.Axes); n != 1 {
		t.Errorf("Expected 1 axis, got %d", n)
	}
	if scene.Expression != "x" || len(scene.Curve) == 0 {
		t.Errorf("Expected x to be re-plotted, got %q with %d segments", scene.Expression, len(scene.Curve))
	}
}
