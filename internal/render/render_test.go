package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/func-grapher/internal/model"
	"github.com/ytget/func-grapher/internal/plot"
)

func identityScene(t *testing.T) (model.Viewport, plot.Scene) {
	t.Helper()
	vp := model.DefaultViewport()
	res, err := plot.Sample("x", vp)
	require.NoError(t, err)
	return vp, plot.Scene{Axes: vp.Axes(), Curve: res.Segments, Expression: "x"}
}

// steepScene plots a line so steep that its off-screen endpoints sit near 1e300 pixels.
func steepScene(t *testing.T) (model.Viewport, plot.Scene) {
	t.Helper()
	vp := model.DefaultViewport()
	res, err := plot.Sample("(x-5)*1e300", vp)
	require.NoError(t, err)
	return vp, plot.Scene{Axes: vp.Axes(), Curve: res.Segments, Expression: "(x-5)*1e300"}
}

func sameRGB(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return ar == br && ag == bg && ab == bb
}

func TestRasterize(t *testing.T) {
	vp, scene := identityScene(t)
	img := Rasterize(vp, scene, DefaultStyle())

	assert.Equal(t, vp.Width, img.Bounds().Dx())
	assert.Equal(t, vp.Height, img.Bounds().Dy())

	// Far from any line.
	assert.True(t, sameRGB(img.At(5, 5), ColorBackground), "corner should be background")
	// On the horizontal axis at screen y=180.
	assert.False(t, sameRGB(img.At(40, 180), ColorBackground), "axis pixel should be painted")
	// On the diagonal y=x: screen x=100 maps to screen y≈297.9.
	assert.False(t, sameRGB(img.At(100, 297), ColorBackground), "curve pixel should be painted")
}

func TestRasterizeClipsHugeCoordinates(t *testing.T) {
	vp, scene := steepScene(t)
	img := Rasterize(vp, scene, DefaultStyle())

	// The curve crosses zero at x = 5, screen column 435.
	for _, row := range []int{20, 100, 300} {
		painted := false
		for col := 432; col <= 438; col++ {
			if !sameRGB(img.At(col, row), ColorBackground) {
				painted = true
			}
		}
		assert.True(t, painted, "row %d should show the steep curve near column 435", row)
	}
}

func TestRasterizeEmptyScene(t *testing.T) {
	vp := model.DefaultViewport()
	img := Rasterize(vp, plot.Scene{}, DefaultStyle())

	for _, p := range [][2]int{{0, 0}, {290, 180}, {579, 359}} {
		assert.True(t, sameRGB(img.At(p[0], p[1]), ColorBackground), "pixel %v", p)
	}
}

func TestPNGDecodes(t *testing.T) {
	vp, scene := identityScene(t)

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, vp, scene, DefaultStyle()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, vp.Width, img.Bounds().Dx())
	assert.Equal(t, vp.Height, img.Bounds().Dy())
}

func TestSVG(t *testing.T) {
	vp, scene := identityScene(t)

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, vp, scene, DefaultStyle()))

	out := buf.String()
	assert.Equal(t, len(scene.Axes)+len(scene.Curve), strings.Count(out, "<line"))
	assert.Contains(t, out, "#22223b")
	assert.Contains(t, out, "stroke:#f2e9e4")
	assert.Contains(t, out, "y = x")
}

func TestSVGClipsHugeCoordinates(t *testing.T) {
	vp, scene := steepScene(t)

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, vp, scene, DefaultStyle()))

	coord := regexp.MustCompile(`\b([xy])[12]="(-?\d+)"`)
	matches := coord.FindAllStringSubmatch(buf.String(), -1)
	require.NotEmpty(t, matches)

	for _, m := range matches {
		v, err := strconv.Atoi(m[2])
		require.NoError(t, err, "coordinate %s", m[0])

		limit := vp.Width
		if m[1] == "y" {
			limit = vp.Height
		}
		assert.GreaterOrEqual(t, v, -int(model.ClipMargin), "coordinate %s", m[0])
		assert.LessOrEqual(t, v, limit+int(model.ClipMargin), "coordinate %s", m[0])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGReportsWriteErrors(t *testing.T) {
	vp, scene := identityScene(t)
	assert.EqualError(t, SVG(failingWriter{}, vp, scene, DefaultStyle()), "disk full")
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		format  Format
		wantErr bool
	}{
		{"plot.png", FormatPNG, false},
		{"PLOT.PNG", FormatPNG, false},
		{"/tmp/out.svg", FormatSVG, false},
		{"plot.jpg", "", true},
		{"plot", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
		})
	}
}

func TestWriteFile(t *testing.T) {
	vp, scene := identityScene(t)
	dir := t.TempDir()

	for _, name := range []string{"out.png", "out.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(path, vp, scene, DefaultStyle()))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	assert.Error(t, WriteFile(filepath.Join(dir, "out.gif"), vp, scene, DefaultStyle()))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#22223b", want: ColorBackground},
		{in: "#F2E9E4", want: ColorForeground},
		{in: "#fff", want: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "white", want: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "#12", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "notacolour", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "#22223b", HexColor(ColorBackground))
}
