package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Palette of the on-screen theme.
var (
	ColorBackground = color.RGBA{R: 0x22, G: 0x22, B: 0x3b, A: 0xff} // #22223b
	ColorForeground = color.RGBA{R: 0xf2, G: 0xe9, B: 0xe4, A: 0xff} // #f2e9e4
)

// DefaultLineWidth is the stroke width in pixels.
const DefaultLineWidth float32 = 1.5

// Style controls colours and stroke width of rendered output.
type Style struct {
	Background color.Color
	Axis       color.Color
	Curve      color.Color
	LineWidth  float32
}

// DefaultStyle returns the palette used by the desktop UI.
func DefaultStyle() Style {
	return Style{
		Background: ColorBackground,
		Axis:       ColorForeground,
		Curve:      ColorForeground,
		LineWidth:  DefaultLineWidth,
	}
}

func (s Style) lineWidth() float32 {
	if s.LineWidth <= 0 {
		return DefaultLineWidth
	}
	return s.LineWidth
}

// ParseColor accepts #rgb, #rrggbb or an SVG colour keyword such as "white".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("malformed colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("malformed colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// HexColor formats c as #rrggbb, ignoring alpha.
func HexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
