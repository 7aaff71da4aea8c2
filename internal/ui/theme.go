package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/func-grapher/internal/render"
)

// Palette
var (
	ColorButton       = color.RGBA{R: 0x4a, G: 0x4e, B: 0x69, A: 0xff} // #4a4e69
	ColorButtonActive = color.RGBA{R: 0x9a, G: 0x8c, B: 0x98, A: 0xff} // #9a8c98
	ColorEntryAccent  = color.RGBA{R: 0xc9, G: 0xad, B: 0xa7, A: 0xff} // #c9ada7
	ColorEntryField   = color.RGBA{R: 0x33, G: 0x33, B: 0x55, A: 0xff}
	ColorErrorRed     = color.RGBA{R: 183, G: 28, B: 28, A: 255}
)

// GrapherTheme is a dark theme built on the graph canvas palette. It ignores
// the system light/dark variant so the window always matches the canvas.
type GrapherTheme struct{}

// NewGrapherTheme creates a new grapher theme
func NewGrapherTheme() fyne.Theme {
	return &GrapherTheme{}
}

// Color returns theme colors
func (t *GrapherTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return render.ColorBackground
	case theme.ColorNameForeground:
		return render.ColorForeground
	case theme.ColorNameButton:
		return ColorButton
	case theme.ColorNamePrimary, theme.ColorNameFocus, theme.ColorNameHover, theme.ColorNamePressed:
		return ColorButtonActive
	// Entry text uses the foreground colour, so the light accent only
	// outlines the field instead of filling it.
	case theme.ColorNameInputBackground:
		return ColorEntryField
	case theme.ColorNameInputBorder:
		return ColorEntryAccent
	case theme.ColorNameError:
		return ColorErrorRed
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *GrapherTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GrapherTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *GrapherTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameText:
		return 13
	case theme.SizeNameInputRadius:
		return 2 // flat entry
	case theme.SizeNameInputBorder:
		return 1
	}

	return theme.DefaultTheme().Size(name)
}
