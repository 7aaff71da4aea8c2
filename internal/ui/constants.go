package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlot     = "📈"
	IconError    = "❌"
	IconEmpty    = "…"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	CoordinateFormat   = "x = %.3f, y = %.3f"
)

// Layout sizing
const (
	HistoryPanelWidth float32 = 220
	ButtonMinWidth    float32 = 96
)

// Stroke widths on the graph canvas
const (
	AxisStrokeWidth  float32 = 1
	CurveStrokeWidth float32 = 1.5
)
