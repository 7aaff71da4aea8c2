package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/func-grapher/internal/model"
)

// HistoryTimeLayout formats the time column of a history row
const HistoryTimeLayout = "15:04:05"

// HistoryRow represents a compact history entry: the expression on the left,
// outcome and time on the right.
type HistoryRow struct {
	widget.BaseWidget

	record       *model.PlotRecord
	localization *Localization

	expressionLabel *widget.Label
	statusLabel     *widget.Label
	timeLabel       *widget.Label
}

// NewHistoryRow creates a new history row widget
func NewHistoryRow(localization *Localization) *HistoryRow {
	hr := &HistoryRow{localization: localization}
	hr.ExtendBaseWidget(hr)
	hr.createUI()
	return hr
}

// SetRecord updates the row with a history record
func (hr *HistoryRow) SetRecord(record *model.PlotRecord) {
	if record == nil {
		log.Printf("Warning: SetRecord called with nil record")
		return
	}
	hr.record = record
	hr.updateFromRecord()
}

// Record returns the record shown by the row
func (hr *HistoryRow) Record() *model.PlotRecord {
	return hr.record
}

func (hr *HistoryRow) createUI() {
	hr.expressionLabel = widget.NewLabel("")
	hr.expressionLabel.TextStyle = fyne.TextStyle{Monospace: true}
	hr.expressionLabel.Truncation = fyne.TextTruncateEllipsis

	hr.statusLabel = widget.NewLabel("")
	hr.statusLabel.Alignment = fyne.TextAlignTrailing

	hr.timeLabel = widget.NewLabel("")
	hr.timeLabel.Alignment = fyne.TextAlignTrailing
}

// updateFromRecord updates labels based on the record outcome
func (hr *HistoryRow) updateFromRecord() {
	r := hr.record
	hr.expressionLabel.SetText(r.DisplayExpression())
	hr.timeLabel.SetText(r.CreatedAt.Format(HistoryTimeLayout))

	switch r.Status {
	case model.PlotStatusOK:
		hr.statusLabel.Importance = widget.SuccessImportance
		hr.statusLabel.SetText(IconPlot + " " + fmt.Sprint(r.Segments))
	case model.PlotStatusError:
		hr.statusLabel.Importance = widget.DangerImportance
		hr.statusLabel.SetText(IconError)
	default:
		hr.statusLabel.Importance = widget.MediumImportance
		hr.statusLabel.SetText(IconEmpty)
	}
	hr.Refresh()
}

// recordSummary returns the one-line status shown under the graph for a record
func recordSummary(r *model.PlotRecord, l *Localization) string {
	if r == nil {
		return ""
	}
	switch r.Status {
	case model.PlotStatusOK:
		return IconPlot + " " + r.DisplayExpression() + MiddleDotSeparator +
			fmt.Sprintf(l.GetText(KeyPlotSummary), r.Segments, r.Dropped)
	case model.PlotStatusError:
		return IconError + " " + r.Error
	default:
		return IconEmpty + " " + l.GetText(KeyPleaseEnterFunction)
	}
}

// CreateRenderer creates the widget renderer
func (hr *HistoryRow) CreateRenderer() fyne.WidgetRenderer {
	// Fixed-width status column keeps expressions aligned across rows
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(ButtonMinWidth/2, 0))
	info := container.NewVBox(
		container.NewStack(spacer, hr.statusLabel),
		hr.timeLabel,
	)

	content := container.NewBorder(nil, widget.NewSeparator(), nil, info, hr.expressionLabel)
	return widget.NewSimpleRenderer(content)
}
