package ui

import (
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/func-grapher/internal/model"
)

func TestHistoryRowReflectsStatus(t *testing.T) {
	test.NewApp()

	created := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	tests := []struct {
		name       string
		record     *model.PlotRecord
		importance widget.Importance
		statusHas  string
	}{
		{
			name:       "ok",
			record:     &model.PlotRecord{Expression: "sin(x)", Status: model.PlotStatusOK, Segments: 580, CreatedAt: created},
			importance: widget.SuccessImportance,
			statusHas:  "580",
		},
		{
			name:       "error",
			record:     &model.PlotRecord{Expression: "foo(x)", Status: model.PlotStatusError, Error: `name "foo" is not defined`, CreatedAt: created},
			importance: widget.DangerImportance,
			statusHas:  IconError,
		},
		{
			name:       "empty",
			record:     &model.PlotRecord{Status: model.PlotStatusEmpty, CreatedAt: created},
			importance: widget.MediumImportance,
			statusHas:  IconEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := NewHistoryRow(NewLocalization())
			row.SetRecord(tt.record)

			if row.statusLabel.Importance != tt.importance {
				t.Errorf("Expected importance %v, got %v", tt.importance, row.statusLabel.Importance)
			}
			if !strings.Contains(row.statusLabel.Text, tt.statusHas) {
				t.Errorf("Expected status %q to contain %q", row.statusLabel.Text, tt.statusHas)
			}
			if row.expressionLabel.Text != tt.record.DisplayExpression() {
				t.Errorf("Expected expression %q, got %q", tt.record.DisplayExpression(), row.expressionLabel.Text)
			}
			if row.timeLabel.Text != "15:04:05" {
				t.Errorf("Expected time 15:04:05, got %q", row.timeLabel.Text)
			}
		})
	}
}

func TestRecordSummary(t *testing.T) {
	l := NewLocalization()

	ok := &model.PlotRecord{Expression: "sqrt(x)", Status: model.PlotStatusOK, Segments: 290, Dropped: 290}
	if got := recordSummary(ok, l); !strings.Contains(got, "290 segments, 290 points skipped") {
		t.Errorf("Unexpected summary: %q", got)
	}

	failed := &model.PlotRecord{Status: model.PlotStatusError, Error: "division by zero"}
	if got := recordSummary(failed, l); !strings.HasSuffix(got, "division by zero") {
		t.Errorf("Unexpected summary: %q", got)
	}

	if got := recordSummary(nil, l); got != "" {
		t.Errorf("Expected empty summary for nil record, got %q", got)
	}
}
