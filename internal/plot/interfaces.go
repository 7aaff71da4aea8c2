package plot

import (
	"github.com/ytget/func-grapher/internal/model"
)

// Grapher defines the interface the UI host drives.
type Grapher interface {
	SetUpdateCallback(func(*model.PlotRecord))
	Plot(expression string) (Scene, error)
	Clear() Scene
	Viewport() model.Viewport
	SetViewport(vp model.Viewport) error
	History() []*model.PlotRecord
	GetRecord(id string) (*model.PlotRecord, bool)
	ClearHistory()
}
