package plot

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/func-grapher/internal/model"
)

// MaxHistory bounds the session history; the oldest records are evicted first.
const MaxHistory = 100

// RecordIDPrefix marks history record identifiers.
const RecordIDPrefix = "plot-"

// Scene is everything the host needs to repaint the drawing surface.
type Scene struct {
	Axes       []model.Segment
	Curve      []model.Segment
	Expression string
	// ResetInput asks the host to erase the expression field as well.
	ResetInput bool
}

// Segments returns axes followed by the curve.
func (s Scene) Segments() []model.Segment {
	out := make([]model.Segment, 0, len(s.Axes)+len(s.Curve))
	out = append(out, s.Axes...)
	return append(out, s.Curve...)
}

// Service handles plot requests for one window
type Service struct {
	viewport model.Viewport
	history  []*model.PlotRecord
	mu       sync.RWMutex
	onUpdate func(*model.PlotRecord) // callback for UI updates
}

// NewService creates a new plot service over a validated viewport
func NewService(vp model.Viewport) (*Service, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	return &Service{viewport: vp}, nil
}

// SetUpdateCallback sets the callback invoked after every plot request
func (s *Service) SetUpdateCallback(callback func(*model.PlotRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Viewport returns the current viewport
func (s *Service) Viewport() model.Viewport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewport
}

// SetViewport replaces the viewport used by subsequent requests
func (s *Service) SetViewport(vp model.Viewport) error {
	if err := vp.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.viewport = vp
	s.mu.Unlock()

	log.Printf("Viewport set to %s", vp)
	return nil
}

// Plot samples expression and returns the scene to draw. On error the
// returned scene is empty and the previous drawing should be kept.
func (s *Service) Plot(expression string) (Scene, error) {
	vp := s.Viewport()

	record := &model.PlotRecord{
		ID:         generateRecordID(),
		Expression: expression,
		Samples:    vp.SampleCount(),
		CreatedAt:  time.Now(),
	}

	result, err := Sample(expression, vp)
	switch {
	case errors.Is(err, ErrEmptyInput):
		record.Status = model.PlotStatusEmpty
		record.Error = err.Error()
	case err != nil:
		record.Status = model.PlotStatusError
		record.Error = CauseText(err)
	default:
		record.Status = model.PlotStatusOK
		record.Segments = len(result.Segments)
		record.Dropped = result.Dropped()
	}

	s.addRecord(record)
	s.notifyUpdate(record)

	if err != nil {
		log.Printf("Plot %q failed: %v", expression, err)
		return Scene{}, err
	}

	log.Printf("Plot %q: %d segments, %d of %d samples dropped",
		expression, record.Segments, record.Dropped, record.Samples)

	return Scene{
		Axes:       vp.Axes(),
		Curve:      result.Segments,
		Expression: expression,
	}, nil
}

// Clear returns the scene that erases the plot and the input, leaving the axes
func (s *Service) Clear() Scene {
	return Scene{
		Axes:       s.Viewport().Axes(),
		ResetInput: true,
	}
}

// History returns a snapshot of the session history, oldest first
func (s *Service) History() []*model.PlotRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*model.PlotRecord, len(s.history))
	copy(records, s.history)
	return records
}

// GetRecord returns a history record by ID
func (s *Service) GetRecord(id string) (*model.PlotRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.history {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// ClearHistory drops all history records
func (s *Service) ClearHistory() {
	s.mu.Lock()
	s.history = nil
	s.mu.Unlock()
}

func (s *Service) addRecord(record *model.PlotRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, record)
	if over := len(s.history) - MaxHistory; over > 0 {
		s.history = append([]*model.PlotRecord(nil), s.history[over:]...)
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(record *model.PlotRecord) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()

	if callback != nil {
		callback(record)
	}
}

// CauseText returns the message a user should see for a failed request.
func CauseText(err error) string {
	var evalErr *EvaluationError
	if errors.As(err, &evalErr) && evalErr.Cause != nil {
		return evalErr.Cause.Error()
	}
	return err.Error()
}

// generateRecordID generates a unique, time-ordered record ID using UUID v7
func generateRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RecordIDPrefix+"%d", time.Now().UnixNano())
	}
	return RecordIDPrefix + id.String()
}
