package config

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/func-grapher/internal/model"
	"github.com/ytget/func-grapher/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage  = "app_language"
	KeyExportDir = "export_directory"
	KeyXMin      = "viewport_x_min"
	KeyXMax      = "viewport_x_max"
	KeyYMin      = "viewport_y_min"
	KeyYMax      = "viewport_y_max"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetExportDirectory returns the directory exported images are written to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		defaultDir, err := platform.GetHomePicturesDir()
		if err != nil {
			defaultDir = "/tmp"
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetBounds returns the stored data window
func (s *Settings) GetBounds() (xMin, xMax, yMin, yMax float64) {
	p := s.app.Preferences()
	return p.FloatWithFallback(KeyXMin, model.DefaultXMin),
		p.FloatWithFallback(KeyXMax, model.DefaultXMax),
		p.FloatWithFallback(KeyYMin, model.DefaultYMin),
		p.FloatWithFallback(KeyYMax, model.DefaultYMax)
}

// SetBounds stores a new data window. Inverted or empty ranges are rejected
// and leave the stored values untouched.
func (s *Settings) SetBounds(xMin, xMax, yMin, yMax float64) error {
	if _, err := model.NewViewport(xMin, xMax, yMin, yMax, model.DefaultWidth, model.DefaultHeight); err != nil {
		return err
	}

	p := s.app.Preferences()
	p.SetFloat(KeyXMin, xMin)
	p.SetFloat(KeyXMax, xMax)
	p.SetFloat(KeyYMin, yMin)
	p.SetFloat(KeyYMax, yMax)
	return nil
}

// ResetBounds restores the default data window
func (s *Settings) ResetBounds() {
	p := s.app.Preferences()
	p.RemoveValue(KeyXMin)
	p.RemoveValue(KeyXMax)
	p.RemoveValue(KeyYMin)
	p.RemoveValue(KeyYMax)
}

// Viewport returns the configured viewport on the fixed drawing surface.
// Stored bounds that no longer validate fall back to the default window.
func (s *Settings) Viewport() model.Viewport {
	xMin, xMax, yMin, yMax := s.GetBounds()
	vp, err := model.NewViewport(xMin, xMax, yMin, yMax, model.DefaultWidth, model.DefaultHeight)
	if err != nil {
		log.Printf("Stored viewport is invalid, using default: %v", err)
		return model.DefaultViewport()
	}
	return vp
}
