package ui

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/func-grapher/internal/config"
	"github.com/ytget/func-grapher/internal/model"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 460
	SettingsDialogHeight = 420
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	exportDirEntry *widget.Entry
	xMinEntry      *widget.Entry
	xMaxEntry      *widget.Entry
	yMinEntry      *widget.Entry
	yMaxEntry      *widget.Entry
	languageSelect *widget.Select

	// language display name -> code
	languageCodes map[string]string
}

// ShowSettingsDialog opens the settings dialog; onSaved runs after a
// successful save.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, window, localization, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization.GetText

	// Export directory selection
	sd.exportDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	// Data window
	sd.xMinEntry = widget.NewEntry()
	sd.xMaxEntry = widget.NewEntry()
	sd.yMinEntry = widget.NewEntry()
	sd.yMaxEntry = widget.NewEntry()
	bounds := widget.NewForm(
		widget.NewFormItem(boundNames[0], sd.xMinEntry),
		widget.NewFormItem(boundNames[1], sd.xMaxEntry),
		widget.NewFormItem(boundNames[2], sd.yMinEntry),
		widget.NewFormItem(boundNames[3], sd.yMaxEntry),
	)
	resetBtn := widget.NewButton(l(KeyResetBounds), func() {
		sd.setBoundsText(model.DefaultXMin, model.DefaultXMax, model.DefaultYMin, model.DefaultYMax)
	})
	resetBtn.Importance = widget.LowImportance

	// Language selection, shown by display name
	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l(KeyViewport)),
		widget.NewSeparator(),
		bounds,
		container.NewHBox(resetBtn),

		widget.NewSeparator(),
		widget.NewLabel(l(KeyExportDirectory)),
		exportDirRow,

		widget.NewSeparator(),
		widget.NewLabel(l(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l(KeySettings),
		l(KeySave),
		l(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.setBoundsText(sd.settings.GetBounds())

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
}

func (sd *SettingsDialog) setBoundsText(xMin, xMax, yMin, yMax float64) {
	sd.xMinEntry.SetText(formatBound(xMin))
	sd.xMaxEntry.SetText(formatBound(xMax))
	sd.yMinEntry.SetText(formatBound(yMin))
	sd.yMaxEntry.SetText(formatBound(yMax))
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	l := sd.localization.GetText

	b, err := parseBounds([4]string{
		sd.xMinEntry.Text, sd.xMaxEntry.Text, sd.yMinEntry.Text, sd.yMaxEntry.Text,
	})
	if err == nil {
		err = sd.settings.SetBounds(b[0], b[1], b[2], b[3])
	}
	if err != nil {
		log.Printf("Rejected viewport bounds: %v", err)
		dialog.ShowError(fmt.Errorf("%s: %w", l(KeyInvalidBounds), err), sd.window)
		return
	}

	if dir := strings.TrimSpace(sd.exportDirEntry.Text); dir != "" {
		sd.settings.SetExportDirectory(dir)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(l(KeySettings), l(KeySettingsSaved), sd.window)
}

// boundNames labels the bound fields in x min, x max, y min, y max order
var boundNames = [4]string{"x min", "x max", "y min", "y max"}

// parseBounds parses the four bound fields; each must be a finite number
func parseBounds(fields [4]string) ([4]float64, error) {
	var values [4]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return values, fmt.Errorf("%s: %q is not a number", boundNames[i], field)
		}
		values[i] = v
	}
	return values, nil
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
