package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/func-grapher/internal/config"
	"github.com/ytget/func-grapher/internal/model"
	"github.com/ytget/func-grapher/internal/platform"
	"github.com/ytget/func-grapher/internal/plot"
	"github.com/ytget/func-grapher/internal/render"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	grapher      plot.Grapher
	settings     *config.Settings
	localization *Localization
	style        render.Style

	promptLabel     *widget.Label
	exprEntry       *widget.Entry
	plotBtn         *widget.Button
	clearBtn        *widget.Button
	graph           *GraphCanvas
	coordLabel      *widget.Label
	statusLabel     *widget.Label
	historyTitle    *widget.Label
	historyList     *widget.List
	clearHistoryBtn *widget.Button
	historyPanel    *fyne.Container

	// records mirrors the grapher history, newest first
	records    []*model.PlotRecord
	recordsMu  sync.Mutex
	lastExport string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, grapher plot.Grapher, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		grapher:      grapher,
		settings:     settings,
		localization: localization,
		style:        render.DefaultStyle(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for plot history updates
	ui.grapher.SetUpdateCallback(ui.onRecord)

	ui.setupUI()
	log.Printf("RootUI initialized with viewport %s", grapher.Viewport())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization.GetText

	ui.createMenu()

	ui.promptLabel = widget.NewLabel(l(KeyEnterFunction))

	ui.exprEntry = widget.NewEntry()
	ui.exprEntry.SetPlaceHolder(l(KeyFunctionPlaceholder))
	// Plot when user presses Enter in the expression field
	ui.exprEntry.OnSubmitted = func(string) {
		ui.onPlotClick()
	}

	ui.plotBtn = widget.NewButton(l(KeyPlot), ui.onPlotClick)
	ui.plotBtn.Importance = widget.HighImportance
	ui.clearBtn = widget.NewButton(l(KeyClear), ui.onClearClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	inputRow := container.NewBorder(nil, nil, settingsBtn, container.NewHBox(ui.plotBtn, ui.clearBtn), ui.exprEntry)
	topPanel := container.NewVBox(ui.promptLabel, inputRow)

	// Graph canvas starts with the axes only
	ui.graph = NewGraphCanvas(ui.grapher.Viewport(), ui.style)
	ui.graph.SetScene(ui.grapher.Clear())
	ui.graph.OnHover = ui.onHover
	ui.graph.OnLeave = func() { ui.coordLabel.SetText("") }

	ui.coordLabel = widget.NewLabel("")
	ui.coordLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	bottomPanel := container.NewBorder(nil, nil, nil, ui.coordLabel, ui.statusLabel)

	ui.historyPanel = ui.createHistoryPanel()
	ui.historyPanel.Hide()

	content := container.NewBorder(
		topPanel,        // top
		bottomPanel,     // bottom
		nil,             // left
		ui.historyPanel, // right
		ui.graph,        // center
	)

	ui.window.SetContent(content)
	ui.window.Canvas().Focus(ui.exprEntry)

	log.Printf("UI setup completed successfully")
}

// createHistoryPanel builds the session history list shown on the right
func (ui *RootUI) createHistoryPanel() *fyne.Container {
	l := ui.localization.GetText

	ui.historyTitle = widget.NewLabel(l(KeyHistory))
	ui.historyTitle.TextStyle = fyne.TextStyle{Bold: true}

	ui.historyList = widget.NewList(
		func() int {
			ui.recordsMu.Lock()
			defer ui.recordsMu.Unlock()
			return len(ui.records)
		},
		func() fyne.CanvasObject { return NewHistoryRow(ui.localization) },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if record := ui.recordAt(id); record != nil {
				obj.(*HistoryRow).SetRecord(record)
			}
		},
	)
	ui.historyList.OnSelected = ui.onHistorySelected

	ui.clearHistoryBtn = widget.NewButton(l(KeyClearHistory), ui.onClearHistory)
	ui.clearHistoryBtn.Importance = widget.LowImportance

	// Helper to fix width using a transparent rectangle underneath
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(HistoryPanelWidth, 0))

	return container.NewStack(spacer, container.NewBorder(ui.historyTitle, ui.clearHistoryBtn, nil, nil, ui.historyList))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization.GetText

	fileMenu := fyne.NewMenu(l(KeyFile),
		fyne.NewMenuItem(l(KeySettings), ui.onShowSettings),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l(KeyExportPNG), func() { ui.onExport(render.FormatPNG) }),
		fyne.NewMenuItem(l(KeyExportSVG), func() { ui.onExport(render.FormatSVG) }),
		fyne.NewMenuItem(l(KeyRevealExport), ui.onRevealExport),
	)

	showHistory := fyne.NewMenuItem(l(KeyShowHistory), ui.onToggleHistory)
	showHistory.Checked = ui.historyPanel != nil && ui.historyPanel.Visible()
	historyMenu := fyne.NewMenu(l(KeyHistory),
		showHistory,
		fyne.NewMenuItem(l(KeyClearHistory), ui.onClearHistory),
	)

	// Language submenu
	languageMenu := fyne.NewMenu(l(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, historyMenu, languageMenu))
}

// onPlotClick samples the entered expression and redraws the graph.
// On failure the previous drawing stays on the canvas.
func (ui *RootUI) onPlotClick() {
	expression := ui.exprEntry.Text

	log.Printf("Plot requested: %q", expression)

	scene, err := ui.grapher.Plot(expression)
	if err != nil {
		dialog.ShowError(ui.plotError(err), ui.window)
		return
	}

	ui.graph.SetScene(scene)
}

// plotError turns a failed plot request into the message shown in the error dialog
func (ui *RootUI) plotError(err error) error {
	l := ui.localization.GetText
	if errors.Is(err, plot.ErrEmptyInput) {
		return fmt.Errorf("%s\n%s", l(KeyInvalidInput), l(KeyPleaseEnterFunction))
	}
	return fmt.Errorf("%s\n%s", l(KeyInvalidFunction), plot.CauseText(err))
}

// onClearClick erases the plot and the input field, leaving the axes
func (ui *RootUI) onClearClick() {
	scene := ui.grapher.Clear()
	if scene.ResetInput {
		ui.exprEntry.SetText("")
	}
	ui.graph.SetScene(scene)
	ui.statusLabel.SetText("")
	log.Printf("Graph cleared")
}

// onHover shows the data coordinates under the cursor
func (ui *RootUI) onHover(p model.Point) {
	ui.coordLabel.SetText(fmt.Sprintf(CoordinateFormat, p.X, p.Y))
}

// onRecord handles history updates from the grapher
func (ui *RootUI) onRecord(record *model.PlotRecord) {
	history := ui.grapher.History()

	ui.recordsMu.Lock()
	ui.records = make([]*model.PlotRecord, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		ui.records = append(ui.records, history[i])
	}
	ui.recordsMu.Unlock()

	fyne.Do(func() {
		ui.statusLabel.SetText(recordSummary(record, ui.localization))
		ui.historyList.Refresh()
	})
}

func (ui *RootUI) recordAt(id widget.ListItemID) *model.PlotRecord {
	ui.recordsMu.Lock()
	defer ui.recordsMu.Unlock()

	if id < 0 || id >= len(ui.records) {
		return nil
	}
	return ui.records[id]
}

// onHistorySelected re-plots a previous expression
func (ui *RootUI) onHistorySelected(id widget.ListItemID) {
	record := ui.recordAt(id)
	ui.historyList.UnselectAll()
	if record == nil {
		return
	}

	ui.exprEntry.SetText(record.Expression)
	ui.onPlotClick()
}

// onClearHistory drops the session history
func (ui *RootUI) onClearHistory() {
	ui.grapher.ClearHistory()

	ui.recordsMu.Lock()
	ui.records = nil
	ui.recordsMu.Unlock()

	ui.historyList.Refresh()
}

// onToggleHistory shows or hides the history panel
func (ui *RootUI) onToggleHistory() {
	if ui.historyPanel.Visible() {
		ui.historyPanel.Hide()
	} else {
		ui.historyPanel.Show()
	}
	// Recreate menu to update checkmark
	ui.createMenu()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization.GetText

	ui.window.SetTitle(l(KeyAppTitle))
	ui.promptLabel.SetText(l(KeyEnterFunction))
	ui.exprEntry.SetPlaceHolder(l(KeyFunctionPlaceholder))
	ui.plotBtn.SetText(l(KeyPlot))
	ui.clearBtn.SetText(l(KeyClear))
	ui.historyTitle.SetText(l(KeyHistory))
	ui.clearHistoryBtn.SetText(l(KeyClearHistory))

	ui.historyList.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies saved settings to the running window
func (ui *RootUI) onSettingsSaved() {
	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}

	vp := ui.settings.Viewport()
	if vp == ui.grapher.Viewport() {
		return
	}
	if err := ui.grapher.SetViewport(vp); err != nil {
		log.Printf("Failed to apply viewport %s: %v", vp, err)
		return
	}
	ui.graph.SetViewport(vp)

	// Redraw the current curve on the new window, or just the axes
	current := ui.graph.Scene().Expression
	if current != "" {
		if scene, err := ui.grapher.Plot(current); err == nil {
			ui.graph.SetScene(scene)
			return
		}
	}
	ui.graph.SetScene(plot.Scene{Axes: vp.Axes()})
}

// onExport writes the current scene to the export directory
func (ui *RootUI) onExport(format render.Format) {
	l := ui.localization.GetText

	path, err := ui.exportScene(format, time.Now())
	if err != nil {
		log.Printf("Export failed: %v", err)
		dialog.ShowError(fmt.Errorf("%s: %w", l(KeyExportFailed), err), ui.window)
		return
	}

	confirm := dialog.NewConfirm(l(KeyExported), path, func(open bool) {
		if open {
			ui.onOpenFile(path)
		}
	}, ui.window)
	confirm.SetConfirmText(l(KeyOpen))
	confirm.SetDismissText(l(KeyClose))
	confirm.Show()
}

// exportScene renders the scene on the canvas into a new file and returns its path
func (ui *RootUI) exportScene(format render.Format, now time.Time) (string, error) {
	dir := ui.settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", err
	}

	scene := ui.graph.Scene()
	path := filepath.Join(dir, platform.ExportFileName(scene.Expression, format.Extension(), now))
	if err := render.WriteFile(path, ui.grapher.Viewport(), scene, ui.style); err != nil {
		return "", err
	}

	ui.lastExport = path
	log.Printf("Exported %s", path)
	return path, nil
}

// onRevealExport reveals the last exported file in the system file manager
func (ui *RootUI) onRevealExport() {
	l := ui.localization.GetText

	if ui.lastExport == "" {
		dialog.ShowInformation(l(KeyRevealExport), l(KeyNothingExported), ui.window)
		return
	}

	if err := platform.OpenFileInManager(ui.lastExport); err != nil {
		log.Printf("Error revealing file %s: %v", ui.lastExport, err)
		dialog.ShowError(err, ui.window)
		return
	}

	log.Printf("File revealed successfully: %s", ui.lastExport)
}

// onOpenFile opens an exported file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		dialog.ShowError(err, ui.window)
		return
	}

	log.Printf("File opened successfully: %s", filePath)
}
