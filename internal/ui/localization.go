package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyEnterFunction       = "enter_function"
	KeyFunctionPlaceholder = "function_placeholder"
	KeyPlot                = "plot"
	KeyClear               = "clear"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeyExportPNG           = "export_png"
	KeyExportSVG           = "export_svg"
	KeyRevealExport        = "reveal_export"
	KeyHistory             = "history"
	KeyClearHistory        = "clear_history"
	KeyShowHistory         = "show_history"
	KeyViewport            = "viewport"
	KeyResetBounds         = "reset_bounds"
	KeyExportDirectory     = "export_directory"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyBrowse              = "browse"
	KeyOpen                = "open"
	KeyClose               = "close"
	KeySettingsSaved       = "settings_saved"
	KeyInvalidInput        = "invalid_input"
	KeyPleaseEnterFunction = "please_enter_function"
	KeyInvalidFunction     = "invalid_function"
	KeyInvalidBounds       = "invalid_bounds"
	KeyExported            = "exported"
	KeyExportFailed        = "export_failed"
	KeyNothingExported     = "nothing_exported"
	KeyPlotSummary         = "plot_summary"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "Function Grapher",
		KeyEnterFunction:       "Enter function of x:",
		KeyFunctionPlaceholder: "e.g. sin(x) * x",
		KeyPlot:                "Plot",
		KeyClear:               "Clear",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeyExportPNG:           "Export PNG",
		KeyExportSVG:           "Export SVG",
		KeyRevealExport:        "Show Last Export",
		KeyHistory:             "History",
		KeyClearHistory:        "Clear History",
		KeyShowHistory:         "Show History",
		KeyViewport:            "Viewport",
		KeyResetBounds:         "Reset to Defaults",
		KeyExportDirectory:     "Export Directory",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyBrowse:              "Browse",
		KeyOpen:                "Open",
		KeyClose:               "Close",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyInvalidInput:        "Invalid input",
		KeyPleaseEnterFunction: "Please enter a function to plot.",
		KeyInvalidFunction:     "Invalid function:",
		KeyInvalidBounds:       "Invalid bounds",
		KeyExported:            "Exported",
		KeyExportFailed:        "Export failed",
		KeyNothingExported:     "Nothing has been exported yet",
		KeyPlotSummary:         "%d segments, %d points skipped",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "Построитель графиков",
		KeyEnterFunction:       "Введите функцию от x:",
		KeyFunctionPlaceholder: "например, sin(x) * x",
		KeyPlot:                "Построить",
		KeyClear:               "Очистить",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeyExportPNG:           "Экспорт PNG",
		KeyExportSVG:           "Экспорт SVG",
		KeyRevealExport:        "Показать последний экспорт",
		KeyHistory:             "История",
		KeyClearHistory:        "Очистить историю",
		KeyShowHistory:         "Показать историю",
		KeyViewport:            "Область построения",
		KeyResetBounds:         "Сбросить",
		KeyExportDirectory:     "Папка экспорта",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeyBrowse:              "Обзор",
		KeyOpen:                "Открыть",
		KeyClose:               "Закрыть",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyInvalidInput:        "Неверный ввод",
		KeyPleaseEnterFunction: "Пожалуйста, введите функцию.",
		KeyInvalidFunction:     "Неверная функция:",
		KeyInvalidBounds:       "Неверные границы",
		KeyExported:            "Экспортировано",
		KeyExportFailed:        "Ошибка экспорта",
		KeyNothingExported:     "Экспорт ещё не выполнялся",
		KeyPlotSummary:         "отрезков: %d, пропущено точек: %d",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "Grapher de Funções",
		KeyEnterFunction:       "Digite a função de x:",
		KeyFunctionPlaceholder: "ex.: sin(x) * x",
		KeyPlot:                "Plotar",
		KeyClear:               "Limpar",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyLanguage:            "Idioma",
		KeyExportPNG:           "Exportar PNG",
		KeyExportSVG:           "Exportar SVG",
		KeyRevealExport:        "Mostrar Última Exportação",
		KeyHistory:             "Histórico",
		KeyClearHistory:        "Limpar Histórico",
		KeyShowHistory:         "Mostrar Histórico",
		KeyViewport:            "Janela de Visualização",
		KeyResetBounds:         "Restaurar Padrões",
		KeyExportDirectory:     "Diretório de Exportação",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeyBrowse:              "Navegar",
		KeyOpen:                "Abrir",
		KeyClose:               "Fechar",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyInvalidInput:        "Entrada inválida",
		KeyPleaseEnterFunction: "Por favor, digite uma função para plotar.",
		KeyInvalidFunction:     "Função inválida:",
		KeyInvalidBounds:       "Limites inválidos",
		KeyExported:            "Exportado",
		KeyExportFailed:        "Falha na exportação",
		KeyNothingExported:     "Nada foi exportado ainda",
		KeyPlotSummary:         "%d segmentos, %d pontos ignorados",
	}
}
