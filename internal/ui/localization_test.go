package ui

import "testing"

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyPlot); got != "Plot" {
		t.Errorf("Expected 'Plot', got %q", got)
	}

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Fatalf("Expected language ru, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyClear); got != "Очистить" {
		t.Errorf("Expected Russian text, got %q", got)
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language must not change the current one, got %s", l.GetCurrentLanguage())
	}

	// System maps to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to map to en, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key fallback, got %q", got)
	}
}

func TestLocalizationIsComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("Missing texts for %s", lang)
			continue
		}
		for key := range english {
			if _, ok := texts[key]; !ok {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}
