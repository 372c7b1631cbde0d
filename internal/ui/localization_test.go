package ui

import "testing"

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyGetImages); got != "Get Images" {
		t.Errorf("GetText(KeyGetImages) = %q, expected Get Images", got)
	}

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected ru, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyPause); got != "Пауза" {
		t.Errorf("GetText(KeyPause) = %q", got)
	}

	// unknown language keeps the current one
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}

	// system maps to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("system should map to en, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Missing key should return itself, got %q", got)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]
	for lang := range l.GetAvailableLanguages() {
		for key := range english {
			if _, ok := l.texts[lang][key]; !ok {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalization_ControllerTexts(t *testing.T) {
	l := NewLocalization()
	texts := l.ControllerTexts()
	if texts.Play != "Play" || texts.Pause != "Pause" {
		t.Errorf("Unexpected toggle labels: %+v", texts)
	}
	if texts.Failed != "Last attempt to get images failed..." {
		t.Errorf("Unexpected failure text: %q", texts.Failed)
	}
}
