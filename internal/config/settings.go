package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/itunes-gallery/internal/itunes"
	"github.com/ytget/itunes-gallery/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeySearchTerm        = "search_term"
	KeyCategory          = "search_category"
	KeySlideshowInterval = "slideshow_interval_ms"
	KeyAPIBaseURL        = "api_base_url"
	KeyLanguage          = "app_language"
)

// Default values
const (
	DefaultSearchTerm        = "joji"
	DefaultCategory          = model.CategoryMusic
	DefaultSlideshowInterval = 2 * time.Second
	DefaultAPIBaseURL        = itunes.DefaultBaseURL
	DefaultLanguage          = "system"

	MinSlideshowInterval = time.Second
	MaxSlideshowInterval = 10 * time.Second
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSearchTerm returns the term pre-filled in the search field
func (s *Settings) GetSearchTerm() string {
	return s.app.Preferences().StringWithFallback(KeySearchTerm, DefaultSearchTerm)
}

// SetSearchTerm stores the term the search field starts with
func (s *Settings) SetSearchTerm(term string) {
	s.app.Preferences().SetString(KeySearchTerm, term)
}

// GetCategory returns the selected media category. Unknown stored values
// fall back to the default.
func (s *Settings) GetCategory() model.Category {
	stored := s.app.Preferences().String(KeyCategory)
	if stored == "" {
		return DefaultCategory
	}
	category, err := model.ParseCategory(stored)
	if err != nil {
		s.SetCategory(DefaultCategory)
		return DefaultCategory
	}
	return category
}

// SetCategory stores the selected media category
func (s *Settings) SetCategory(category model.Category) {
	s.app.Preferences().SetString(KeyCategory, string(category))
}

// GetSlideshowInterval returns the time between slideshow ticks
func (s *Settings) GetSlideshowInterval() time.Duration {
	ms := s.app.Preferences().Int(KeySlideshowInterval)
	if ms <= 0 {
		s.SetSlideshowInterval(DefaultSlideshowInterval)
		return DefaultSlideshowInterval
	}
	return time.Duration(ms) * time.Millisecond
}

// SetSlideshowInterval sets the slideshow interval, clamped to 1-10s
func (s *Settings) SetSlideshowInterval(interval time.Duration) {
	if interval < MinSlideshowInterval {
		interval = MinSlideshowInterval
	}
	if interval > MaxSlideshowInterval {
		interval = MaxSlideshowInterval
	}
	s.app.Preferences().SetInt(KeySlideshowInterval, int(interval/time.Millisecond))
}

// GetAPIBaseURL returns the search endpoint. It has no dialog field; an
// empty stored value means the default.
func (s *Settings) GetAPIBaseURL() string {
	u := s.app.Preferences().String(KeyAPIBaseURL)
	if u == "" {
		return DefaultAPIBaseURL
	}
	return u
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
