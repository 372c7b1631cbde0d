package ui

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/itunes-gallery/internal/config"
	"github.com/ytget/itunes-gallery/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	termEntry      *widget.Entry
	categorySelect *widget.Select
	intervalEntry  *widget.Entry
	languageSelect *widget.Select
}

// ShowSettingsDialog builds and shows the settings dialog. onSaved runs after
// the values were written to preferences.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
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
	sd.termEntry = widget.NewEntry()
	sd.termEntry.SetPlaceHolder(config.DefaultSearchTerm)

	categories := make([]string, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		categories = append(categories, c.String())
	}
	sd.categorySelect = widget.NewSelect(categories, nil)

	sd.intervalEntry = widget.NewEntry()
	sd.intervalEntry.SetPlaceHolder(formatIntervalSeconds(config.DefaultSlideshowInterval))

	sd.languageSelect = widget.NewSelect(languageCodes(sd.settings.GetLanguageOptions()), nil)
	sd.languageSelect.PlaceHolder = "Select language"

	l := sd.localization
	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyDefaultTerm)),
		sd.termEntry,

		widget.NewLabel(l.GetText(KeyDefaultCategory)),
		sd.categorySelect,

		widget.NewLabel(l.GetText(KeySlideshowInterval)),
		sd.intervalEntry,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 360))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.termEntry.SetText(sd.settings.GetSearchTerm())
	sd.categorySelect.SetSelected(sd.settings.GetCategory().String())
	sd.intervalEntry.SetText(formatIntervalSeconds(sd.settings.GetSlideshowInterval()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the form values that parse; the rest keep their stored value
func (sd *SettingsDialog) apply() {
	if term := strings.TrimSpace(sd.termEntry.Text); term != "" {
		sd.settings.SetSearchTerm(term)
	}

	if category, err := model.ParseCategory(sd.categorySelect.Selected); err == nil {
		sd.settings.SetCategory(category)
	}

	if interval, ok := parseIntervalSeconds(sd.intervalEntry.Text); ok {
		sd.settings.SetSlideshowInterval(interval)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}

func parseIntervalSeconds(text string) (time.Duration, bool) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || seconds <= 0 {
		return 0, false
	}
	return time.Duration(seconds * float64(time.Second)), true
}

func formatIntervalSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

// languageCodes returns the option keys in a stable order
func languageCodes(options map[string]string) []string {
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
