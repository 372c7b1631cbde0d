package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/itunes-gallery/internal/artwork"
	"github.com/ytget/itunes-gallery/internal/config"
	"github.com/ytget/itunes-gallery/internal/gallery"
	"github.com/ytget/itunes-gallery/internal/itunes"
	"github.com/ytget/itunes-gallery/internal/model"
)

// RootUI represents the main UI structure. It is the gallery.View the
// controller drives.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	controller   *gallery.Controller

	playBtn        *widget.Button
	searchLabel    *widget.Label
	termEntry      *widget.Entry
	categorySelect *widget.Select
	getImagesBtn   *widget.Button
	settingsBtn    *widget.Button
	statusLabel    *widget.Label
	grid           *ImageGrid
	progressBar    *widget.ProgressBar
	creditLabel    *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, searcher itunes.Searcher, loader artwork.Loader) *RootUI {
	return newRootUI(window, config.NewSettings(app), searcher, loader, fyne.Do)
}

func newRootUI(window fyne.Window, settings *config.Settings, searcher itunes.Searcher, loader artwork.Loader, dispatch gallery.Dispatcher) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		grid:         NewImageGrid(loader, dispatch),
	}

	texts := localization.ControllerTexts()
	ui.controller = gallery.NewController(searcher, ui, dispatch, gallery.Options{
		Interval: settings.GetSlideshowInterval(),
		Texts:    &texts,
	})

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetFixedSize(true)
	window.SetOnClosed(ui.controller.Close)

	ui.setupUI()
	ui.controller.Init()
	return ui
}

// Controller returns the gallery controller behind the window
func (ui *RootUI) Controller() *gallery.Controller {
	return ui.controller
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	l := ui.localization

	ui.playBtn = widget.NewButton(l.GetText(KeyPlay), ui.onPlayClick)
	ui.playBtn.Disable()

	ui.searchLabel = widget.NewLabel(l.GetText(KeySearch))

	ui.termEntry = widget.NewEntry()
	ui.termEntry.SetText(ui.settings.GetSearchTerm())
	ui.termEntry.OnSubmitted = func(string) {
		ui.onGetImagesClick()
	}

	categories := make([]string, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		categories = append(categories, c.String())
	}
	ui.categorySelect = widget.NewSelect(categories, nil)
	ui.categorySelect.SetSelected(ui.settings.GetCategory().String())

	ui.getImagesBtn = widget.NewButton(l.GetText(KeyGetImages), ui.onGetImagesClick)

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.statusLabel = widget.NewLabel(l.GetText(KeyInstructions))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	ui.progressBar = widget.NewProgressBar()
	ui.creditLabel = widget.NewLabel(l.GetText(KeyCredit))

	entryHeight := ui.termEntry.MinSize().Height
	topPanel := container.NewHBox(
		ui.playBtn,
		ui.searchLabel,
		container.NewGridWrap(fyne.NewSize(TermEntryWidth, entryHeight), ui.termEntry),
		container.NewGridWrap(fyne.NewSize(CategoryWidth, entryHeight), ui.categorySelect),
		ui.getImagesBtn,
		ui.settingsBtn,
	)

	bottomPanel := container.NewHBox(
		container.NewGridWrap(fyne.NewSize(ProgressWidth, ui.progressBar.MinSize().Height), ui.progressBar),
		ui.creditLabel,
	)

	content := container.NewBorder(
		container.NewVBox(topPanel, ui.statusLabel),
		bottomPanel,
		nil,
		nil,
		ui.grid.Container(),
	)

	ui.window.SetContent(content)
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range languageCodes(ui.localization.GetAvailableLanguages()) {
		langCode := code
		langItem := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates the static texts. A request URL in the status line
// is left as is.
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	previous := ui.controller.Texts()

	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.searchLabel.SetText(l.GetText(KeySearch))
	ui.getImagesBtn.SetText(l.GetText(KeyGetImages))
	ui.creditLabel.SetText(l.GetText(KeyCredit))

	texts := l.ControllerTexts()
	switch ui.statusLabel.Text {
	case previous.Instructions:
		ui.statusLabel.SetText(texts.Instructions)
	case previous.Searching:
		ui.statusLabel.SetText(texts.Searching)
	case previous.Failed:
		ui.statusLabel.SetText(texts.Failed)
	}
	ui.controller.SetTexts(texts)
}

// onGetImagesClick starts a search with the current term and media type
func (ui *RootUI) onGetImagesClick() {
	category, err := model.ParseCategory(ui.categorySelect.Selected)
	if err != nil {
		category = ui.settings.GetCategory()
	}
	query := model.SearchQuery{
		Term:     ui.termEntry.Text,
		Category: category,
	}

	if err := ui.controller.Search(query); err != nil {
		log.Printf("Search not started: %v", err)
	}
}

// onPlayClick toggles the slideshow
func (ui *RootUI) onPlayClick() {
	if err := ui.controller.TogglePlay(); err != nil {
		if errors.Is(err, gallery.ErrNothingToShow) {
			log.Printf("Slideshow not started: %v", err)
			return
		}
		log.Printf("Error toggling slideshow: %v", err)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

func (ui *RootUI) onSettingsSaved() {
	ui.controller.SetInterval(ui.settings.GetSlideshowInterval())
	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.onLanguageChange(lang)
	}
	dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeySettingsSaved), ui.window)
}

// SetSearchEnabled toggles the term entry, media select and Get Images button
func (ui *RootUI) SetSearchEnabled(enabled bool) {
	if enabled {
		ui.getImagesBtn.Enable()
		ui.termEntry.Enable()
		ui.categorySelect.Enable()
		return
	}
	ui.getImagesBtn.Disable()
	ui.termEntry.Disable()
	ui.categorySelect.Disable()
}

// SetPlayEnabled toggles the Play/Pause button
func (ui *RootUI) SetPlayEnabled(enabled bool) {
	if enabled {
		ui.playBtn.Enable()
	} else {
		ui.playBtn.Disable()
	}
}

// SetPlayLabel sets the Play/Pause button text
func (ui *RootUI) SetPlayLabel(label string) {
	ui.playBtn.SetText(label)
}

// SetStatus sets the status line
func (ui *RootUI) SetStatus(text string) {
	ui.statusLabel.SetText(text)
}

// SetProgress sets the progress bar value in [0, 1]
func (ui *RootUI) SetProgress(value float64) {
	ui.progressBar.SetValue(value)
}

// ShowSlot renders one grid slot
func (ui *RootUI) ShowSlot(index int, url string) {
	ui.grid.ShowSlot(index, url)
}

// ShowInsufficientResults opens the modal error dialog
func (ui *RootUI) ShowInsufficientResults(requestURL string, count int) {
	ShowInsufficientResultsDialog(ui.window, ui.localization, requestURL, count)
}
