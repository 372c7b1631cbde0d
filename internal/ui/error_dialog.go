package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/itunes-gallery/internal/itunes"
)

// insufficientResultsLines returns the two message lines of the dialog
func insufficientResultsLines(requestURL string, count int) (string, string) {
	err := &itunes.InsufficientResultsError{URL: requestURL, Count: count}
	return URIPrefix + requestURL, ExceptionPrefix + err.Error()
}

// ShowInsufficientResultsDialog opens the modal shown when a search returns
// too few results. It blocks the window until OK is pressed.
func ShowInsufficientResultsDialog(window fyne.Window, localization *Localization, requestURL string, count int) dialog.Dialog {
	uriLine, exceptionLine := insufficientResultsLines(requestURL, count)

	uriLabel := widget.NewLabel(uriLine)
	uriLabel.Wrapping = fyne.TextWrapBreak
	exceptionLabel := widget.NewLabel(exceptionLine)
	exceptionLabel.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustom(
		localization.GetText(KeyError),
		localization.GetText(KeyOK),
		container.NewVBox(uriLabel, exceptionLabel),
		window,
	)
	d.Resize(fyne.NewSize(480, 180))
	d.Show()
	return d
}
