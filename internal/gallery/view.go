package gallery

// View is the widget surface the controller drives. All methods are called
// from closures passed to the Dispatcher.
type View interface {
	SetSearchEnabled(enabled bool)
	SetPlayEnabled(enabled bool)
	SetPlayLabel(label string)
	SetStatus(text string)
	SetProgress(value float64)
	// ShowSlot renders url in a slot; url is model.Placeholder for the
	// bundled default image.
	ShowSlot(index int, url string)
	// ShowInsufficientResults opens the modal domain failure dialog
	ShowInsufficientResults(requestURL string, count int)
}

// Dispatcher runs fn on the UI thread. fyne.Do in the app.
type Dispatcher func(fn func())
