package gallery

// Package gallery holds the screen logic of the app independent of fyne:
// the search action with its busy guard, the grid bookkeeping, the
// Play/Pause toggle rules and the slideshow shuffle. Every change to grid or
// widget state is handed to a Dispatcher so it runs on the UI thread.
