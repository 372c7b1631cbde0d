package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It owns the widgets, forwards user actions to the gallery controller and
// renders the image grid, status line, progress bar and dialogs. All UI strings
// are localized via Localization.
