package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/itunes-gallery/internal/artwork"
	"github.com/ytget/itunes-gallery/internal/config"
	"github.com/ytget/itunes-gallery/internal/itunes"
	"github.com/ytget/itunes-gallery/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.itunes-gallery"
	AppName = "GalleryApp"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)

	// Initialize services
	settings := config.NewSettings(myApp)
	searchClient := itunes.NewClient(settings.GetAPIBaseURL(), nil)
	artworkSvc, err := artwork.NewService(nil)
	if err != nil {
		log.Fatalf("failed to create artwork service: %v", err)
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, searchClient, artworkSvc)

	// Show and run
	myWindow.ShowAndRun()
}
