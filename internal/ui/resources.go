package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	PlaceholderName = "default.png"
)

//go:embed assets/default.png
var placeholderPNG []byte

// PlaceholderResource is the bundled image shown in slots without artwork
var PlaceholderResource = &fyne.StaticResource{
	StaticName:    PlaceholderName,
	StaticContent: placeholderPNG,
}
