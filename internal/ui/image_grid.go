package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/itunes-gallery/internal/artwork"
	"github.com/ytget/itunes-gallery/internal/gallery"
	"github.com/ytget/itunes-gallery/internal/model"
)

// ImageGrid renders the 20 slots. Model rows run left to right on screen so
// the first five URLs of a search fill the top row.
type ImageGrid struct {
	loader   artwork.Loader
	dispatch gallery.Dispatcher

	images [model.GridSlots]*canvas.Image
	urls   [model.GridSlots]string
	// bumped on every ShowSlot so a slow load cannot overwrite a newer one
	tokens [model.GridSlots]uint64

	container *fyne.Container
}

// NewImageGrid creates a grid of placeholder images
func NewImageGrid(loader artwork.Loader, dispatch gallery.Dispatcher) *ImageGrid {
	g := &ImageGrid{
		loader:   loader,
		dispatch: dispatch,
	}

	objects := make([]fyne.CanvasObject, 0, model.GridSlots)
	for col := 0; col < model.GridCols; col++ {
		for row := 0; row < model.GridRows; row++ {
			index := model.Index(row, col)
			img := canvas.NewImageFromResource(PlaceholderResource)
			img.FillMode = canvas.ImageFillContain
			img.SetMinSize(fyne.NewSize(ThumbWidth, ThumbHeight))
			g.images[index] = img
			objects = append(objects, img)
		}
	}
	g.container = container.NewGridWithColumns(model.GridRows, objects...)
	return g
}

// Container returns the grid's canvas object
func (g *ImageGrid) Container() *fyne.Container {
	return g.container
}

// URL returns the URL last requested for a slot
func (g *ImageGrid) URL(index int) string {
	return g.urls[index]
}

// ShowSlot must be called on the UI thread. The artwork is fetched in the
// background and swapped in once loaded; on failure the previous image stays.
func (g *ImageGrid) ShowSlot(index int, url string) {
	if index < 0 || index >= model.GridSlots {
		log.Printf("ShowSlot: index %d out of range", index)
		return
	}

	g.tokens[index]++
	token := g.tokens[index]
	g.urls[index] = url
	img := g.images[index]

	if url == model.Placeholder || g.loader == nil {
		img.Image = nil
		img.Resource = PlaceholderResource
		img.Refresh()
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ArtworkLoadTimeout)
		defer cancel()

		thumb, err := g.loader.Load(ctx, url)
		g.dispatch(func() {
			if g.tokens[index] != token {
				return
			}
			if err != nil {
				log.Printf("Failed to load artwork for slot %d: %v", index, err)
				return
			}
			img.Resource = nil
			img.Image = thumb
			img.Refresh()
		})
	}()
}
