package artwork

import (
	"context"
	"image"
)

// Loader defines the interface for fetching grid thumbnails.
type Loader interface {
	Load(ctx context.Context, url string) (image.Image, error)
}
