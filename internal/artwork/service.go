// Package artwork fetches artwork URLs and turns them into fixed-size
// thumbnails for the grid. Decoded thumbnails are kept in an LRU cache so the
// slideshow can reuse them without another round trip.
package artwork

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dustin/go-humanize"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/draw"
)

// Thumbnail and fetch settings
const (
	ThumbSize      = 100
	CacheSize      = 256
	MaxRetries     = 2
	FetchTimeout   = 15 * time.Second
	InitialBackoff = 250 * time.Millisecond

	maxArtworkSize = 4 << 20
)

// Service loads artwork over HTTP
type Service struct {
	httpClient     *http.Client
	cache          *lru.Cache[string, image.Image]
	initialBackoff time.Duration
}

// NewService creates a new artwork service. A nil httpClient gets one with
// FetchTimeout.
func NewService(httpClient *http.Client) (*Service, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: FetchTimeout}
	}
	cache, err := lru.New[string, image.Image](CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating artwork cache: %w", err)
	}
	return &Service{
		httpClient:     httpClient,
		cache:          cache,
		initialBackoff: InitialBackoff,
	}, nil
}

// Cached reports whether a thumbnail for url is in the cache
func (s *Service) Cached(url string) bool {
	return s.cache.Contains(url)
}

// Load returns the ThumbSize x ThumbSize thumbnail for url
func (s *Service) Load(ctx context.Context, url string) (image.Image, error) {
	if img, ok := s.cache.Get(url); ok {
		return img, nil
	}

	body, err := s.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	src, format, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decoding artwork %s: %w", url, err)
	}

	thumb := Thumbnail(src, ThumbSize)
	s.cache.Add(url, thumb)

	log.Printf("Loaded artwork %s (%s, %s)", url, format, humanize.Bytes(uint64(len(body))))
	return thumb, nil
}

// fetch downloads url, retrying transient failures with exponential backoff
func (s *Service) fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	attempt := 0

	op := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		res, err := s.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		if res.StatusCode >= 400 && res.StatusCode < 500 {
			return backoff.Permanent(fmt.Errorf("artwork %s: status %d", url, res.StatusCode))
		}
		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("artwork %s: status %d", url, res.StatusCode)
		}

		body, err = io.ReadAll(io.LimitReader(res.Body, maxArtworkSize))
		return err
	}

	notify := func(err error, wait time.Duration) {
		log.Printf("Artwork attempt %d failed for %s: %v, retrying in %s", attempt, url, err, wait)
	}

	if err := backoff.RetryNotify(op, s.newBackOff(ctx), notify); err != nil {
		return nil, fmt.Errorf("fetching artwork: %w", err)
	}
	return body, nil
}

func (s *Service) newBackOff(ctx context.Context) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = s.initialBackoff
	eb.MaxElapsedTime = FetchTimeout
	return backoff.WithContext(backoff.WithMaxRetries(eb, MaxRetries), ctx)
}

// Thumbnail scales src into a size x size RGBA image
func Thumbnail(src image.Image, size int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
