package artwork

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestService(t *testing.T, client *http.Client) *Service {
	t.Helper()
	svc, err := NewService(client)
	require.NoError(t, err)
	svc.initialBackoff = time.Millisecond
	return svc
}

func TestLoad_ScalesAndCaches(t *testing.T) {
	data := pngBytes(t, 300, 150)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer srv.Close()

	svc := newTestService(t, srv.Client())
	url := srv.URL + "/art.png"

	img, err := svc.Load(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, ThumbSize, ThumbSize), img.Bounds())
	assert.True(t, svc.Cached(url))

	again, err := svc.Load(context.Background(), url)
	require.NoError(t, err)
	assert.Same(t, img, again)
	assert.Equal(t, int32(1), hits.Load())
}

func TestLoad_RetriesServerErrors(t *testing.T) {
	data := pngBytes(t, 10, 10)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			http.Error(w, "busy", http.StatusBadGateway)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	svc := newTestService(t, srv.Client())
	_, err := svc.Load(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestLoad_GivesUpAfterMaxRetries(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := newTestService(t, srv.Client())
	_, err := svc.Load(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, int32(MaxRetries+1), hits.Load())
	assert.False(t, svc.Cached(srv.URL))
}

func TestLoad_ClientErrorIsPermanent(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	svc := newTestService(t, srv.Client())
	_, err := svc.Load(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Equal(t, int32(1), hits.Load())
}

func TestLoad_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not an image</html>"))
	}))
	defer srv.Close()

	svc := newTestService(t, srv.Client())
	_, err := svc.Load(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding artwork")
}

func TestThumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 80))
	thumb := Thumbnail(src, 25)
	assert.Equal(t, image.Rect(0, 0, 25, 25), thumb.Bounds())
}
