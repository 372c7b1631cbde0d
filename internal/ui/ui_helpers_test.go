package ui

import (
	"context"
	"errors"
	"image"
	"sync"
	"time"
)

// syncUI serializes dispatched closures the way the UI thread would
type syncUI struct {
	mu sync.Mutex
}

func (u *syncUI) Do(fn func()) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fn()
}

// read runs fn while no dispatched closure is executing
func (u *syncUI) read(fn func()) {
	u.Do(fn)
}

// gatedLoader blocks each Load until its URL is released
type gatedLoader struct {
	mu    sync.Mutex
	gates map[string]chan struct{}
	fail  map[string]bool
}

func newGatedLoader() *gatedLoader {
	return &gatedLoader{gates: map[string]chan struct{}{}, fail: map[string]bool{}}
}

func (l *gatedLoader) gate(url string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.gates[url]
	if !ok {
		ch = make(chan struct{})
		l.gates[url] = ch
	}
	return ch
}

func (l *gatedLoader) release(url string) {
	close(l.gate(url))
}

func (l *gatedLoader) Load(ctx context.Context, url string) (image.Image, error) {
	select {
	case <-l.gate(url):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	l.mu.Lock()
	fail := l.fail[url]
	l.mu.Unlock()
	if fail {
		return nil, errors.New("boom")
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

// instantLoader returns a thumbnail immediately
type instantLoader struct{}

func (instantLoader) Load(context.Context, string) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func eventually(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return cond()
}
