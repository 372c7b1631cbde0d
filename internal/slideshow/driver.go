// Package slideshow runs the periodic tick loop behind the Play/Pause toggle.
package slideshow

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/ytget/itunes-gallery/internal/model"
)

// DefaultInterval is the time between two shuffles
const DefaultInterval = 2 * time.Second

// ErrAlreadyRunning is returned by Start when the loop is active
var ErrAlreadyRunning = errors.New("slideshow already running")

// Driver calls onTick once on start and then once per interval until stopped
type Driver struct {
	onTick func()

	mu       sync.Mutex
	interval time.Duration
	state    model.SlideshowState
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewDriver creates a stopped driver
func NewDriver(interval time.Duration, onTick func()) *Driver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Driver{
		interval: interval,
		onTick:   onTick,
		state:    model.SlideshowStopped,
	}
}

// State returns the current driver state
func (d *Driver) State() model.SlideshowState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Interval returns the tick interval
func (d *Driver) Interval() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.interval
}

// SetInterval changes the tick interval. A running loop keeps its interval
// until the next Start.
func (d *Driver) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	d.mu.Lock()
	d.interval = interval
	d.mu.Unlock()
}

// Start launches the tick loop. Cancelling ctx stops it like Stop does.
func (d *Driver) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state.IsRunning() {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	d.cancel = cancel
	d.done = done
	d.state = model.SlideshowRunning

	go d.run(ctx, done, d.interval)

	log.Printf("Slideshow started, interval=%s", d.interval)
	return nil
}

// Stop interrupts the current wait and returns a channel that is closed once
// the loop has exited. No tick is delivered after that channel closes. The
// driver can be started again immediately. Stopping a stopped driver returns
// a closed channel.
func (d *Driver) Stop() <-chan struct{} {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cancel, d.done = nil, nil
	d.state = model.SlideshowStopped
	d.mu.Unlock()

	if cancel == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	cancel()
	log.Printf("Slideshow stopped")
	return done
}

func (d *Driver) run(ctx context.Context, done chan struct{}, interval time.Duration) {
	defer func() {
		// parent context cancelled without Stop
		d.mu.Lock()
		if d.done == done {
			d.cancel()
			d.cancel, d.done = nil, nil
			d.state = model.SlideshowStopped
		}
		d.mu.Unlock()
		close(done)
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		// a stop racing with the ticker must win
		if ctx.Err() != nil {
			return
		}
		if d.onTick != nil {
			d.onTick()
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
