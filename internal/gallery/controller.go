package gallery

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/itunes-gallery/internal/itunes"
	"github.com/ytget/itunes-gallery/internal/model"
	"github.com/ytget/itunes-gallery/internal/slideshow"
)

var (
	// ErrSearchInProgress is returned when a search is started while Busy
	ErrSearchInProgress = errors.New("search already in progress")

	// ErrNothingToShow is returned when the slideshow is started on an
	// all-placeholder grid
	ErrNothingToShow = errors.New("no images loaded")
)

// Options tune a Controller. Zero values pick the defaults.
type Options struct {
	Interval time.Duration
	Rand     *rand.Rand
	Texts    *Texts
}

// Controller wires user actions to the search client, the grid and the
// slideshow driver
type Controller struct {
	searcher itunes.Searcher
	view     View
	dispatch Dispatcher
	texts    Texts
	show     *slideshow.Driver

	mu          sync.Mutex
	grid        *model.Grid
	searchState model.SearchState
	// id of the last search whose results reached the grid
	lastSearchID string
	playing     bool
	rng         *rand.Rand
}

// NewController creates a controller with an all-placeholder grid
func NewController(searcher itunes.Searcher, view View, dispatch Dispatcher, opts Options) *Controller {
	texts := DefaultTexts()
	if opts.Texts != nil {
		texts = *opts.Texts
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}

	c := &Controller{
		searcher:    searcher,
		view:        view,
		dispatch:    dispatch,
		texts:       texts,
		grid:        model.NewGrid(),
		searchState: model.SearchStateIdle,
		rng:         rng,
	}
	c.show = slideshow.NewDriver(opts.Interval, c.onTick)
	return c
}

// Init renders the initial screen state
func (c *Controller) Init() {
	c.dispatch(func() {
		for i := 0; i < model.GridSlots; i++ {
			c.view.ShowSlot(i, model.Placeholder)
		}
		c.view.SetStatus(c.texts.Instructions)
		c.view.SetProgress(0)
		c.view.SetPlayLabel(c.texts.Play)
		c.view.SetPlayEnabled(false)
		c.view.SetSearchEnabled(true)
	})
}

// SetTexts swaps the user-visible strings, e.g. after a language change
func (c *Controller) SetTexts(texts Texts) {
	c.mu.Lock()
	c.texts = texts
	playing := c.playing
	c.mu.Unlock()

	c.dispatch(func() {
		if playing {
			c.view.SetPlayLabel(texts.Pause)
		} else {
			c.view.SetPlayLabel(texts.Play)
		}
	})
}

// Texts returns the strings currently in use
func (c *Controller) Texts() Texts {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.texts
}

// SetInterval changes the slideshow interval, effective from the next Play
func (c *Controller) SetInterval(interval time.Duration) {
	c.show.SetInterval(interval)
}

// SearchState returns Busy while a search is in flight
func (c *Controller) SearchState() model.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchState
}

// LastSearchID returns the id logged for the search currently on the grid,
// empty before the first successful search
func (c *Controller) LastSearchID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSearchID
}

// Playing reports whether the slideshow toggle is in the Pause position
func (c *Controller) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Slots returns a copy of the grid contents
func (c *Controller) Slots() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	slots := make([]string, model.GridSlots)
	for i := range slots {
		slots[i] = c.grid.URL(i)
	}
	return slots
}

// Search starts a background search. Results are applied on the UI thread.
func (c *Controller) Search(query model.SearchQuery) error {
	c.mu.Lock()
	if c.searchState.IsBusy() {
		c.mu.Unlock()
		return ErrSearchInProgress
	}
	c.searchState = model.SearchStateBusy
	texts := c.texts
	c.mu.Unlock()

	id := uuid.NewString()
	log.Printf("Search %s started: term=%q category=%s", id, query.Term, query.Category)

	c.dispatch(func() {
		c.view.SetStatus(texts.Searching)
		c.view.SetSearchEnabled(false)
		c.view.SetPlayEnabled(false)
		c.view.SetProgress(0)
	})

	go c.runSearch(id, query)
	return nil
}

func (c *Controller) runSearch(id string, query model.SearchQuery) {
	resp, err := c.searcher.Search(context.Background(), query)
	if err != nil {
		c.searchFailed(id, err)
		return
	}

	urls := resp.Result.ArtworkURLs(func(done, total int) {
		value := float64(done) / float64(total)
		c.dispatch(func() { c.view.SetProgress(value) })
	})
	unique := itunes.UniqueArtwork(urls, model.GridSlots)
	log.Printf("Search %s: %d items, %d unique artwork urls", id, len(urls), len(unique))

	c.dispatch(func() { c.applyResults(id, resp.RequestURL, unique) })
}

// applyResults runs on the UI thread
func (c *Controller) applyResults(id, requestURL string, unique []string) {
	c.mu.Lock()
	written := c.grid.Fill(unique)
	shown := make([]string, len(written))
	for i, index := range written {
		shown[i] = c.grid.URL(index)
	}
	occupied := c.grid.OccupiedCount()
	c.searchState = model.SearchStateIdle
	c.lastSearchID = id
	c.mu.Unlock()

	log.Printf("Search %s applied: %d slots written, %d occupied (%s)", id, len(written), occupied, requestURL)
	for i, index := range written {
		c.view.ShowSlot(index, shown[i])
	}
	c.view.SetProgress(1)
	c.view.SetStatus(requestURL)
	c.restoreControls(occupied)
}

func (c *Controller) searchFailed(id string, err error) {
	insufficient, domain := itunes.AsInsufficientResults(err)
	if domain {
		log.Printf("Search %s rejected: %v (%s)", id, err, insufficient.URL)
	} else {
		log.Printf("Search %s failed: %v", id, err)
	}

	c.dispatch(func() {
		c.mu.Lock()
		c.searchState = model.SearchStateIdle
		occupied := c.grid.OccupiedCount()
		texts := c.texts
		c.mu.Unlock()

		c.view.SetStatus(texts.Failed)
		c.restoreControls(occupied)
		if domain {
			c.view.SetProgress(1)
			c.view.ShowInsufficientResults(insufficient.URL, insufficient.Count)
		}
	})
}

func (c *Controller) restoreControls(occupied int) {
	c.view.SetSearchEnabled(true)
	c.view.SetPlayEnabled(occupied > 0)
}

// TogglePlay flips the slideshow between Stopped and Running
func (c *Controller) TogglePlay() error {
	c.mu.Lock()
	if c.playing {
		c.playing = false
		texts := c.texts
		c.mu.Unlock()

		// ticks already queued are dropped by Shuffle
		c.show.Stop()
		c.dispatch(func() { c.view.SetPlayLabel(texts.Play) })
		return nil
	}

	if c.grid.OccupiedCount() == 0 {
		c.mu.Unlock()
		c.dispatch(func() { c.view.SetPlayEnabled(false) })
		return ErrNothingToShow
	}
	c.playing = true
	texts := c.texts
	c.mu.Unlock()

	if err := c.show.Start(context.Background()); err != nil && !errors.Is(err, slideshow.ErrAlreadyRunning) {
		c.mu.Lock()
		c.playing = false
		c.mu.Unlock()
		return err
	}
	c.dispatch(func() { c.view.SetPlayLabel(texts.Pause) })
	return nil
}

// Close stops the slideshow and waits for its loop to exit
func (c *Controller) Close() {
	c.mu.Lock()
	c.playing = false
	c.mu.Unlock()
	<-c.show.Stop()
}

func (c *Controller) onTick() {
	c.dispatch(c.Shuffle)
}

// Shuffle copies one occupied slot's artwork onto a random slot. It runs on
// the UI thread and does nothing once the slideshow has been paused.
func (c *Controller) Shuffle() {
	c.mu.Lock()
	if !c.playing {
		c.mu.Unlock()
		return
	}
	occupied := c.grid.Occupied()
	if len(occupied) == 0 {
		c.mu.Unlock()
		return
	}
	url := occupied[c.rng.IntN(len(occupied))]
	target := c.rng.IntN(model.GridSlots)
	if err := c.grid.SetSlot(target, url); err != nil {
		c.mu.Unlock()
		log.Printf("Shuffle: %v", err)
		return
	}
	c.mu.Unlock()

	c.view.ShowSlot(target, url)
}
