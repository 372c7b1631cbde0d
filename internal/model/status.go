package model

// SearchState is the busy guard for the search action
type SearchState string

const (
	// SearchStateIdle means a new search may be started
	SearchStateIdle SearchState = "Idle"

	// SearchStateBusy means a search request is in flight
	SearchStateBusy SearchState = "Busy"
)

// String returns the string representation of SearchState
func (s SearchState) String() string {
	return string(s)
}

// IsBusy returns true while a search is in flight
func (s SearchState) IsBusy() bool {
	return s == SearchStateBusy
}

// SlideshowState represents the state of the slideshow driver
type SlideshowState string

const (
	// SlideshowStopped means no slideshow loop is running
	SlideshowStopped SlideshowState = "Stopped"

	// SlideshowRunning means the loop is shuffling images
	SlideshowRunning SlideshowState = "Running"
)

// String returns the string representation of SlideshowState
func (s SlideshowState) String() string {
	return string(s)
}

// IsRunning returns true if the slideshow loop is active
func (s SlideshowState) IsRunning() bool {
	return s == SlideshowRunning
}
