package itunes

import (
	"errors"
	"fmt"
)

// ErrRequestFailed wraps every transport, status and decode failure
var ErrRequestFailed = errors.New("search request failed")

// InsufficientResultsError reports a response that parsed fine but declared
// fewer than MinResults matches.
type InsufficientResultsError struct {
	URL   string
	Count int
}

func (e *InsufficientResultsError) Error() string {
	return fmt.Sprintf("%d distinct results were found, but %d or more are needed.", e.Count, MinResults)
}

// AsInsufficientResults unwraps a domain failure from err
func AsInsufficientResults(err error) (*InsufficientResultsError, bool) {
	var target *InsufficientResultsError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
