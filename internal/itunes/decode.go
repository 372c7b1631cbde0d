package itunes

import (
	"encoding/json"
	"fmt"

	"github.com/ytget/itunes-gallery/internal/model"
)

// searchResponse is the raw iTunes API response.
type searchResponse struct {
	ResultCount *int           `json:"resultCount"`
	Results     []searchResult `json:"results"`
}

// searchResult is a single result from iTunes search.
type searchResult struct {
	WrapperType   string `json:"wrapperType"`
	Kind          string `json:"kind"`
	ArtistName    string `json:"artistName"`
	ArtworkURL100 string `json:"artworkUrl100"`
}

// Decode parses a response body. A payload without resultCount is treated
// as malformed.
func Decode(body []byte) (*model.SearchResult, error) {
	var raw searchResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrRequestFailed, err)
	}
	if raw.ResultCount == nil {
		return nil, fmt.Errorf("%w: decode: missing resultCount", ErrRequestFailed)
	}

	result := &model.SearchResult{
		ResultCount: *raw.ResultCount,
		Items:       make([]model.ArtworkEntry, 0, len(raw.Results)),
	}
	for i, r := range raw.Results {
		if i >= ResultLimit {
			break
		}
		result.Items = append(result.Items, model.ArtworkEntry{ArtworkURL: r.ArtworkURL100})
	}
	return result, nil
}

// CheckResultCount applies the minimum result policy to the declared count
func CheckResultCount(reqURL string, result *model.SearchResult) error {
	if result.ResultCount < MinResults {
		return &InsufficientResultsError{URL: reqURL, Count: result.ResultCount}
	}
	return nil
}
