package model

import "fmt"

// Category is the media-type filter sent to the search API
type Category string

const (
	CategoryMovie      Category = "movie"
	CategoryPodcast    Category = "podcast"
	CategoryMusic      Category = "music"
	CategoryMusicVideo Category = "musicVideo"
	CategoryAudiobook  Category = "audiobook"
	CategoryShortFilm  Category = "shortFilm"
	CategoryTVShow     Category = "tvShow"
	CategorySoftware   Category = "software"
	CategoryEbook      Category = "ebook"

	// CategoryAll disables the media filter
	CategoryAll Category = "all"
)

// Categories returns every category in dropdown order
func Categories() []Category {
	return []Category{
		CategoryMovie,
		CategoryPodcast,
		CategoryMusic,
		CategoryMusicVideo,
		CategoryAudiobook,
		CategoryShortFilm,
		CategoryTVShow,
		CategorySoftware,
		CategoryEbook,
		CategoryAll,
	}
}

// ParseCategory validates a category name. Matching is case sensitive,
// the API rejects "musicvideo".
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// IsAll reports whether the category is the "no filter" sentinel
func (c Category) IsAll() bool {
	return c == CategoryAll
}

// SearchQuery is the user input captured when a search is submitted
type SearchQuery struct {
	Term     string
	Category Category
}

// ArtworkEntry is one matched media item
type ArtworkEntry struct {
	ArtworkURL string
}

// SearchResult is one decoded search response
type SearchResult struct {
	ResultCount int
	Items       []ArtworkEntry
}

// ArtworkURLs collects the artwork URLs in response order. progress, if set,
// is called after each item with the number processed so far.
func (r *SearchResult) ArtworkURLs(progress func(done, total int)) []string {
	total := len(r.Items)
	urls := make([]string, 0, total)
	for i, item := range r.Items {
		urls = append(urls, item.ArtworkURL)
		if progress != nil {
			progress(i+1, total)
		}
	}
	return urls
}
