package itunes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ytget/itunes-gallery/internal/model"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		query    model.SearchQuery
		expected string
	}{
		{
			model.SearchQuery{Term: "joji", Category: model.CategoryMusic},
			"https://itunes.apple.com/search?term=joji&media=music&limit=200",
		},
		{
			model.SearchQuery{Term: "xyzzy999", Category: model.CategoryAll},
			"https://itunes.apple.com/search?term=xyzzy999&limit=200",
		},
		{
			model.SearchQuery{Term: "daft punk & co", Category: model.CategoryMusicVideo},
			"https://itunes.apple.com/search?term=daft+punk+%26+co&media=musicVideo&limit=200",
		},
	}

	for _, test := range tests {
		result := BuildURL(DefaultBaseURL, test.query)
		if result != test.expected {
			t.Errorf("BuildURL(%+v) = %s, expected %s", test.query, result, test.expected)
		}
	}
}

func TestBuildURL_MediaParameter(t *testing.T) {
	for _, c := range model.Categories() {
		u := BuildURL(DefaultBaseURL, model.SearchQuery{Term: "x", Category: c})
		count := strings.Count(u, "media=")
		if c.IsAll() {
			if count != 0 {
				t.Errorf("Category all should not carry media=, got %s", u)
			}
			continue
		}
		if count != 1 || !strings.Contains(u, "&media="+string(c)+"&") {
			t.Errorf("Category %s should carry exactly one media=%s, got %s", c, c, u)
		}
	}
}

// artworkBody renders a response with count declared and one result per url.
func artworkBody(count int, urls ...string) string {
	parts := make([]string, len(urls))
	for i, u := range urls {
		parts[i] = fmt.Sprintf(`{"wrapperType":"track","artworkUrl100":%q}`, u)
	}
	return fmt.Sprintf(`{"resultCount":%d,"results":[%s]}`, count, strings.Join(parts, ","))
}

func TestSearch_Success(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		urls := make([]string, 25)
		for i := range urls {
			urls[i] = fmt.Sprintf("https://img.example/%d.jpg", i)
		}
		fmt.Fprint(w, artworkBody(25, urls...))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	resp, err := client.Search(context.Background(), model.SearchQuery{Term: "joji", Category: model.CategoryMusic})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotQuery != "term=joji&media=music&limit=200" {
		t.Errorf("Unexpected query: %s", gotQuery)
	}
	if resp.RequestURL != srv.URL+"?term=joji&media=music&limit=200" {
		t.Errorf("Unexpected request URL: %s", resp.RequestURL)
	}
	if resp.Result.ResultCount != 25 || len(resp.Result.Items) != 25 {
		t.Errorf("Unexpected result: count=%d items=%d", resp.Result.ResultCount, len(resp.Result.Items))
	}
}

func TestSearch_InsufficientResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, artworkBody(3, "a", "b", "c"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	resp, err := client.Search(context.Background(), model.SearchQuery{Term: "xyzzy999", Category: model.CategoryAll})

	var insufficient *InsufficientResultsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("Expected InsufficientResultsError, got %v", err)
	}
	if insufficient.Count != 3 {
		t.Errorf("Expected count 3, got %d", insufficient.Count)
	}
	if insufficient.URL != srv.URL+"?term=xyzzy999&limit=200" {
		t.Errorf("Unexpected URL in error: %s", insufficient.URL)
	}
	if resp == nil || resp.RequestURL != insufficient.URL {
		t.Errorf("Response should carry the request URL")
	}
	if errors.Is(err, ErrRequestFailed) {
		t.Error("Domain failure must not be reported as a request failure")
	}
	if !strings.Contains(err.Error(), "3 distinct results were found, but 21 or more are needed.") {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}

func TestSearch_BoundaryCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, artworkBody(21, "a"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	if _, err := client.Search(context.Background(), model.SearchQuery{Term: "x", Category: model.CategoryMusic}); err != nil {
		t.Errorf("resultCount=21 should pass, got %v", err)
	}
}

func TestSearch_TransportFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusServiceUnavailable)
		}},
		{"malformed", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"resultCount": 30, "results": [`)
		}},
		{"missing count", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"results": []}`)
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := httptest.NewServer(test.handler)
			defer srv.Close()

			client := NewClient(srv.URL, srv.Client())
			_, err := client.Search(context.Background(), model.SearchQuery{Term: "x", Category: model.CategoryMusic})
			if !errors.Is(err, ErrRequestFailed) {
				t.Errorf("Expected ErrRequestFailed, got %v", err)
			}
			if _, ok := AsInsufficientResults(err); ok {
				t.Error("Transport failure classified as domain failure")
			}
		})
	}
}

func TestSearch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	client := NewClient(base, nil)
	_, err := client.Search(context.Background(), model.SearchQuery{Term: "x", Category: model.CategoryMusic})
	if !errors.Is(err, ErrRequestFailed) {
		t.Errorf("Expected ErrRequestFailed, got %v", err)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("", nil)
	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("Expected default base URL, got %s", client.BaseURL())
	}
	if client.httpClient.Timeout != RequestTimeout {
		t.Errorf("Expected timeout %v, got %v", RequestTimeout, client.httpClient.Timeout)
	}
}
