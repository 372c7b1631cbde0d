package itunes

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ytget/itunes-gallery/internal/model"
)

// API constants
const (
	DefaultBaseURL = "https://itunes.apple.com/search"
	ResultLimit    = 200
	MinResults     = 21
	RequestTimeout = 30 * time.Second

	maxBodySize = 8 << 20
)

// Response is the outcome of one search request
type Response struct {
	RequestURL string
	Result     *model.SearchResult
}

// Client talks to the iTunes Search API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new search client. An empty baseURL selects
// DefaultBaseURL, a nil httpClient gets one with RequestTimeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: RequestTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "?"),
		httpClient: httpClient,
	}
}

// BaseURL returns the configured search endpoint
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BuildURL returns the request URL for a query. The media parameter is left
// out for CategoryAll.
func BuildURL(baseURL string, query model.SearchQuery) string {
	var b strings.Builder
	b.WriteString(baseURL)
	b.WriteString("?term=")
	b.WriteString(url.QueryEscape(query.Term))
	if !query.Category.IsAll() {
		b.WriteString("&media=")
		b.WriteString(string(query.Category))
	}
	b.WriteString("&limit=")
	b.WriteString(strconv.Itoa(ResultLimit))
	return b.String()
}

// Search issues one GET for the query and decodes the body
func (c *Client) Search(ctx context.Context, query model.SearchQuery) (*Response, error) {
	reqURL := BuildURL(c.baseURL, query)
	resp := &Response{RequestURL: reqURL}

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return resp, err
	}

	result, err := Decode(body)
	if err != nil {
		return resp, err
	}
	resp.Result = result

	log.Printf("Search %s returned resultCount=%d items=%d", reqURL, result.ResultCount, len(result.Items))

	if err := CheckResultCount(reqURL, result); err != nil {
		return resp, err
	}
	return resp, nil
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrRequestFailed, err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: API error %d", ErrRequestFailed, res.StatusCode)
	}
	return body, nil
}
