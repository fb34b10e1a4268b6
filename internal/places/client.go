// README: Place-search provider client (auth, search, details, photos).
package places

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

const (
	apiVersion = "2025-06-17"
	// callTimeout bounds every outbound provider call.
	callTimeout = 20 * time.Second
)

var (
	// ErrUnauthenticated means the API key is missing, invalid, or expired.
	ErrUnauthenticated = errors.New("places: api key invalid or not configured")
	// ErrRateLimited means the provider rejected the call with 429.
	ErrRateLimited = errors.New("places: rate limit exceeded")
)

// SearchParams mirrors the provider's search surface. Lat/Lng take precedence
// over Near when both are set.
type SearchParams struct {
	Lat        *float64
	Lng        *float64
	Near       string
	Query      string
	RadiusM    int
	Categories string
	Limit      int
	Sort       string
	Lang       string
}

// Client is a thin wrapper over the remote place-search provider.
// All failure modes surface as errors; callers in the resolution pipeline
// treat them as "zero results for this attempt".
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	cache   *Cache
}

// Option configures optional client behaviour.
type Option func(*Client)

// WithCache attaches a response cache to search calls.
func WithCache(cache *Cache) Option {
	return func(c *Client) { c.cache = cache }
}

func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: callTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search queries the provider and returns all results, including ones without
// coordinates; callers filter with HasCoordinates as needed.
func (c *Client) Search(ctx context.Context, p SearchParams) ([]Candidate, error) {
	if c.cache != nil {
		if cached, ok := c.cache.Get(ctx, p); ok {
			return cached, nil
		}
	}

	q := url.Values{}
	switch {
	case p.Lat != nil && p.Lng != nil:
		q.Set("ll", fmt.Sprintf("%f,%f", *p.Lat, *p.Lng))
	case p.Near != "":
		q.Set("near", p.Near)
	}
	if p.Query != "" {
		q.Set("query", p.Query)
	}
	if p.RadiusM > 0 {
		q.Set("radius", strconv.Itoa(p.RadiusM))
	}
	if p.Categories != "" {
		q.Set("categories", p.Categories)
	}
	limit := p.Limit
	if limit == 0 {
		limit = 20
	}
	q.Set("limit", strconv.Itoa(limit))
	sort := p.Sort
	if sort == "" {
		sort = "DISTANCE"
	}
	q.Set("sort", sort)

	body, err := c.get(ctx, "/places/search", q, p.Lang)
	if err != nil {
		return nil, err
	}

	var results []Candidate
	for _, r := range gjson.GetBytes(body, "results").Array() {
		results = append(results, candidateFromResult(r))
	}

	if c.cache != nil {
		c.cache.Set(ctx, p, results)
	}
	return results, nil
}

// Details fetches the full provider record for one place.
func (c *Client) Details(ctx context.Context, placeID string, lang string) (gjson.Result, error) {
	body, err := c.get(ctx, "/places/"+url.PathEscape(placeID), nil, lang)
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.ParseBytes(body), nil
}

// Tips fetches user tips for one place.
func (c *Client) Tips(ctx context.Context, placeID string, limit int) (gjson.Result, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	body, err := c.get(ctx, "/places/"+url.PathEscape(placeID)+"/tips", q, "")
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.ParseBytes(body), nil
}

// PhotoURLs returns ready-to-use photo URLs for a place. Photo fetch failures
// degrade to an empty list; the gallery is decoration, not data.
func (c *Client) PhotoURLs(ctx context.Context, placeID string, limit int) []string {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	body, err := c.get(ctx, "/places/"+url.PathEscape(placeID)+"/photos", q, "")
	if err != nil {
		return nil
	}

	var urls []string
	parsed := gjson.ParseBytes(body)
	photos := parsed.Get("results")
	if !photos.Exists() && parsed.IsArray() {
		photos = parsed
	}
	for _, photo := range photos.Array() {
		prefix := photo.Get("prefix").String()
		suffix := photo.Get("suffix").String()
		switch {
		case prefix != "" && suffix != "":
			urls = append(urls, prefix+"400x300"+suffix)
		case photo.Get("url").String() != "":
			urls = append(urls, photo.Get("url").String())
		}
	}
	return urls
}

func (c *Client) get(ctx context.Context, path string, params url.Values, lang string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrUnauthenticated
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("places: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Places-Api-Version", apiVersion)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "urnav/0.1 (+https://example.local)")
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("places: read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthenticated
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("places: api error: %d - %s", resp.StatusCode, string(body))
	}
	return body, nil
}
