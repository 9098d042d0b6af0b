// Package geocode resolves free-text destination queries to coordinates
// through a Nominatim-compatible service. Forward searches are biased to the
// home country first and widened once when the biased search comes up empty.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"cardash/internal/config"
	"cardash/internal/types"
)

var (
	// ErrInvalidQuery is returned before any network call when the trimmed
	// query is shorter than three characters.
	ErrInvalidQuery = errors.New("query must be at least 3 characters")

	// ErrNoResults means both the biased and the widened search were empty.
	// This is a valid outcome, not a transport failure.
	ErrNoResults = errors.New("no matching address found")

	// ErrNetwork covers unreachable service, timeouts, and malformed replies.
	ErrNetwork = errors.New("geocoding service unavailable")
)

// Candidate is one possible resolution of a search query. Candidates are
// transient: the caller picks one (or abandons the search) and discards them.
type Candidate struct {
	DisplayName string           `json:"displayName"`
	Coord       types.Coordinate `json:"coord"`
}

type Client struct {
	baseURL     string
	countryBias string
	language    string
	limit       int
	httpClient  *http.Client
	cache       *Cache // nil disables caching
}

func NewClient(cfg config.GeocodeConfig, cache *Cache) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	limit := cfg.Limit
	if limit <= 0 {
		limit = 5
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		countryBias: cfg.CountryBias,
		language:    cfg.Language,
		limit:       limit,
		httpClient:  &http.Client{Timeout: timeout},
		cache:       cache,
	}
}

// Search resolves a free-text query into candidate locations. The biased
// search runs first; when it returns nothing the query is retried once
// without the country restriction.
func (c *Client) Search(ctx context.Context, query string) ([]Candidate, error) {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < 3 {
		return nil, ErrInvalidQuery
	}

	if cached, ok := c.cache.Get(ctx, q); ok {
		return cached, nil
	}

	results, err := c.fetch(ctx, q, c.countryBias)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 && c.countryBias != "" {
		results, err = c.fetch(ctx, q, "")
		if err != nil {
			return nil, err
		}
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	c.cache.Set(ctx, q, results)
	return results, nil
}

// PlaceName reverse-geocodes a coordinate into a settlement name, preferring
// city over town over village over municipality. Unknown areas resolve to
// "Ismeretlen" rather than an error.
func (c *Client) PlaceName(ctx context.Context, coord types.Coordinate) (string, error) {
	params := url.Values{
		"lat":    {strconv.FormatFloat(coord.Lat, 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(coord.Lng, 'f', -1, 64)},
		"format": {"json"},
	}
	if c.language != "" {
		params.Set("accept-language", c.language)
	}

	var result struct {
		Address struct {
			City         string `json:"city"`
			Town         string `json:"town"`
			Village      string `json:"village"`
			Municipality string `json:"municipality"`
		} `json:"address"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/reverse?"+params.Encode(), &result); err != nil {
		return "", err
	}

	for _, name := range []string{
		result.Address.City,
		result.Address.Town,
		result.Address.Village,
		result.Address.Municipality,
	} {
		if name != "" {
			return name, nil
		}
	}
	return "Ismeretlen", nil
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (c *Client) fetch(ctx context.Context, query, countryBias string) ([]Candidate, error) {
	params := url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {strconv.Itoa(c.limit)},
	}
	if c.language != "" {
		params.Set("accept-language", c.language)
	}
	if countryBias != "" {
		params.Set("countrycodes", countryBias)
	}

	var raw []nominatimResult
	if err := c.getJSON(ctx, c.baseURL+"/search?"+params.Encode(), &raw); err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(raw))
	for _, r := range raw {
		lat, errLat := strconv.ParseFloat(r.Lat, 64)
		lng, errLng := strconv.ParseFloat(r.Lon, 64)
		if errLat != nil || errLng != nil {
			continue
		}
		coord := types.Coordinate{Lat: lat, Lng: lng}
		if !coord.Valid() {
			continue
		}
		candidates = append(candidates, Candidate{DisplayName: r.DisplayName, Coord: coord})
	}
	return candidates, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrNetwork, err)
	}
	return nil
}
