// README: GPS source implementations. The bridge source polls a local GPS
// daemon's HTTP endpoint; the static source backs tests and GPS-less benches.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cardash/internal/types"
)

// HTTPSource reads fixes from a GPS bridge endpoint returning
// {"lat": ..., "lng": ...}.
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		url:        url,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *HTTPSource) Position(ctx context.Context) (types.Coordinate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return types.Coordinate{}, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return types.Coordinate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Coordinate{}, fmt.Errorf("gps bridge: status %d", resp.StatusCode)
	}
	var fix types.Coordinate
	if err := json.NewDecoder(resp.Body).Decode(&fix); err != nil {
		return types.Coordinate{}, err
	}
	return fix, nil
}

// StaticSource always reports the same position.
type StaticSource struct {
	Coord types.Coordinate
}

func (s StaticSource) Position(ctx context.Context) (types.Coordinate, error) {
	return s.Coord, nil
}
