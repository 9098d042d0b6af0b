// README: OSRM routing provider. Requests full GeoJSON geometry plus
// step-level maneuvers and maps the response onto the shared Route value.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cardash/internal/config"
	"cardash/internal/types"
)

type OSRMRouter struct {
	baseURL    string
	httpClient *http.Client
}

func NewOSRMRouter(cfg config.RoutingConfig) *OSRMRouter {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &OSRMRouter{
		baseURL:    strings.TrimRight(cfg.OSRMBaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"` // [lng, lat] pairs
		} `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Legs     []struct {
			Steps []struct {
				Distance float64 `json:"distance"`
				Name     string  `json:"name"`
				Maneuver struct {
					Type     string `json:"type"`
					Modifier string `json:"modifier"`
				} `json:"maneuver"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

func (r *OSRMRouter) Plan(ctx context.Context, origin, dest types.Coordinate) (*Route, error) {
	// OSRM takes lng,lat pairs in the path.
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson&steps=true",
		r.baseURL, origin.Lng, origin.Lat, dest.Lng, dest.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
		return nil, fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrNetwork, err)
	}

	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return nil, ErrRouteNotFound
	}

	raw := decoded.Routes[0]
	geometry := make([]types.Coordinate, 0, len(raw.Geometry.Coordinates))
	for _, pair := range raw.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		geometry = append(geometry, types.Coordinate{Lat: pair[1], Lng: pair[0]})
	}
	if len(geometry) < 2 {
		return nil, ErrRouteNotFound
	}

	route := &Route{
		Geometry:        geometry,
		DistanceMeters:  raw.Distance,
		DurationSeconds: raw.Duration,
	}
	for _, leg := range raw.Legs {
		for _, s := range leg.Steps {
			route.Steps = append(route.Steps, Step{
				Type:           StepType(s.Maneuver.Type),
				Modifier:       Modifier(s.Maneuver.Modifier),
				DistanceMeters: s.Distance,
				StreetName:     s.Name,
			})
		}
	}
	return route, nil
}
