// README: Google Directions routing provider, selectable via config when an
// OSRM instance is not reachable from the vehicle's network. Google does not
// ship OSRM-style maneuver descriptors, so step types are recovered from the
// instruction text; the translator's fallback arms absorb the coarser typing.
package routing

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"googlemaps.github.io/maps"

	"cardash/internal/types"
)

type GoogleRouter struct {
	client *maps.Client
}

func NewGoogleRouter(apiKey string) (*GoogleRouter, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &GoogleRouter{client: client}, nil
}

func (g *GoogleRouter) Plan(ctx context.Context, origin, dest types.Coordinate) (*Route, error) {
	req := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", origin.Lat, origin.Lng),
		Destination: fmt.Sprintf("%f,%f", dest.Lat, dest.Lng),
		Mode:        maps.TravelModeDriving,
		Language:    "en",
		Region:      "hu",
	}

	routes, _, err := g.client.Directions(ctx, req)
	if err != nil {
		if isNoRouteErr(err) {
			return nil, ErrRouteNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, ErrRouteNotFound
	}

	raw := routes[0]
	points, err := raw.OverviewPolyline.Decode()
	if err != nil || len(points) < 2 {
		return nil, ErrRouteNotFound
	}

	geometry := make([]types.Coordinate, len(points))
	for i, p := range points {
		geometry[i] = types.Coordinate{Lat: p.Lat, Lng: p.Lng}
	}

	route := &Route{Geometry: geometry}
	for _, leg := range raw.Legs {
		route.DistanceMeters += float64(leg.Distance.Meters)
		route.DurationSeconds += leg.Duration.Seconds()
		for i, s := range leg.Steps {
			stepType, modifier := classifyInstruction(stripTags(s.HTMLInstructions))
			if i == 0 && route.Steps == nil {
				stepType, modifier = StepDepart, ""
			}
			route.Steps = append(route.Steps, Step{
				Type:           stepType,
				Modifier:       modifier,
				DistanceMeters: float64(s.Distance.Meters),
			})
		}
	}
	if n := len(route.Steps); n > 0 {
		route.Steps[n-1].Type = StepArrive
		route.Steps[n-1].Modifier = ""
	}
	return route, nil
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

func stripTags(html string) string {
	return tagPattern.ReplaceAllString(html, " ")
}

// classifyInstruction maps a plain-text Google instruction onto the OSRM
// maneuver vocabulary the rest of the system speaks.
func classifyInstruction(text string) (StepType, Modifier) {
	lower := strings.ToLower(text)

	var modifier Modifier
	switch {
	case strings.Contains(lower, "u-turn"):
		modifier = ModUturn
	case strings.Contains(lower, "slight left"):
		modifier = ModSlightLeft
	case strings.Contains(lower, "slight right"):
		modifier = ModSlightRight
	case strings.Contains(lower, "sharp left"):
		modifier = ModSharpLeft
	case strings.Contains(lower, "sharp right"):
		modifier = ModSharpRight
	case strings.Contains(lower, "left"):
		modifier = ModLeft
	case strings.Contains(lower, "right"):
		modifier = ModRight
	}

	switch {
	case strings.Contains(lower, "roundabout"):
		return StepRoundabout, modifier
	case strings.Contains(lower, "merge"):
		return StepMerge, modifier
	case strings.Contains(lower, "ramp") && modifier != "":
		return StepRampOn, modifier
	case strings.Contains(lower, "fork") || strings.Contains(lower, "keep "):
		return StepFork, modifier
	case modifier != "":
		return StepTurn, modifier
	default:
		return StepContinue, ""
	}
}

func isNoRouteErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "ZERO_RESULTS") || strings.Contains(msg, "NOT_FOUND")
}
