package routing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cardash/internal/config"
	"cardash/internal/types"
)

const osrmFixture = `{
	"code": "Ok",
	"routes": [{
		"geometry": {"coordinates": [[21.3465, 46.8987], [20.9, 46.6], [20.15, 46.25]]},
		"distance": 12300.0,
		"duration": 840.0,
		"legs": [{
			"steps": [
				{"distance": 250.0, "name": "Petőfi utca", "maneuver": {"type": "depart"}},
				{"distance": 11800.0, "name": "47-es főút", "maneuver": {"type": "turn", "modifier": "left"}},
				{"distance": 250.0, "name": "Vedres utca", "maneuver": {"type": "arrive"}}
			]
		}]
	}]
}`

func osrmClient(baseURL string) *OSRMRouter {
	return NewOSRMRouter(config.RoutingConfig{OSRMBaseURL: baseURL, TimeoutSeconds: 2})
}

func TestPlanParsesRoute(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(osrmFixture))
	}))
	defer srv.Close()

	origin := types.Coordinate{Lat: 46.8987, Lng: 21.3465}
	dest := types.Coordinate{Lat: 46.25, Lng: 20.15}
	route, err := osrmClient(srv.URL).Plan(context.Background(), origin, dest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(gotPath, "/route/v1/driving/21.34") {
		t.Errorf("expected lng,lat request path, got %q", gotPath)
	}
	if len(route.Geometry) != 3 {
		t.Fatalf("expected 3 geometry points, got %d", len(route.Geometry))
	}
	// GeoJSON pairs are [lng, lat]; the route must come back lat-major.
	if route.Geometry[0].Lat != 46.8987 || route.Geometry[0].Lng != 21.3465 {
		t.Errorf("geometry axis order wrong: %+v", route.Geometry[0])
	}
	if route.DistanceMeters != 12300 || route.DurationSeconds != 840 {
		t.Errorf("summary wrong: %.1f m, %.1f s", route.DistanceMeters, route.DurationSeconds)
	}
	if len(route.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(route.Steps))
	}
	if route.Steps[1].Type != StepTurn || route.Steps[1].Modifier != ModLeft {
		t.Errorf("step 1 maneuver wrong: %+v", route.Steps[1])
	}
	if route.Steps[1].StreetName != "47-es főút" {
		t.Errorf("step 1 street wrong: %q", route.Steps[1].StreetName)
	}
}

func TestPlanRouteInvariants(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(osrmFixture))
	}))
	defer srv.Close()

	route, err := osrmClient(srv.URL).Plan(context.Background(), types.Coordinate{}, types.Coordinate{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(route.Geometry) < 2 {
		t.Errorf("geometry must have at least 2 points, got %d", len(route.Geometry))
	}
	if route.DistanceMeters < 0 {
		t.Errorf("distance must be non-negative, got %f", route.DistanceMeters)
	}
}

func TestPlanNoRoute(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"code not ok", `{"code": "NoRoute", "routes": []}`},
		{"empty routes", `{"code": "Ok", "routes": []}`},
		{"degenerate geometry", `{"code": "Ok", "routes": [{"geometry": {"coordinates": [[21.0, 46.0]]}, "distance": 0, "duration": 0, "legs": []}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := osrmClient(srv.URL).Plan(context.Background(), types.Coordinate{}, types.Coordinate{})
			if !errors.Is(err, ErrRouteNotFound) {
				t.Fatalf("got %v, want ErrRouteNotFound", err)
			}
		})
	}
}

func TestPlanTransportFailures(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := osrmClient(srv.URL).Plan(context.Background(), types.Coordinate{}, types.Coordinate{})
		if !errors.Is(err, ErrNetwork) {
			t.Fatalf("got %v, want ErrNetwork", err)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := osrmClient(srv.URL).Plan(context.Background(), types.Coordinate{}, types.Coordinate{})
		if !errors.Is(err, ErrNetwork) {
			t.Fatalf("got %v, want ErrNetwork", err)
		}
	})
}

func TestClassifyInstruction(t *testing.T) {
	cases := []struct {
		text    string
		stepT   StepType
		wantMod Modifier
	}{
		{"Turn left onto Kossuth utca", StepTurn, ModLeft},
		{"Slight right at the fork", StepFork, ModSlightRight},
		{"Merge onto M5", StepMerge, ""},
		{"At the roundabout, take the 2nd exit", StepRoundabout, ""},
		{"Continue onto Fő utca", StepContinue, ""},
		{"Make a U-turn", StepTurn, ModUturn},
		{"Keep right to stay on M43", StepFork, ModRight},
	}
	for _, tc := range cases {
		st, mod := classifyInstruction(tc.text)
		if st != tc.stepT || mod != tc.wantMod {
			t.Errorf("%q: got (%s, %s), want (%s, %s)", tc.text, st, mod, tc.stepT, tc.wantMod)
		}
	}
}
