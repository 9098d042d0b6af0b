package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"cardash/internal/config"
	"cardash/internal/geocode"
	"cardash/internal/modules/location"
	"cardash/internal/modules/nav"
	"cardash/internal/routing"
	"cardash/internal/surface"
	"cardash/internal/types"
)

type stubGeocoder struct {
	candidates []geocode.Candidate
	err        error
}

func (s *stubGeocoder) Search(ctx context.Context, query string) ([]geocode.Candidate, error) {
	return s.candidates, s.err
}

type stubRouter struct {
	route *routing.Route
	err   error
}

func (s *stubRouter) Plan(ctx context.Context, origin, dest types.Coordinate) (*routing.Route, error) {
	return s.route, s.err
}

func testRoute() *routing.Route {
	return &routing.Route{
		Geometry: []types.Coordinate{
			{Lat: 46.8986, Lng: 21.3464},
			{Lat: 46.25, Lng: 20.15},
		},
		DistanceMeters:  12300,
		DurationSeconds: 840,
		Steps: []routing.Step{
			{Type: routing.StepDepart, DistanceMeters: 12300},
			{Type: routing.StepArrive},
		},
	}
}

func newTestRouter(t *testing.T, g nav.Geocoder, r routing.Router) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	adapter := location.NewAdapter(config.LocationConfig{
		FallbackLat:  46.8986701965332,
		FallbackLng:  21.346471786499023,
		FallbackName: "Okány",
		Timezone:     "Europe/Budapest",
	}, nil)
	session := nav.NewSession(g, r, adapter, nav.NewRenderer())

	srv := NewServer(ServerDeps{
		Session:  session,
		Location: adapter,
		Hub:      surface.NewHub(),
	})
	return srv.Routes()
}

func TestSearchReturnsCandidates(t *testing.T) {
	g := &stubGeocoder{candidates: []geocode.Candidate{
		{DisplayName: "Szeged", Coord: types.Coordinate{Lat: 46.25, Lng: 20.15}},
	}}
	router := newTestRouter(t, g, &stubRouter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/nav/search", strings.NewReader(`{"query":"Szeged"}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Candidates []geocode.Candidate `json:"candidates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Candidates) != 1 || resp.Candidates[0].DisplayName != "Szeged" {
		t.Errorf("candidates = %+v", resp.Candidates)
	}
}

func TestSearchErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid query", geocode.ErrInvalidQuery, http.StatusBadRequest},
		{"no results", geocode.ErrNoResults, http.StatusNotFound},
		{"network", geocode.ErrNetwork, http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(t, &stubGeocoder{err: tc.err}, &stubRouter{})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/nav/search", strings.NewReader(`{"query":"ab"}`))
			router.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestRouteActivatesSession(t *testing.T) {
	router := newTestRouter(t, &stubGeocoder{}, &stubRouter{route: testRoute()})

	w := httptest.NewRecorder()
	body := `{"name":"Szeged","lat":46.25,"lng":20.15}`
	req := httptest.NewRequest(http.MethodPost, "/api/nav/route", strings.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var snap nav.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Status != nav.StatusActive {
		t.Errorf("status = %q", snap.Status)
	}
	if snap.Summary == nil || snap.Summary.DistanceLabel != "12.3 km" {
		t.Errorf("summary = %+v", snap.Summary)
	}
}

func TestRouteRejectsBadDestination(t *testing.T) {
	router := newTestRouter(t, &stubGeocoder{}, &stubRouter{route: testRoute()})

	for _, body := range []string{
		`{"lat":46.25,"lng":20.15}`,
		`{"name":"Szeged","lat":95,"lng":20.15}`,
		`not json`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/nav/route", strings.NewReader(body))
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
	}
}

func TestRouteNotFoundMapsTo404(t *testing.T) {
	router := newTestRouter(t, &stubGeocoder{}, &stubRouter{err: routing.ErrRouteNotFound})

	w := httptest.NewRecorder()
	body := `{"name":"Sehol","lat":1,"lng":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/nav/route", strings.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestClearResetsToIdle(t *testing.T) {
	router := newTestRouter(t, &stubGeocoder{}, &stubRouter{route: testRoute()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/nav/route",
		strings.NewReader(`{"name":"Szeged","lat":46.25,"lng":20.15}`))
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("plan status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/nav/clear", nil)
	router.ServeHTTP(w, req)

	var snap nav.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Status != nav.StatusIdle || snap.Route != nil {
		t.Errorf("snapshot after clear: %+v", snap)
	}
}

func TestLocationUpdateAcceptsFix(t *testing.T) {
	router := newTestRouter(t, &stubGeocoder{}, &stubRouter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/location", strings.NewReader(`{"lat":46.25,"lng":20.15}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Accepted bool           `json:"accepted"`
		State    location.State `json:"state"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Accepted || !resp.State.HasFix {
		t.Errorf("resp = %+v", resp)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/location", strings.NewReader(`{"lat":200,"lng":0}`))
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("out-of-range fix status = %d, want 400", w.Code)
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &stubGeocoder{}, &stubRouter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != "OK" {
		t.Errorf("health = %d %q", w.Code, w.Body.String())
	}
}
