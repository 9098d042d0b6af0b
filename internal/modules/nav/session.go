// README: Navigation session state machine. Owns the single active route,
// coordinates the geocoder, router and location adapter, and drives both
// map surfaces. Collaborator calls run outside the lock; a generation
// counter makes the latest request win when results arrive out of order.
package nav

import (
	"context"
	"errors"
	"log"
	"sync"

	"cardash/internal/geocode"
	"cardash/internal/routing"
	"cardash/internal/types"
)

// ErrSuperseded reports that a newer query or clear arrived while this
// request's collaborator call was in flight; its result was discarded.
var ErrSuperseded = errors.New("superseded by a newer request")

// Geocoder resolves free-text queries to candidate places.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]geocode.Candidate, error)
}

// Locator supplies the current best-known position. Never fails.
type Locator interface {
	Current() types.Coordinate
}

// Recents records successfully planned destinations. Implementations are
// best effort; the session ignores their failures.
type Recents interface {
	Record(ctx context.Context, name string, coord types.Coordinate) error
}

// Notifier delivers a short user-facing message to the kiosk.
type Notifier func(message string)

type Session struct {
	mu  sync.Mutex
	gen uint64

	status      Status
	query       string
	origin      types.Coordinate
	destination *Destination
	route       *routing.Route
	summary     *RouteSummary
	lastErr     string

	geocoder Geocoder
	router   routing.Router
	locator  Locator
	renderer *Renderer
	recents  Recents  // nil disables history
	notify   Notifier // nil discards messages
}

func NewSession(geocoder Geocoder, router routing.Router, locator Locator, renderer *Renderer) *Session {
	return &Session{
		status:   StatusIdle,
		geocoder: geocoder,
		router:   router,
		locator:  locator,
		renderer: renderer,
	}
}

// WithRecents wires a destination history sink.
func (s *Session) WithRecents(r Recents) *Session {
	s.recents = r
	return s
}

// WithNotifier wires the user-facing message sink.
func (s *Session) WithNotifier(n Notifier) *Session {
	s.notify = n
	return s
}

// SubmitQuery resolves a free-text destination to candidates. The session
// stays in Searching on success until one candidate is selected. Benign
// failures (too-short query, nothing found) fall back to the previous
// stable state; transport failures park the session in Error.
func (s *Session) SubmitQuery(ctx context.Context, query string) ([]geocode.Candidate, error) {
	s.mu.Lock()
	s.gen++
	myGen := s.gen
	s.status = StatusSearching
	s.query = query
	s.lastErr = ""
	s.mu.Unlock()

	candidates, err := s.geocoder.Search(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != myGen {
		return nil, ErrSuperseded
	}

	switch {
	case err == nil:
		return candidates, nil
	case errors.Is(err, geocode.ErrInvalidQuery):
		s.status = s.stableStatusLocked()
		s.say("Kérlek adj meg legalább 3 karaktert a kereséshez!")
		return nil, err
	case errors.Is(err, geocode.ErrNoResults):
		s.status = s.stableStatusLocked()
		s.say("Nem található ilyen cím. Próbálj pontosabb címet!")
		return nil, err
	default:
		s.status = StatusError
		s.lastErr = err.Error()
		s.say("Hiba történt a keresés során!")
		return nil, err
	}
}

// SelectCandidate plans a route from the current position to the chosen
// candidate and, on success, activates and renders it. The previous route's
// visuals are replaced only after the new one is ready, so a failed replan
// never blanks the map.
func (s *Session) SelectCandidate(ctx context.Context, cand geocode.Candidate) error {
	s.mu.Lock()
	s.gen++
	myGen := s.gen
	s.status = StatusPlanning
	s.lastErr = ""
	origin := s.locator.Current()
	s.mu.Unlock()

	route, err := s.router.Plan(ctx, origin, cand.Coord)

	s.mu.Lock()
	if s.gen != myGen {
		s.mu.Unlock()
		return ErrSuperseded
	}

	if err != nil {
		s.status = StatusError
		s.lastErr = err.Error()
		if errors.Is(err, routing.ErrRouteNotFound) {
			s.say("Nem sikerült útvonalat tervezni ehhez a célhoz!")
		} else {
			s.say("Hiba az útvonal tervezése során!")
		}
		s.mu.Unlock()
		return err
	}

	dest := &Destination{Name: cand.DisplayName, Coord: cand.Coord}
	s.origin = origin
	s.destination = dest
	s.route = route
	s.summary = summarize(route)
	s.status = StatusActive
	s.renderer.Render(s.snapshotLocked())
	s.mu.Unlock()

	if s.recents != nil {
		if err := s.recents.Record(ctx, dest.Name, dest.Coord); err != nil {
			log.Printf("nav: record recent destination: %v", err)
		}
	}
	return nil
}

// ClearRoute unconditionally resets the session to Idle and strips all
// route artifacts from every surface. Any in-flight request is superseded.
func (s *Session) ClearRoute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.status = StatusIdle
	s.query = ""
	s.destination = nil
	s.route = nil
	s.summary = nil
	s.lastErr = ""
	s.origin = s.locator.Current()
	s.renderer.Render(s.snapshotLocked())
}

// Rerender repaints every surface from the current state. Used when a map
// pane (re)attaches and needs the full picture.
func (s *Session) Rerender() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderer.Render(s.snapshotLocked())
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		Status:      s.status,
		Query:       s.query,
		Origin:      s.origin,
		Destination: s.destination,
		Route:       s.route,
		Summary:     s.summary,
		LastError:   s.lastErr,
	}
	if s.route == nil {
		snap.Origin = s.locator.Current()
	}
	return snap
}

// stableStatusLocked is where a benign search failure lands: back on the
// active route when one exists, otherwise Idle.
func (s *Session) stableStatusLocked() Status {
	if s.route != nil {
		return StatusActive
	}
	return StatusIdle
}

func (s *Session) say(message string) {
	if s.notify != nil {
		s.notify(message)
	}
}

func summarize(route *routing.Route) *RouteSummary {
	steps := make([]StepView, 0, len(route.Steps))
	for _, step := range route.Steps {
		text, icon := TranslateManeuver(step)
		steps = append(steps, StepView{
			Text:          text,
			Icon:          icon,
			Street:        streetOrDefault(step.StreetName),
			DistanceLabel: FormatStepDistance(step.DistanceMeters),
		})
	}
	return &RouteSummary{
		DistanceLabel:   FormatDistanceKm(route.DistanceMeters),
		DurationLabel:   FormatDuration(route.DurationSeconds),
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: route.DurationSeconds,
		Steps:           steps,
	}
}

func streetOrDefault(name string) string {
	if name == "" {
		return "Ismeretlen út"
	}
	return name
}
