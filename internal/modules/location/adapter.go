// README: Location Provider Adapter. Wraps whatever GPS source the vehicle
// has behind a never-failing Current(); serves the static home fallback until
// a live fix arrives, and damps GPS jitter so the position marker holds still
// at a red light.
package location

import (
	"context"
	"log"
	"math"
	"sync"
	"time"

	"cardash/internal/config"
	"cardash/internal/types"
)

// jitterThresholdDeg ≈ 100 m per axis; a new fix closer than this to the
// previous one is treated as noise and ignored.
const jitterThresholdDeg = 0.001

// Source yields device position readings. Implementations may fail freely;
// the adapter treats every failure as normal degraded operation.
type Source interface {
	Position(ctx context.Context) (types.Coordinate, error)
}

// ReverseGeocoder resolves a coordinate to a settlement name.
type ReverseGeocoder interface {
	PlaceName(ctx context.Context, coord types.Coordinate) (string, error)
}

type Adapter struct {
	mu        sync.RWMutex
	state     State
	listeners []func(State)

	reverse ReverseGeocoder // nil disables place-name refresh
}

func NewAdapter(cfg config.LocationConfig, reverse ReverseGeocoder) *Adapter {
	return &Adapter{
		state: State{
			Coord:    types.Coordinate{Lat: cfg.FallbackLat, Lng: cfg.FallbackLng},
			Place:    cfg.FallbackName,
			Timezone: cfg.Timezone,
			HasFix:   false,
		},
		reverse: reverse,
	}
}

// Current never fails: the last live fix when one exists, else the fallback.
func (a *Adapter) Current() types.Coordinate {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state.Coord
}

// Snapshot returns a copy of the full location state.
func (a *Adapter) Snapshot() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// OnUpdate registers a listener invoked after every accepted fix. Listeners
// run outside the adapter's lock, in registration order.
func (a *Adapter) OnUpdate(fn func(State)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listeners = append(a.listeners, fn)
}

// SetTimezone updates the timezone identifier (fed from the weather source,
// which is the only collaborator that reports it).
func (a *Adapter) SetTimezone(tz string) {
	if tz == "" {
		return
	}
	a.mu.Lock()
	a.state.Timezone = tz
	a.mu.Unlock()
}

// Apply offers a new fix to the adapter. The first live fix is always
// accepted; afterwards a fix must move more than the jitter threshold on at
// least one axis. Reports whether the fix was accepted.
func (a *Adapter) Apply(ctx context.Context, fix types.Coordinate) bool {
	if !fix.Valid() {
		return false
	}

	a.mu.Lock()
	if a.state.HasFix &&
		math.Abs(fix.Lat-a.state.Coord.Lat) <= jitterThresholdDeg &&
		math.Abs(fix.Lng-a.state.Coord.Lng) <= jitterThresholdDeg {
		a.mu.Unlock()
		return false
	}
	a.state.Coord = fix
	a.state.HasFix = true
	a.state.UpdatedAt = time.Now()
	reverse := a.reverse
	a.mu.Unlock()

	if reverse != nil {
		// Best effort: the previous place name survives a lookup failure.
		if place, err := reverse.PlaceName(ctx, fix); err == nil {
			a.mu.Lock()
			a.state.Place = place
			a.mu.Unlock()
		}
	}

	a.notify()
	return true
}

func (a *Adapter) notify() {
	a.mu.RLock()
	snap := a.state
	listeners := make([]func(State), len(a.listeners))
	copy(listeners, a.listeners)
	a.mu.RUnlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

// RunPoller polls the source on a fixed interval, applying each reading.
// Source failures are silent: the fallback (or last fix) keeps serving.
func (a *Adapter) RunPoller(ctx context.Context, src Source, interval time.Duration) {
	if src == nil {
		return
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}

	poll := func() {
		fix, err := src.Position(ctx)
		if err != nil {
			return
		}
		a.Apply(ctx, fix)
	}

	poll()
	log.Printf("location poller started (every %s)", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poll()
		}
	}
}
