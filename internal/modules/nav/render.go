// README: Dual-surface renderer. Applies a session snapshot to every
// registered map surface the same way: always clear what was drawn before,
// then paint only when a route is active. The clear-then-paint order is what
// keeps a superseded or failed route from leaving stale markers behind.
package nav

import "cardash/internal/surface"

const (
	routeColor       = "#00d4ff"
	routeBorderColor = "#0066aa"

	fullRouteWeight     = 6
	fullBorderWeight    = 10
	overviewRouteWeight = 3

	routeOpacity       = 0.8
	routeBorderOpacity = 0.4

	fullFitPadding     = 50
	overviewFitPadding = 20

	idleZoom = 13
)

const (
	startMarkerIcon = "🚗"
	destMarkerIcon  = "🏁"
)

// Renderer tracks the layers it has drawn on each surface so a later render
// can remove exactly those. It is not safe for concurrent use; the session
// serializes calls to it.
type Renderer struct {
	surfaces []surface.Surface
	drawn    map[surface.Surface][]surface.LayerID
}

func NewRenderer(surfaces ...surface.Surface) *Renderer {
	return &Renderer{
		surfaces: surfaces,
		drawn:    make(map[surface.Surface][]surface.LayerID),
	}
}

// Render reconciles every surface with the snapshot. Idempotent: rendering
// the same snapshot twice leaves the same artifacts as rendering it once.
func (r *Renderer) Render(snap Snapshot) {
	for _, s := range r.surfaces {
		r.clearSurface(s)

		if snap.Status != StatusActive || snap.Route == nil || snap.Destination == nil {
			s.SetView(snap.Origin, idleZoom)
			continue
		}

		switch s.Kind() {
		case surface.KindOverview:
			r.paintOverview(s, snap)
		default:
			r.paintFull(s, snap)
		}
	}
}

func (r *Renderer) clearSurface(s surface.Surface) {
	for _, id := range r.drawn[s] {
		s.RemoveLayer(id)
	}
	r.drawn[s] = nil
}

func (r *Renderer) paintFull(s surface.Surface, snap Snapshot) {
	geometry := snap.Route.Geometry

	line := s.AddPolyline(geometry, surface.PolylineStyle{
		Color:   routeColor,
		Weight:  fullRouteWeight,
		Opacity: routeOpacity,
	})
	border := s.AddPolyline(geometry, surface.PolylineStyle{
		Color:   routeBorderColor,
		Weight:  fullBorderWeight,
		Opacity: routeBorderOpacity,
	})
	start := s.AddMarker(snap.Origin, surface.MarkerStyle{
		Icon:  startMarkerIcon,
		Label: "Indulás",
	})
	dest := s.AddMarker(snap.Destination.Coord, surface.MarkerStyle{
		Icon:  destMarkerIcon,
		Label: snap.Destination.Name,
	})
	r.drawn[s] = append(r.drawn[s], line, border, start, dest)

	s.FitBounds(geometry, fullFitPadding)
}

func (r *Renderer) paintOverview(s surface.Surface, snap Snapshot) {
	geometry := snap.Route.Geometry

	line := s.AddPolyline(geometry, surface.PolylineStyle{
		Color:   routeColor,
		Weight:  overviewRouteWeight,
		Opacity: routeOpacity,
	})
	r.drawn[s] = append(r.drawn[s], line)

	s.FitBounds(geometry, overviewFitPadding)
}
