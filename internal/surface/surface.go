// Package surface abstracts a map rendering target. The navigation layer
// only ever talks to this interface; how many surfaces exist and where they
// live (the kiosk's overview and full map panes, a test fake) is wiring.
package surface

import "cardash/internal/types"

// Kind tells the renderer which styling profile a surface gets.
type Kind string

const (
	KindFull     Kind = "full"
	KindOverview Kind = "overview"
)

// LayerID identifies a drawn artifact so it can be removed later.
type LayerID string

type PolylineStyle struct {
	Color   string  `json:"color"`
	Weight  int     `json:"weight"`
	Opacity float64 `json:"opacity"`
}

type MarkerStyle struct {
	Icon  string `json:"icon"`
	Label string `json:"label,omitempty"`
}

// Surface is a map rendering target. Implementations own their transport;
// a surface that cannot deliver an operation drops it and lets the next
// full render reconcile the picture.
type Surface interface {
	Kind() Kind
	AddPolyline(points []types.Coordinate, style PolylineStyle) LayerID
	AddMarker(point types.Coordinate, style MarkerStyle) LayerID
	RemoveLayer(id LayerID)
	FitBounds(points []types.Coordinate, padding int)
	SetView(center types.Coordinate, zoom int)
}
