// README: Navigation session model. The session is the single aggregate
// root of the dashboard's routing state; everything drawn on the map panes
// derives from a Snapshot of it.
package nav

import (
	"cardash/internal/routing"
	"cardash/internal/types"
)

// Status is the session's state-machine position.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusSearching Status = "searching"
	StatusPlanning  Status = "route_planning"
	StatusActive    Status = "route_active"
	StatusError     Status = "error"
)

// Destination is a geocoded place the driver picked.
type Destination struct {
	Name  string           `json:"name"`
	Coord types.Coordinate `json:"coord"`
}

// StepView is one turn-by-turn instruction prepared for display.
type StepView struct {
	Text          string `json:"text"`
	Icon          string `json:"icon"`
	Street        string `json:"street"`
	DistanceLabel string `json:"distanceLabel"`
}

// RouteSummary carries the display-ready aggregates of the active route.
type RouteSummary struct {
	DistanceLabel   string     `json:"distanceLabel"`
	DurationLabel   string     `json:"durationLabel"`
	DistanceMeters  float64    `json:"distanceMeters"`
	DurationSeconds float64    `json:"durationSeconds"`
	Steps           []StepView `json:"steps"`
}

// Snapshot is an immutable copy of the session state. The renderer and the
// HTTP layer only ever see Snapshots, never the live session.
type Snapshot struct {
	Status      Status           `json:"status"`
	Query       string           `json:"query,omitempty"`
	Origin      types.Coordinate `json:"origin"`
	Destination *Destination     `json:"destination,omitempty"`
	Route       *routing.Route   `json:"route,omitempty"`
	Summary     *RouteSummary    `json:"summary,omitempty"`
	LastError   string           `json:"lastError,omitempty"`
}
