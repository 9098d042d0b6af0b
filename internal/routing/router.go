// Package routing plans driving routes between two coordinates through an
// external routing service. Providers implement the Router interface; the
// session layer owns the retry policy, so providers never retry internally.
package routing

import (
	"context"
	"errors"

	"cardash/internal/types"
)

var (
	// ErrRouteNotFound means the service found no viable path between the
	// points. Terminal for that destination; retrying will not help.
	ErrRouteNotFound = errors.New("no viable route to destination")

	// ErrNetwork covers unreachable service, timeouts, and malformed replies.
	ErrNetwork = errors.New("routing service unavailable")
)

// StepType values follow the OSRM maneuver vocabulary on the wire.
type StepType string

const (
	StepDepart         StepType = "depart"
	StepArrive         StepType = "arrive"
	StepTurn           StepType = "turn"
	StepMerge          StepType = "merge"
	StepRampOn         StepType = "on ramp"
	StepRampOff        StepType = "off ramp"
	StepFork           StepType = "fork"
	StepEndOfRoad      StepType = "end of road"
	StepContinue       StepType = "continue"
	StepRoundabout     StepType = "roundabout"
	StepRotary         StepType = "rotary"
	StepRoundaboutTurn StepType = "roundabout turn"
	StepExitRoundabout StepType = "exit roundabout"
	StepExitRotary     StepType = "exit rotary"
	StepNotification   StepType = "notification"
)

// Modifier refines a maneuver's direction; empty when not applicable.
type Modifier string

const (
	ModLeft        Modifier = "left"
	ModRight       Modifier = "right"
	ModSlightLeft  Modifier = "slight left"
	ModSlightRight Modifier = "slight right"
	ModSharpLeft   Modifier = "sharp left"
	ModSharpRight  Modifier = "sharp right"
	ModStraight    Modifier = "straight"
	ModUturn       Modifier = "uturn"
)

// Step is one turn-by-turn instruction of a route.
type Step struct {
	Type           StepType `json:"type"`
	Modifier       Modifier `json:"modifier,omitempty"`
	DistanceMeters float64  `json:"distanceMeters"`
	StreetName     string   `json:"streetName,omitempty"`
}

// Route is an immutable value once returned by a provider: geometry always
// has at least two points and Steps is never mutated afterwards.
type Route struct {
	Geometry        []types.Coordinate `json:"geometry"`
	DistanceMeters  float64            `json:"distanceMeters"`
	DurationSeconds float64            `json:"durationSeconds"`
	Steps           []Step             `json:"steps"`
}

// Router plans a driving route with full geometry and step annotations.
type Router interface {
	Plan(ctx context.Context, origin, dest types.Coordinate) (*Route, error)
}
