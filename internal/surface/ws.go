// README: WebSocket-backed Surface. Each draw operation becomes a JSON
// command the kiosk pane applies to its Leaflet map.
package surface

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"cardash/internal/types"
)

type command struct {
	Op      string             `json:"op"`
	ID      LayerID            `json:"id,omitempty"`
	Points  []types.Coordinate `json:"points,omitempty"`
	Point   *types.Coordinate  `json:"point,omitempty"`
	Line    *PolylineStyle     `json:"line,omitempty"`
	Marker  *MarkerStyle       `json:"marker,omitempty"`
	Padding int                `json:"padding,omitempty"`
	Center  *types.Coordinate  `json:"center,omitempty"`
	Zoom    int                `json:"zoom,omitempty"`
}

// WSSurface renders onto whichever kiosk panes are attached to its channel.
type WSSurface struct {
	kind Kind
	hub  *Hub
}

func NewWSSurface(kind Kind, hub *Hub) *WSSurface {
	return &WSSurface{kind: kind, hub: hub}
}

// Channel is the hub channel this surface broadcasts on.
func (s *WSSurface) Channel() string { return "surface:" + string(s.kind) }

func (s *WSSurface) Kind() Kind { return s.kind }

func (s *WSSurface) AddPolyline(points []types.Coordinate, style PolylineStyle) LayerID {
	id := LayerID(uuid.NewString())
	s.send(command{Op: "addPolyline", ID: id, Points: points, Line: &style})
	return id
}

func (s *WSSurface) AddMarker(point types.Coordinate, style MarkerStyle) LayerID {
	id := LayerID(uuid.NewString())
	s.send(command{Op: "addMarker", ID: id, Point: &point, Marker: &style})
	return id
}

func (s *WSSurface) RemoveLayer(id LayerID) {
	s.send(command{Op: "removeLayer", ID: id})
}

func (s *WSSurface) FitBounds(points []types.Coordinate, padding int) {
	s.send(command{Op: "fitBounds", Points: points, Padding: padding})
}

func (s *WSSurface) SetView(center types.Coordinate, zoom int) {
	s.send(command{Op: "setView", Center: &center, Zoom: zoom})
}

func (s *WSSurface) send(cmd command) {
	data, err := json.Marshal(cmd)
	if err != nil {
		log.Printf("surface %s: marshal %s: %v", s.kind, cmd.Op, err)
		return
	}
	s.hub.Broadcast(s.Channel(), data)
}
