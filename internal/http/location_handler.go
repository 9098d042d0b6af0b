// README: Location handlers: current position and manual fix injection.
// PUT /api/location is how an external GPS bridge pushes readings when the
// kiosk is not polling one itself.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cardash/internal/modules/location"
	"cardash/internal/types"
)

type LocationHandler struct {
	adapter *location.Adapter
}

func NewLocationHandler(adapter *location.Adapter) *LocationHandler {
	return &LocationHandler{adapter: adapter}
}

func (h *LocationHandler) Get(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.adapter.Snapshot())
}

type fixReq struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (h *LocationHandler) Update(c *gin.Context) {
	var req fixReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	fix := types.Coordinate{Lat: req.Lat, Lng: req.Lng}
	if !fix.Valid() {
		writeError(c, http.StatusBadRequest, "coordinate out of range")
		return
	}

	accepted := h.adapter.Apply(c.Request.Context(), fix)
	writeJSON(c, http.StatusOK, gin.H{"accepted": accepted, "state": h.adapter.Snapshot()})
}
