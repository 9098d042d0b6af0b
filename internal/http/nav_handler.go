// README: Navigation handlers: destination search, route planning, clear.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cardash/internal/geocode"
	"cardash/internal/modules/nav"
	"cardash/internal/types"
)

type NavHandler struct {
	session *nav.Session
}

func NewNavHandler(session *nav.Session) *NavHandler {
	return &NavHandler{session: session}
}

type searchReq struct {
	Query string `json:"query"`
}

func (h *NavHandler) Search(c *gin.Context) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	candidates, err := h.session.SubmitQuery(c.Request.Context(), req.Query)
	if err != nil {
		writeNavError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"candidates": candidates})
}

type routeReq struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

func (h *NavHandler) Route(c *gin.Context) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	coord := types.Coordinate{Lat: req.Lat, Lng: req.Lng}
	if req.Name == "" || !coord.Valid() {
		writeError(c, http.StatusBadRequest, "missing or invalid destination")
		return
	}

	err := h.session.SelectCandidate(c.Request.Context(), geocode.Candidate{
		DisplayName: req.Name,
		Coord:       coord,
	})
	if err != nil {
		writeNavError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, h.session.Snapshot())
}

func (h *NavHandler) Clear(c *gin.Context) {
	h.session.ClearRoute()
	writeJSON(c, http.StatusOK, h.session.Snapshot())
}

func (h *NavHandler) State(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.session.Snapshot())
}
