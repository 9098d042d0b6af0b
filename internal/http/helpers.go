// README: HTTP helper utilities for JSON and error mapping.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cardash/internal/geocode"
	"cardash/internal/modules/nav"
	"cardash/internal/modules/places"
	"cardash/internal/routing"
	"cardash/internal/weather"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeNavError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, geocode.ErrInvalidQuery):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, geocode.ErrNoResults), errors.Is(err, routing.ErrRouteNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, nav.ErrSuperseded):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, geocode.ErrNetwork), errors.Is(err, routing.ErrNetwork):
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writePlacesError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, places.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeWeatherError(c *gin.Context, err error) {
	if errors.Is(err, weather.ErrUnavailable) {
		writeError(c, http.StatusBadGateway, err.Error())
		return
	}
	writeError(c, http.StatusInternalServerError, "internal error")
}
