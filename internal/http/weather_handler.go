// README: Weather handler; reports conditions at the current position.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cardash/internal/modules/location"
	"cardash/internal/weather"
)

type WeatherHandler struct {
	weather *weather.Client
	locator *location.Adapter
}

func NewWeatherHandler(w *weather.Client, locator *location.Adapter) *WeatherHandler {
	return &WeatherHandler{weather: w, locator: locator}
}

func (h *WeatherHandler) Current(c *gin.Context) {
	report, err := h.weather.Current(c.Request.Context(), h.locator.Current())
	if err != nil {
		writeWeatherError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, report)
}
