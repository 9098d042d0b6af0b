// README: API server; registers HTTP routes and delegates to module services.
package http

import (
	"github.com/gin-gonic/gin"

	"cardash/internal/http/middleware"
	"cardash/internal/modules/location"
	"cardash/internal/modules/nav"
	"cardash/internal/modules/places"
	"cardash/internal/surface"
	"cardash/internal/weather"
)

type ServerDeps struct {
	Session   *nav.Session
	Location  *location.Adapter
	Weather   *weather.Client
	Favorites *places.Store
	Recents   *places.RecentStore
	Hub       *surface.Hub
}

type Server struct {
	nav      *NavHandler
	location *LocationHandler
	weather  *WeatherHandler
	places   *PlacesHandler
	ws       *WSHandler
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		nav:      NewNavHandler(deps.Session),
		location: NewLocationHandler(deps.Location),
		weather:  NewWeatherHandler(deps.Weather, deps.Location),
		places:   NewPlacesHandler(deps.Favorites, deps.Recents),
		ws:       NewWSHandler(deps.Hub),
	}
}

func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	api := r.Group("/api")
	{
		api.POST("/nav/search", s.nav.Search)
		api.POST("/nav/route", s.nav.Route)
		api.POST("/nav/clear", s.nav.Clear)
		api.GET("/nav/session", s.nav.State)

		api.GET("/location", s.location.Get)
		api.PUT("/location", s.location.Update)

		api.GET("/weather", s.weather.Current)

		api.GET("/places/favorites", s.places.ListFavorites)
		api.POST("/places/favorites", s.places.CreateFavorite)
		api.DELETE("/places/favorites/:id", s.places.DeleteFavorite)
		api.GET("/places/recents", s.places.ListRecents)
	}

	r.GET("/ws/surface/:kind", s.ws.AttachSurface)
	r.GET("/ws/telemetry", s.ws.AttachTelemetry)
	r.GET("/ws/notifications", s.ws.AttachNotifications)

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	return r
}
