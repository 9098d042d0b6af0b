// README: WebSocket attach endpoints. Kiosk panes connect here for their
// feed: a map surface, the telemetry stream, or user-facing notifications.
package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"cardash/internal/modules/vehicle"
	"cardash/internal/surface"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The kiosk webview is served from the same host; no origin policy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NotificationChannel carries the short Hungarian user-facing messages.
const NotificationChannel = "notification"

type WSHandler struct {
	hub *surface.Hub
}

func NewWSHandler(hub *surface.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

func (h *WSHandler) AttachSurface(c *gin.Context) {
	kind := surface.Kind(c.Param("kind"))
	if kind != surface.KindFull && kind != surface.KindOverview {
		writeError(c, http.StatusNotFound, "unknown surface")
		return
	}
	h.attach(c, "surface:"+string(kind))
}

func (h *WSHandler) AttachTelemetry(c *gin.Context) {
	h.attach(c, vehicle.Channel)
}

func (h *WSHandler) AttachNotifications(c *gin.Context) {
	h.attach(c, NotificationChannel)
}

func (h *WSHandler) attach(c *gin.Context, channel string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade %s: %v", channel, err)
		return
	}
	h.hub.Attach(channel, conn)
}
