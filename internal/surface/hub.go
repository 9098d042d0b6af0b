// README: WebSocket hub. Kiosk panes attach to a named channel ("surface:full",
// "surface:overview", "telemetry", "notification") and receive every message
// broadcast to it. Slow clients are dropped rather than allowed to block.
package surface

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const clientSendBuffer = 64

type Client struct {
	ID      string
	Channel string
	Conn    *websocket.Conn
	Send    chan []byte
}

type broadcast struct {
	Channel string
	Data    []byte
}

type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	outbound   chan broadcast

	// OnAttach is called (from the hub goroutine) after a client joins a
	// channel, so navigation state can be re-rendered onto a fresh pane.
	OnAttach func(channel string)
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		outbound:   make(chan broadcast, 256),
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for _, c := range h.clients {
				close(c.Send)
			}
			return

		case client := <-h.register:
			h.clients[client.ID] = client
			log.Printf("surface client attached: %s (%s)", client.ID, client.Channel)
			if h.OnAttach != nil {
				h.OnAttach(client.Channel)
			}

		case client := <-h.unregister:
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
				log.Printf("surface client detached: %s", client.ID)
			}

		case msg := <-h.outbound:
			for id, client := range h.clients {
				if client.Channel != msg.Channel {
					continue
				}
				select {
				case client.Send <- msg.Data:
				default:
					// Client cannot keep up; drop it and let it reattach.
					delete(h.clients, id)
					close(client.Send)
					log.Printf("surface client dropped (slow): %s", id)
				}
			}
		}
	}
}

// Broadcast queues data for every client attached to channel. Never blocks;
// when the hub's queue is full the message is dropped and the next full
// render restores consistency.
func (h *Hub) Broadcast(channel string, data []byte) {
	select {
	case h.outbound <- broadcast{Channel: channel, Data: data}:
	default:
		log.Printf("surface hub queue full, dropping message for %s", channel)
	}
}

// Attach registers a connection on a channel and starts its writer pump.
func (h *Hub) Attach(channel string, conn *websocket.Conn) *Client {
	client := &Client{
		ID:      uuid.NewString(),
		Channel: channel,
		Conn:    conn,
		Send:    make(chan []byte, clientSendBuffer),
	}
	h.register <- client
	go client.writePump()
	go client.readPump(h)
	return client
}

func (c *Client) writePump() {
	defer c.Conn.Close()
	for data := range c.Send {
		c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

// readPump discards inbound frames; its job is noticing the close.
func (c *Client) readPump(h *Hub) {
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			h.unregister <- c
			return
		}
	}
}
