package websocket

import (
	"encoding/json"
	"sync"

	"github.com/freshkart/freshkart-backend/pkg/logger"
)

// Client is one connected staff session. A principal can hold several
// sessions at once (multiple tabs, devices).
type Client struct {
	Hub         *Hub
	Conn        *Conn
	PrincipalID uint
	Send        chan []byte
}

// Hub fans stored chat messages out to every connected Admin/Administrator
// session. One channel exists; there are no rooms.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		broadcast:  make(chan []byte, 256),
	}
}

// Run owns the client set. It must run in its own goroutine for the life of
// the process.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			logger.Info("Chat client connected", map[string]interface{}{
				"principal_id": client.PrincipalID,
				"sessions":     total,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			logger.Info("Chat client disconnected", map[string]interface{}{
				"principal_id": client.PrincipalID,
				"sessions":     total,
			})

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Slow consumer; drop the session rather than block the hub.
					go h.Unregister(client)
					logger.Warn("Client send buffer full, disconnecting", map[string]interface{}{
						"principal_id": client.PrincipalID,
					})
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast sends a payload to every connected session, including the
// sender's. Delivery is best effort; the stored record is the source of
// truth.
func (h *Hub) Broadcast(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		logger.Error("Failed to marshal broadcast message", err)
		return err
	}

	select {
	case h.broadcast <- data:
		return nil
	default:
		logger.Warn("Broadcast channel full, message dropped")
		return nil
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// ConnectedSessions reports the number of live sessions.
func (h *Hub) ConnectedSessions() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
