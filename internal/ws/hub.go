package ws

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

type message struct {
	userID  uuid.UUID
	payload []byte
}

// Hub fans batch progress messages out to connected clients. A client that
// subscribed to a user only receives that user's messages.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan message
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan message, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mutex.Unlock()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Debug("ws connected", "component", "ws", "user_id", client.userID, "total_clients", total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Debug("ws disconnected", "component", "ws", "total_clients", total)

		case msg := <-h.broadcast:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				if c.wants(msg.userID) {
					targets = append(targets, c)
				}
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					h.drop(client)
				}
			}
		}
	}
}

// drop removes a client whose send buffer is full.
func (h *Hub) drop(c *Client) {
	h.mutex.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mutex.Unlock()
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Broadcast queues payload for clients watching userID. It never blocks; when
// the queue is full the message is dropped.
func (h *Hub) Broadcast(userID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- message{userID: userID, payload: payload}:
	default:
		h.logger.Warn("ws broadcast dropped", "component", "ws", "reason", "buffer_full")
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
