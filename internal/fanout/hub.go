package fanout

import (
	"context"
	"log/slog"
	"sync"

	"headset-lending-backend/internal/core/domain"
	portssvc "headset-lending-backend/internal/core/ports/services"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Hub fans committed state-change events out to every connected observer.
//
// A single goroutine owns the client set, so every observer sees events in
// the exact order they were published; per-client buffered send channels keep
// one slow connection from blocking the rest. A client whose buffer fills up
// is disconnected and must resynchronize through the read projections, which
// is the documented recovery path for missed events.
type Hub struct {
	logger *slog.Logger

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	clients map[*Client]bool

	// presence tracks connected observers by user id, diagnostics only.
	presenceMu sync.Mutex
	presence   map[string]int
}

// NewHub creates a fan-out hub. Call Run before registering clients.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:     logger,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		clients:    make(map[*Client]bool),
		presence:   make(map[string]int),
	}
}

// Ensure Hub implements the allocator's publisher port
var _ portssvc.EventPublisherSvc = (*Hub)(nil)

// Run owns the client set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.trackConnect(client.userID)
			h.logger.Info("Observer connected",
				slog.String("user_id", client.userID),
				slog.Int("observers", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.dropClient(client)
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Buffer full: the connection is too far behind to keep
					// its ordering guarantee, so cut it loose.
					h.logger.Warn("Observer send buffer full, disconnecting",
						slog.String("user_id", client.userID))
					h.dropClient(client)
				}
			}

		case <-ctx.Done():
			for client := range h.clients {
				h.dropClient(client)
			}
			return
		}
	}
}

// Publish sends one normalized event to all connected observers. It never
// blocks the caller on any individual observer and never returns an error:
// fan-out failures must not affect the committed transition.
func (h *Hub) Publish(event domain.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to encode fan-out event",
			slog.String("type", string(event.Type)),
			slog.String("error", err.Error()))
		return
	}
	h.broadcast <- payload
}

// Register attaches a client to the hub.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister detaches a client from the hub.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// ConnectedUsers reports how many distinct users hold at least one open
// observer connection. Diagnostics only, never used for authorization.
func (h *Hub) ConnectedUsers() int {
	h.presenceMu.Lock()
	defer h.presenceMu.Unlock()
	return len(h.presence)
}

func (h *Hub) dropClient(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.trackDisconnect(client.userID)
	h.logger.Info("Observer disconnected",
		slog.String("user_id", client.userID),
		slog.Int("observers", len(h.clients)))
}

func (h *Hub) trackConnect(userID string) {
	h.presenceMu.Lock()
	defer h.presenceMu.Unlock()
	h.presence[userID]++
}

func (h *Hub) trackDisconnect(userID string) {
	h.presenceMu.Lock()
	defer h.presenceMu.Unlock()
	if h.presence[userID] <= 1 {
		delete(h.presence, userID)
	} else {
		h.presence[userID]--
	}
}
