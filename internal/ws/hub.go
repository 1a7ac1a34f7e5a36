package ws

import (
	"encoding/json"
	"sync"

	"ripple/internal/notif"
)

// Hub tracks connected clients by user id and forwards bus events to every
// connection the affected user holds. It is the delivery half of the
// subscribe/notify model: the UI reconnects, receives events and re-runs its
// queries.
type Hub struct {
	mu         sync.RWMutex
	clients    map[string]map[*Client]bool // userID -> connections
	register   chan *Client
	unregister chan *Client
	events     chan notif.Event
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan notif.Event, 256),
	}
}

// Name implements notif.Observer.
func (h *Hub) Name() string { return "websocket_hub" }

// Update implements notif.Observer; it hands the event to the hub loop
// without blocking the publisher.
func (h *Hub) Update(event notif.Event) error {
	select {
	case h.events <- event:
	default:
		// Slow consumer; the UI will catch up on its next full query.
	}
	return nil
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.userID] == nil {
				h.clients[client.userID] = make(map[*Client]bool)
			}
			h.clients[client.userID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.clients[client.userID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.send)
					if len(conns) == 0 {
						delete(h.clients, client.userID)
					}
				}
			}
			h.mu.Unlock()

		case event := <-h.events:
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			h.mu.RLock()
			for client := range h.clients[event.UserID] {
				select {
				case client.send <- data:
				default:
					// Buffer full; drop the event for this connection.
				}
			}
			h.mu.RUnlock()
		}
	}
}
