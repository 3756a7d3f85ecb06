// Package events is the change feed: every successful mutation on the API
// is broadcast to connected websocket clients so other devices can refresh
// the affected collection.
package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Event describes one committed mutation.
type Event struct {
	ID       string `json:"id"`
	Resource string `json:"resource"` // e.g. "goals", "game_sessions"
	Action   string `json:"action"`   // "created", "updated", "deleted"
	EntityID uint   `json:"entity_id"`
	UserID   uint   `json:"user_id"`
}

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	stop       chan struct{}
	done       chan struct{}
	stopped    bool
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 64),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				client.Close()
			}
			h.clients = make(map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				h.clients[client] = true
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				log.Printf("ERROR [events.Hub] failed to marshal event: %v", err)
				continue
			}

			h.mu.Lock()
			for client := range h.clients {
				// Events are scoped to the owning user
				if client.userID != event.UserID {
					continue
				}
				select {
				case client.send <- data:
				default:
					// Slow consumer, drop it
					delete(h.clients, client)
					client.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	close(h.stop)
	<-h.done
}

// Publish enqueues an event for broadcast. Never blocks the API path; the
// event is dropped if the hub is saturated.
func (h *Hub) Publish(resource, action string, entityID, userID uint) {
	event := Event{
		ID:       uuid.New().String(),
		Resource: resource,
		Action:   action,
		EntityID: entityID,
		UserID:   userID,
	}

	select {
	case h.broadcast <- event:
	default:
		log.Printf("ERROR [events.Hub] broadcast buffer full, dropping %s/%s event", resource, action)
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}
