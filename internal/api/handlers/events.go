package handlers

import (
	"log"
	"net/http"

	"github.com/dom/league-improvement-tracker/internal/api/response"
	"github.com/dom/league-improvement-tracker/internal/events"
	"github.com/dom/league-improvement-tracker/internal/service"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type EventsHandler struct {
	authService *service.AuthService
	hub         *events.Hub
}

func NewEventsHandler(authService *service.AuthService, hub *events.Hub) *EventsHandler {
	return &EventsHandler{
		authService: authService,
		hub:         hub,
	}
}

// Serve upgrades the connection and streams the caller's change feed.
// Browsers cannot set headers on websocket requests, so the token comes in
// as a query parameter.
func (h *EventsHandler) Serve(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		response.Detail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	userID, err := h.authService.ValidateToken(token)
	if err != nil {
		response.Detail(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR [EventsHandler] websocket upgrade failed: %v", err)
		return
	}

	client := events.NewClient(h.hub, conn, userID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
