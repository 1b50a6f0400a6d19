// Package websocket pushes new practice messages to connected clients:
// the mobile app subscribes to its own session, the dashboard to everything.
package websocket

import (
	"log"

	"github.com/google/uuid"
)

// Hub tracks connections and fans messages out to them.
type Hub struct {
	clients map[*Client]bool

	broadcast chan envelope

	register   chan *Client
	unregister chan *Client
}

// envelope pairs a payload with its target session. A nil SessionID
// reaches every client.
type envelope struct {
	SessionID uuid.UUID
	Data      []byte
}

// NewHub creates an empty hub; call Run in its own goroutine.
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan envelope),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Run owns the client set; all mutation happens on this goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("websocket client connected, total: %d", len(h.clients))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("websocket client disconnected, total: %d", len(h.clients))
			}
		case env := <-h.broadcast:
			for client := range h.clients {
				if env.SessionID != uuid.Nil && !client.wants(env.SessionID) {
					continue
				}
				select {
				case client.send <- env.Data:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Broadcast sends data to every connected client.
func (h *Hub) Broadcast(data []byte) {
	h.broadcast <- envelope{Data: data}
}

// BroadcastToSession sends data to the session's subscribers plus any
// client observing all sessions (the admin dashboard).
func (h *Hub) BroadcastToSession(sessionID uuid.UUID, data []byte) {
	h.broadcast <- envelope{SessionID: sessionID, Data: data}
}
