package websocket

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second    // time allowed to write one message
	pongWait       = 60 * time.Second    // max wait for a PONG
	pingPeriod     = (pongWait * 9) / 10 // how often to PING
	maxMessageSize = 512                 // max inbound message size
)

// Client is one WebSocket connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	// UserID identifies the authenticated owner of the connection.
	UserID uuid.UUID
	// SessionID scopes the subscription; uuid.Nil subscribes to all
	// sessions (admin dashboard).
	SessionID uuid.UUID
}

// NewClient wraps conn and registers it with the hub.
func NewClient(hub *Hub, conn *websocket.Conn, userID, sessionID uuid.UUID) *Client {
	client := &Client{
		hub:       hub,
		conn:      conn,
		send:      make(chan []byte, 256),
		UserID:    userID,
		SessionID: sessionID,
	}
	hub.register <- client
	return client
}

func (c *Client) wants(sessionID uuid.UUID) bool {
	return c.SessionID == uuid.Nil || c.SessionID == sessionID
}

// ReadPump drains inbound frames until the connection dies. The protocol is
// push-only; inbound payloads are discarded, but the pump keeps pong
// handling alive.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket read error: %v", err)
			}
			return
		}
	}
}

// WritePump forwards queued messages and keeps the connection alive
// with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
