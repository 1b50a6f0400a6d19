package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gorilla "github.com/gorilla/websocket"

	"github.com/langmatch/langmatchserver/middleware"
	"github.com/langmatch/langmatchserver/websocket"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are enforced by the CORS layer; the handshake accepts all.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection and subscribes it to live pushes.
// Browsers cannot set headers on the handshake, so the token travels
// in a query parameter. An optional sessionId narrows the subscription
// to one session; without it the client receives everything it is
// allowed to see (admin dashboards).
func ServeWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token de acceso requerido"})
		return
	}

	claims, err := middleware.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token inválido o expirado"})
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token inválido o expirado"})
		return
	}

	sessionID := uuid.Nil
	if raw := c.Query("sessionId"); raw != "" {
		sessionID, err = uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id de sesión inválido"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := websocket.NewClient(wsHub, conn, userID, sessionID)
	go client.WritePump()
	go client.ReadPump()
}
