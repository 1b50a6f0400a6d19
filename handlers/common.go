package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/langmatch/langmatchserver/bot"
	"github.com/langmatch/langmatchserver/websocket"
)

// Shared collaborators, wired once from main.
var (
	botPipeline *bot.Pipeline
	wsHub       *websocket.Hub
)

// SetPipeline injects the bot response pipeline.
func SetPipeline(p *bot.Pipeline) { botPipeline = p }

// SetHub injects the live-push hub.
func SetHub(h *websocket.Hub) { wsHub = h }

// Pagination is the standard list-response envelope.
type Pagination struct {
	Current int `json:"current"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
}

func newPagination(page, size, total int) Pagination {
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	return Pagination{Current: page, Pages: pages, Total: total}
}

// currentUserID reads the authenticated user from the request context,
// aborting with 401 when absent.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "se requiere autorización"})
		return uuid.Nil, false
	}
	return id, true
}
