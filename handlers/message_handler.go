package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/langmatch/langmatchserver/bot"
	"github.com/langmatch/langmatchserver/database"
	"github.com/langmatch/langmatchserver/websocket"
)

// SendMessage stores the user's turn, runs the response pipeline and
// returns both turns of the exchange.
func SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
		Text      string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de sesión y texto son requeridos"})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "el mensaje no puede estar vacío"})
		return
	}
	if utf8.RuneCountInString(text) > bot.MaxMessageLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "el mensaje no puede exceder 1000 caracteres"})
		return
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de sesión inválido"})
		return
	}

	session, err := database.GetSession(sessionID, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sesión no encontrada"})
			return
		}
		log.Printf("session lookup failed for %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}
	if !session.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "la sesión no está activa"})
		return
	}

	userMessage, err := database.AddMessage(session.ID, string(bot.RoleUser), text, session.Language, session.Level)
	if err != nil {
		log.Printf("user message store failed for session %s: %v", session.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	history, err := database.RecentTurns(session.ID, 10)
	if err != nil {
		// The pipeline degrades fine without history.
		log.Printf("history load failed for session %s: %v", session.ID, err)
		history = nil
	}

	sc := bot.SessionContext{Language: bot.Language(session.Language), Level: bot.Level(session.Level)}
	result := botPipeline.Respond(c.Request.Context(), text, sc, history)

	botMessage, err := database.AddMessage(session.ID, string(bot.RoleBot), result.Text, session.Language, session.Level)
	if err != nil {
		log.Printf("bot message store failed for session %s: %v", session.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}
	session.MessageCount += 2

	if data, err := websocket.NewExchangeEvent(session, userMessage, botMessage); err == nil {
		wsHub.BroadcastToSession(session.ID, data)
	} else {
		log.Printf("exchange event marshal failed: %v", err)
	}

	log.Printf("session %s exchange handled by %s strategy", session.ID, result.Strategy)
	c.JSON(http.StatusCreated, gin.H{
		"userMessage": userMessage,
		"botMessage":  botMessage,
		"strategy":    result.Strategy,
	})
}

// ListSessionMessages pages through one session's messages, oldest first.
func ListSessionMessages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de sesión inválido"})
		return
	}

	session, err := database.GetSession(sessionID, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sesión no encontrada"})
			return
		}
		log.Printf("session lookup failed for %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	messages, total, err := database.ListMessages(session.ID, page, limit)
	if err != nil {
		log.Printf("message list failed for session %s: %v", session.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages":   messages,
		"session":    session,
		"pagination": newPagination(page, limit, total),
	})
}

// ListUserMessages pages through all of the caller's messages with
// optional role/language/level/date filters.
func ListUserMessages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	messages, total, err := database.UserMessages(userID, messageFilterFromQuery(c), page, limit)
	if err != nil {
		log.Printf("message list failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages":   messages,
		"pagination": newPagination(page, limit, total),
	})
}

func messageFilterFromQuery(c *gin.Context) database.MessageFilter {
	f := database.MessageFilter{
		Role:     c.Query("role"),
		Language: c.Query("language"),
		Level:    c.Query("level"),
	}
	if v := c.Query("startDate"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			f.StartDate = &t
		}
	}
	if v := c.Query("endDate"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			f.EndDate = &t
		}
	}
	return f
}
