package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/langmatch/langmatchserver/bot"
	"github.com/langmatch/langmatchserver/database"
	"github.com/langmatch/langmatchserver/websocket"
)

// CreateSession starts a new practice session and posts the bot's
// welcome message.
func CreateSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Language string `json:"language" binding:"required"`
		Level    string `json:"level" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idioma y nivel son requeridos"})
		return
	}

	if !validLanguage(req.Language) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":              "idioma no soportado",
			"availableLanguages": bot.AvailableLanguages(),
		})
		return
	}
	if !validLevel(req.Level) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           "nivel no válido",
			"availableLevels": bot.AvailableLevels(),
		})
		return
	}

	session, err := database.CreateSession(userID, req.Language, req.Level)
	if err != nil {
		log.Printf("session create failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	userName := ""
	if user, err := database.GetUserByID(userID); err == nil {
		userName = user.Name
	}

	sc := bot.SessionContext{Language: bot.Language(req.Language), Level: bot.Level(req.Level)}
	welcomeText := botPipeline.Welcome(c.Request.Context(), userName, sc)

	welcome, err := database.AddMessage(session.ID, string(bot.RoleBot), welcomeText, req.Language, req.Level)
	if err != nil {
		log.Printf("welcome message store failed for session %s: %v", session.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}
	session.MessageCount++

	if data, err := websocket.NewSessionEvent("session_started", session); err == nil {
		wsHub.Broadcast(data)
	}

	log.Printf("session %s started: %s/%s for user %s", session.ID, req.Language, req.Level, userID)
	c.JSON(http.StatusCreated, gin.H{
		"session":        session,
		"welcomeMessage": welcome,
	})
}

// ListSessions returns the caller's sessions, newest first.
func ListSessions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	status := c.DefaultQuery("status", "all")

	sessions, total, err := database.ListSessions(userID, status, page, limit)
	if err != nil {
		log.Printf("session list failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessions":   sessions,
		"pagination": newPagination(page, limit, total),
	})
}

// GetSession returns one session owned by the caller.
func GetSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
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

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// EndSession finishes an active session and reports its duration.
func EndSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de sesión inválido"})
		return
	}

	session, err := database.EndSession(sessionID, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "la sesión no existe o ya está terminada"})
			return
		}
		log.Printf("session end failed for %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	if data, err := websocket.NewSessionEvent("session_ended", session); err == nil {
		wsHub.BroadcastToSession(session.ID, data)
	}

	log.Printf("session %s ended after %d minutes", session.ID, session.Duration)
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// DeleteSession removes a session and every message in it.
func DeleteSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de sesión inválido"})
		return
	}

	deleted, err := database.DeleteSession(sessionID, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sesión no encontrada"})
			return
		}
		log.Printf("session delete failed for %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	log.Printf("session %s deleted along with %d messages", sessionID, deleted)
	c.JSON(http.StatusOK, gin.H{
		"deletedSession":  sessionID,
		"deletedMessages": deleted,
	})
}

// AvailableOptions exposes the fixed language/level/topic sets for
// upstream validation and pickers.
func AvailableOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"languages": bot.AvailableLanguages(),
		"levels":    bot.AvailableLevels(),
		"topics":    bot.AvailableTopics(),
	})
}

func validLanguage(language string) bool {
	for _, l := range bot.AvailableLanguages() {
		if string(l) == language {
			return true
		}
	}
	return false
}

func validLevel(level string) bool {
	for _, l := range bot.AvailableLevels() {
		if string(l) == level {
			return true
		}
	}
	return false
}
