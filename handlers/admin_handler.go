package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/langmatch/langmatchserver/database"
)

// AdminListSessions pages through every session on the platform with
// optional language/level/status filters.
func AdminListSessions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	sessions, total, err := database.AdminListSessions(
		c.Query("language"),
		c.Query("level"),
		c.DefaultQuery("status", "all"),
		page, limit,
	)
	if err != nil {
		log.Printf("admin session list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessions":   sessions,
		"pagination": newPagination(page, limit, total),
	})
}

// AdminListMessages pages through every message on the platform with
// optional role/language/level/date filters.
func AdminListMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	messages, total, err := database.AdminListMessages(messageFilterFromQuery(c), page, limit)
	if err != nil {
		log.Printf("admin message list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages":   messages,
		"pagination": newPagination(page, limit, total),
	})
}
