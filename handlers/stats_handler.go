package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/langmatch/langmatchserver/database"
)

// UserStats returns the caller's practice dashboard. Admins may request
// any user's stats by id, everyone else only their own.
func UserStats(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	targetID := callerID
	if raw := c.Param("userId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id de usuario inválido"})
			return
		}
		if parsed != callerID && c.GetString("role") != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "no tienes permiso para ver estas estadísticas"})
			return
		}
		targetID = parsed
	}

	overview, byLanguage, byLevel, daily, err := database.UserStats(targetID)
	if err != nil {
		log.Printf("user stats failed for %s: %v", targetID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"overview":      overview,
		"byLanguage":    byLanguage,
		"byLevel":       byLevel,
		"dailyActivity": daily,
	})
}

// GlobalStats returns the platform-wide dashboard. Admin only, enforced
// by the route group.
func GlobalStats(c *gin.Context) {
	overview, byLanguage, byLevel, daily, activeUsers, err := database.GlobalStats()
	if err != nil {
		log.Printf("global stats failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"overview":        overview,
		"byLanguage":      byLanguage,
		"byLevel":         byLevel,
		"dailyActivity":   daily,
		"mostActiveUsers": activeUsers,
	})
}
