package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/langmatch/langmatchserver/database"
	"github.com/langmatch/langmatchserver/middleware"
)

// Register creates a new account and returns a token for it.
func Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required,min=2"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "datos inválidos: " + err.Error()})
		return
	}

	if _, err := database.GetUserByEmail(req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ya existe un usuario con este email"})
		return
	} else if !errors.Is(err, database.ErrNotFound) {
		log.Printf("register lookup failed for %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	role := "user"
	if req.Role == "admin" {
		role = "admin"
	}

	user, err := database.CreateUser(req.Name, req.Email, req.Password, role)
	if err != nil {
		log.Printf("register failed for %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		log.Printf("token generation failed for %s: %v", user.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	log.Printf("user registered: %s (%s)", user.Email, user.ID)
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// Login authenticates an existing account.
func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := middleware.Authenticate(req.Email, req.Password)
	if err != nil {
		log.Printf("failed login for %s: %v", req.Email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := database.GetUserByEmail(req.Email)
	if err != nil {
		log.Printf("user lookup failed for %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	log.Printf("user logged in: %s (%s)", user.Email, user.ID)
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Me returns the profile of the authenticated caller.
func Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := database.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "usuario no encontrado"})
			return
		}
		log.Printf("profile lookup failed for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
