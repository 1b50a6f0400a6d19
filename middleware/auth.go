package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/langmatch/langmatchserver/database"
)

// jwtKey signs every issued token.
var jwtKey []byte

func init() {
	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		// A real deployment must set the secret; this default only keeps
		// local development running.
		log.Println("warning: JWT_SECRET_KEY not set, using development key")
		jwtSecret = "development_key_do_not_use_in_production"
	}
	jwtKey = []byte(jwtSecret)
}

// JWTClaims is the token payload.
type JWTClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token and stores the caller's
// identity in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token de acceso requerido"})
			c.Abort()
			return
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		claims, err := validateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token inválido o expirado"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// AdminOnly rejects callers whose token does not carry the admin role.
// Must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "acceso denegado: se requiere rol admin"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GenerateToken issues a 7-day token for the user.
func GenerateToken(userID uuid.UUID, role string) (string, error) {
	expirationTime := time.Now().Add(7 * 24 * time.Hour)

	claims := &JWTClaims{
		UserID: userID.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "langmatch-server",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ValidateToken checks and parses a token (exported for the websocket
// handshake, which carries the token in a query parameter).
func ValidateToken(tokenString string) (*JWTClaims, error) {
	return validateToken(tokenString)
}

func validateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok {
		return nil, errors.New("malformed token claims")
	}

	return claims, nil
}

// Authenticate checks credentials and returns a signed token.
func Authenticate(email, password string) (string, error) {
	user, err := database.GetUserByEmail(email)
	if err != nil {
		return "", errors.New("credenciales inválidas")
	}

	if err := database.VerifyPassword(password, user.PasswordHash); err != nil {
		return "", errors.New("credenciales inválidas")
	}

	if err := database.TouchLastLogin(user.ID); err != nil {
		log.Printf("could not record last login for %s: %v", user.Email, err)
	}

	return GenerateToken(user.ID, user.Role)
}
