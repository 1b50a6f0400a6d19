package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/langmatch/langmatchserver/bot"
	"github.com/langmatch/langmatchserver/database"
	"github.com/langmatch/langmatchserver/handlers"
	"github.com/langmatch/langmatchserver/middleware"
	"github.com/langmatch/langmatchserver/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	if err := database.Init(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer database.Close()

	// Bot wiring: the adapter talks to the external model when configured,
	// the responder covers everything else.
	modelClient := bot.NewModelClient()
	adapter := bot.NewAdapter(modelClient, nil)
	responder := bot.NewResponder(nil)
	pipeline := bot.NewPipeline(adapter, responder)
	handlers.SetPipeline(pipeline)
	if adapter.Configured() {
		log.Println("[bot] external model adapter configured")
	} else {
		log.Println("[bot] no model configured, rule-based responses only")
	}

	hub := websocket.NewHub()
	go hub.Run()
	handlers.SetHub(hub)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	api.Use(middleware.RateLimit())
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		authorized := api.Group("/")
		authorized.Use(middleware.AuthMiddleware())
		{
			sessions := authorized.Group("/sessions")
			{
				sessions.GET("/available", handlers.AvailableOptions)
				sessions.POST("", handlers.CreateSession)
				sessions.GET("", handlers.ListSessions)
				sessions.GET("/:id", handlers.GetSession)
				sessions.PUT("/:id/end", handlers.EndSession)
				sessions.DELETE("/:id", handlers.DeleteSession)
			}

			messages := authorized.Group("/messages")
			{
				messages.POST("", handlers.SendMessage)
				messages.GET("", handlers.ListUserMessages)
				messages.GET("/session/:sessionId", handlers.ListSessionMessages)
			}

			stats := authorized.Group("/stats")
			{
				stats.GET("/user", handlers.UserStats)
				stats.GET("/user/:userId", handlers.UserStats)
				stats.GET("/global", middleware.AdminOnly(), handlers.GlobalStats)
			}

			admin := authorized.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/sessions", handlers.AdminListSessions)
				admin.GET("/messages", handlers.AdminListMessages)
			}
		}
	}

	r.GET("/ws", handlers.ServeWS)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	addr := ":" + envOr("PORT", "8080")
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func allowedOrigins() []string {
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		return strings.Split(v, ",")
	}
	return []string{"http://localhost:3000"}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
