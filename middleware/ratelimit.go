package middleware

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	rateLimitWindow = 15 * time.Minute
	rateLimitMax    = 100
)

// RateLimit counts requests per client IP in Redis and rejects callers that
// exceed rateLimitMax inside the window. Without REDIS_ADDR the middleware
// is a no-op, so single-node deployments can run without Redis.
func RateLimit() gin.HandlerFunc {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, rate limiting disabled")
		return func(c *gin.Context) { c.Next() }
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		key := "ratelimit:" + c.ClientIP()
		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			// A broken limiter must not take the API down.
			log.Printf("rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			if err := client.Expire(ctx, key, rateLimitWindow).Err(); err != nil {
				log.Printf("rate limiter expire failed: %v", err)
			}
		}

		if count > rateLimitMax {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "demasiadas solicitudes, intenta de nuevo más tarde",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
