package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware ограничивает общий поток запросов к API.
func RateLimitMiddleware(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Health-check не лимитируем
		if c.Request.URL.Path == "/health" || c.Request.URL.Path == "/api/v1/health" {
			c.Next()
			return
		}

		if !limiter.Allow() {
			log.Printf("Rate limit blocked IP: %s for path: %s",
				c.ClientIP(), c.Request.URL.Path)

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate limit exceeded",
				"message": "please try again later",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
