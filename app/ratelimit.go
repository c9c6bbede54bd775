package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit sheds requests with a JSON 429 once the shared bucket is empty.
func RateLimit(l *rate.Limiter) gin.HandlerFunc {
	return RateLimitWith(l, func(c *gin.Context) {
		c.JSON(http.StatusTooManyRequests, H{"error": "too many requests"})
	})
}

// RateLimitWith runs reject in place of the route once the bucket is empty.
func RateLimitWith(l *rate.Limiter, reject gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow() {
			reject(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminLimiter builds the bucket shared by all admin mutation routes.
func (a *App) AdminLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(a.Config.AdminRatePerSec), a.Config.AdminBurst)
}
