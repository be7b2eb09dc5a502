// api/middleware/rate_limiter.go

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/flexpass/api/audit"
	flexpass_errors "github.com/flexpass/api/errors"
	logger "github.com/flexpass/api/logging"
	"github.com/flexpass/api/service"
	"github.com/flexpass/api/util"
)

// IdentifierFunc derives the rate-limit identifier from the request, e.g.
// the client IP or a normalized account email.
type IdentifierFunc func(c *gin.Context) string

// ClientIPIdentifier keys the limit on the caller's IP.
func ClientIPIdentifier(c *gin.Context) string {
	return c.ClientIP()
}

// RateLimiter guards one named sensitive operation. Operations without a
// configured limit pass straight through; store errors while evaluating a
// configured operation deny the call.
func RateLimiter(operation string, limits service.IRateLimitService, identify IdentifierFunc, bus *util.EventBus) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := identify(c)
		if identifier == "" {
			identifier = c.ClientIP()
		}

		allowed, err := limits.Allow(c.Request.Context(), operation, identifier)
		if err != nil {
			// Fail closed for classified operations.
			logger.Error("Rate limiting failed",
				zap.Error(err),
				zap.String("operation", operation),
				zap.String("identifier", identifier))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "rate limiting unavailable"})
			c.Abort()
			return
		}

		// Set rate limit headers
		if limit, ok := limits.Limit(operation); ok {
			c.Header("X-RateLimit-Limit", strconv.Itoa(limit.MaxAttempts))
			c.Header("X-RateLimit-Window", limit.Window.String())
		}

		if !allowed {
			logger.Warn("Rate limit exceeded",
				zap.String("operation", operation),
				zap.String("identifier", identifier))
			if bus != nil {
				bus.Publish(c.Request.Context(), audit.EventRateLimited, audit.AuthEvent{
					Timestamp: time.Now(),
					Type:      audit.EventRateLimited,
					Path:      c.Request.URL.Path,
					ClientIP:  c.ClientIP(),
					Detail:    operation,
				})
			}
			c.JSON(http.StatusTooManyRequests, gin.H{"error": flexpass_errors.ErrRateLimitExceeded.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}
