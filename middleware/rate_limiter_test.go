// api/middleware/rate_limiter_test.go
package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/flexpass/api/config"
	"github.com/flexpass/api/middleware"
	mocks "github.com/flexpass/api/test/mock"
)

func limitedRouter(limits *mocks.MockIRateLimitService, identify middleware.IdentifierFunc) *gin.Engine {
	router := gin.New()
	router.POST("/password-reset",
		middleware.RateLimiter("password_reset", limits, identify, nil),
		func(c *gin.Context) { c.JSON(http.StatusAccepted, gin.H{"status": "accepted"}) },
	)
	return router
}

func TestRateLimiter_Allowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limits := mocks.NewMockIRateLimitService(ctrl)
	limits.EXPECT().Allow(gomock.Any(), "password_reset", "u1@example.com").Return(true, nil)
	limits.EXPECT().Limit("password_reset").
		Return(config.OperationLimit{MaxAttempts: 3, Window: time.Hour}, true)

	router := limitedRouter(limits, func(c *gin.Context) string { return "u1@example.com" })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/password-reset", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, time.Hour.String(), w.Header().Get("X-RateLimit-Window"))
}

func TestRateLimiter_Denied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limits := mocks.NewMockIRateLimitService(ctrl)
	limits.EXPECT().Allow(gomock.Any(), "password_reset", "u1@example.com").Return(false, nil)
	limits.EXPECT().Limit("password_reset").
		Return(config.OperationLimit{MaxAttempts: 3, Window: time.Hour}, true)

	router := limitedRouter(limits, func(c *gin.Context) string { return "u1@example.com" })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/password-reset", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimiter_StoreErrorFailsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limits := mocks.NewMockIRateLimitService(ctrl)
	limits.EXPECT().Allow(gomock.Any(), "password_reset", "u1@example.com").
		Return(false, errors.New("connection refused"))

	router := limitedRouter(limits, func(c *gin.Context) string { return "u1@example.com" })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/password-reset", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRateLimiter_EmptyIdentifierFallsBackToClientIP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limits := mocks.NewMockIRateLimitService(ctrl)
	// Identifier derivation failed; the caller's IP still bounds the operation.
	limits.EXPECT().Allow(gomock.Any(), "password_reset", gomock.Not(gomock.Eq(""))).Return(true, nil)
	limits.EXPECT().Limit("password_reset").Return(config.OperationLimit{}, false)

	router := limitedRouter(limits, func(c *gin.Context) string { return "" })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/password-reset", nil)
	req.RemoteAddr = "203.0.113.7:4242"
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
}
