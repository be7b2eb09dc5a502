// api/router/router.go

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flexpass/api/config"
	"github.com/flexpass/api/controller"
	"github.com/flexpass/api/middleware"
	"github.com/flexpass/api/service"
	"github.com/flexpass/api/util"
)

func SetupRouter(
	cfg *config.Configuration,
	verifier middleware.TokenVerifier,
	access service.IAccessCacheService,
	limits service.IRateLimitService,
	accountController *controller.AccountController,
	bus *util.EventBus,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.TenantAccess(cfg.Auth, verifier, access, bus))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Sensitive identity-mutating operation: authentication-exempt, bounded
	// per target address.
	router.POST("/password-reset",
		middleware.RateLimiter("password_reset", limits, controller.PasswordResetIdentifier, bus),
		accountController.RequestPasswordReset,
	)

	api := router.Group("/api/v1")
	accountController.RegisterRoutes(api)

	return router
}
