package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/flexpass/api/audit"
	"github.com/flexpass/api/config"
	"github.com/flexpass/api/controller"
	"github.com/flexpass/api/dao"
	"github.com/flexpass/api/db"
	logger "github.com/flexpass/api/logging"
	"github.com/flexpass/api/middleware"
	"github.com/flexpass/api/router"
	"github.com/flexpass/api/service"
	"github.com/flexpass/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg := config.GetConfig()

	// Initialize logger
	logger.InitLogger("logging")
	defer logger.Sync()

	// Initialize Postgres
	gdb, err := db.NewDB(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize Postgres", zap.Error(err))
	}
	defer db.CloseDB(gdb)

	// Initialize Redis
	redisClient, err := db.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis(redisClient)

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize audit sink and subscribe it to auth events
	auditRepository, err := audit.NewElasticsearchRepository(cfg.Elasticsearch.URL)
	if err != nil {
		logger.Fatal("Failed to initialize audit repository", zap.Error(err))
	}
	auditService := audit.NewService(auditRepository)
	auditHandler := func(_ context.Context, event util.Event) error {
		authEvent, ok := event.Payload.(audit.AuthEvent)
		if !ok {
			return fmt.Errorf("unexpected audit payload %T", event.Payload)
		}
		// Index with a fresh context: the publishing request is already gone.
		indexCtx, indexCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer indexCancel()
		return auditService.LogEvent(indexCtx, authEvent)
	}
	eventBus.Subscribe(audit.EventAccessDenied, auditHandler)
	eventBus.Subscribe(audit.EventInvalidTenantHeader, auditHandler)
	eventBus.Subscribe(audit.EventRateLimited, auditHandler)

	// Initialize DAOs
	identityDAO := dao.NewIdentityDAO(gdb)
	tenantDAO := dao.NewTenantDAO(gdb)
	membershipDAO := dao.NewMembershipDAO(gdb)

	// Initialize services
	accessCache := service.NewAccessCacheService(redisClient, identityDAO, tenantDAO, membershipDAO, cfg.Auth)
	rateLimits := service.NewRateLimitService(redisClient, cfg.RateLimit)
	notificationService := util.NewNotificationService()

	// Initialize the token verifier
	jwksClient := middleware.NewJWKSClient(cfg.Auth.JwksURL, 15*time.Minute)
	verifier := middleware.NewJWTVerifier(jwksClient, cfg.Auth.Issuer)

	// Initialize controllers
	accountController := controller.NewAccountController(notificationService)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(cfg, verifier, accessCache, rateLimits, accountController, eventBus)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
