package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	gommonlog "github.com/labstack/gommon/log"

	"gatepass/internal/auth"
	"gatepass/internal/cache"
	"gatepass/internal/config"
	"gatepass/internal/db"
	"gatepass/internal/handler"
	"gatepass/internal/repository"
	"gatepass/internal/router"
	"gatepass/internal/service"
)

// @title Gate Pass API
// @version 1.0
// @description Campus gate pass workflow: students request, faculty decide, security verifies.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token. The gatepass_session cookie works too.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(logLevel(cfg.LogLevel))

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		if err := db.Reset(gormDB); err != nil {
			log.Printf("Warning: failed to drop tables: %v", err)
		} else {
			log.Println("Tables dropped")
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("%v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("Warning: redis unavailable at %s, logout revocation and view caching are disabled: %v", cfg.RedisAddr, err)
	}
	if cfg.JWTSecret == "change-me" {
		log.Println("Warning: JWT_SECRET is the default value; set it before exposing the service")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	gatePassRepo := repository.NewGatePassRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize services
	credentialService := service.NewCredentialService(userRepo)
	identityService := service.NewIdentityService(credentialService, jwtService, sessionStore)
	workflowService := service.NewWorkflowService(gatePassRepo, cacheClient, cfg.WorkflowStrict)
	dashboardService := service.NewDashboardService(gatePassRepo, cacheClient)
	if !cfg.WorkflowStrict {
		log.Println("WORKFLOW_STRICT=false: faculty decisions may overwrite earlier ones")
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(credentialService, identityService, cfg.CookieSecure)
	gatePassHandler := handler.NewGatePassHandler(workflowService, dashboardService)
	healthHandler := handler.NewHealthHandler(gormDB, cacheClient)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		identityService,
		authHandler,
		gatePassHandler,
		healthHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: http://%s/swagger/index.html", swaggerHost)

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("Server exiting")
}

func logLevel(level string) gommonlog.Lvl {
	switch level {
	case "debug":
		return gommonlog.DEBUG
	case "warn":
		return gommonlog.WARN
	case "error":
		return gommonlog.ERROR
	case "off":
		return gommonlog.OFF
	default:
		return gommonlog.INFO
	}
}
