package main

import (
	"log"

	"github.com/consite-dev/consite-go/internal/api/handlers"
	"github.com/consite-dev/consite-go/internal/api/middleware"
	"github.com/consite-dev/consite-go/internal/api/routes"
	"github.com/consite-dev/consite-go/internal/application"
	"github.com/consite-dev/consite-go/internal/config"
	"github.com/consite-dev/consite-go/internal/config/db"
	"github.com/consite-dev/consite-go/internal/repository"
	"github.com/consite-dev/consite-go/pkg/googleauth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from environment variables and .env file
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect, create enum types and migrate schemas
	db.Init(cfg)

	jwt := middleware.NewJWT(cfg)
	google := googleauth.New(cfg.GoogleClientID)

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, cfg, jwt, google, logger)
	authMiddleware := middleware.NewAuth(repos, jwt)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogger(logger))

	h := handlers.New(services, cfg, router)
	routes.RegisterRoutes(router, h, authMiddleware)

	addr := ":" + cfg.ServerPort
	logger.Info("starting API server", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
