package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/livescore-service/internal/api/handlers"
	"github.com/stitts-dev/livescore-service/internal/api/middleware"
	"github.com/stitts-dev/livescore-service/internal/cache"
	"github.com/stitts-dev/livescore-service/internal/config"
	"github.com/stitts-dev/livescore-service/internal/logger"
	"github.com/stitts-dev/livescore-service/internal/services"
	"github.com/stitts-dev/livescore-service/internal/sports/registry"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Initialize structured logger with service context
	log := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	logger.WithService(log, "livescore-service").WithFields(logrus.Fields{
		"environment": cfg.Env,
		"port":        cfg.Port,
		"mock_data":   cfg.UseMockSportsData || !cfg.HasSportsAPI(),
	}).Info("Starting livescore service")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize services
	gameCache := cache.New(cfg.CacheMaxSize, cfg.CacheTTL, log)
	sportRegistry := registry.New()
	gameService := services.NewGameService(sportRegistry, gameCache, cfg, log)

	prefetcher := services.NewPrefetcher(gameService, cfg, log)
	if err := prefetcher.Start(); err != nil {
		logger.WithService(log, "livescore-service").Fatalf("Failed to start prefetcher: %v", err)
	}
	defer prefetcher.Stop()

	// Initialize router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	sportsHandler := handlers.NewSportsHandler(gameService, log)
	healthHandler := handlers.NewHealthHandler(cfg, gameCache, log)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/sports", sportsHandler.ListSports)

		apiV1.GET("/games", sportsHandler.GetGames)
		apiV1.GET("/games/:gameID/details", sportsHandler.GetGameDetails)
		apiV1.GET("/games/:gameID/lineup", sportsHandler.GetLineup)
		apiV1.GET("/games/:gameID/head-to-head", sportsHandler.GetTeamVs)

		apiV1.GET("/rankings", sportsHandler.GetTeamRank)
		apiV1.GET("/players/:playerID/season-stats", sportsHandler.GetPlayerSeasonStats)

		apiV1.GET("/cache", sportsHandler.GetCacheInfo)
		apiV1.DELETE("/cache", sportsHandler.ClearCache)
	}

	// Health check endpoints (support both GET and HEAD)
	router.GET("/health", healthHandler.GetHealth)
	router.HEAD("/health", healthHandler.GetHealth)
	router.GET("/ready", healthHandler.GetReady)
	router.HEAD("/ready", healthHandler.GetReady)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.WithService(log, "livescore-service").WithField("port", cfg.Port).Info("Livescore service started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithService(log, "livescore-service").Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.WithService(log, "livescore-service").Info("Shutting down livescore service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithService(log, "livescore-service").Fatalf("Livescore service forced to shutdown: %v", err)
	}

	logger.WithService(log, "livescore-service").Info("Livescore service exited")
}
