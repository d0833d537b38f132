package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weddingplanner/config"
	"weddingplanner/handlers"
	"weddingplanner/routes"
	"weddingplanner/services/planner"
	"weddingplanner/services/pricing"
	"weddingplanner/services/search"
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	sessionCache := utils.GetSessionCacheClient()
	utils.StartHealthMonitor(sessionCache)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Wire the planning engine.
	searchClient := search.NewClient(
		config.AppConfig.GooglePlacesAPIKey,
		time.Duration(config.AppConfig.SearchTimeoutSeconds)*time.Second,
		logger,
	)
	sessionStore := planner.NewRedisSessionStore(
		sessionCache,
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
	plannerService := &planner.DefaultPlannerService{
		Search: searchClient,
		Store:  sessionStore,
		Pricer: pricing.NewSynthesizer(),
		Logger: logger,
	}
	plannerHandler := handlers.NewPlannerHandler(plannerService, logger)

	routes.RegisterRoutes(router, plannerHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
