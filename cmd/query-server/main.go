package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mohadmed-adel/firebase-query-server/internal/database"
	"github.com/mohadmed-adel/firebase-query-server/internal/helper"
	"github.com/mohadmed-adel/firebase-query-server/internal/logger"
	"github.com/mohadmed-adel/firebase-query-server/internal/route"
)

func main() {
	env := os.Getenv("APP_ENV")
	fmt.Println("Environment: ", env)
	envPath := ""

	if env == "" {
		_ = os.Setenv("APP_ENV", "development")
		env = "development"
		envPath = "config/.env.dev"
	} else if env == "development" {
		envPath = "config/.env.dev"
	} else if env == "staging" {
		envPath = "config/.env.staging"
	} else if env == "production" {
		envPath = "config/.env.production"
	}

	// Set the environment variable for the server config
	if err := helper.SetServerConfig(envPath); err != nil {
		fmt.Printf("Error setting server config: %v\n", err)
		os.Exit(1)
	}

	// Initialize the logger
	logger.Init()
	db := database.InitDatabase()

	// Initialize the server
	router := route.InitRoutes(db)

	// Start the server with graceful shutdown
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	// Run server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.AppLogger.Fatal().Err(err).Msg("Error starting server")
		}
	}()

	logger.AppLogger.Info().Str("port", port).Msg("Geofence logs query server started")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.AppLogger.Info().Msg("Shutting down server...")

	// Create context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown the server gracefully
	if err := srv.Shutdown(ctx); err != nil {
		logger.AppLogger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.AppLogger.Info().Msg("Server exited gracefully")
}
