// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"worktrack-api/config"
	"worktrack-api/db"
	"worktrack-api/handler"
	"worktrack-api/logger"
	"worktrack-api/repository"
	"worktrack-api/router"
	"worktrack-api/service"

	"github.com/redis/go-redis/v9"
)

// buildRouter wires repositories, services and handlers onto a single router.
// It is shared between the real server and the integration test harness.
func buildRouter(database *sql.DB, redisClient *redis.Client) http.Handler {
	userRepo := repository.NewUserRepository(database)
	tokenRepo := repository.NewTokenRepository(database)
	workloadRepo := repository.NewWorkloadRepository(database)
	tripRepo := repository.NewTripRepository(database)

	var cache service.ICacheClient
	if redisClient != nil {
		cache = redisClient
	}

	authService := service.NewAuthService(userRepo, tokenRepo)
	employeeService := service.NewEmployeeService(userRepo, authService, cache)
	workloadService := service.NewWorkloadService(workloadRepo, userRepo, cache)
	tripService := service.NewTripService(tripRepo, userRepo)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	workloadHandler := handler.NewWorkloadHandler(workloadService)
	tripHandler := handler.NewTripHandler(tripService)

	return router.NewRouter(authService, authHandler, employeeHandler, workloadHandler, tripHandler)
}

// TestApp exposes the wired router and database handle to integration tests.
type TestApp struct {
	DB     *sql.DB
	Router http.Handler
}

func NewTestApp(database *sql.DB, redisClient *redis.Client) *TestApp {
	return &TestApp{
		DB:     database,
		Router: buildRouter(database, redisClient),
	}
}

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	redisClient, err := db.ConnectRedis()
	if err != nil {
		// The app degrades gracefully without the cache; only log it.
		logger.Log.WithError(err).Warn("Redis unavailable, continuing without cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	r := buildRouter(database, redisClient)

	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
