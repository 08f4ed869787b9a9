package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-management/config"
	"hotel-management/controllers"
	"hotel-management/repository"
	"hotel-management/routes"
	"hotel-management/services"
	"hotel-management/services/logger"
	"hotel-management/tracing"
	"hotel-management/utils"
	"hotel-management/validator"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// @title                      Hotel front desk API
// @version                    1.0
// @description                Guests, booking plans, reservations and check-in/check-out for hotel operators.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logOutput, closeLog, err := utils.LogOutput(settings.LogDir, time.Now())
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	appLogger := logger.New(logger.Options{
		Level:  logger.ParseLevel(settings.LogLevel),
		JSON:   settings.LogJSON,
		Output: logOutput,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := tracing.Init(ctx, appLogger, settings.OTLPEndpoint, "hotel-management", settings.Env)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	db, err := config.ConnectDB(ctx, settings, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	rdb, err := config.ConnectRedis(ctx, settings, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()

	repo := repository.NewHotelRepository(db)
	sessions := services.NewRedisSessionStore(rdb)

	hotelService := services.NewHotelService(services.HotelServiceOptions{
		Store:    repo,
		Logger:   appLogger,
		Location: settings.Location(),
	})
	authService := services.NewAuthService(services.AuthServiceOptions{
		Users:    repo,
		Sessions: sessions,
		Secret:   []byte(settings.TokenSecret),
		TokenTTL: settings.TokenTTL,
		Logger:   appLogger,
	})

	if err := validator.RegisterWithGin(hotelService.Today); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	router := config.InitApp(settings, appLogger)
	routes.SetupRoutes(router, routes.Dependencies{
		Hotel:  hotelService,
		Auth:   authService,
		Tokens: authService,
		Health: map[string]controllers.Pinger{
			"database": repo,
			"redis":    sessions,
		},
		Logger:       appLogger,
		CookieSecure: settings.CookieSecure,
	})

	server := &http.Server{
		Addr:         ":" + settings.Port,
		Handler:      otelhttp.NewHandler(router, "hotel-management"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		appLogger.Info("Server starting on port %s...", settings.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("server error: %v", err)
			sigChan <- syscall.SIGTERM
		}
	}()

	<-sigChan
	appLogger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("shutdown error: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		appLogger.Error("tracing shutdown error: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	appLogger.Info("server stopped")
}
