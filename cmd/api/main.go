package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"wealthyways/internal/config"
	"wealthyways/internal/database"
	"wealthyways/internal/logger"
	"wealthyways/internal/metrics"
	"wealthyways/internal/middleware"
	"wealthyways/internal/router"
	"wealthyways/internal/validator"
)

// @title           WealthyWays API
// @version         1.0
// @description     WealthyWays is a personal finance ledger: transactions, monthly budgets, savings goals and monthly summaries.

// @host      localhost:8080
// @BasePath  /api/v1

const shutdownTimeout = 30 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	limiter := middleware.NewRateLimiter(appConfig.RateLimitRPS, appConfig.RateLimitBurst)
	engine := router.New(dbManager.DB(), router.Options{
		Metrics:     metrics.New(),
		RateLimiter: limiter,
	})

	srv := &http.Server{
		Addr:           ":" + appConfig.Port,
		Handler:        engine,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Starting WealthyWays server on port %s (db driver: %s)", appConfig.Port, dbConfig.Driver)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return limiter.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		log.Info("Server stopped gracefully")
		return nil
	})

	return g.Wait()
}
