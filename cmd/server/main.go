package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/config"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/database"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/logging"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/seed"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.Setup(cfg.Logging.Level)

	ctx := context.Background()

	// Open database connection
	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("connected to database", "path", cfg.Database.Path)

	// Create repositories
	transactionRepo := repository.NewTransactionRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)

	if cfg.Database.SeedSampleData {
		if _, err := seed.Load(ctx, transactionRepo, investmentRepo); err != nil {
			return err
		}
	}

	// Create services
	dashboardService := service.NewDashboardService(transactionRepo, investmentRepo, cfg.Dashboard.CacheTTL)
	transactionService := service.NewTransactionService(transactionRepo, dashboardService)
	investmentService := service.NewInvestmentService(investmentRepo, dashboardService)
	systemService := service.NewSystemService(db, map[string]bool{
		"dashboard_cache": cfg.Dashboard.CacheTTL > 0,
		"sample_data":     cfg.Database.SeedSampleData,
		"persistent_db":   cfg.Database.Path != database.MemoryPath,
	})

	scheduler := service.NewScheduler(dashboardService, logger)
	if err := scheduler.Start(); err != nil {
		return err
	}
	defer func() {
		<-scheduler.Stop().Done()
	}()

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Transaction: transactionService,
		Investment:  investmentService,
		Dashboard:   dashboardService,
	}, cfg, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", "signal", sig.String())
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server exited")
	return nil
}
