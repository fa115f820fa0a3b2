package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/contabilidade-ledger/internal/config"
	"github.com/contabilidade-ledger/internal/data/memory"
	datamongo "github.com/contabilidade-ledger/internal/data/mongo"
	datapostgres "github.com/contabilidade-ledger/internal/data/postgres"
	"github.com/contabilidade-ledger/internal/domain/account"
	"github.com/contabilidade-ledger/internal/domain/ledger"
	"github.com/contabilidade-ledger/internal/logger"
	"github.com/contabilidade-ledger/internal/platform/persistence"
	"github.com/contabilidade-ledger/internal/posting"
	"github.com/contabilidade-ledger/internal/server"
	"github.com/contabilidade-ledger/internal/server/service"
)

func main() {
	// Base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("server")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize storage. The reference scope keeps both stores in memory;
	// the database driver puts accounts in PostgreSQL and entries in MongoDB.
	var (
		accountRepo account.Repository
		ledgerRepo  ledger.Repository
		postgresDB  *persistence.PostgresDB
		mongoDB     *persistence.MongoDB
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverDatabase:
		postgresDB, err = persistence.NewPostgresDB(appCtx, log, &cfg.Postgres)
		if err != nil {
			log.Error("Failed to initialize PostgreSQL", "error", err)
			os.Exit(1)
		}

		mongoDB, err = persistence.NewMongoDB(appCtx, log, &cfg.MongoDB)
		if err != nil {
			log.Error("Failed to initialize MongoDB", "error", err)
			os.Exit(1)
		}

		accountRepo = datapostgres.NewAccountRepository(log, postgresDB)
		ledgerRepo = datamongo.NewLedgerRepository(log, mongoDB.Database())
	default:
		accountRepo = memory.NewAccountRepository(log)
		ledgerRepo = memory.NewLedgerRepository(log)
	}

	// Seed the reference chart; the default posting rules depend on it
	if err := account.SeedDefaults(appCtx, log, accountRepo); err != nil {
		log.Error("Failed to seed chart of accounts", "error", err)
		os.Exit(1)
	}

	// Initialize the posting engine and services
	engine := posting.NewEngine(log, accountRepo, ledgerRepo, posting.DefaultRules())
	accountService := service.NewAccountService(accountRepo)
	entryService := service.NewEntryService(engine, ledgerRepo)

	// Initialize REST server
	srv := server.NewServer(log, cfg, accountService, entryService)
	log.Info("REST server initialized")

	// Error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := srv.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	cancelAppCtx()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	log.Info("Starting graceful shutdown...")

	if err = srv.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	if postgresDB != nil {
		postgresDB.Close()
	}
	if mongoDB != nil {
		if err = mongoDB.Close(shutdownCtx); err != nil {
			log.Error("Error closing MongoDB connection", "error", err)
		}
	}

	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
