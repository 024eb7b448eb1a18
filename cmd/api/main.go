package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/armaan-vala/metting-room-management/internal/app"
	"github.com/armaan-vala/metting-room-management/internal/config"
	"github.com/armaan-vala/metting-room-management/internal/domain"
	"github.com/armaan-vala/metting-room-management/internal/logger"
	"github.com/armaan-vala/metting-room-management/internal/storage/postgres"
	transporthttp "github.com/armaan-vala/metting-room-management/internal/transport/http"
	"github.com/armaan-vala/metting-room-management/migrations"
)

const (
	startupTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	envPath, envErr := config.LoadDotEnv()

	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if envErr != nil {
		log.Warn("failed to load .env", zap.Error(envErr))
	} else if envPath != "" {
		log.Info("loaded env file", zap.String("path", envPath))
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	pool, err := pgxpool.New(startupCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("connect to db", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		log.Fatal("db ping", zap.Error(err))
	}
	if err := migrations.Apply(startupCtx, pool); err != nil {
		log.Fatal("apply migrations", zap.Error(err))
	}

	catalog := domain.DefaultCatalog()
	repo := postgres.NewBookingRepository(pool)
	bookingSvc := app.NewBookingService(repo, catalog)
	gridSvc := app.NewGridService(repo, catalog)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", transporthttp.HealthHandler)
	mux.Handle("/dashboard-grid", transporthttp.HandleDashboardGrid(gridSvc))
	mux.Handle("/book-slot", transporthttp.HandleBookSlot(bookingSvc))
	mux.Handle("/", transporthttp.NotFoundHandler())

	handler := transporthttp.RequestLogger(transporthttp.CORS(cfg.CORSOrigins, mux), log)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	log.Info("api listening", zap.String("port", cfg.Port))

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
		}
	case <-stopCtx.Done():
		log.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server shutdown error", zap.Error(err))
	}
	log.Info("server stopped")
}
