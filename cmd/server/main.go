package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"field-ministry/campo/internal/api"
	"field-ministry/campo/internal/auth"
	"field-ministry/campo/internal/common"
	"field-ministry/campo/internal/config"
	"field-ministry/campo/internal/db"
	"field-ministry/campo/internal/logging"
	"field-ministry/campo/internal/metrics"
	"field-ministry/campo/internal/routes"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	if err := run(cfg); err != nil {
		logging.Fatal("Server stopped with error", "error", err)
	}
	logging.Info("Server stopped")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	upSince := time.Now()
	logging.Info("Campo starting up",
		"environment", cfg.AppEnv,
		"timestamp", upSince.Format(time.RFC3339),
	)

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	sqlDB, err := db.InitPostgres(cfg.PostgresDSN())
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, sqlDB.DB); err != nil {
			return err
		}
	}

	gormDB, err := db.InitPostgresORM(cfg.PostgresDSN(), metricsReg)
	if err != nil {
		return err
	}

	var redisClient *redis.Client
	if cfg.SessionBackend == config.SessionBackendRedis {
		redisClient = common.NewRedisClient(cfg.RedisAddr(), cfg.RedisPassword)
		defer redisClient.Close()
	} else {
		logging.Warn("Sessions are kept in process memory and are lost on restart")
	}

	provider, err := auth.NewOIDCProvider(ctx, cfg.OIDCIssuerURL, cfg.OIDCClientID, cfg.OIDCClientSecret, cfg.OIDCRedirectURL)
	if err != nil {
		return err
	}

	deps := api.InitDependencies(cfg, gormDB, sqlDB, redisClient, provider, metricsReg)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           routes.NewRouter(deps, prometheus.DefaultGatherer, upSince),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return deps.Hub.Run(gctx)
	})

	if cfg.ReminderInterval > 0 {
		g.Go(func() error {
			deps.Reminder.RunScheduled(gctx, cfg.ReminderInterval)
			return nil
		})
	}

	g.Go(func() error {
		logging.Info("Server starting", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
