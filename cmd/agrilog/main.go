package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrilog/agrilog/internal/app"
	"github.com/agrilog/agrilog/internal/masterdata"
	"github.com/agrilog/agrilog/internal/masterdata/products"
	"github.com/agrilog/agrilog/internal/masterdata/suppliers"
	"github.com/agrilog/agrilog/internal/observability"
	"github.com/agrilog/agrilog/internal/platform/cache"
	"github.com/agrilog/agrilog/internal/platform/db"
	"github.com/agrilog/agrilog/internal/receipts"
	"github.com/agrilog/agrilog/internal/shared"
	"github.com/agrilog/agrilog/internal/stats"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	location, _ := cfg.Location()

	dbpool, err := db.New(ctx, cfg.PGDSN, cfg.PGConnectTimeout)
	if dbpool == nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()
	if err != nil {
		logger.Warn("postgres unreachable, serving 503 until it recovers", slog.Any("error", err))
		go applySchemaWhenReachable(ctx, dbpool, logger)
	} else if err := db.Migrate(ctx, dbpool); err != nil {
		logger.Error("apply schema", slog.Any("error", err))
		os.Exit(1)
	}

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis ping, idempotency keys will be rejected until it recovers", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	idempotencyStore := shared.NewIdempotencyStore(redisClient, cfg.IdempotencyTTL)
	metrics := observability.NewMetrics()

	supplierRepo := suppliers.NewRepository(dbpool)
	supplierService := suppliers.NewService(supplierRepo)
	supplierHandler := suppliers.NewHandler(logger, supplierService, idempotencyStore)

	productRepo := products.NewRepository(dbpool)
	productService := products.NewService(productRepo)
	productHandler := products.NewHandler(logger, productService, idempotencyStore)

	receiptRepo := receipts.NewRepository(dbpool)
	receiptService := receipts.NewService(receiptRepo, supplierService, productService).WithObserver(metrics)
	receiptHandler := receipts.NewHandler(logger, receiptService, idempotencyStore)

	reporter := stats.NewReporter(stats.NewRepository(dbpool), location)
	statsHandler := stats.NewHandler(logger, reporter, cfg.AppRequestTimeout)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		Database:         dbpool,
		Cache:            idempotencyStore,
		DefaultsHandler:  masterdata.NewHandler(),
		SuppliersHandler: supplierHandler,
		ProductsHandler:  productHandler,
		ReceiptsHandler:  receiptHandler,
		StatsHandler:     statsHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

// applySchemaWhenReachable keeps trying to apply the schema after a failed
// startup ping. Requests fail with 503 in the meantime.
func applySchemaWhenReachable(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := db.Migrate(ctx, pool); err != nil {
				logger.Debug("schema not applied yet", slog.Any("error", err))
				continue
			}
			logger.Info("postgres reachable, schema applied")
			return
		}
	}
}
