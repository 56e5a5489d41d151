// cmd/server/main.go
package main

import (
	"context"
	"encoding/json"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bit-tools/internal/common/config"
	"bit-tools/internal/common/database"
	"bit-tools/internal/common/logger"
	"bit-tools/internal/common/observability"
	"bit-tools/internal/factory"
	"bit-tools/internal/gateway"
	"bit-tools/internal/server"
	"bit-tools/internal/store"
	"bit-tools/internal/tools"
	"bit-tools/pkg/registry"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("failed to load configuration", zap.Error(err))
	}

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting bit-tools server",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment))

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	tracing := observability.NewTracing(cfg.App.Name, cfg.Tracing.JaegerEndpoint)
	defer tracing.Shutdown()

	gw := gateway.NewClient(cfg.APIs.OpenRouter, log, gateway.WithTracer(tracing.Tracer()))

	opts := []factory.Option{factory.WithObservability(obs)}

	var pgClient *database.PostgresClient
	if cfg.History.Enabled {
		err := retryWithBackoff(func() error {
			var err error
			pgClient, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return pgClient.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("failed to connect to PostgreSQL", zap.Error(err))
		}
		defer pgClient.Close()
		opts = append(opts, factory.WithHistory(store.NewHistory(pgClient.GetDB(), log)))
		zapLog.Info("generation history enabled")
	}

	var redisClient *database.RedisClient
	if cfg.Cache.Enabled {
		err := retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return redisClient.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		ttl := time.Duration(cfg.Cache.TTL) * time.Second
		opts = append(opts, factory.WithCache(store.NewCache(redisClient.GetClient(), ttl, log)))
		zapLog.Info("result cache enabled", zap.Duration("ttl", ttl))
	}

	if cfg.Audit.Enabled {
		var esClient *database.ElasticsearchClient
		err := retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			zapLog.Fatal("failed to connect to Elasticsearch", zap.Error(err))
		}
		opts = append(opts, factory.WithAudit(store.NewAudit(esClient.Client, cfg.Audit.Index, log)))
		zapLog.Info("audit indexing enabled", zap.String("index", cfg.Audit.Index))
	}

	reg := registry.Default()
	tools.RegisterAll(reg, gw, log, opts...)
	zapLog.Info("tools registered", zap.Int("count", reg.Len()))

	srv, err := server.New(reg, log)
	if err != nil {
		zapLog.Fatal("failed to initialize server", zap.Error(err))
	}

	go startMetricsServer(cfg.Server.MetricsAddress, zapLog)

	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      srv.Routes(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	zapLog.Info("shutdown signal received", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("server stopped")
}

// startMetricsServer exposes Prometheus metrics, pprof, and liveness
// endpoints on a separate listener.
func startMetricsServer(address string, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/debug/pprof/", http.DefaultServeMux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	log.Info("metrics server listening", zap.String("address", address))
	if err := http.ListenAndServe(address, mux); err != nil {
		log.Error("metrics server failed", zap.Error(err))
	}
}

// retryWithBackoff retries an operation with exponential backoff.
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = operation(); err == nil {
			if attempt > 1 {
				log.Info("operation succeeded after retry",
					zap.String("operation", operationName),
					zap.Int("attempt", attempt))
			}
			return nil
		}
		if attempt < maxRetries {
			log.Warn("operation failed, retrying",
				zap.String("operation", operationName),
				zap.Int("attempt", attempt),
				zap.Int("max_retries", maxRetries),
				zap.Duration("delay", delay),
				zap.Error(err))
			time.Sleep(delay)
			delay *= 2
			if delay > 30*time.Second {
				delay = 30 * time.Second
			}
		}
	}
	return err
}
