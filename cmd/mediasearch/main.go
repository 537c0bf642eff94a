package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/imago-cloud/mediasearch/internal/config"
	dbRedis "github.com/imago-cloud/mediasearch/internal/db/redis"
	logpkg "github.com/imago-cloud/mediasearch/internal/logger"
	"github.com/imago-cloud/mediasearch/internal/metrics"
	cacherepo "github.com/imago-cloud/mediasearch/internal/repository/cache"
	searchrepo "github.com/imago-cloud/mediasearch/internal/repository/search"
	chiTransport "github.com/imago-cloud/mediasearch/internal/transport/chi"
	"github.com/imago-cloud/mediasearch/internal/transport/elastic"
	healthuc "github.com/imago-cloud/mediasearch/internal/usecase/health"
	searchuc "github.com/imago-cloud/mediasearch/internal/usecase/search"
	"github.com/imago-cloud/mediasearch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting media search API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("engine_addrs", cfg.Engine.Addresses),
		zap.String("engine_index", cfg.Engine.Index),
		zap.Bool("cache_enabled", cfg.Cache.Enabled()),
	)

	ctx := context.Background()

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Engine client is a hard dependency: refuse to start without it.
	engineClient, err := elastic.NewClient(elastic.Config{
		Addresses: cfg.Engine.Addresses,
		Username:  cfg.Engine.Username,
		Password:  cfg.Engine.Password,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create engine client", zap.Error(err))
	}
	pingCtx, cancelPing := context.WithTimeout(ctx, time.Duration(cfg.Engine.RequestTimeoutSec)*time.Second)
	if err := engineClient.Ping(pingCtx); err != nil {
		cancelPing()
		logger.Fatal("Search engine not reachable", zap.Error(err))
	}
	cancelPing()
	logger.Info("Connected to search engine")

	// Cache store is optional: a missing or unreachable cache only
	// degrades, searches still hit the engine directly.
	var respCache searchuc.Cache
	var cachePinger healthuc.CachePinger
	if cfg.Cache.Enabled() {
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Cache.ReadinessTimeout)*time.Second); err != nil {
			logger.Warn("Cache store not ready, continuing without cache", zap.Error(err))
		} else {
			logger.Info("Connected to cache store")
			// Assign concrete values only here: a typed nil pointer
			// wrapped in the interface would not compare equal to nil.
			respCache = cacherepo.New(
				store,
				time.Duration(cfg.Cache.TTLSec)*time.Second,
				metrics.SearchCacheTotal,
				logger,
			)
			cachePinger = store
		}
	}

	// Repositories and use case services
	searchRepo := searchrepo.New(engineClient, cfg.Engine.Index, logger)
	searchSvc := searchuc.New(searchRepo, respCache, logger)
	healthSvc := healthuc.New(engineClient, cachePinger)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
