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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/atlasmesh/geocoder/internal/config"
	"github.com/atlasmesh/geocoder/internal/gateway"
	logpkg "github.com/atlasmesh/geocoder/internal/logger"
	"github.com/atlasmesh/geocoder/internal/metrics"
	chiTransport "github.com/atlasmesh/geocoder/internal/transport/chi"
	"github.com/atlasmesh/geocoder/internal/version"
)

func main() {
	_ = godotenv.Load()
	env := config.Env()

	cfg, err := config.LoadGateway(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting geocoding gateway",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTPPort),
		zap.Int("data_nodes", len(cfg.DataNodes)),
		zap.Int("grpc_timeout_ms", cfg.GRPCTimeoutMS),
	)

	metrics.RegisterGatewayMetrics()

	// One persistent channel per shard, shared by every request.
	clients := make([]gateway.ShardClient, 0, len(cfg.DataNodes))
	for _, node := range cfg.DataNodes {
		client, err := gateway.DialShard(node.ShardID, node.Address)
		if err != nil {
			logger.Fatal("Failed to create shard client",
				zap.Int("shard_id", node.ShardID),
				zap.String("address", node.Address),
				zap.Error(err),
			)
		}
		defer func() { _ = client.Close() }()
		logger.Info("Connected shard client",
			zap.Int("shard_id", node.ShardID),
			zap.String("address", node.Address),
		)
		clients = append(clients, client)
	}

	svc := gateway.New(clients, time.Duration(cfg.GRPCTimeoutMS)*time.Millisecond, logger)
	server := chiTransport.NewServer(svc, cfg.WebRoot, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	r.Handle("/metrics", promhttp.Handler())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: 10 * time.Second,
		// Write timeout must cover a full scatter deadline.
		WriteTimeout: time.Duration(cfg.GRPCTimeoutMS)*time.Millisecond + 10*time.Second,
	}

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Gateway stopped gracefully")
}

// jsonRecoverer converts panics into a JSON 500 instead of a plain text
// stacktrace.
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
						"error":   "Internal server error",
						"details": fmt.Sprint(rvr),
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits one canonical log line per request and
// propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
