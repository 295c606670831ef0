package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/atlasmesh/geocoder/internal/config"
	logpkg "github.com/atlasmesh/geocoder/internal/logger"
	"github.com/atlasmesh/geocoder/internal/metrics"
	"github.com/atlasmesh/geocoder/internal/shard"
	"github.com/atlasmesh/geocoder/internal/transport/grpcapi"
	"github.com/atlasmesh/geocoder/internal/version"
)

func main() {
	_ = godotenv.Load()
	env := config.Env()

	cfg, err := config.LoadShard(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting shard node",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("shard_id", cfg.ShardID),
		zap.String("data_file", cfg.DataFilePath),
		zap.Int("grpc_port", cfg.GRPCPort),
	)

	metrics.RegisterShardMetrics()

	node := shard.New(cfg.ShardID, cfg.DataFilePath, logger)
	if err := node.Initialize(); err != nil {
		logger.Error("Shard initialization failed, refusing to serve", zap.Error(err))
		os.Exit(1)
	}

	stats := node.Statistics()
	logger.Info("Shard ready",
		zap.Int("records", stats.TotalRecords),
		zap.Uint64("radix_memory_bytes", stats.RadixTreeMemory),
		zap.Uint64("forward_size_bytes", stats.ForwardIndexSize),
		zap.Duration("load_time", stats.LoadTime),
	)

	grpcServer, lis, err := grpcapi.Listen(fmt.Sprintf(":%d", cfg.GRPCPort), grpcapi.NewNodeServer(node, logger))
	if err != nil {
		logger.Error("Failed to bind gRPC listener", zap.Error(err))
		os.Exit(1)
	}

	// Observability sidecar: /healthz and /metrics.
	if cfg.HealthPort > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"status":"healthy","shard_id":%d,"records":%d}`, cfg.ShardID, stats.TotalRecords)
		})
		healthSrv := &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.HealthPort),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		}
		go func() {
			if err := healthSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Warn("Health listener stopped", zap.Error(err))
			}
		}()
		defer healthSrv.Close()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("Received shutdown signal")
		grpcServer.GracefulStop()
	}()

	logger.Info("Serving gRPC", zap.String("addr", lis.Addr().String()))
	if err := grpcServer.Serve(lis); err != nil {
		logger.Error("gRPC server error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Shard node stopped gracefully")
}
