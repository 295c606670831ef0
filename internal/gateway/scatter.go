package gateway

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/atlasmesh/geocoder/internal/logger"
	"github.com/atlasmesh/geocoder/internal/metrics"
	"github.com/atlasmesh/geocoder/internal/transport/grpcapi/pb"
)

// ShardResult is the classified outcome of one shard for one query.
type ShardResult struct {
	ShardID int
	Success bool
	Err     string
	Records []*pb.AddressRecord
}

// scatter dispatches the same term list to every shard concurrently, each
// call under its own deadline, and waits for all of them. Slow shards are
// not cancelled early by fast ones; every shard contributes when it can.
func scatter(ctx context.Context, clients []ShardClient, terms []string, timeout time.Duration) []ShardResult {
	log := logger.FromContext(ctx)
	start := time.Now()

	results := make([]ShardResult, len(clients))
	var wg sync.WaitGroup
	for i, client := range clients {
		wg.Add(1)
		go func(i int, client ShardClient) {
			defer wg.Done()
			results[i] = queryShard(ctx, client, terms, timeout)
		}(i, client)
	}
	wg.Wait()

	metrics.GatewayScatterDuration.Observe(time.Since(start).Seconds())
	log.Debug("scatter complete",
		zap.Int("shards", len(clients)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return results
}

func queryShard(ctx context.Context, client ShardClient, terms []string, timeout time.Duration) ShardResult {
	result := ShardResult{ShardID: client.ShardID()}
	log := logger.FromContext(ctx)

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	records, err := client.Search(callCtx, terms)
	elapsed := time.Since(start)

	shardLabel := strconv.Itoa(result.ShardID)
	switch {
	case err == nil:
		result.Success = true
		result.Records = records
		metrics.GatewayShardOutcomeTotal.WithLabelValues(shardLabel, "ok").Inc()
		log.Debug("shard responded",
			zap.Int("shard_id", result.ShardID),
			zap.Int("records", len(records)),
			zap.Duration("elapsed", elapsed),
		)
	case status.Code(err) == codes.DeadlineExceeded:
		result.Err = "timeout after " + elapsed.Round(time.Millisecond).String()
		metrics.GatewayShardOutcomeTotal.WithLabelValues(shardLabel, "timeout").Inc()
		log.Warn("shard timed out",
			zap.Int("shard_id", result.ShardID),
			zap.Duration("elapsed", elapsed),
		)
	default:
		result.Err = "rpc error: " + err.Error()
		metrics.GatewayShardOutcomeTotal.WithLabelValues(shardLabel, "error").Inc()
		log.Warn("shard failed",
			zap.Int("shard_id", result.ShardID),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
	}
	return result
}
