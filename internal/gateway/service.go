package gateway

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/atlasmesh/geocoder/internal/logger"
)

// MaxResults bounds the ranked result list of one query.
const MaxResults = 5

// Service fans address queries out to every shard and reduces the merged
// results.
type Service struct {
	clients []ShardClient
	timeout time.Duration
	log     *zap.Logger
}

// New creates the gateway service over the given shard clients.
func New(clients []ShardClient, timeout time.Duration, log *zap.Logger) *Service {
	return &Service{clients: clients, timeout: timeout, log: log}
}

// ShardCount returns the number of configured shards.
func (s *Service) ShardCount() int {
	return len(s.clients)
}

// Response is the outcome of one FindAddress call.
type Response struct {
	Query           string
	QueryTerms      []string
	Results         []ScoredRecord
	SuccessfulNodes int
	FailedNodes     int
}

// AllFailed reports whether no shard produced a successful outcome.
func (r Response) AllFailed() bool {
	return r.SuccessfulNodes == 0
}

// PartialFailure reports whether some but not all shards failed.
func (r Response) PartialFailure() bool {
	return r.SuccessfulNodes > 0 && r.FailedNodes > 0
}

// PrepareTerms splits an address query into terms. Input containing a comma
// is a structured query and passes through whole as a single term; anything
// else splits on whitespace. An empty result means the input held no terms.
func PrepareTerms(addressText string) []string {
	if strings.ContainsRune(addressText, ',') {
		return []string{addressText}
	}
	return strings.Fields(addressText)
}

// FindAddress runs the full scatter/gather: dispatch to every shard under
// the configured deadline, classify outcomes, merge, deduplicate, score
// against the original terms, and return the top results.
func (s *Service) FindAddress(ctx context.Context, addressText string, terms []string) Response {
	log := logger.FromContext(ctx)

	shardResults := scatter(ctx, s.clients, terms, s.timeout)

	resp := Response{Query: addressText, QueryTerms: terms}
	for _, res := range shardResults {
		if res.Success {
			resp.SuccessfulNodes++
		} else {
			resp.FailedNodes++
			log.Warn("shard query failed",
				zap.Int("shard_id", res.ShardID),
				zap.String("error", res.Err),
			)
		}
	}

	resp.Results = aggregateAndRank(shardResults, terms, MaxResults)

	s.log.Info("find address complete",
		zap.String("query", addressText),
		zap.Int("results", len(resp.Results)),
		zap.Int("successful_nodes", resp.SuccessfulNodes),
		zap.Int("failed_nodes", resp.FailedNodes),
	)
	return resp
}
