// Package gateway implements the scatter/gather layer: parallel shard
// dispatch under a deadline, partial-failure classification, cross-shard
// deduplication, relevance scoring, and bounded top-K ranking.
package gateway

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/atlasmesh/geocoder/internal/transport/grpcapi/pb"
)

// ShardClient is one shard's query interface. Implementations must be safe
// for concurrent use; a single client is multiplexed across request tasks.
type ShardClient interface {
	ShardID() int
	Search(ctx context.Context, terms []string) ([]*pb.AddressRecord, error)
}

// GRPCShardClient is the production ShardClient over a persistent gRPC
// channel.
type GRPCShardClient struct {
	shardID int
	addr    string
	conn    *grpc.ClientConn
	client  pb.DataNodeClient
}

// DialShard opens a channel to the shard at addr. The connection is lazy;
// failures surface on the first call.
func DialShard(shardID int, addr string) (*GRPCShardClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial shard %d at %s: %w", shardID, addr, err)
	}
	return &GRPCShardClient{
		shardID: shardID,
		addr:    addr,
		conn:    conn,
		client:  pb.NewDataNodeClient(conn),
	}, nil
}

func (c *GRPCShardClient) ShardID() int {
	return c.shardID
}

func (c *GRPCShardClient) Addr() string {
	return c.addr
}

func (c *GRPCShardClient) Search(ctx context.Context, terms []string) ([]*pb.AddressRecord, error) {
	resp, err := c.client.Search(ctx, &pb.SearchRequest{QueryTerms: terms})
	if err != nil {
		return nil, err
	}
	return resp.GetResults(), nil
}

// Close releases the underlying channel.
func (c *GRPCShardClient) Close() error {
	return c.conn.Close()
}
