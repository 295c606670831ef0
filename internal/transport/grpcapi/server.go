// Package grpcapi exposes a shard node over the DataNode RPC service. The
// gateway-side client is gateway.GRPCShardClient.
package grpcapi

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/atlasmesh/geocoder/internal/address"
	"github.com/atlasmesh/geocoder/internal/shard"
	"github.com/atlasmesh/geocoder/internal/transport/grpcapi/pb"
)

// NodeServer adapts a shard.Node to the DataNode gRPC service.
type NodeServer struct {
	pb.UnimplementedDataNodeServer
	node *shard.Node
	log  *zap.Logger
}

// NewNodeServer wraps node for serving.
func NewNodeServer(node *shard.Node, log *zap.Logger) *NodeServer {
	return &NodeServer{node: node, log: log}
}

// Search runs the shard query. A degraded node maps to codes.Unavailable so
// the gateway classifies the shard as failed rather than empty.
func (s *NodeServer) Search(ctx context.Context, req *pb.SearchRequest) (*pb.SearchResponse, error) {
	terms := req.GetQueryTerms()
	s.log.Debug("search request", zap.Strings("terms", terms))

	records, err := s.node.Search(terms)
	if err != nil {
		s.log.Error("search failed", zap.Error(err))
		return nil, status.Errorf(codes.Unavailable, "shard search: %v", err)
	}

	resp := &pb.SearchResponse{
		Results:     make([]*pb.AddressRecord, 0, len(records)),
		ResultCount: int32(len(records)),
	}
	for _, rec := range records {
		resp.Results = append(resp.Results, RecordToWire(rec))
	}
	return resp, nil
}

// GetStatistics reports the counters captured at initialization.
func (s *NodeServer) GetStatistics(ctx context.Context, req *pb.StatisticsRequest) (*pb.StatisticsResponse, error) {
	stats := s.node.Statistics()
	return &pb.StatisticsResponse{
		TotalRecords:     uint64(stats.TotalRecords),
		RadixTreeMemory:  stats.RadixTreeMemory,
		ForwardIndexSize: stats.ForwardIndexSize,
		LoadTimeMs:       stats.LoadTime.Milliseconds(),
	}, nil
}

// Listen binds addr and returns a grpc server with the DataNode service
// registered. The caller runs Serve on the listener and stops the server on
// shutdown.
func Listen(addr string, srv *NodeServer) (*grpc.Server, net.Listener, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("listen %s: %w", addr, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterDataNodeServer(grpcServer, srv)
	return grpcServer, lis, nil
}

// RecordToWire converts a domain record to its wire form. The in-memory
// uint64 id becomes the 16-digit hex string carried on the wire.
func RecordToWire(rec address.Record) *pb.AddressRecord {
	return &pb.AddressRecord{
		Hash:      rec.HashString(),
		Longitude: rec.Longitude,
		Latitude:  rec.Latitude,
		Number:    rec.Number,
		Street:    rec.Street,
		Unit:      rec.Unit,
		City:      rec.City,
		Postcode:  rec.Postcode,
	}
}
