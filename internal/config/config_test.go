package config

import (
	"testing"
)

func TestLoadGatewayFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "8088")
	t.Setenv("DATA_NODE_0", "localhost:50051")
	t.Setenv("DATA_NODE_1", "localhost:50052")
	t.Setenv("GRPC_TIMEOUT_MS", "2500")

	cfg, err := LoadGateway("prod")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HTTPPort != 8088 {
		t.Errorf("HTTPPort = %d", cfg.HTTPPort)
	}
	if cfg.GRPCTimeoutMS != 2500 {
		t.Errorf("GRPCTimeoutMS = %d", cfg.GRPCTimeoutMS)
	}
	if len(cfg.DataNodes) != 2 {
		t.Fatalf("DataNodes = %+v", cfg.DataNodes)
	}
	if cfg.DataNodes[1].ShardID != 1 || cfg.DataNodes[1].Address != "localhost:50052" {
		t.Errorf("DataNodes[1] = %+v", cfg.DataNodes[1])
	}
}

func TestLoadGatewayDefaults(t *testing.T) {
	t.Setenv("DATA_NODE_0", "localhost:50051")

	cfg, err := LoadGateway("prod")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HTTPPort != DefaultHTTPPort {
		t.Errorf("HTTPPort = %d, want default %d", cfg.HTTPPort, DefaultHTTPPort)
	}
	if cfg.GRPCTimeoutMS != DefaultGRPCTimeoutMS {
		t.Errorf("GRPCTimeoutMS = %d, want default %d", cfg.GRPCTimeoutMS, DefaultGRPCTimeoutMS)
	}
}

func TestLoadGatewayRequiresNodes(t *testing.T) {
	// No DATA_NODE_* set and no config file in the test working directory.
	if _, err := LoadGateway("prod"); err == nil {
		t.Error("expected error when no data nodes are configured")
	}
}

func TestLoadGatewayStopsAtGap(t *testing.T) {
	t.Setenv("DATA_NODE_0", "a:1")
	t.Setenv("DATA_NODE_2", "c:3")

	cfg, err := LoadGateway("prod")
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.DataNodes) != 1 {
		t.Errorf("DataNodes = %+v, want the scan to stop at the gap", cfg.DataNodes)
	}
}

func TestLoadShard(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadShard("prod")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.ShardID != 0 {
			t.Errorf("ShardID = %d", cfg.ShardID)
		}
		if cfg.DataFilePath != "data/shard_0_data_demo.csv" {
			t.Errorf("DataFilePath = %q", cfg.DataFilePath)
		}
		if cfg.GRPCPort != 50051 {
			t.Errorf("GRPCPort = %d", cfg.GRPCPort)
		}
	})

	t.Run("grpc port follows shard id", func(t *testing.T) {
		t.Setenv("SHARD_ID", "3")
		cfg, err := LoadShard("prod")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.GRPCPort != 50054 {
			t.Errorf("GRPCPort = %d, want 50054", cfg.GRPCPort)
		}
		if cfg.DataFilePath != "data/shard_3_data_demo.csv" {
			t.Errorf("DataFilePath = %q", cfg.DataFilePath)
		}
	})

	t.Run("explicit overrides", func(t *testing.T) {
		t.Setenv("SHARD_ID", "1")
		t.Setenv("DATA_FILE_PATH", "/data/custom.csv")
		t.Setenv("GRPC_PORT", "9000")
		cfg, err := LoadShard("prod")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.DataFilePath != "/data/custom.csv" || cfg.GRPCPort != 9000 {
			t.Errorf("cfg = %+v", cfg)
		}
	})
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("MY_PORT", "7777")

	got := string(expandEnvVars([]byte("port: ${MY_PORT}\nhost: ${MY_HOST:-localhost}\n")))
	want := "port: 7777\nhost: localhost\n"
	if got != want {
		t.Errorf("expandEnvVars = %q, want %q", got, want)
	}
}
