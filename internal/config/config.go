// Package config loads the gateway and shard-node configuration. Settings
// come from an optional YAML file (with ${VAR:-default} expansion) and are
// overridden by the environment variables that make up the deployment
// surface: HTTP_PORT, DATA_NODE_<n>, GRPC_TIMEOUT_MS for the gateway;
// SHARD_ID, DATA_FILE_PATH, GRPC_PORT for a shard.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults for the deployment surface.
const (
	DefaultHTTPPort      = 18080
	DefaultGRPCTimeoutMS = 5000
	DefaultGRPCPortBase  = 50051
)

// DataNode is one shard endpoint as seen by the gateway.
type DataNode struct {
	ShardID int    `yaml:"shard_id"`
	Address string `yaml:"address"`
}

// Gateway holds the gateway process configuration.
type Gateway struct {
	HTTPPort      int        `yaml:"http_port"`
	DataNodes     []DataNode `yaml:"data_nodes"`
	GRPCTimeoutMS int        `yaml:"grpc_timeout_ms"`
	WebRoot       string     `yaml:"web_root"`
	Logging       Logging    `yaml:"logging"`
}

// Shard holds the shard-node process configuration.
type Shard struct {
	ShardID      int     `yaml:"shard_id"`
	DataFilePath string  `yaml:"data_file_path"`
	GRPCPort     int     `yaml:"grpc_port"`
	HealthPort   int     `yaml:"health_port"`
	Logging      Logging `yaml:"logging"`
}

// Logging holds log settings shared by both processes.
type Logging struct {
	Level string `yaml:"level"`
}

// Env returns the current environment from ENV, defaulting to "local".
func Env() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// LoadGateway reads the gateway configuration: YAML file (if present),
// then environment overrides, then defaults and validation.
func LoadGateway(env string) (Gateway, error) {
	var cfg Gateway
	if err := readConfigFile(env, "gateway", &cfg); err != nil {
		return Gateway{}, err
	}

	if v, ok := lookupInt("HTTP_PORT"); ok {
		cfg.HTTPPort = v
	}
	if v, ok := lookupInt("GRPC_TIMEOUT_MS"); ok {
		cfg.GRPCTimeoutMS = v
	}
	if nodes := dataNodesFromEnv(); len(nodes) > 0 {
		cfg.DataNodes = nodes
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Gateway{}, fmt.Errorf("invalid gateway config: %w", err)
	}
	return cfg, nil
}

// dataNodesFromEnv collects DATA_NODE_0, DATA_NODE_1, ... until the first
// gap.
func dataNodesFromEnv() []DataNode {
	var nodes []DataNode
	for i := 0; ; i++ {
		addr := os.Getenv(fmt.Sprintf("DATA_NODE_%d", i))
		if addr == "" {
			return nodes
		}
		nodes = append(nodes, DataNode{ShardID: i, Address: addr})
	}
}

func (c *Gateway) applyDefaults() {
	if c.HTTPPort == 0 {
		c.HTTPPort = DefaultHTTPPort
	}
	if c.GRPCTimeoutMS == 0 {
		c.GRPCTimeoutMS = DefaultGRPCTimeoutMS
	}
	if c.WebRoot == "" {
		c.WebRoot = "web"
	}
}

func (c *Gateway) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("http_port must be between 1 and 65535, got %d", c.HTTPPort)
	}
	if c.GRPCTimeoutMS <= 0 {
		return fmt.Errorf("grpc_timeout_ms must be positive, got %d", c.GRPCTimeoutMS)
	}
	if len(c.DataNodes) == 0 {
		return fmt.Errorf("no data nodes configured; set DATA_NODE_0 (and DATA_NODE_1, ...)")
	}
	for _, n := range c.DataNodes {
		if n.Address == "" {
			return fmt.Errorf("data node %d has an empty address", n.ShardID)
		}
	}
	return nil
}

// LoadShard reads the shard-node configuration with the same precedence as
// LoadGateway.
func LoadShard(env string) (Shard, error) {
	cfg := Shard{ShardID: -1, GRPCPort: -1}
	if err := readConfigFile(env, "shardnode", &cfg); err != nil {
		return Shard{}, err
	}

	if v, ok := lookupInt("SHARD_ID"); ok {
		cfg.ShardID = v
	}
	if v := os.Getenv("DATA_FILE_PATH"); v != "" {
		cfg.DataFilePath = v
	}
	if v, ok := lookupInt("GRPC_PORT"); ok {
		cfg.GRPCPort = v
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Shard{}, fmt.Errorf("invalid shard config: %w", err)
	}
	return cfg, nil
}

func (c *Shard) applyDefaults() {
	if c.ShardID < 0 {
		c.ShardID = 0
	}
	if c.DataFilePath == "" {
		c.DataFilePath = fmt.Sprintf("data/shard_%d_data_demo.csv", c.ShardID)
	}
	if c.GRPCPort < 0 {
		c.GRPCPort = DefaultGRPCPortBase + c.ShardID
	}
}

func (c *Shard) validate() error {
	if c.ShardID < 0 {
		return fmt.Errorf("shard_id must be non-negative, got %d", c.ShardID)
	}
	if c.GRPCPort < 1 || c.GRPCPort > 65535 {
		return fmt.Errorf("grpc_port must be between 1 and 65535, got %d", c.GRPCPort)
	}
	if c.HealthPort < 0 || c.HealthPort > 65535 {
		return fmt.Errorf("health_port must be between 0 and 65535, got %d", c.HealthPort)
	}
	return nil
}

// readConfigFile unmarshals config/<env>.<process>.yaml into out when the
// file exists. A missing file is not an error; env vars and defaults cover
// the full surface.
func readConfigFile(env, process string, out interface{}) error {
	path := filepath.Join("config", fmt.Sprintf("%s.%s.yaml", env, process))
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(expandEnvVars(data), out); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func lookupInt(name string) (int, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return v, true
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment
// variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		name, fallback, hasFallback := strings.Cut(expr, ":-")
		val := os.Getenv(name)
		if val == "" && hasFallback {
			val = fallback
		}
		return []byte(val)
	})
}
