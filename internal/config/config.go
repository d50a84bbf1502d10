// Package config provides configuration loading and defaults for the
// monday-mcp server.
package config

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/boardkit/monday-mcp/monday"
	"gopkg.in/yaml.v3"
)

// ResourceFilter holds allowlist and denylist entries for a resource
// category (board names, workspace names).
type ResourceFilter struct {
	Allowlist []string `yaml:"allowlist"`
	Denylist  []string `yaml:"denylist"`
}

// SafetyConfig groups resource filters for boards and workspaces.
type SafetyConfig struct {
	Boards     ResourceFilter `yaml:"boards"`
	Workspaces ResourceFilter `yaml:"workspaces"`
}

// AuditConfig controls audit logging behaviour.
type AuditConfig struct {
	Enabled   bool   `yaml:"enabled"`
	LogPath   string `yaml:"log_path"`
	MaxSizeMB int    `yaml:"max_size_mb"`
}

// ServerConfig holds network and authentication settings for the MCP
// HTTP surface.
type ServerConfig struct {
	Port      int    `yaml:"port"`
	AuthToken string `yaml:"auth_token"`
}

// APIConfig holds connection details for the monday.com GraphQL API.
type APIConfig struct {
	Token   string `yaml:"token"`
	Host    string `yaml:"host"`
	Version string `yaml:"version"`
	// OpenTimeout and ReadTimeout are in seconds. OpenTimeout bounds
	// connection establishment, ReadTimeout the whole exchange.
	OpenTimeout int `yaml:"open_timeout"`
	ReadTimeout int `yaml:"read_timeout"`
}

// ClientConfig converts the file-level settings into a monday.Config.
func (a APIConfig) ClientConfig() monday.Config {
	return monday.Config{
		Token:       a.Token,
		Host:        a.Host,
		Version:     a.Version,
		OpenTimeout: time.Duration(a.OpenTimeout) * time.Second,
		ReadTimeout: time.Duration(a.ReadTimeout) * time.Second,
	}
}

// Config is the top-level configuration structure for the monday-mcp server.
type Config struct {
	Server ServerConfig `yaml:"server"`
	API    APIConfig    `yaml:"api"`
	Safety SafetyConfig `yaml:"safety"`
	Audit  AuditConfig  `yaml:"audit"`
}

// LoadConfig reads and parses a YAML configuration file from the given path.
// Unknown keys are rejected eagerly rather than ignored, so a typoed option
// fails at load time instead of silently falling back to a default.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a new Config populated with sensible default values.
// Each call returns a distinct instance.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		API: APIConfig{
			Host:        monday.DefaultHost,
			Version:     monday.DefaultVersion,
			OpenTimeout: int(monday.DefaultOpenTimeout / time.Second),
			ReadTimeout: int(monday.DefaultReadTimeout / time.Second),
		},
		Audit: AuditConfig{
			Enabled: true,
			LogPath: "/config/audit.log",
		},
	}
}

// ApplyEnvOverrides updates cfg in place with values from environment
// variables. Recognized variables:
//   - MONDAY_MCP_AUTH_TOKEN overrides cfg.Server.AuthToken
//   - MONDAY_TOKEN overrides cfg.API.Token
//   - MONDAY_HOST overrides cfg.API.Host
//   - MONDAY_API_VERSION overrides cfg.API.Version
//   - MONDAY_READ_TIMEOUT overrides cfg.API.ReadTimeout (seconds)
func ApplyEnvOverrides(cfg *Config) {
	if token := os.Getenv("MONDAY_MCP_AUTH_TOKEN"); token != "" {
		cfg.Server.AuthToken = token
	}
	if token := os.Getenv("MONDAY_TOKEN"); token != "" {
		cfg.API.Token = token
	}
	if host := os.Getenv("MONDAY_HOST"); host != "" {
		cfg.API.Host = host
	}
	if version := os.Getenv("MONDAY_API_VERSION"); version != "" {
		cfg.API.Version = version
	}
	if timeout := os.Getenv("MONDAY_READ_TIMEOUT"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil && secs > 0 {
			cfg.API.ReadTimeout = secs
		}
	}
}

// EnsureAuthToken generates a random auth token and sets it on cfg if
// cfg.Server.AuthToken is empty. It returns the token (existing or
// generated) and any error encountered during generation.
func EnsureAuthToken(cfg *Config) (string, error) {
	if cfg.Server.AuthToken != "" {
		return cfg.Server.AuthToken, nil
	}
	token, err := GenerateRandomToken()
	if err != nil {
		return "", fmt.Errorf("generate auth token: %w", err)
	}
	cfg.Server.AuthToken = token
	return token, nil
}

// GenerateRandomToken returns a 32-character hex-encoded cryptographically
// random token string.
func GenerateRandomToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand.Read: %w", err)
	}
	return hex.EncodeToString(b), nil
}
