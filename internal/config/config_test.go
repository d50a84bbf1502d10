package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func Test_LoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  auth_token: tok
api:
  token: api-token
  host: https://api.example.test/v2
  version: 2024-10
  open_timeout: 5
  read_timeout: 20
safety:
  boards:
    denylist: ["HR *"]
audit:
  enabled: true
  log_path: /tmp/audit.log
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.API.Token != "api-token" {
		t.Errorf("API.Token = %q", cfg.API.Token)
	}
	if len(cfg.Safety.Boards.Denylist) != 1 || cfg.Safety.Boards.Denylist[0] != "HR *" {
		t.Errorf("Safety.Boards.Denylist = %v", cfg.Safety.Boards.Denylist)
	}
}

// Unknown keys must be rejected at load time, not silently dropped.
func Test_LoadConfig_UnknownKeyRejected(t *testing.T) {
	path := writeConfigFile(t, `
api:
  token: t
  tokenn: oops
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() with a misspelled key: expected error")
	}
}

func Test_LoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read config file") {
		t.Errorf("LoadConfig() error = %v, want read failure", err)
	}
}

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.API.Host == "" || cfg.API.Version == "" {
		t.Errorf("API defaults incomplete: %+v", cfg.API)
	}
	if cfg.API.OpenTimeout <= 0 || cfg.API.ReadTimeout <= 0 {
		t.Errorf("API timeout defaults incomplete: %+v", cfg.API)
	}
	if !cfg.Audit.Enabled {
		t.Error("Audit.Enabled = false, want true by default")
	}

	// Distinct instances.
	other := DefaultConfig()
	other.Server.Port = 1
	if cfg.Server.Port == 1 {
		t.Error("DefaultConfig() returned shared state")
	}
}

func Test_ApplyEnvOverrides(t *testing.T) {
	t.Setenv("MONDAY_MCP_AUTH_TOKEN", "srv-tok")
	t.Setenv("MONDAY_TOKEN", "api-tok")
	t.Setenv("MONDAY_HOST", "https://override.test/v2")
	t.Setenv("MONDAY_API_VERSION", "2025-01")
	t.Setenv("MONDAY_READ_TIMEOUT", "45")

	cfg := DefaultConfig()
	ApplyEnvOverrides(cfg)

	if cfg.Server.AuthToken != "srv-tok" {
		t.Errorf("Server.AuthToken = %q", cfg.Server.AuthToken)
	}
	if cfg.API.Token != "api-tok" {
		t.Errorf("API.Token = %q", cfg.API.Token)
	}
	if cfg.API.Host != "https://override.test/v2" {
		t.Errorf("API.Host = %q", cfg.API.Host)
	}
	if cfg.API.Version != "2025-01" {
		t.Errorf("API.Version = %q", cfg.API.Version)
	}
	if cfg.API.ReadTimeout != 45 {
		t.Errorf("API.ReadTimeout = %d", cfg.API.ReadTimeout)
	}
}

func Test_ApplyEnvOverrides_BadTimeoutIgnored(t *testing.T) {
	t.Setenv("MONDAY_READ_TIMEOUT", "not-a-number")

	cfg := DefaultConfig()
	want := cfg.API.ReadTimeout
	ApplyEnvOverrides(cfg)
	if cfg.API.ReadTimeout != want {
		t.Errorf("API.ReadTimeout = %d, want unchanged %d", cfg.API.ReadTimeout, want)
	}
}

func Test_APIConfig_ClientConfig(t *testing.T) {
	api := APIConfig{
		Token:       "t",
		Host:        "https://h/v2",
		Version:     "2024-10",
		OpenTimeout: 3,
		ReadTimeout: 7,
	}

	cc := api.ClientConfig()
	if cc.OpenTimeout != 3*time.Second || cc.ReadTimeout != 7*time.Second {
		t.Errorf("ClientConfig() timeouts = %v/%v", cc.OpenTimeout, cc.ReadTimeout)
	}
	if cc.Token != "t" || cc.Host != "https://h/v2" || cc.Version != "2024-10" {
		t.Errorf("ClientConfig() = %+v", cc)
	}
}

func Test_EnsureAuthToken(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.AuthToken = "existing"
	token, err := EnsureAuthToken(cfg)
	if err != nil || token != "existing" {
		t.Errorf("EnsureAuthToken() = %q, %v; want existing token", token, err)
	}

	cfg.Server.AuthToken = ""
	token, err = EnsureAuthToken(cfg)
	if err != nil {
		t.Fatalf("EnsureAuthToken() error = %v", err)
	}
	if len(token) != 32 {
		t.Errorf("generated token length = %d, want 32", len(token))
	}
	if cfg.Server.AuthToken != token {
		t.Error("EnsureAuthToken() did not persist the generated token")
	}
}
