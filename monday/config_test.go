package monday

import (
	"testing"
	"time"
)

func Test_Config_Defaults(t *testing.T) {
	ResetDefaults()

	cfg := Config{Token: "t"}.withDefaults()
	if cfg.Host != DefaultHost {
		t.Errorf("Host = %q, want %q", cfg.Host, DefaultHost)
	}
	if cfg.Version != DefaultVersion {
		t.Errorf("Version = %q, want %q", cfg.Version, DefaultVersion)
	}
	if cfg.OpenTimeout != DefaultOpenTimeout {
		t.Errorf("OpenTimeout = %v, want %v", cfg.OpenTimeout, DefaultOpenTimeout)
	}
	if cfg.ReadTimeout != DefaultReadTimeout {
		t.Errorf("ReadTimeout = %v, want %v", cfg.ReadTimeout, DefaultReadTimeout)
	}
}

func Test_Configure_AndReset(t *testing.T) {
	ResetDefaults()
	defer ResetDefaults()

	Configure(func(c *Config) {
		c.Token = "global-token"
		c.Host = "https://example.test/v2"
		c.ReadTimeout = 5 * time.Second
	})

	cfg := Config{}.withDefaults()
	if cfg.Token != "global-token" {
		t.Errorf("Token = %q, want the configured global", cfg.Token)
	}
	if cfg.Host != "https://example.test/v2" {
		t.Errorf("Host = %q, want the configured global", cfg.Host)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want the configured global", cfg.ReadTimeout)
	}

	// Instance values override globals field by field.
	cfg = Config{Token: "instance-token"}.withDefaults()
	if cfg.Token != "instance-token" {
		t.Errorf("Token = %q, instance must win", cfg.Token)
	}
	if cfg.Host != "https://example.test/v2" {
		t.Errorf("Host = %q, unset fields still come from globals", cfg.Host)
	}

	ResetDefaults()
	cfg = Config{}.withDefaults()
	if cfg.Token != "" || cfg.Host != DefaultHost {
		t.Errorf("ResetDefaults() did not restore built-ins: %+v", cfg)
	}
}
