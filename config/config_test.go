package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	cfg := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))

	if cfg.General.RequestTimeout != 10*time.Second {
		t.Errorf("request_timeout = %v, want 10s", cfg.General.RequestTimeout)
	}
	if cfg.Session.Store != "file" {
		t.Errorf("session.store = %q, want file", cfg.Session.Store)
	}
	if cfg.Session.DataDir == "" {
		t.Error("session.data_dir default is empty")
	}
	if cfg.Telemetry.Enabled {
		t.Error("telemetry should be off by default")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	viper.Reset()
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"general": {"request_timeout": "5s"},
		"session": {"store": "redis", "redis": {"host": "localhost", "port": "6380", "db": 2}},
		"telemetry": {"enabled": true, "metrics_port": 10099}
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := LoadConfig(path)
	if cfg.General.RequestTimeout != 5*time.Second {
		t.Errorf("request_timeout = %v, want 5s", cfg.General.RequestTimeout)
	}
	if cfg.Session.Store != "redis" || cfg.Session.Redis.Host != "localhost" || cfg.Session.Redis.Port != "6380" || cfg.Session.Redis.DB != 2 {
		t.Errorf("session = %+v", cfg.Session)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.MetricsPort != 10099 {
		t.Errorf("telemetry = %+v", cfg.Telemetry)
	}
}

func TestLoadConfigRejectsBadStore(t *testing.T) {
	viper.Reset()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"session": {"store": "s3"}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unsupported session store")
		}
	}()
	LoadConfig(path)
}
