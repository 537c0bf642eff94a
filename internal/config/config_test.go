package config

import "testing"

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 0},
		Engine: EngineConfig{
			Addresses: []string{"http://localhost:9200"},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingEngineAddresses(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Engine: EngineConfig{
			Addresses: []string{},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing engine addresses")
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Engine: EngineConfig{
			Addresses: []string{"http://localhost:9200"},
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Engine.Index != "imago" {
		t.Errorf("expected Index='imago', got %q", cfg.Engine.Index)
	}
	if cfg.Engine.RequestTimeoutSec != 10 {
		t.Errorf("expected RequestTimeoutSec=10, got %d", cfg.Engine.RequestTimeoutSec)
	}
	if cfg.Cache.TTLSec != 3600 {
		t.Errorf("expected TTLSec=3600, got %d", cfg.Cache.TTLSec)
	}
	if cfg.Cache.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Cache.ReadinessTimeout)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Engine: EngineConfig{Index: "imago_test", RequestTimeoutSec: 15},
		Cache:  CacheConfig{TTLSec: 600, ReadinessTimeout: 15},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Engine.Index != "imago_test" {
		t.Errorf("expected Index='imago_test', got %q", cfg.Engine.Index)
	}
	if cfg.Cache.TTLSec != 600 {
		t.Errorf("expected TTLSec=600, got %d", cfg.Cache.TTLSec)
	}
}

func TestCacheConfig_Enabled(t *testing.T) {
	if (CacheConfig{}).Enabled() {
		t.Error("expected empty cache config to be disabled")
	}
	if !(CacheConfig{Addrs: []string{"localhost:6379"}}).Enabled() {
		t.Error("expected configured cache to be enabled")
	}
}
