package config_test

import (
	"path/filepath"
	"testing"

	"github.com/apex-sim/apexsim/config"
)

func TestDefaultEngineConfigValidates(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultEngineConfig() failed validation: %v", err)
	}
}

func TestValidateRejectsZeroLatency(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	cfg.MulLatency = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero mul_latency")
	}
}

func TestValidateRejectsUndersizedCompletionQueue(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	cfg.CompletionQueueCapacity = 1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for undersized completion_queue_capacity")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	cfg.MulLatency = 5
	cfg.CompletionQueueCapacity = 10 // 1 + MulLatency + LSLatency

	path := filepath.Join(t.TempDir(), "engine.json")
	if err := cfg.SaveConfig(path); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	loaded, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if loaded.MulLatency != 5 {
		t.Errorf("loaded.MulLatency = %d, want 5", loaded.MulLatency)
	}
	if loaded.RegisterCount != cfg.RegisterCount {
		t.Errorf("loaded.RegisterCount = %d, want %d", loaded.RegisterCount, cfg.RegisterCount)
	}
}

func TestClone(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	clone := cfg.Clone()
	clone.RegisterCount = 32

	if cfg.RegisterCount == clone.RegisterCount {
		t.Error("Clone() did not produce an independent copy")
	}
}
