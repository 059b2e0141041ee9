// Package config holds the tunable configuration for an APEX pipeline
// engine: register-file size, data-memory size, per-FU latencies, and the
// cycle cap the cycle driver enforces.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// EngineConfig holds the sizing and timing parameters for a pipeline
// engine. Values are based on the APEX specification's defaults and can be
// overridden via JSON.
type EngineConfig struct {
	// RegisterCount is the number of general-purpose registers. Default: 16.
	RegisterCount int `json:"register_count"`

	// DataMemorySize is the number of addressable signed-int words in data
	// memory. Default: 4096.
	DataMemorySize int `json:"data_memory_size"`

	// IntLatency is the Integer FU latency in cycles. Default: 1.
	IntLatency uint64 `json:"int_latency"`

	// MulLatency is the Multiplier FU latency in cycles. Default: 3.
	MulLatency uint64 `json:"mul_latency"`

	// LSLatency is the Load/Store FU latency in cycles. Default: 4.
	LSLatency uint64 `json:"ls_latency"`

	// CompletionQueueCapacity bounds the multi-FU completion FIFO. Default: 8
	// (1 + MulLatency + LSLatency for the default latencies, the maximum
	// number of instructions that can be simultaneously in flight past
	// dispatch).
	CompletionQueueCapacity int `json:"completion_queue_capacity"`

	// CycleCap is the maximum number of cycles the cycle driver will run
	// before giving up on a clean HALT. Default: 10000.
	CycleCap uint64 `json:"cycle_cap"`
}

// DefaultEngineConfig returns an EngineConfig with the APEX spec's default
// values.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		RegisterCount:           16,
		DataMemorySize:          4096,
		IntLatency:              1,
		MulLatency:              3,
		LSLatency:               4,
		CompletionQueueCapacity: 8,
		CycleCap:                10000,
	}
}

// LoadConfig loads an EngineConfig from a JSON file, starting from defaults
// for any field the file omits.
func LoadConfig(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read engine config file: %w", err)
	}

	cfg := DefaultEngineConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse engine config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes an EngineConfig to a JSON file.
func (c *EngineConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize engine config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write engine config file: %w", err)
	}

	return nil
}

// Validate checks that all sizing and latency values are usable.
func (c *EngineConfig) Validate() error {
	if c.RegisterCount <= 0 {
		return fmt.Errorf("register_count must be > 0")
	}
	if c.DataMemorySize <= 0 {
		return fmt.Errorf("data_memory_size must be > 0")
	}
	if c.IntLatency == 0 {
		return fmt.Errorf("int_latency must be > 0")
	}
	if c.MulLatency == 0 {
		return fmt.Errorf("mul_latency must be > 0")
	}
	if c.LSLatency == 0 {
		return fmt.Errorf("ls_latency must be > 0")
	}
	minCapacity := 1 + int(c.MulLatency) + int(c.LSLatency)
	if c.CompletionQueueCapacity < minCapacity {
		return fmt.Errorf("completion_queue_capacity must be >= %d for the configured latencies", minCapacity)
	}
	if c.CycleCap == 0 {
		return fmt.Errorf("cycle_cap must be > 0")
	}
	return nil
}

// Clone returns a deep copy of the EngineConfig.
func (c *EngineConfig) Clone() *EngineConfig {
	clone := *c
	return &clone
}
