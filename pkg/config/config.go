// Package config loads node configuration via viper: a file- and
// environment-driven config covering the chain parameters (target block time, damp/clamp
// factors, difficulty bounds, issuance schedule) in addition to the
// ambient node settings (data directory, log level).
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// NodeConfig holds everything a running node needs at startup.
type NodeConfig struct {
	NodeID   string `mapstructure:"node_id"`
	DataDir  string `mapstructure:"data_dir"`
	LogLevel string `mapstructure:"log_level"`

	TargetBlockTimeMS uint64 `mapstructure:"target_block_time_ms"`
	DampFactor        uint64 `mapstructure:"damp_factor"`
	ClampFactor       uint64 `mapstructure:"clamp_factor"`
	MinDifficulty     uint64 `mapstructure:"min_difficulty"`
	MaxDifficulty     uint64 `mapstructure:"max_difficulty"`
	InitialDifficulty uint64 `mapstructure:"initial_difficulty"`

	IssuanceInitial  uint64 `mapstructure:"issuance_initial"`
	IssuanceInterval uint64 `mapstructure:"issuance_interval"`
}

// defaults sets sane values a demo chain can run with out of the box.
func defaults(v *viper.Viper) {
	v.SetDefault("node_id", "utxod")
	v.SetDefault("data_dir", "./data/utxod")
	v.SetDefault("log_level", "info")

	v.SetDefault("target_block_time_ms", 10_000)
	v.SetDefault("damp_factor", 3)
	v.SetDefault("clamp_factor", 4)
	v.SetDefault("min_difficulty", 1000)
	v.SetDefault("max_difficulty", 1_000_000_000)
	v.SetDefault("initial_difficulty", 1000)

	v.SetDefault("issuance_initial", 5_000_000_000)
	v.SetDefault("issuance_interval", 210_000)
}

// Load reads configuration from path (if non-empty) and environment
// variables prefixed UTXOD_, falling back to defaults() for anything
// unset.
func Load(path string) (*NodeConfig, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix("UTXOD")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg NodeConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded configuration for obviously invalid values.
func (c *NodeConfig) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("config: data directory cannot be empty")
	}
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("config: invalid log level: %s", c.LogLevel)
	}
	if c.DampFactor < 2 {
		return fmt.Errorf("config: damp_factor must be >= 2, got %d", c.DampFactor)
	}
	if c.ClampFactor < 2 {
		return fmt.Errorf("config: clamp_factor must be >= 2, got %d", c.ClampFactor)
	}
	if c.MinDifficulty == 0 || c.MinDifficulty > c.MaxDifficulty {
		return fmt.Errorf("config: min_difficulty must be > 0 and <= max_difficulty")
	}
	return nil
}
