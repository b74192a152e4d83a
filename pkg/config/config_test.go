package config

import "testing"

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.NodeID != "utxod" {
		t.Fatalf("want default node_id utxod, got %q", cfg.NodeID)
	}
	if cfg.DampFactor != 3 || cfg.ClampFactor != 4 {
		t.Fatalf("want default damp/clamp factors 3/4, got %d/%d", cfg.DampFactor, cfg.ClampFactor)
	}
	if cfg.MinDifficulty == 0 || cfg.MinDifficulty > cfg.MaxDifficulty {
		t.Fatalf("invalid default difficulty bounds: min=%d max=%d", cfg.MinDifficulty, cfg.MaxDifficulty)
	}
}

func TestValidateRejectsLowDampFactor(t *testing.T) {
	cfg := &NodeConfig{
		DataDir:       "./data",
		LogLevel:      "info",
		DampFactor:    1,
		ClampFactor:   4,
		MinDifficulty: 1,
		MaxDifficulty: 100,
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for damp_factor < 2")
	}
}

func TestValidateRejectsEmptyDataDir(t *testing.T) {
	cfg := &NodeConfig{
		LogLevel:      "info",
		DampFactor:    3,
		ClampFactor:   4,
		MinDifficulty: 1,
		MaxDifficulty: 100,
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for empty data_dir")
	}
}

func TestValidateRejectsInvertedDifficultyBounds(t *testing.T) {
	cfg := &NodeConfig{
		DataDir:       "./data",
		LogLevel:      "info",
		DampFactor:    3,
		ClampFactor:   4,
		MinDifficulty: 100,
		MaxDifficulty: 1,
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for min_difficulty > max_difficulty")
	}
}

func TestDifficultyParamsRendersConfig(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	params := cfg.DifficultyParams()
	if params.DampFactor.Uint64() != cfg.DampFactor {
		t.Fatalf("damp factor mismatch: %d vs %d", params.DampFactor.Uint64(), cfg.DampFactor)
	}
}
