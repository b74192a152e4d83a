package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ArnoldTumukunde/tumuchain/pkg/config"
	"github.com/ArnoldTumukunde/tumuchain/pkg/difficulty"
	"github.com/ArnoldTumukunde/tumuchain/pkg/genesis"
	"github.com/ArnoldTumukunde/tumuchain/pkg/hostsim"
	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/telemetry"
	"github.com/ArnoldTumukunde/tumuchain/pkg/utxo"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xcrypto"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xcrypto/sigverify"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// sidecar is the small piece of chain state this demo CLI persists
// alongside the UTXO store's LevelDB files: the cells that live in the
// host's storage backend besides the UTXO store itself (reward pool,
// sample window, current difficulty), plus block height. This is local
// CLI bookkeeping, not a consensus-critical encoding, so it uses
// encoding/json rather than the canonical wire codec.
type sidecar struct {
	Height     uint64            `json:"height"`
	Difficulty [32]byte          `json:"difficulty"`
	PoolValue  [16]byte          `json:"pool_value"`
	Samples    []sidecarSample   `json:"samples"`
}

type sidecarSample struct {
	Difficulty [32]byte `json:"difficulty"`
	Timestamp  uint64   `json:"timestamp"`
}

func sidecarPath(dataDir string) string {
	return filepath.Join(dataDir, "state.json")
}

func loadSidecar(dataDir string) (*sidecar, error) {
	data, err := os.ReadFile(sidecarPath(dataDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s sidecar
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func saveSidecar(dataDir string, s *sidecar) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(sidecarPath(dataDir), data, 0o644)
}

// openChain opens the on-disk UTXO store and reconstructs a hostsim.Chain
// from the sidecar, or seeds a fresh one from cfg/genesisCfg if no
// sidecar exists yet.
func openChain(cfg *config.NodeConfig, genesisCfg genesis.Config, authors []xtypes.PublicKey) (*hostsim.Chain, *utxo.LevelStore, error) {
	store, err := utxo.OpenLevelStore(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}

	hasher := xcrypto.NewBlakeHasher()
	verifier := sigverify.NewVerifier()
	author := hostsim.NewRoundRobinAuthor(authors...)
	sched := cfg.Issuance()
	clock := hostsim.NewIncrementingClock(0, runtime.Moment(cfg.TargetBlockTimeMS))
	params := cfg.DifficultyParams()

	log, err := telemetry.NewLogger(cfg.LogLevel)
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("open logger: %w", err)
	}
	metrics := telemetry.NewMetrics(prometheus.NewRegistry())
	sink := runtime.EventSink(telemetry.NewMultiSink(telemetry.NewLogSink(log), telemetry.NewMetricsSink(metrics)))

	existing, err := loadSidecar(cfg.DataDir)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	if existing == nil {
		initialDifficulty, err := genesis.Load(store, hasher, genesisCfg)
		if err != nil {
			store.Close()
			return nil, nil, err
		}
		chain := hostsim.New(store, hasher, verifier, author, sched, sink, clock, params, initialDifficulty)
		return chain, store, nil
	}

	chain := hostsim.New(store, hasher, verifier, author, sched, sink, clock, params, xtypes.DifficultyFromBytes32(existing.Difficulty))
	chain.Height = runtime.BlockHeight(existing.Height)
	if err := chain.Pool.Add(xtypes.ValueFromBytes16(existing.PoolValue)); err != nil {
		store.Close()
		return nil, nil, err
	}
	for _, s := range existing.Samples {
		chain.Window.Append(difficulty.Sample{
			Difficulty: xtypes.DifficultyFromBytes32(s.Difficulty),
			Timestamp:  runtime.Moment(s.Timestamp),
		})
	}
	return chain, store, nil
}

func persistChain(cfg *config.NodeConfig, chain *hostsim.Chain) error {
	samples := make([]sidecarSample, len(chain.Window.Samples()))
	for i, s := range chain.Window.Samples() {
		samples[i] = sidecarSample{Difficulty: s.Difficulty.Bytes32(), Timestamp: uint64(s.Timestamp)}
	}
	s := &sidecar{
		Height:     uint64(chain.Height),
		Difficulty: chain.Difficulty.Bytes32(),
		PoolValue:  chain.Pool.Peek().Bytes16(),
		Samples:    samples,
	}
	return saveSidecar(cfg.DataDir, s)
}
