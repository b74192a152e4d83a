// Package genesis seeds a fresh UTXO store and initial difficulty from
// host-supplied genesis parameters: the genesis UTXO set and the starting
// difficulty value.
package genesis

import (
	"github.com/ArnoldTumukunde/tumuchain/pkg/difficulty"
	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/utxo"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xcodec"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// Config holds everything a chain needs to start from block zero.
type Config struct {
	GenesisUTXOs      []xtypes.TransactionOutput
	InitialDifficulty xtypes.Difficulty
	Difficulty        difficulty.Params
}

// Load inserts each of cfg.GenesisUTXOs into store, keyed by the hash of
// its own encoding (not an output_hash over any transaction — genesis
// outputs belong to no transaction). It returns cfg.InitialDifficulty for
// the caller to seed a Chain with.
func Load(store utxo.Store, hasher runtime.Hasher, cfg Config) (xtypes.Difficulty, error) {
	for _, out := range cfg.GenesisUTXOs {
		h := hasher.Hash(xcodec.EncodeOutput(out))
		if err := store.Insert(h, out); err != nil {
			return xtypes.Difficulty{}, err
		}
	}
	return cfg.InitialDifficulty, nil
}
