package config

import (
	"github.com/ArnoldTumukunde/tumuchain/pkg/difficulty"
	"github.com/ArnoldTumukunde/tumuchain/pkg/issuance"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// DifficultyParams renders the loaded config's damping/clamping fields as
// the 256-bit difficulty.Params the retargeting controller operates on.
func (c *NodeConfig) DifficultyParams() difficulty.Params {
	return difficulty.Params{
		TargetBlockTime: xtypes.DifficultyFromUint64(c.TargetBlockTimeMS),
		DampFactor:      xtypes.DifficultyFromUint64(c.DampFactor),
		ClampFactor:     xtypes.DifficultyFromUint64(c.ClampFactor),
		MinDifficulty:   xtypes.DifficultyFromUint64(c.MinDifficulty),
		MaxDifficulty:   xtypes.DifficultyFromUint64(c.MaxDifficulty),
	}
}

// Issuance renders the loaded config's subsidy fields as a halving
// issuance schedule.
func (c *NodeConfig) Issuance() issuance.Halving {
	return issuance.NewHalving(c.IssuanceInitial, c.IssuanceInterval)
}

// InitialDifficultyValue renders the configured genesis difficulty.
func (c *NodeConfig) InitialDifficultyValue() xtypes.Difficulty {
	return xtypes.DifficultyFromUint64(c.InitialDifficulty)
}
