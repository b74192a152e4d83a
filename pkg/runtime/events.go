package runtime

import "github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"

// Event is the sealed set of notifications a successful operation may emit
//. Consumers type-switch on the concrete
// type rather than inspect a generic payload.
type Event interface {
	isEvent()
}

// TransactionSuccess is emitted once a spend has been validated and
// applied to the UTXO set.
type TransactionSuccess struct {
	TxHash xtypes.Hash
}

func (TransactionSuccess) isEvent() {}

// RewardsIssued is emitted when a block's subsidy plus accumulated fees
// were successfully paid to the block author.
type RewardsIssued struct {
	Height BlockHeight
	Author xtypes.PublicKey
	Amount xtypes.Value
}

func (RewardsIssued) isEvent() {}

// RewardsWasted is emitted instead of RewardsIssued when the reward could
// not be paid.
type RewardsWasted struct {
	Height BlockHeight
	Author xtypes.PublicKey
	Amount xtypes.Value
}

func (RewardsWasted) isEvent() {}

// DifficultyUpdated is emitted each time the retargeting window produces a
// new difficulty value.
type DifficultyUpdated struct {
	Height     BlockHeight
	Difficulty xtypes.Difficulty
}

func (DifficultyUpdated) isEvent() {}
