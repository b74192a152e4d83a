// Package issuance implements runtime.IssuanceSchedule as a halving
// subsidy curve over xtypes.Value, so it composes with the ledger's
// 128-bit checked arithmetic.
package issuance

import (
	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// maxHalvings is the point at which the subsidy has right-shifted to zero
// regardless of the initial reward's magnitude.
const maxHalvings = 64

// Halving implements runtime.IssuanceSchedule: the subsidy starts at
// Initial and halves every Interval blocks, floored at zero.
type Halving struct {
	Initial  uint64
	Interval uint64
}

// NewHalving returns a Halving schedule with the given genesis subsidy and
// halving interval (in blocks).
func NewHalving(initial, interval uint64) Halving {
	return Halving{Initial: initial, Interval: interval}
}

// SubsidyAt returns the block subsidy at height.
func (h Halving) SubsidyAt(height runtime.BlockHeight) xtypes.Value {
	if h.Interval == 0 {
		return xtypes.ValueFromUint64(h.Initial)
	}
	halvings := uint64(height) / h.Interval
	if halvings >= maxHalvings {
		return xtypes.Value{}
	}
	return xtypes.ValueFromUint64(h.Initial >> halvings)
}

// Fixed implements runtime.IssuanceSchedule with a constant subsidy,
// useful for tests that don't care about decay.
type Fixed struct {
	Amount xtypes.Value
}

func (f Fixed) SubsidyAt(runtime.BlockHeight) xtypes.Value {
	return f.Amount
}
