// Package ledger applies a validated transaction's effects to the UTXO
// store and the reward pool.
package ledger

import (
	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/utxo"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// Pool is the fee accumulator a block's dispatches feed and finalization
// drains.
type Pool struct {
	total xtypes.Value
}

// NewPool returns an empty reward pool.
func NewPool() *Pool {
	return &Pool{}
}

// Add accrues fee into the pool using checked addition.
func (p *Pool) Add(fee xtypes.Value) error {
	sum, ok := p.total.CheckedAdd(fee)
	if !ok {
		return runtime.NewError(runtime.ErrRewardError)
	}
	p.total = sum
	return nil
}

// Take drains and returns the pool's accumulated value.
func (p *Pool) Take() xtypes.Value {
	v := p.total
	p.total = xtypes.Value{}
	return v
}

// Peek returns the pool's current value without draining it.
func (p *Pool) Peek() xtypes.Value {
	return p.total
}

// Apply applies tx's effects to store: it accrues fee into pool, removes
// spent inputs, and inserts new outputs under the hashes in provides.
// provides must be in the same order as tx.Outputs — the caller is
// expected to pass the Provides slice from txvalidate.Validate's
// Descriptor for the same transaction.
func Apply(store utxo.Store, pool *Pool, tx xtypes.Transaction, fee xtypes.Value, provides []xtypes.Hash) error {
	if len(provides) != len(tx.Outputs) {
		return runtime.NewError(runtime.ErrOutputIndexOverflow)
	}

	if err := pool.Add(fee); err != nil {
		return err
	}

	for _, in := range tx.Inputs {
		if err := store.Remove(in.Outpoint); err != nil {
			return err
		}
	}

	for i, out := range tx.Outputs {
		if err := store.Insert(provides[i], out); err != nil {
			return err
		}
	}

	return nil
}
