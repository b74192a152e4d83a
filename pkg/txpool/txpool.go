// Package txpool is a minimal admission pool for transactions that are not
// yet executable against the current UTXO set. It reuses txvalidate.Validate
// so admission and on-chain dispatch share exactly one notion of validity.
// Structured around an entries map, a spent-output index, and conflict
// detection, with the fee-market prioritization machinery (replace-by-fee,
// ancestor fee/size, eviction) dropped — this ledger has no fee market and
// nothing here needs fee-based ordering.
package txpool

import (
	"fmt"
	"sync"

	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/txvalidate"
	"github.com/ArnoldTumukunde/tumuchain/pkg/utxo"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xcodec"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// Entry is a pooled transaction along with the validator's descriptor for
// it at admission time.
type Entry struct {
	Tx         xtypes.Transaction
	TxHash     xtypes.Hash
	Descriptor txvalidate.Descriptor
}

// Pool tracks transactions awaiting inputs that do not yet exist in the
// UTXO store.
type Pool struct {
	mu sync.RWMutex

	entries      map[xtypes.Hash]*Entry
	spentOutputs map[xtypes.Hash]xtypes.Hash // outpoint -> spending tx hash
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{
		entries:      make(map[xtypes.Hash]*Entry),
		spentOutputs: make(map[xtypes.Hash]xtypes.Hash),
	}
}

// Add validates tx against store and admits it if it is not already
// executable (an executable transaction belongs on-chain, not in the
// pool) and does not conflict with a transaction already pooled.
func (p *Pool) Add(store utxo.Store, hasher runtime.Hasher, verifier runtime.SignatureVerifier, tx xtypes.Transaction) (*Entry, error) {
	descriptor, err := txvalidate.Validate(store, hasher, verifier, tx)
	if err != nil {
		return nil, err
	}
	if descriptor.Executable() {
		return nil, fmt.Errorf("txpool: transaction is already executable")
	}

	txHash := hasher.Hash(xcodec.EncodeTransaction(tx))

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.entries[txHash]; exists {
		return nil, fmt.Errorf("txpool: transaction already pooled")
	}

	for _, in := range tx.Inputs {
		if existing, conflict := p.spentOutputs[in.Outpoint]; conflict {
			return nil, fmt.Errorf("txpool: input already claimed by pooled transaction %s", existing)
		}
	}

	entry := &Entry{Tx: tx, TxHash: txHash, Descriptor: descriptor}
	p.entries[txHash] = entry
	for _, in := range tx.Inputs {
		p.spentOutputs[in.Outpoint] = txHash
	}
	return entry, nil
}

// Remove evicts a pooled transaction, e.g. after it has been dispatched
// on-chain or superseded.
func (p *Pool) Remove(txHash xtypes.Hash) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, exists := p.entries[txHash]
	if !exists {
		return
	}
	delete(p.entries, txHash)
	for _, in := range entry.Tx.Inputs {
		delete(p.spentOutputs, in.Outpoint)
	}
}

// PendingRequiring returns the pooled entries that require the given
// outpoint, used to re-check admission once it appears in the UTXO store.
func (p *Pool) PendingRequiring(outpoint xtypes.Hash) []*Entry {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var out []*Entry
	for _, entry := range p.entries {
		for _, req := range entry.Descriptor.Requires {
			if req == outpoint {
				out = append(out, entry)
				break
			}
		}
	}
	return out
}

// Len reports how many transactions are pooled.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entries)
}
