// Package utxo holds the set of spendable outputs and the two backings it
// can live on: an in-memory map for tests and short-lived demos, and a
// LevelDB-backed store for a long-running node. It generalizes away
// Bitcoin's coinbase-maturity and script-matching concerns down to a plain
// outpoint -> output mapping.
package utxo

import "github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"

// Store is the UTXO set's storage contract. Every mutation is expected to
// be applied as part of a larger atomic operation by the caller (the
// ledger package), so Store itself makes no transactional promises beyond
// per-call atomicity.
type Store interface {
	// Get returns the output at outpoint and whether it exists.
	Get(outpoint xtypes.Hash) (xtypes.TransactionOutput, bool, error)
	// Contains reports whether outpoint exists without fetching its value.
	Contains(outpoint xtypes.Hash) (bool, error)
	// Insert adds a new output under outpoint. Callers must ensure
	// outpoint does not already exist; ErrAlreadyExists-style enforcement
	// is the validator's job, not the store's.
	Insert(outpoint xtypes.Hash, output xtypes.TransactionOutput) error
	// Remove deletes the output at outpoint.
	Remove(outpoint xtypes.Hash) error
}
