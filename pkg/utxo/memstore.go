package utxo

import (
	"sync"

	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// MemStore is a map-backed Store, the default for tests and the hostsim
// driver. It carries no coinbase-maturity or script-indexing bookkeeping —
// just the outpoint-to-output mapping a UTXO set needs.
type MemStore struct {
	mu      sync.RWMutex
	outputs map[xtypes.Hash]xtypes.TransactionOutput
}

// NewMemStore returns an empty in-memory UTXO store.
func NewMemStore() *MemStore {
	return &MemStore{outputs: make(map[xtypes.Hash]xtypes.TransactionOutput)}
}

func (s *MemStore) Get(outpoint xtypes.Hash) (xtypes.TransactionOutput, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out, ok := s.outputs[outpoint]
	return out, ok, nil
}

func (s *MemStore) Contains(outpoint xtypes.Hash) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.outputs[outpoint]
	return ok, nil
}

func (s *MemStore) Insert(outpoint xtypes.Hash, output xtypes.TransactionOutput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputs[outpoint] = output
	return nil
}

func (s *MemStore) Remove(outpoint xtypes.Hash) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.outputs, outpoint)
	return nil
}

// Len reports the number of live outputs, used by tests asserting on set
// size after a batch of spends.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.outputs)
}
