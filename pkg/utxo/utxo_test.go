package utxo

import (
	"path/filepath"
	"testing"

	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

func TestMemStoreInsertGetRemove(t *testing.T) {
	s := NewMemStore()
	var outpoint xtypes.Hash
	outpoint[0] = 1
	out := xtypes.TransactionOutput{Value: xtypes.ValueFromUint64(10), Pubkey: xtypes.PublicKey{2}}

	if exists, _ := s.Contains(outpoint); exists {
		t.Fatalf("should not exist before insert")
	}
	if err := s.Insert(outpoint, out); err != nil {
		t.Fatalf("insert: %v", err)
	}
	got, exists, err := s.Get(outpoint)
	if err != nil || !exists {
		t.Fatalf("get after insert: %v exists=%v", err, exists)
	}
	if !got.Equal(out) {
		t.Fatalf("got %+v, want %+v", got, out)
	}
	if s.Len() != 1 {
		t.Fatalf("want len 1, got %d", s.Len())
	}

	if err := s.Remove(outpoint); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if exists, _ := s.Contains(outpoint); exists {
		t.Fatalf("should not exist after remove")
	}
}

func TestLevelStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenLevelStore(filepath.Join(dir, "utxo-db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var outpoint xtypes.Hash
	outpoint[0] = 9
	out := xtypes.TransactionOutput{Value: xtypes.ValueFromUint64(500), Pubkey: xtypes.PublicKey{1}}

	if err := s.Insert(outpoint, out); err != nil {
		t.Fatalf("insert: %v", err)
	}
	got, exists, err := s.Get(outpoint)
	if err != nil || !exists {
		t.Fatalf("get: %v exists=%v", err, exists)
	}
	if !got.Equal(out) {
		t.Fatalf("got %+v, want %+v", got, out)
	}

	if err := s.Remove(outpoint); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if exists, _ := s.Contains(outpoint); exists {
		t.Fatalf("should not exist after remove")
	}
}
