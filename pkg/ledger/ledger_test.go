package ledger

import (
	"testing"

	"github.com/ArnoldTumukunde/tumuchain/pkg/utxo"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

func TestPoolAddAndTake(t *testing.T) {
	p := NewPool()
	if err := p.Add(xtypes.ValueFromUint64(10)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := p.Add(xtypes.ValueFromUint64(5)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := p.Peek().Uint64(); got != 15 {
		t.Fatalf("want 15, got %d", got)
	}
	if got := p.Take().Uint64(); got != 15 {
		t.Fatalf("want 15, got %d", got)
	}
	if !p.Peek().IsZero() {
		t.Fatalf("pool should be drained after Take")
	}
}

func TestApplyConservesValueAndMutatesStore(t *testing.T) {
	store := utxo.NewMemStore()
	pool := NewPool()

	var inOutpoint xtypes.Hash
	inOutpoint[0] = 1
	spent := xtypes.TransactionOutput{Value: xtypes.ValueFromUint64(100), Pubkey: xtypes.PublicKey{1}}
	if err := store.Insert(inOutpoint, spent); err != nil {
		t.Fatalf("seed: %v", err)
	}

	tx := xtypes.Transaction{
		Inputs:  []xtypes.TransactionInput{{Outpoint: inOutpoint}},
		Outputs: []xtypes.TransactionOutput{{Value: xtypes.ValueFromUint64(90), Pubkey: xtypes.PublicKey{2}}},
	}
	var provided xtypes.Hash
	provided[0] = 0xAB

	if err := Apply(store, pool, tx, xtypes.ValueFromUint64(10), []xtypes.Hash{provided}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if exists, _ := store.Contains(inOutpoint); exists {
		t.Fatalf("spent input should be removed")
	}
	out, exists, _ := store.Get(provided)
	if !exists || out.Value.Uint64() != 90 {
		t.Fatalf("provided output should exist with value 90, got %+v exists=%v", out, exists)
	}
	if got := pool.Peek().Uint64(); got != 10 {
		t.Fatalf("fee should accrue into pool, want 10 got %d", got)
	}
}

func TestApplyRejectsMismatchedProvides(t *testing.T) {
	store := utxo.NewMemStore()
	pool := NewPool()

	tx := xtypes.Transaction{
		Inputs:  []xtypes.TransactionInput{{}},
		Outputs: []xtypes.TransactionOutput{{Value: xtypes.ValueFromUint64(1), Pubkey: xtypes.PublicKey{1}}, {Value: xtypes.ValueFromUint64(1), Pubkey: xtypes.PublicKey{2}}},
	}

	err := Apply(store, pool, tx, xtypes.Value{}, []xtypes.Hash{{0x01}})
	if err == nil {
		t.Fatalf("expected error for mismatched provides length")
	}
}
