package issuance

import (
	"testing"

	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

func TestHalvingSubsidyAtGenesis(t *testing.T) {
	h := NewHalving(5000, 100)
	if got := h.SubsidyAt(runtime.BlockHeight(0)).Uint64(); got != 5000 {
		t.Fatalf("want 5000, got %d", got)
	}
}

func TestHalvingSubsidyHalvesAtInterval(t *testing.T) {
	h := NewHalving(5000, 100)
	if got := h.SubsidyAt(runtime.BlockHeight(100)).Uint64(); got != 2500 {
		t.Fatalf("want 2500 after one halving, got %d", got)
	}
	if got := h.SubsidyAt(runtime.BlockHeight(200)).Uint64(); got != 1250 {
		t.Fatalf("want 1250 after two halvings, got %d", got)
	}
}

func TestHalvingFloorsAtZeroPastMaxHalvings(t *testing.T) {
	h := NewHalving(5000, 1)
	if got := h.SubsidyAt(runtime.BlockHeight(maxHalvings)).Uint64(); got != 0 {
		t.Fatalf("want 0 at max halvings, got %d", got)
	}
}

func TestFixedSubsidyIsConstant(t *testing.T) {
	f := Fixed{Amount: xtypes.ValueFromUint64(42)}
	if got := f.SubsidyAt(runtime.BlockHeight(0)).Uint64(); got != 42 {
		t.Fatalf("want 42, got %d", got)
	}
	if got := f.SubsidyAt(runtime.BlockHeight(1_000_000)).Uint64(); got != 42 {
		t.Fatalf("want 42 regardless of height, got %d", got)
	}
}
