package txvalidate

import (
	"testing"

	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/utxo"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xcrypto"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// alwaysVerify treats every signature as valid, letting tests focus on the
// validator's own checks rather than real signature material.
type alwaysVerify bool

func (v alwaysVerify) Verify(xtypes.PublicKey, []byte, xtypes.Signature) bool {
	return bool(v)
}

func pub(b byte) xtypes.PublicKey {
	var p xtypes.PublicKey
	p[0] = b
	return p
}

func seedStore(t *testing.T, store utxo.Store, hasher runtime.Hasher, outpoint xtypes.Hash, out xtypes.TransactionOutput) {
	t.Helper()
	if err := store.Insert(outpoint, out); err != nil {
		t.Fatalf("seed store: %v", err)
	}
}

func TestValidateRejectsNoInputs(t *testing.T) {
	store := utxo.NewMemStore()
	hasher := xcrypto.NewBlakeHasher()
	tx := xtypes.Transaction{Outputs: []xtypes.TransactionOutput{{Value: xtypes.ValueFromUint64(1), Pubkey: pub(1)}}}

	_, err := Validate(store, hasher, alwaysVerify(true), tx)
	if kind, ok := runtime.KindOf(err); !ok || kind != runtime.ErrNoInputs {
		t.Fatalf("want ErrNoInputs, got %v", err)
	}
}

func TestValidateRejectsNoOutputs(t *testing.T) {
	store := utxo.NewMemStore()
	hasher := xcrypto.NewBlakeHasher()
	var op xtypes.Hash
	tx := xtypes.Transaction{Inputs: []xtypes.TransactionInput{{Outpoint: op}}}

	_, err := Validate(store, hasher, alwaysVerify(true), tx)
	if kind, ok := runtime.KindOf(err); !ok || kind != runtime.ErrNoOutputs {
		t.Fatalf("want ErrNoOutputs, got %v", err)
	}
}

func TestValidateRejectsTooManyParts(t *testing.T) {
	store := utxo.NewMemStore()
	hasher := xcrypto.NewBlakeHasher()

	inputs := make([]xtypes.TransactionInput, xtypes.MaxTransactionParts+1)
	for i := range inputs {
		var op xtypes.Hash
		op[0] = byte(i)
		inputs[i] = xtypes.TransactionInput{Outpoint: op}
	}
	tx := xtypes.Transaction{
		Inputs:  inputs,
		Outputs: []xtypes.TransactionOutput{{Value: xtypes.ValueFromUint64(1), Pubkey: pub(1)}},
	}

	_, err := Validate(store, hasher, alwaysVerify(true), tx)
	if kind, ok := runtime.KindOf(err); !ok || kind != runtime.ErrTooManyParts {
		t.Fatalf("want ErrTooManyParts, got %v", err)
	}
}

func TestValidateRejectsDuplicateInput(t *testing.T) {
	store := utxo.NewMemStore()
	hasher := xcrypto.NewBlakeHasher()
	var op xtypes.Hash
	op[0] = 7
	var sig xtypes.Signature

	tx := xtypes.Transaction{
		Inputs: []xtypes.TransactionInput{
			{Outpoint: op, Sigscript: sig},
			{Outpoint: op, Sigscript: sig},
		},
		Outputs: []xtypes.TransactionOutput{{Value: xtypes.ValueFromUint64(1), Pubkey: pub(1)}},
	}

	_, err := Validate(store, hasher, alwaysVerify(true), tx)
	if kind, ok := runtime.KindOf(err); !ok || kind != runtime.ErrDuplicateInput {
		t.Fatalf("want ErrDuplicateInput, got %v", err)
	}
}

func TestValidateRejectsDuplicateOutput(t *testing.T) {
	store := utxo.NewMemStore()
	hasher := xcrypto.NewBlakeHasher()
	var op1, op2 xtypes.Hash
	op1[0], op2[0] = 1, 2

	out := xtypes.TransactionOutput{Value: xtypes.ValueFromUint64(5), Pubkey: pub(9)}
	seedStore(t, store, hasher, op1, out)
	seedStore(t, store, hasher, op2, out)

	tx := xtypes.Transaction{
		Inputs:  []xtypes.TransactionInput{{Outpoint: op1}, {Outpoint: op2}},
		Outputs: []xtypes.TransactionOutput{out, out},
	}

	_, err := Validate(store, hasher, alwaysVerify(true), tx)
	if kind, ok := runtime.KindOf(err); !ok || kind != runtime.ErrDuplicateOutput {
		t.Fatalf("want ErrDuplicateOutput, got %v", err)
	}
}

func TestValidateMissingInputProducesRequires(t *testing.T) {
	store := utxo.NewMemStore()
	hasher := xcrypto.NewBlakeHasher()
	var missing xtypes.Hash
	missing[0] = 0x42

	tx := xtypes.Transaction{
		Inputs:  []xtypes.TransactionInput{{Outpoint: missing}},
		Outputs: []xtypes.TransactionOutput{{Value: xtypes.ValueFromUint64(1), Pubkey: pub(1)}},
	}

	desc, err := Validate(store, hasher, alwaysVerify(true), tx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc.Executable() {
		t.Fatalf("descriptor should not be executable: %+v", desc)
	}
	if len(desc.Requires) != 1 || desc.Requires[0] != missing {
		t.Fatalf("requires should list missing outpoint, got %+v", desc.Requires)
	}
}

func TestValidateRejectsInvalidSignature(t *testing.T) {
	store := utxo.NewMemStore()
	hasher := xcrypto.NewBlakeHasher()
	var op xtypes.Hash
	op[0] = 3
	seedStore(t, store, hasher, op, xtypes.TransactionOutput{Value: xtypes.ValueFromUint64(10), Pubkey: pub(1)})

	tx := xtypes.Transaction{
		Inputs:  []xtypes.TransactionInput{{Outpoint: op}},
		Outputs: []xtypes.TransactionOutput{{Value: xtypes.ValueFromUint64(10), Pubkey: pub(2)}},
	}

	_, err := Validate(store, hasher, alwaysVerify(false), tx)
	if kind, ok := runtime.KindOf(err); !ok || kind != runtime.ErrInvalidSignature {
		t.Fatalf("want ErrInvalidSignature, got %v", err)
	}
}

func TestValidateRejectsZeroValueOutput(t *testing.T) {
	store := utxo.NewMemStore()
	hasher := xcrypto.NewBlakeHasher()
	var op xtypes.Hash
	op[0] = 4
	seedStore(t, store, hasher, op, xtypes.TransactionOutput{Value: xtypes.ValueFromUint64(10), Pubkey: pub(1)})

	tx := xtypes.Transaction{
		Inputs:  []xtypes.TransactionInput{{Outpoint: op}},
		Outputs: []xtypes.TransactionOutput{{Value: xtypes.Value{}, Pubkey: pub(2)}},
	}

	_, err := Validate(store, hasher, alwaysVerify(true), tx)
	if kind, ok := runtime.KindOf(err); !ok || kind != runtime.ErrZeroValueOutput {
		t.Fatalf("want ErrZeroValueOutput, got %v", err)
	}
}

func TestValidateRejectsOutputExceedsInput(t *testing.T) {
	store := utxo.NewMemStore()
	hasher := xcrypto.NewBlakeHasher()
	var op xtypes.Hash
	op[0] = 5
	seedStore(t, store, hasher, op, xtypes.TransactionOutput{Value: xtypes.ValueFromUint64(10), Pubkey: pub(1)})

	tx := xtypes.Transaction{
		Inputs:  []xtypes.TransactionInput{{Outpoint: op}},
		Outputs: []xtypes.TransactionOutput{{Value: xtypes.ValueFromUint64(11), Pubkey: pub(2)}},
	}

	_, err := Validate(store, hasher, alwaysVerify(true), tx)
	if kind, ok := runtime.KindOf(err); !ok || kind != runtime.ErrOutputExceedsInput {
		t.Fatalf("want ErrOutputExceedsInput, got %v", err)
	}
}

func TestValidateHappyPathComputesFee(t *testing.T) {
	store := utxo.NewMemStore()
	hasher := xcrypto.NewBlakeHasher()
	var op xtypes.Hash
	op[0] = 6
	seedStore(t, store, hasher, op, xtypes.TransactionOutput{Value: xtypes.ValueFromUint64(100), Pubkey: pub(1)})

	tx := xtypes.Transaction{
		Inputs:  []xtypes.TransactionInput{{Outpoint: op}},
		Outputs: []xtypes.TransactionOutput{{Value: xtypes.ValueFromUint64(90), Pubkey: pub(2)}},
	}

	desc, err := Validate(store, hasher, alwaysVerify(true), tx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !desc.Executable() {
		t.Fatalf("descriptor should be executable")
	}
	if desc.Fee.Uint64() != 10 {
		t.Fatalf("want fee 10, got %s", desc.Fee)
	}
	if len(desc.Provides) != 1 {
		t.Fatalf("want one provided output hash, got %d", len(desc.Provides))
	}
}

func TestValidateRejectsOutputAlreadyExists(t *testing.T) {
	store := utxo.NewMemStore()
	hasher := xcrypto.NewBlakeHasher()
	var op xtypes.Hash
	op[0] = 8
	out := xtypes.TransactionOutput{Value: xtypes.ValueFromUint64(100), Pubkey: pub(1)}
	seedStore(t, store, hasher, op, out)

	tx := xtypes.Transaction{
		Inputs:  []xtypes.TransactionInput{{Outpoint: op}},
		Outputs: []xtypes.TransactionOutput{{Value: xtypes.ValueFromUint64(90), Pubkey: pub(2)}},
	}

	desc, err := Validate(store, hasher, alwaysVerify(true), tx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Pre-insert the output this transaction would provide, as though it
	// had already been dispatched once, and validate again.
	if err := store.Insert(desc.Provides[0], tx.Outputs[0]); err != nil {
		t.Fatalf("seed provided output: %v", err)
	}

	_, err = Validate(store, hasher, alwaysVerify(true), tx)
	if kind, ok := runtime.KindOf(err); !ok || kind != runtime.ErrOutputAlreadyExists {
		t.Fatalf("want ErrOutputAlreadyExists, got %v", err)
	}
}
