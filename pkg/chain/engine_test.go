package chain_test

import (
	"testing"

	"github.com/ArnoldTumukunde/tumuchain/pkg/chain"
	"github.com/ArnoldTumukunde/tumuchain/pkg/hostsim"
	"github.com/ArnoldTumukunde/tumuchain/pkg/ledger"
	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/utxo"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xcodec"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xcrypto"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xcrypto/sigverify"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

func TestSpendRejectsUnsignedOrigin(t *testing.T) {
	store := utxo.NewMemStore()
	e := chain.NewEngine(store, ledger.NewPool(), xcrypto.NewBlakeHasher(), sigverify.NewVerifier(), hostsim.NewEventLog())

	err := e.Spend(chain.SignedOrigin{}, xtypes.Transaction{})
	if kind, ok := runtime.KindOf(err); !ok || kind != runtime.ErrInvalidSignature {
		t.Fatalf("want ErrInvalidSignature for unsigned origin, got %v", err)
	}
}

func TestSpendEmitsTransactionSuccessOnDispatch(t *testing.T) {
	store := utxo.NewMemStore()
	hasher := xcrypto.NewBlakeHasher()
	verifier := sigverify.NewVerifier()
	sink := hostsim.NewEventLog()
	e := chain.NewEngine(store, ledger.NewPool(), hasher, verifier, sink)

	kp := sigverify.NewKeyPairFromBytes([32]byte{4, 5, 6})
	spendable := xtypes.TransactionOutput{Value: xtypes.ValueFromUint64(100), Pubkey: kp.PublicKey()}
	outpoint := hasher.Hash(xcodec.EncodeOutput(spendable))
	if err := store.Insert(outpoint, spendable); err != nil {
		t.Fatalf("seed: %v", err)
	}

	unsigned := xtypes.Transaction{
		Inputs:  []xtypes.TransactionInput{{Outpoint: outpoint}},
		Outputs: []xtypes.TransactionOutput{{Value: xtypes.ValueFromUint64(90), Pubkey: xtypes.PublicKey{8}}},
	}
	sig, err := kp.Sign(xcodec.SigningPayload(unsigned))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	unsigned.Inputs[0].Sigscript = sig

	if err := e.Spend(chain.SignedOrigin{Signer: kp.PublicKey()}, unsigned); err != nil {
		t.Fatalf("spend: %v", err)
	}

	events := sink.Events()
	if len(events) != 1 {
		t.Fatalf("want one event, got %d", len(events))
	}
	if _, ok := events[0].(runtime.TransactionSuccess); !ok {
		t.Fatalf("want TransactionSuccess, got %T", events[0])
	}
}
