// Package chain implements the spend dispatch entry point: origin
// authentication, validation, application, and event emission, wired
// against the storage cells and capability interfaces runtime defines.
package chain

import (
	"github.com/ArnoldTumukunde/tumuchain/pkg/ledger"
	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/txvalidate"
	"github.com/ArnoldTumukunde/tumuchain/pkg/utxo"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xcodec"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// SignedOrigin identifies the account that submitted a dispatch. Its
// identity does not gate authorization — the transaction's sigscripts do —
// it exists only to provide sybil-resistance and weight accounting.
type SignedOrigin struct {
	Signer xtypes.PublicKey
}

// ErrUnsigned is returned when a dispatch carries no signed origin.
var ErrUnsigned = runtime.NewError(runtime.ErrInvalidSignature)

// Engine wires together the storage cells and capabilities a spend
// dispatch needs.
type Engine struct {
	Store    utxo.Store
	Pool     *ledger.Pool
	Hasher   runtime.Hasher
	Verifier runtime.SignatureVerifier
	Sink     runtime.EventSink
}

// NewEngine constructs an Engine over the given collaborators.
func NewEngine(store utxo.Store, pool *ledger.Pool, hasher runtime.Hasher, verifier runtime.SignatureVerifier, sink runtime.EventSink) *Engine {
	return &Engine{Store: store, Pool: pool, Hasher: hasher, Verifier: verifier, Sink: sink}
}

// Spend dispatches a spend extrinsic: validates tx, rejects it with
// MissingInputUtxo if any input is absent, otherwise applies it and emits
// TransactionSuccess.
func (e *Engine) Spend(origin SignedOrigin, tx xtypes.Transaction) error {
	var zero xtypes.PublicKey
	if origin.Signer == zero {
		return ErrUnsigned
	}

	descriptor, err := txvalidate.Validate(e.Store, e.Hasher, e.Verifier, tx)
	if err != nil {
		return err
	}
	if !descriptor.Executable() {
		return runtime.NewError(runtime.ErrMissingInputUTXO)
	}

	if err := ledger.Apply(e.Store, e.Pool, tx, descriptor.Fee, descriptor.Provides); err != nil {
		return err
	}

	h := e.Hasher.Hash(xcodec.EncodeTransaction(tx))
	e.Sink.Emit(runtime.TransactionSuccess{TxHash: h})
	return nil
}
