// Package wallet tracks a set of owned key pairs and the unspent outputs
// they control, and builds the signed transactions a spender submits to
// the engine. It replaces key management and address bookkeeping with the
// flatter shape the ledger's 32-byte opaque public keys allow: there are
// no addresses or scripts to decode, only outpoints and pubkeys.
package wallet

import (
	"fmt"
	"sync"

	"github.com/ArnoldTumukunde/tumuchain/pkg/xcrypto/sigverify"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// owned is a UTXO this wallet can spend, alongside the outpoint that
// references it.
type owned struct {
	outpoint xtypes.Hash
	output   xtypes.TransactionOutput
}

// Wallet manages key pairs and tracks the outputs locked to them.
type Wallet struct {
	mu    sync.RWMutex
	keys  map[xtypes.PublicKey]sigverify.KeyPair
	utxos map[xtypes.Hash]owned
}

// New creates an empty wallet.
func New() *Wallet {
	return &Wallet{
		keys:  make(map[xtypes.PublicKey]sigverify.KeyPair),
		utxos: make(map[xtypes.Hash]owned),
	}
}

// ImportKey adds a key pair derived from 32 bytes of secret material and
// returns the public key it controls.
func (w *Wallet) ImportKey(secret [32]byte) xtypes.PublicKey {
	w.mu.Lock()
	defer w.mu.Unlock()

	kp := sigverify.NewKeyPairFromBytes(secret)
	pub := kp.PublicKey()
	w.keys[pub] = kp
	return pub
}

// Observe registers an output as spendable by this wallet if one of its
// imported keys owns it.
func (w *Wallet) Observe(outpoint xtypes.Hash, output xtypes.TransactionOutput) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.keys[output.Pubkey]; !ok {
		return
	}
	w.utxos[outpoint] = owned{outpoint: outpoint, output: output}
}

// Forget removes an outpoint the wallet no longer controls, typically
// after it has been spent.
func (w *Wallet) Forget(outpoint xtypes.Hash) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.utxos, outpoint)
}

// Balance sums the value of every tracked output.
func (w *Wallet) Balance() xtypes.Value {
	w.mu.RLock()
	defer w.mu.RUnlock()

	total := xtypes.Value{}
	for _, u := range w.utxos {
		total = total.SaturatingAdd(u.output.Value)
	}
	return total
}

// selectOutputs greedily accumulates tracked outputs until their combined
// value is at least amount, returning ErrInsufficientFunds-shaped error if
// the wallet cannot cover it.
func (w *Wallet) selectOutputs(amount xtypes.Value) ([]owned, xtypes.Value, error) {
	var selected []owned
	total := xtypes.Value{}
	for _, u := range w.utxos {
		selected = append(selected, u)
		total = total.SaturatingAdd(u.output.Value)
		if total.Cmp(amount) >= 0 {
			return selected, total, nil
		}
	}
	return nil, total, fmt.Errorf("wallet: insufficient funds: have %s, need %s", total, amount)
}

// Send builds and signs a transaction paying amount to recipient, with any
// change returned to one of the wallet's own keys. It does not submit the
// transaction; the caller dispatches it through chain.SignedOrigin and
// the chain engine.
func (w *Wallet) Send(recipient xtypes.PublicKey, amount xtypes.Value) (xtypes.Transaction, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	inputs, total, err := w.selectOutputs(amount)
	if err != nil {
		return xtypes.Transaction{}, err
	}

	var changeKey xtypes.PublicKey
	for k := range w.keys {
		changeKey = k
		break
	}

	outputs := []xtypes.TransactionOutput{{Value: amount, Pubkey: recipient}}
	change, _ := total.CheckedSub(amount)
	if !change.IsZero() {
		outputs = append(outputs, xtypes.TransactionOutput{Value: change, Pubkey: changeKey})
	}

	unsigned := xtypes.Transaction{
		Inputs:  make([]xtypes.TransactionInput, len(inputs)),
		Outputs: outputs,
	}
	for i, in := range inputs {
		unsigned.Inputs[i] = xtypes.TransactionInput{Outpoint: in.outpoint}
	}

	return w.sign(unsigned, inputs)
}

// Keys returns the public keys this wallet holds signing material for.
func (w *Wallet) Keys() []xtypes.PublicKey {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]xtypes.PublicKey, 0, len(w.keys))
	for k := range w.keys {
		out = append(out, k)
	}
	return out
}
