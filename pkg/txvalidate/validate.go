// Package txvalidate implements the pure, state-reading-only transaction
// validator: a nine-step ordered check producing a descriptor of what the
// transaction requires (missing inputs) and provides (new output hashes)
// without mutating the UTXO store. The duplicate/overflow guards follow a
// checked-arithmetic idiom throughout.
package txvalidate

import (
	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/utxo"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xcodec"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// Descriptor describes a transaction's validity: the inputs it still
// needs before it can execute on-chain, the output hashes it would
// create, and the fee it would pay if executed now.
type Descriptor struct {
	Requires []xtypes.Hash
	Provides []xtypes.Hash
	Fee      xtypes.Value
}

// Executable reports whether the transaction has no missing inputs and
// can therefore be dispatched on-chain immediately.
func (d Descriptor) Executable() bool {
	return len(d.Requires) == 0
}

type inputKey struct {
	outpoint xtypes.Hash
	sig      xtypes.Signature
}

// Validate runs the nine ordered checks against store and returns the
// resulting descriptor, or the first error encountered.
func Validate(store utxo.Store, hasher runtime.Hasher, verifier runtime.SignatureVerifier, tx xtypes.Transaction) (Descriptor, error) {
	if len(tx.Inputs) == 0 {
		return Descriptor{}, runtime.NewError(runtime.ErrNoInputs)
	}
	if len(tx.Outputs) == 0 {
		return Descriptor{}, runtime.NewError(runtime.ErrNoOutputs)
	}
	if len(tx.Inputs) > xtypes.MaxTransactionParts || len(tx.Outputs) > xtypes.MaxTransactionParts {
		return Descriptor{}, runtime.NewError(runtime.ErrTooManyParts)
	}

	seenInputs := make(map[inputKey]struct{}, len(tx.Inputs))
	for _, in := range tx.Inputs {
		key := inputKey{outpoint: in.Outpoint, sig: in.Sigscript}
		if _, dup := seenInputs[key]; dup {
			return Descriptor{}, runtime.NewError(runtime.ErrDuplicateInput)
		}
		seenInputs[key] = struct{}{}
	}

	for i := range tx.Outputs {
		for j := i + 1; j < len(tx.Outputs); j++ {
			if tx.Outputs[i].Equal(tx.Outputs[j]) {
				return Descriptor{}, runtime.NewError(runtime.ErrDuplicateOutput)
			}
		}
	}

	payload := xcodec.SigningPayload(tx)

	var totalInput xtypes.Value
	var requires []xtypes.Hash
	for _, in := range tx.Inputs {
		inputUTXO, exists, err := store.Get(in.Outpoint)
		if err != nil {
			return Descriptor{}, err
		}
		if !exists {
			requires = append(requires, in.Outpoint)
			continue
		}
		if !verifier.Verify(inputUTXO.Pubkey, payload, in.Sigscript) {
			return Descriptor{}, runtime.NewError(runtime.ErrInvalidSignature)
		}
		sum, ok := totalInput.CheckedAdd(inputUTXO.Value)
		if !ok {
			return Descriptor{}, runtime.NewError(runtime.ErrValueOverflow)
		}
		totalInput = sum
	}

	var totalOutput xtypes.Value
	var provides []xtypes.Hash
	var index uint64
	for _, out := range tx.Outputs {
		if out.Value.IsZero() {
			return Descriptor{}, runtime.NewError(runtime.ErrZeroValueOutput)
		}

		h := xcodec.OutputHash(hasher, tx, index)
		if index == ^uint64(0) {
			return Descriptor{}, runtime.NewError(runtime.ErrOutputIndexOverflow)
		}
		index++

		alreadyExists, err := store.Contains(h)
		if err != nil {
			return Descriptor{}, err
		}
		if alreadyExists {
			return Descriptor{}, runtime.NewError(runtime.ErrOutputAlreadyExists)
		}

		sum, ok := totalOutput.CheckedAdd(out.Value)
		if !ok {
			return Descriptor{}, runtime.NewError(runtime.ErrValueOverflow)
		}
		totalOutput = sum
		provides = append(provides, h)
	}

	var fee xtypes.Value
	if len(requires) == 0 {
		if totalInput.Cmp(totalOutput) < 0 {
			return Descriptor{}, runtime.NewError(runtime.ErrOutputExceedsInput)
		}
		f, ok := totalInput.CheckedSub(totalOutput)
		if !ok {
			return Descriptor{}, runtime.NewError(runtime.ErrRewardError)
		}
		fee = f
	}

	return Descriptor{Requires: requires, Provides: provides, Fee: fee}, nil
}
