// Package reward implements the block-finalization reward dispatcher: it
// pays the pooled fees plus the block subsidy to the block's author as a
// new output, following the same value-construction pattern a coinbase
// output uses.
package reward

import (
	"github.com/ArnoldTumukunde/tumuchain/pkg/ledger"
	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/utxo"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xcodec"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// Dispatch consults oracle for the current block's author. If none is
// found it emits RewardsWasted and leaves pool untouched (fees accrue for
// a later block). Otherwise it pays the pool's balance plus
// the issuance subsidy to the author as a new UTXO, emits RewardsIssued,
// and drains the pool.
func Dispatch(
	store utxo.Store,
	pool *ledger.Pool,
	hasher runtime.Hasher,
	oracle runtime.BlockAuthorOracle,
	sched runtime.IssuanceSchedule,
	height runtime.BlockHeight,
) (runtime.Event, error) {
	author := oracle.Author(height)
	var zero xtypes.PublicKey
	if author == zero {
		return runtime.RewardsWasted{Height: height, Author: author, Amount: pool.Peek()}, nil
	}

	reward := pool.Take().SaturatingAdd(sched.SubsidyAt(height))

	out := xtypes.TransactionOutput{Value: reward, Pubkey: author}
	preimage := append(xcodec.EncodeOutput(out), xcodec.EncodeUint64LE(uint64(height))...)
	h := hasher.Hash(preimage)

	if err := store.Insert(h, out); err != nil {
		return nil, err
	}

	return runtime.RewardsIssued{Height: height, Author: author, Amount: reward}, nil
}
