package chain

import "github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"

// baseWeight and perPartWeight express a dispatch's execution cost as a
// fixed base cost plus a linear cost per input or output.
const (
	baseWeight    uint64 = 10_000
	perPartWeight uint64 = 10_000
)

// Weight returns the dispatch weight for a spend of tx, linear in
// len(inputs)+len(outputs).
func Weight(tx xtypes.Transaction) uint64 {
	parts := uint64(len(tx.Inputs) + len(tx.Outputs))
	return baseWeight + perPartWeight*parts
}
