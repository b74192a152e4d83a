package xcodec

import (
	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// SigningPayload returns the canonical bytes a spend's signatures must
// cover: the transaction with every Sigscript stripped to zero. Every
// input's signature is checked against this same payload, regardless of
// which input it lives on.
func SigningPayload(t xtypes.Transaction) []byte {
	return EncodeTransaction(t.StripSigs())
}

// OutputHash computes the content-addressed identifier a transaction's
// output at index becomes spendable under: hash(strip_sigs(t) || index_LE)
//. Two transactions that differ only in their signatures
// produce identical output hashes, which is what lets a spend be
// constructed before it is signed.
func OutputHash(hasher runtime.Hasher, t xtypes.Transaction, index uint64) xtypes.Hash {
	payload := append(SigningPayload(t), EncodeUint64LE(index)...)
	return hasher.Hash(payload)
}
