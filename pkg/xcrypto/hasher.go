// Package xcrypto provides the concrete Hasher the runtime package only
// describes as an interface: a single blake3-256 pass in place of
// Bitcoin-style double-SHA256, the digest primitive higher-throughput
// chains tend to reach for.
package xcrypto

import (
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
	"lukechampine.com/blake3"
)

// BlakeHasher implements runtime.Hasher with a single blake3-256 pass.
type BlakeHasher struct{}

// NewBlakeHasher returns the default hasher used by cmd/utxod and the
// hostsim driver.
func NewBlakeHasher() BlakeHasher {
	return BlakeHasher{}
}

func (BlakeHasher) Hash(data []byte) xtypes.Hash {
	return xtypes.Hash(blake3.Sum256(data))
}
