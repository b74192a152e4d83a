package hostsim

import (
	"fmt"

	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// SealHeader is the minimal block-header shape a proof-of-work author seals:
// enough to bind a nonce to a height, a previous hash, and the transactions
// root the author is proposing, without pulling in a full block type.
type SealHeader struct {
	Height     runtime.BlockHeight
	PrevHash   xtypes.Hash
	TxRoot     xtypes.Hash
	Difficulty xtypes.Difficulty
	Nonce      uint64
}

// MiningStats mirrors what a miner reports back to an operator console:
// attempt count and the nonce that finally sealed the header.
type MiningStats struct {
	Attempts uint64
	Nonce    uint64
}

// maxTarget is the all-ones 256-bit ceiling a difficulty of 1 maps to.
// Target = maxTarget / difficulty, the same inverse relationship the
// retargeting controller assumes when it raises difficulty to shrink
// the set of hashes that satisfy proof-of-work.
func maxTarget() xtypes.Difficulty {
	var max [32]byte
	for i := range max {
		max[i] = 0xff
	}
	return xtypes.DifficultyFromBytes32(max)
}

// SealHeader searches nonces until the header's digest falls under the
// target implied by difficulty, the way a miner repeatedly re-hashes a
// candidate header with an incrementing nonce until proof-of-work is
// satisfied. maxAttempts bounds the search so a pathologically high
// difficulty cannot hang the caller; an error is returned if it is
// exhausted.
func SealHeader(hasher runtime.Hasher, header SealHeader, maxAttempts uint64) (SealHeader, MiningStats, error) {
	if header.Difficulty.IsZero() {
		return header, MiningStats{}, fmt.Errorf("hostsim: cannot seal against zero difficulty")
	}
	target := maxTarget().Div(header.Difficulty)

	stats := MiningStats{}
	for nonce := uint64(0); nonce < maxAttempts; nonce++ {
		header.Nonce = nonce
		digest := hasher.Hash(encodeSealHeader(header))
		stats.Attempts++

		if meetsTarget(digest, target) {
			stats.Nonce = nonce
			return header, stats, nil
		}
	}
	return header, stats, fmt.Errorf("hostsim: no nonce under %d attempts met target", maxAttempts)
}

// meetsTarget reports whether digest, read as a big-endian 256-bit integer,
// is at or below target.
func meetsTarget(digest xtypes.Hash, target xtypes.Difficulty) bool {
	candidate := xtypes.DifficultyFromBytes32(digest)
	return candidate.Cmp(target) <= 0
}

func encodeSealHeader(h SealHeader) []byte {
	buf := make([]byte, 0, 8+32+32+32+8)
	buf = appendUint64LE(buf, uint64(h.Height))
	buf = append(buf, h.PrevHash[:]...)
	buf = append(buf, h.TxRoot[:]...)
	diffBytes := h.Difficulty.Bytes32()
	buf = append(buf, diffBytes[:]...)
	buf = appendUint64LE(buf, h.Nonce)
	return buf
}

func appendUint64LE(buf []byte, v uint64) []byte {
	var tmp [8]byte
	for i := 0; i < 8; i++ {
		tmp[i] = byte(v >> (8 * i))
	}
	return append(buf, tmp[:]...)
}
