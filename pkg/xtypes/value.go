package xtypes

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Value is an unsigned 128-bit amount. It is carried in a 256-bit
// checked-arithmetic container (github.com/holiman/uint256), the
// overflow-aware integer type this codebase standardizes on for consensus
// numerics; construction and every arithmetic helper here enforce the
// 128-bit range a Value is allowed to hold.
type Value struct {
	inner uint256.Int
}

// maxValue is 2^128 - 1, the ceiling a Value is allowed to hold.
var maxValue = func() uint256.Int {
	var allOnes, v uint256.Int
	allOnes.Not(&allOnes) // 0 -> 2^256 - 1
	v.Rsh(&allOnes, 128)  // 2^256-1 >> 128 == 2^128 - 1
	return v
}()

// ValueFromUint64 builds a Value from a plain uint64 amount.
func ValueFromUint64(v uint64) Value {
	var out Value
	out.inner.SetUint64(v)
	return out
}

// ValueFromBytes16 constructs a Value from a 16-byte little-endian buffer,
// as used when decoding the wire format.
func ValueFromBytes16(b [16]byte) Value {
	var reversed [16]byte
	for i, bb := range b {
		reversed[15-i] = bb
	}
	var out Value
	out.inner.SetBytes(reversed[:])
	return out
}

// Bytes16 renders the value as a fixed 16-byte little-endian buffer for the
// canonical wire encoding.
func (v Value) Bytes16() [16]byte {
	var out [16]byte
	b := v.inner.Bytes32()
	be := b[16:32]
	for i, bb := range be {
		out[15-i] = bb
	}
	return out
}

// IsZero reports whether the value is zero.
func (v Value) IsZero() bool {
	return v.inner.IsZero()
}

// Cmp compares two values the way uint256.Int does.
func (v Value) Cmp(other Value) int {
	return v.inner.Cmp(&other.inner)
}

// CheckedAdd returns v+other and ok=false if the 128-bit range would be
// exceeded.
func (v Value) CheckedAdd(other Value) (Value, bool) {
	var sum uint256.Int
	overflowed256 := sum.AddOverflow(&v.inner, &other.inner)
	if overflowed256 || sum.Cmp(&maxValue) > 0 {
		return Value{}, false
	}
	return Value{inner: sum}, true
}

// CheckedSub returns v-other and ok=false on underflow.
func (v Value) CheckedSub(other Value) (Value, bool) {
	if v.Cmp(other) < 0 {
		return Value{}, false
	}
	var diff uint256.Int
	diff.Sub(&v.inner, &other.inner)
	return Value{inner: diff}, true
}

// SaturatingAdd adds, clamping to the 128-bit maximum on overflow. Used by
// the reward dispatcher, which must never fail a block's finalization hook.
func (v Value) SaturatingAdd(other Value) Value {
	sum, ok := v.CheckedAdd(other)
	if ok {
		return sum
	}
	return Value{inner: maxValue}
}

// Uint64 returns the value truncated to 64 bits, used only where the caller
// has already bounded the amount (e.g. priority/fee reporting).
func (v Value) Uint64() uint64 {
	return v.inner.Uint64()
}

func (v Value) String() string {
	return v.inner.Dec()
}

func (v Value) GoString() string {
	return fmt.Sprintf("xtypes.Value(%s)", v.inner.Dec())
}
