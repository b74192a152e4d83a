package xtypes

import "github.com/holiman/uint256"

// Difficulty is a full 256-bit unsigned integer. Unlike Value it is not
// range-capped below 256 bits: the retargeting controller is expected to
// exercise the full width.
type Difficulty struct {
	inner uint256.Int
}

// DifficultyFromUint64 builds a Difficulty from a plain uint64, the usual
// way a chain's genesis difficulty is specified.
func DifficultyFromUint64(v uint64) Difficulty {
	var out Difficulty
	out.inner.SetUint64(v)
	return out
}

// DifficultyFromBytes32 builds a Difficulty from a big-endian 32-byte
// buffer, as used when restoring persisted state or reading a digest as a
// number.
func DifficultyFromBytes32(b [32]byte) Difficulty {
	var out Difficulty
	out.inner.SetBytes(b[:])
	return out
}

// Bytes32 renders the difficulty as a fixed 32-byte big-endian buffer.
func (d Difficulty) Bytes32() [32]byte {
	return d.inner.Bytes32()
}

func (d Difficulty) Cmp(other Difficulty) int {
	return d.inner.Cmp(&other.inner)
}

func (d Difficulty) IsZero() bool {
	return d.inner.IsZero()
}

// Add returns d+other, saturating at 2^256-1 on overflow. The retargeting
// controller clamps its output well below this ceiling, so saturation here
// is a last-resort guard rather than a path consensus relies on.
func (d Difficulty) Add(other Difficulty) Difficulty {
	var sum uint256.Int
	if sum.AddOverflow(&d.inner, &other.inner) {
		var allOnes uint256.Int
		allOnes.Not(&allOnes)
		return Difficulty{inner: allOnes}
	}
	return Difficulty{inner: sum}
}

// Sub returns d-other, clamping to zero on underflow.
func (d Difficulty) Sub(other Difficulty) Difficulty {
	if d.Cmp(other) < 0 {
		return Difficulty{}
	}
	var diff uint256.Int
	diff.Sub(&d.inner, &other.inner)
	return Difficulty{inner: diff}
}

// Mul returns d*other, saturating at 2^256-1 on overflow.
func (d Difficulty) Mul(other Difficulty) Difficulty {
	var prod uint256.Int
	if prod.MulOverflow(&d.inner, &other.inner) {
		var allOnes uint256.Int
		allOnes.Not(&allOnes)
		return Difficulty{inner: allOnes}
	}
	return Difficulty{inner: prod}
}

// Div returns d/other. Division by zero returns zero rather than panicking,
// matching uint256's own convention.
func (d Difficulty) Div(other Difficulty) Difficulty {
	var q uint256.Int
	q.Div(&d.inner, &other.inner)
	return Difficulty{inner: q}
}

// MulUint64 returns d*v as a Difficulty, used by the retargeting controller
// to compute its adjustment window (TargetBlockTime * WindowSize).
func (d Difficulty) MulUint64(v uint64) Difficulty {
	var factor uint256.Int
	factor.SetUint64(v)
	return d.Mul(Difficulty{inner: factor})
}

// DivUint64 returns d/v.
func (d Difficulty) DivUint64(v uint64) Difficulty {
	var divisor uint256.Int
	divisor.SetUint64(v)
	return d.Div(Difficulty{inner: divisor})
}

func (d Difficulty) Uint64() uint64 {
	return d.inner.Uint64()
}

func (d Difficulty) String() string {
	return d.inner.Dec()
}
