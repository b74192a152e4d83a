// Package xcodec implements the canonical, deterministic wire encoding that
// transaction hashes and signing payloads are computed over. The format is
// SCALE-style: little-endian fixed-width scalars, a compact length prefix
// ahead of variable-length sequences, and struct fields encoded strictly in
// declaration order. It must produce identical bytes on every node, so
// nothing here may range over a map or otherwise introduce
// non-deterministic ordering.
//
// The primitives below generalize a hand-rolled Bitcoin-style wire format:
// a compact-size length prefix ahead of variable-length data, little-endian
// fixed-width integers elsewhere.
package xcodec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// writeCompactLen writes a length as a compact, self-delimiting prefix.
// Transactions are bounded to MaxTransactionParts (100) elements per
// sequence, so in practice this always takes the single-byte branch; the
// wider branches exist so the codec degrades gracefully if that bound is
// ever revisited, rather than silently truncating.
func writeCompactLen(w io.Writer, n int) error {
	v := uint64(n)
	switch {
	case v < 0xFD:
		_, err := w.Write([]byte{byte(v)})
		return err
	case v <= 0xFFFF:
		if _, err := w.Write([]byte{0xFD}); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, uint16(v))
	case v <= 0xFFFFFFFF:
		if _, err := w.Write([]byte{0xFE}); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, uint32(v))
	default:
		if _, err := w.Write([]byte{0xFF}); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, v)
	}
}

// readCompactLen reads a length prefix written by writeCompactLen.
func readCompactLen(r io.Reader) (int, error) {
	var first [1]byte
	if _, err := io.ReadFull(r, first[:]); err != nil {
		return 0, err
	}
	switch first[0] {
	case 0xFD:
		var v uint16
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return int(v), nil
	case 0xFE:
		var v uint32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return int(v), nil
	case 0xFF:
		var v uint64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return int(v), nil
	default:
		return int(first[0]), nil
	}
}

// EncodeUint64LE renders v as 8 little-endian bytes. Exported because the
// output-hash preimage appends an index encoded this way
// after the transaction payload.
func EncodeUint64LE(v uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return buf
}

// errShortRead is returned when a fixed-width field runs past the buffer.
var errShortRead = fmt.Errorf("xcodec: unexpected end of input")

func readFixed(r io.Reader, buf []byte) error {
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return errShortRead
	}
	return nil
}

// newBuffer is a tiny helper so callers encoding a single value don't need
// to import bytes themselves.
func newBuffer() *bytes.Buffer {
	return new(bytes.Buffer)
}
