package xcodec

import (
	"io"

	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// EncodeOutput canonically encodes a single TransactionOutput: value (16
// bytes little-endian) then pubkey (32 bytes), in struct field order.
func EncodeOutput(o xtypes.TransactionOutput) []byte {
	buf := newBuffer()
	v := o.Value.Bytes16()
	buf.Write(v[:])
	buf.Write(o.Pubkey[:])
	return buf.Bytes()
}

// DecodeOutput reverses EncodeOutput.
func DecodeOutput(r io.Reader) (xtypes.TransactionOutput, error) {
	return decodeOutput(r)
}

func decodeOutput(r io.Reader) (xtypes.TransactionOutput, error) {
	var out xtypes.TransactionOutput
	var v [16]byte
	if err := readFixed(r, v[:]); err != nil {
		return out, err
	}
	out.Value = xtypes.ValueFromBytes16(v)
	var pk xtypes.PublicKey
	if err := readFixed(r, pk[:]); err != nil {
		return out, err
	}
	out.Pubkey = pk
	return out, nil
}

// EncodeInput canonically encodes a single TransactionInput: outpoint (32
// bytes) then sigscript (64 bytes).
func EncodeInput(in xtypes.TransactionInput) []byte {
	buf := newBuffer()
	buf.Write(in.Outpoint[:])
	buf.Write(in.Sigscript[:])
	return buf.Bytes()
}

func decodeInput(r io.Reader) (xtypes.TransactionInput, error) {
	var in xtypes.TransactionInput
	var op xtypes.Hash
	if err := readFixed(r, op[:]); err != nil {
		return in, err
	}
	in.Outpoint = op
	var sig xtypes.Signature
	if err := readFixed(r, sig[:]); err != nil {
		return in, err
	}
	in.Sigscript = sig
	return in, nil
}

// EncodeTransaction canonically encodes a Transaction: input count, each
// input, output count, each output, in that order — the struct's
// declaration order.
func EncodeTransaction(t xtypes.Transaction) []byte {
	buf := newBuffer()
	_ = writeCompactLen(buf, len(t.Inputs))
	for _, in := range t.Inputs {
		buf.Write(EncodeInput(in))
	}
	_ = writeCompactLen(buf, len(t.Outputs))
	for _, out := range t.Outputs {
		buf.Write(EncodeOutput(out))
	}
	return buf.Bytes()
}

// DecodeTransaction reverses EncodeTransaction.
func DecodeTransaction(r io.Reader) (xtypes.Transaction, error) {
	var t xtypes.Transaction

	nIn, err := readCompactLen(r)
	if err != nil {
		return t, err
	}
	t.Inputs = make([]xtypes.TransactionInput, nIn)
	for i := 0; i < nIn; i++ {
		in, err := decodeInput(r)
		if err != nil {
			return t, err
		}
		t.Inputs[i] = in
	}

	nOut, err := readCompactLen(r)
	if err != nil {
		return t, err
	}
	t.Outputs = make([]xtypes.TransactionOutput, nOut)
	for i := 0; i < nOut; i++ {
		out, err := decodeOutput(r)
		if err != nil {
			return t, err
		}
		t.Outputs[i] = out
	}

	return t, nil
}
