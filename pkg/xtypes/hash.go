// Package xtypes holds the consensus-critical value types shared by the
// UTXO ledger and the difficulty controller: hashes, keys, signatures,
// amounts, and the transaction wire shape itself.
package xtypes

import (
	"encoding/hex"
	"fmt"
)

// Hash is a 256-bit opaque digest produced by the configured hasher.
type Hash [32]byte

// String returns the hex representation, used for logs and event payloads.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// HashFromHex parses a hex-encoded 32-byte hash.
func HashFromHex(s string) (Hash, error) {
	var h Hash
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("xtypes: invalid hash hex: %w", err)
	}
	if len(b) != len(h) {
		return h, fmt.Errorf("xtypes: hash must be %d bytes, got %d", len(h), len(b))
	}
	copy(h[:], b)
	return h, nil
}

// IsZero reports whether h is the all-zero hash (used by the coinbase-style
// null outpoint convention some callers adopt for synthetic inputs).
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// PublicKey is the 256-bit opaque key a UTXO is locked to.
type PublicKey [32]byte

func (p PublicKey) String() string {
	return hex.EncodeToString(p[:])
}

// PublicKeyFromHex parses a hex-encoded 32-byte public key.
func PublicKeyFromHex(s string) (PublicKey, error) {
	var p PublicKey
	b, err := hex.DecodeString(s)
	if err != nil {
		return p, fmt.Errorf("xtypes: invalid pubkey hex: %w", err)
	}
	if len(b) != len(p) {
		return p, fmt.Errorf("xtypes: pubkey must be %d bytes, got %d", len(p), len(b))
	}
	copy(p[:], b)
	return p, nil
}

// Signature is the 512-bit opaque signature authorizing a spend.
type Signature [64]byte

func (s Signature) String() string {
	return hex.EncodeToString(s[:])
}

// IsZero reports whether s is the all-zero signature, the sentinel value
// strip_sigs substitutes into the signing payload.
func (s Signature) IsZero() bool {
	return s == Signature{}
}
