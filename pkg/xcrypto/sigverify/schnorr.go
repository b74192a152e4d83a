// Package sigverify implements runtime.SignatureVerifier on top of BIP-340
// Schnorr signatures over secp256k1 (github.com/btcsuite/btcd/btcec/v2 and
// its schnorr subpackage). A 32-byte x-only public key and 64-byte
// signature give a fixed-width wire representation without pulling in a
// second curve library.
package sigverify

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// Verifier implements runtime.SignatureVerifier.
type Verifier struct{}

// NewVerifier returns the default signature verifier.
func NewVerifier() Verifier {
	return Verifier{}
}

// Verify reports whether sig is a valid BIP-340 signature over msg under
// the x-only public key pubkey. Any malformed key or signature is treated
// as a failed verification rather than a distinct error.
func (Verifier) Verify(pubkey xtypes.PublicKey, msg []byte, sig xtypes.Signature) bool {
	pk, err := schnorr.ParsePubKey(pubkey[:])
	if err != nil {
		return false
	}
	s, err := schnorr.ParseSignature(sig[:])
	if err != nil {
		return false
	}
	digest := hashForSigning(msg)
	return s.Verify(digest[:], pk)
}

// hashForSigning reduces an arbitrary-length message to the 32-byte digest
// Schnorr verification operates over.
func hashForSigning(msg []byte) [32]byte {
	return sha256Sum(msg)
}

// KeyPair wraps a private/public key pair for the wallet-facing signing
// helper; it exists so callers outside this package never touch btcec
// types directly.
type KeyPair struct {
	priv *btcec.PrivateKey
}

// NewKeyPairFromBytes is a thin constructor used by wallet/demo tooling; it
// does not touch any randomness source itself, it only wraps the secret
// bytes supplied by the caller.
func NewKeyPairFromBytes(b [32]byte) KeyPair {
	priv, _ := btcec.PrivKeyFromBytes(b[:])
	return KeyPair{priv: priv}
}

// PublicKey returns the x-only public key corresponding to the pair.
func (k KeyPair) PublicKey() xtypes.PublicKey {
	var out xtypes.PublicKey
	xBytes := schnorr.SerializePubKey(k.priv.PubKey())
	copy(out[:], xBytes)
	return out
}

// Sign produces a BIP-340 signature over msg using the pair's private key.
func (k KeyPair) Sign(msg []byte) (xtypes.Signature, error) {
	digest := hashForSigning(msg)
	sig, err := schnorr.Sign(k.priv, digest[:])
	if err != nil {
		return xtypes.Signature{}, fmt.Errorf("sigverify: sign: %w", err)
	}
	var out xtypes.Signature
	copy(out[:], sig.Serialize())
	return out, nil
}
