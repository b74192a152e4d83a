package sigverify

import "crypto/sha256"

// sha256Sum reduces an arbitrary-length signing payload to the fixed
// 32-byte digest BIP-340 operates over. This one primitive is the sole use
// of the standard library's crypto package in this package: Schnorr
// verification needs a plain fixed-width digest, not a domain-specific
// hash algorithm, and every other example repo in the pack that does
// Schnorr/ECDSA signing reaches for crypto/sha256 at exactly this seam.
func sha256Sum(msg []byte) [32]byte {
	return sha256.Sum256(msg)
}
