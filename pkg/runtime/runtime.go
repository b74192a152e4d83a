// Package runtime defines the capability interfaces, error taxonomy, and
// event types that the ledger, reward, and difficulty packages dispatch
// against. It is the seam between consensus logic and everything the host
// chooses how to do: hashing, signature verification, who authored a block,
// how issuance decays, and where finalized events go. Nothing in this
// package depends on xcodec, utxo, or any other domain package, so it can
// sit underneath all of them without import cycles.
package runtime

import "github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"

// Moment is a millisecond-resolution wall-clock timestamp, used by the
// difficulty controller's timestamp window.
type Moment uint64

// BlockHeight counts finalized blocks from genesis.
type BlockHeight uint64

// Hasher produces the 256-bit digest transaction hashes and output
// identifiers are computed under. Swappable so the ledger
// never hard-codes a specific hash function.
type Hasher interface {
	Hash(data []byte) xtypes.Hash
}

// SignatureVerifier checks that sig authorizes msg under pubkey. The ledger
// never inspects signature bytes itself; it only ever asks this.
type SignatureVerifier interface {
	Verify(pubkey xtypes.PublicKey, msg []byte, sig xtypes.Signature) bool
}

// BlockAuthorOracle reports who should receive a block's reward. In a live
// chain this is backed by the consensus engine that selected the author;
// in tests it is a fixed or round-robin stand-in.
type BlockAuthorOracle interface {
	Author(height BlockHeight) xtypes.PublicKey
}

// IssuanceSchedule computes the block subsidy for a given height,
// independent of how it decays — the reward schedule is a pluggable
// function of height.
type IssuanceSchedule interface {
	SubsidyAt(height BlockHeight) xtypes.Value
}

// TimeProvider supplies the current moment, abstracted so the difficulty
// controller and its tests never call wall-clock time directly.
type TimeProvider interface {
	Now() Moment
}

// EventSink receives the events emitted by successful operations. A no-op
// implementation is valid; hostsim backs this with an in-memory log, a live
// node would back it with structured logging and/or a subscription feed.
type EventSink interface {
	Emit(Event)
}
