// Package hostsim is a minimal host runtime simulator: it drives the
// sequence of signed spend dispatches and the two finalization hooks a real
// block producer would run (reward dispatch, then difficulty retarget) in
// fixed order. It is a deliberately small stand-in for a full
// block-production pipeline, much like a mock runtime drives a pallet's
// extrinsics in a test harness.
package hostsim

import (
	"github.com/ArnoldTumukunde/tumuchain/pkg/chain"
	"github.com/ArnoldTumukunde/tumuchain/pkg/difficulty"
	"github.com/ArnoldTumukunde/tumuchain/pkg/ledger"
	"github.com/ArnoldTumukunde/tumuchain/pkg/reward"
	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/utxo"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// Chain bundles every storage cell and capability a block needs, the way
// a FRAME mock runtime wires a pallet's Config associated types together.
type Chain struct {
	Store      utxo.Store
	Pool       *ledger.Pool
	Hasher     runtime.Hasher
	Verifier   runtime.SignatureVerifier
	Author     runtime.BlockAuthorOracle
	Issuance   runtime.IssuanceSchedule
	Sink       runtime.EventSink
	Time       runtime.TimeProvider
	Window     *difficulty.Window
	Params     difficulty.Params
	Difficulty xtypes.Difficulty
	Height     runtime.BlockHeight
}

// New constructs a Chain at genesis: height 0, the given initial
// difficulty, and an empty sample window.
func New(
	store utxo.Store,
	hasher runtime.Hasher,
	verifier runtime.SignatureVerifier,
	author runtime.BlockAuthorOracle,
	issuance runtime.IssuanceSchedule,
	sink runtime.EventSink,
	timeProvider runtime.TimeProvider,
	params difficulty.Params,
	initialDifficulty xtypes.Difficulty,
) *Chain {
	return &Chain{
		Store:      store,
		Pool:       ledger.NewPool(),
		Hasher:     hasher,
		Verifier:   verifier,
		Author:     author,
		Issuance:   issuance,
		Sink:       sink,
		Time:       timeProvider,
		Window:     difficulty.NewWindow(),
		Params:     params,
		Difficulty: initialDifficulty,
		Height:     0,
	}
}

// SpendRequest is one signed dispatch to include in a block.
type SpendRequest struct {
	Origin chain.SignedOrigin
	Tx     xtypes.Transaction
}

// RunBlock dispatches each request in sequence against the engine, then
// runs finalization: the reward dispatcher, then the difficulty
// retargeter, in that fixed order. It returns one error per request, in
// request order (nil for a dispatch that applied); failed dispatches do not
// prevent later ones or finalization, mirroring independent per-extrinsic
// rollback.
func (c *Chain) RunBlock(requests []SpendRequest) []error {
	engine := chain.NewEngine(c.Store, c.Pool, c.Hasher, c.Verifier, c.Sink)

	errs := make([]error, len(requests))
	for i, req := range requests {
		errs[i] = engine.Spend(req.Origin, req.Tx)
	}

	c.finalize()
	return errs
}

func (c *Chain) finalize() {
	ev, err := reward.Dispatch(c.Store, c.Pool, c.Hasher, c.Author, c.Issuance, c.Height)
	if err == nil {
		c.Sink.Emit(ev)
	}

	c.Window.Append(difficulty.Sample{Difficulty: c.Difficulty, Timestamp: c.Time.Now()})
	newDifficulty, updateEvent := difficulty.RetargetEvent(c.Window, c.Params, c.Height)
	c.Difficulty = newDifficulty
	c.Sink.Emit(updateEvent)

	c.Height++
}
