package difficulty

import (
	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// Params holds the host-supplied retargeting configuration.
// All fields are 256-bit to match the arithmetic they participate in,
// even though the host only ever supplies 128-bit magnitudes.
type Params struct {
	TargetBlockTime xtypes.Difficulty // B, milliseconds
	DampFactor      xtypes.Difficulty // D >= 2
	ClampFactor     xtypes.Difficulty // C >= 2
	MinDifficulty   xtypes.Difficulty
	MaxDifficulty   xtypes.Difficulty
}

func minDiff(a, b xtypes.Difficulty) xtypes.Difficulty {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func maxDiff(a, b xtypes.Difficulty) xtypes.Difficulty {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// damp pulls actual toward goal with weight (damp-1)/damp, softening the
// reaction to a single window's deviation.
func damp(actual, goal, dampFactor xtypes.Difficulty) xtypes.Difficulty {
	one := xtypes.DifficultyFromUint64(1)
	weighted := goal.Mul(dampFactor.Sub(one))
	return actual.Add(weighted).Div(dampFactor)
}

// clamp bounds actual to within a factor of clampFactor of goal in either
// direction.
func clamp(actual, goal, clampFactor xtypes.Difficulty) xtypes.Difficulty {
	floor := goal.Div(clampFactor)
	ceil := goal.Mul(clampFactor)
	return maxDiff(floor, minDiff(actual, ceil))
}

// Retarget recomputes the network difficulty from window's samples per
// params, returning the new difficulty (already clamped to
// [MinDifficulty, MaxDifficulty]).
func Retarget(w *Window, params Params) xtypes.Difficulty {
	samples := w.Samples()

	var tsDelta uint64
	for i := 1; i < len(samples); i++ {
		prev, cur := uint64(samples[i-1].Timestamp), uint64(samples[i].Timestamp)
		if cur > prev {
			tsDelta += cur - prev
		}
	}
	if tsDelta == 0 {
		tsDelta = 1
	}

	diffSum := xtypes.Difficulty{}
	for _, s := range samples {
		diffSum = diffSum.Add(s.Difficulty)
	}
	diffSum = maxDiff(diffSum, params.MinDifficulty)

	adjustmentWindow := params.TargetBlockTime.MulUint64(WindowSize)

	damped := damp(xtypes.DifficultyFromUint64(tsDelta), adjustmentWindow, params.DampFactor)
	adjTS := clamp(damped, adjustmentWindow, params.ClampFactor)

	newDifficulty := diffSum.Mul(params.TargetBlockTime).Div(adjTS)
	newDifficulty = minDiff(params.MaxDifficulty, maxDiff(params.MinDifficulty, newDifficulty))

	return newDifficulty
}

// RetargetEvent wraps Retarget's result as the event emitted on every
// append-triggered recompute.
func RetargetEvent(w *Window, params Params, height runtime.BlockHeight) (xtypes.Difficulty, runtime.Event) {
	d := Retarget(w, params)
	return d, runtime.DifficultyUpdated{Height: height, Difficulty: d}
}
