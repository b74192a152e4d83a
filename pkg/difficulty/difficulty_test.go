package difficulty

import (
	"testing"

	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

func testParams() Params {
	return Params{
		TargetBlockTime: xtypes.DifficultyFromUint64(100),
		DampFactor:      xtypes.DifficultyFromUint64(3),
		ClampFactor:     xtypes.DifficultyFromUint64(4),
		MinDifficulty:   xtypes.DifficultyFromUint64(1),
		MaxDifficulty:   xtypes.DifficultyFromUint64(1_000_000_000),
	}
}

func windowOf(difficulty uint64, timestamps ...uint64) *Window {
	w := NewWindow()
	for _, ts := range timestamps {
		w.Append(Sample{Difficulty: xtypes.DifficultyFromUint64(difficulty), Timestamp: runtime.Moment(ts)})
	}
	return w
}

func TestWindowAppendDiscardsOldestPastCapacity(t *testing.T) {
	w := NewWindow()
	for i := 0; i < WindowSize+5; i++ {
		w.Append(Sample{Difficulty: xtypes.DifficultyFromUint64(uint64(i)), Timestamp: runtime.Moment(i)})
	}
	if w.Len() != WindowSize {
		t.Fatalf("window should cap at %d samples, got %d", WindowSize, w.Len())
	}
	samples := w.Samples()
	if samples[0].Timestamp != runtime.Moment(5) {
		t.Fatalf("oldest surviving sample should be index 5, got timestamp %d", samples[0].Timestamp)
	}
	last := samples[len(samples)-1]
	if last.Timestamp != runtime.Moment(WindowSize+4) {
		t.Fatalf("newest sample should be the last appended, got %d", last.Timestamp)
	}
}

func TestRetargetIsMonotonicInBlockSpeed(t *testing.T) {
	params := testParams()

	fast := windowOf(1000, 0, 10, 20, 30, 40) // blocks much faster than target(100)
	slow := windowOf(1000, 0, 500, 1000, 1500, 2000) // blocks much slower than target

	fastResult := Retarget(fast, params)
	slowResult := Retarget(slow, params)

	if fastResult.Cmp(slowResult) <= 0 {
		t.Fatalf("faster block production should raise difficulty: fast=%s slow=%s", fastResult, slowResult)
	}
}

func TestRetargetClampsToBounds(t *testing.T) {
	params := testParams()
	params.MaxDifficulty = xtypes.DifficultyFromUint64(2000)
	params.MinDifficulty = xtypes.DifficultyFromUint64(500)

	// Extremely fast blocks would otherwise push difficulty far above Max.
	extreme := windowOf(1_000_000, 0, 1, 2, 3, 4)
	result := Retarget(extreme, params)
	if result.Cmp(params.MaxDifficulty) > 0 {
		t.Fatalf("result %s exceeds MaxDifficulty %s", result, params.MaxDifficulty)
	}
	if result.Cmp(params.MinDifficulty) < 0 {
		t.Fatalf("result %s below MinDifficulty %s", result, params.MinDifficulty)
	}
}

func TestRetargetNearEquilibriumStaysClose(t *testing.T) {
	// A full window at exactly the target block spacing should produce a
	// new difficulty very close to the steady-state value, not a wild
	// swing — the controller's whole purpose is to track this gently.
	params := testParams()

	w := NewWindow()
	ts := uint64(0)
	for i := 0; i < WindowSize; i++ {
		w.Append(Sample{Difficulty: xtypes.DifficultyFromUint64(1000), Timestamp: runtime.Moment(ts)})
		ts += 100 // exactly TargetBlockTime apart
	}

	result := Retarget(w, params)
	if result.Uint64() != 1005 {
		t.Fatalf("want steady-state difficulty 1005, got %s", result)
	}
}

func TestRetargetEventReportsHeight(t *testing.T) {
	params := testParams()
	w := windowOf(1000, 0, 100, 200)

	d, ev := RetargetEvent(w, params, runtime.BlockHeight(42))
	updated, ok := ev.(runtime.DifficultyUpdated)
	if !ok {
		t.Fatalf("want DifficultyUpdated, got %T", ev)
	}
	if updated.Height != 42 {
		t.Fatalf("want height 42, got %d", updated.Height)
	}
	if updated.Difficulty.Cmp(d) != 0 {
		t.Fatalf("event difficulty must match returned difficulty")
	}
}
