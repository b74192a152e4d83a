// Package difficulty implements a damped, clamped sliding-window
// retargeting controller: a fixed-size ring buffer of recent samples feeds
// a damp-then-clamp adjustment formula that recomputes the network
// difficulty.
package difficulty

import "github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
import "github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"

// WindowSize is the retargeting sample count W.
const WindowSize = 60

// Sample is one finalized block's difficulty and timestamp.
type Sample struct {
	Difficulty xtypes.Difficulty
	Timestamp  runtime.Moment
}

// Window is the fixed-capacity, oldest-first ring buffer of the last
// WindowSize samples.
type Window struct {
	samples []Sample
}

// NewWindow returns an empty window.
func NewWindow() *Window {
	return &Window{samples: make([]Sample, 0, WindowSize)}
}

// Append pushes a new sample. Below capacity it grows; at capacity it
// shifts left and appends, discarding index 0.
func (w *Window) Append(s Sample) {
	if len(w.samples) < WindowSize {
		w.samples = append(w.samples, s)
		return
	}
	copy(w.samples, w.samples[1:])
	w.samples[len(w.samples)-1] = s
}

// Samples returns the window's contents, oldest first.
func (w *Window) Samples() []Sample {
	return w.samples
}

// Len reports how many samples the window currently holds.
func (w *Window) Len() int {
	return len(w.samples)
}
