package hostsim

import (
	"sync"

	"github.com/ArnoldTumukunde/tumuchain/pkg/runtime"
	"github.com/ArnoldTumukunde/tumuchain/pkg/xtypes"
)

// RoundRobinAuthor cycles through a fixed list of authors by height,
// a deterministic stand-in for a real block-production consensus engine.
type RoundRobinAuthor struct {
	Authors []xtypes.PublicKey
}

// NewRoundRobinAuthor returns an oracle cycling through authors. An empty
// list makes every height authorless (RewardsWasted).
func NewRoundRobinAuthor(authors ...xtypes.PublicKey) RoundRobinAuthor {
	return RoundRobinAuthor{Authors: authors}
}

func (r RoundRobinAuthor) Author(height runtime.BlockHeight) xtypes.PublicKey {
	if len(r.Authors) == 0 {
		return xtypes.PublicKey{}
	}
	return r.Authors[uint64(height)%uint64(len(r.Authors))]
}

// IncrementingClock advances its Moment by Step on every call, a
// deterministic stand-in for wall-clock time in tests and the CLI demo.
type IncrementingClock struct {
	mu      sync.Mutex
	current runtime.Moment
	Step    runtime.Moment
}

// NewIncrementingClock starts a clock at start, advancing by step each
// call to Now.
func NewIncrementingClock(start, step runtime.Moment) *IncrementingClock {
	return &IncrementingClock{current: start, Step: step}
}

func (c *IncrementingClock) Now() runtime.Moment {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.current
	c.current += c.Step
	return now
}

// EventLog is an in-memory runtime.EventSink, useful for asserting on
// emitted events in tests.
type EventLog struct {
	mu     sync.Mutex
	events []runtime.Event
}

// NewEventLog returns an empty event log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

func (l *EventLog) Emit(e runtime.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

// Events returns every event recorded so far, in emission order.
func (l *EventLog) Events() []runtime.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]runtime.Event, len(l.events))
	copy(out, l.events)
	return out
}
