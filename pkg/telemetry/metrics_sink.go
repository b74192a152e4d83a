package telemetry

import "github.com/ArnoldTumukunde/tumuchain/pkg/runtime"

// MetricsSink updates Metrics as events are emitted.
type MetricsSink struct {
	metrics *Metrics
}

// NewMetricsSink wraps metrics as an EventSink.
func NewMetricsSink(metrics *Metrics) *MetricsSink {
	return &MetricsSink{metrics: metrics}
}

func (s *MetricsSink) Emit(e runtime.Event) {
	switch e.(type) {
	case runtime.TransactionSuccess:
		s.metrics.SpendsTotal.Inc()
	case runtime.RewardsIssued:
		s.metrics.RewardsIssued.Inc()
	case runtime.RewardsWasted:
		s.metrics.RewardsWasted.Inc()
	case runtime.DifficultyUpdated:
		ev := e.(runtime.DifficultyUpdated)
		s.metrics.CurrentDifficulty.Set(float64(ev.Difficulty.Uint64()))
	}
}

// MultiSink fans an event out to every wrapped sink, the composition
// point cmd/utxod uses to combine logging and metrics.
type MultiSink struct {
	sinks []runtime.EventSink
}

// NewMultiSink returns a sink that forwards to every one of sinks.
func NewMultiSink(sinks ...runtime.EventSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (s *MultiSink) Emit(e runtime.Event) {
	for _, sink := range s.sinks {
		sink.Emit(e)
	}
}
