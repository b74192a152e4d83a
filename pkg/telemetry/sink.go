package telemetry

import "github.com/ArnoldTumukunde/tumuchain/pkg/runtime"

// LogSink implements runtime.EventSink by logging every event: at info
// level, except RewardsWasted and unrecognized events, which are logged at
// warn level.
type LogSink struct {
	log *Logger
}

// NewLogSink wraps log as an EventSink.
func NewLogSink(log *Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Emit(e runtime.Event) {
	switch ev := e.(type) {
	case runtime.TransactionSuccess:
		s.log.WithField("tx_hash", ev.TxHash.String()).Info("transaction applied")
	case runtime.RewardsIssued:
		s.log.WithFields(map[string]interface{}{
			"height": ev.Height,
			"author": ev.Author.String(),
			"amount": ev.Amount.String(),
		}).Info("rewards issued")
	case runtime.RewardsWasted:
		s.log.WithField("height", ev.Height).Warn("rewards wasted: no block author")
	case runtime.DifficultyUpdated:
		s.log.WithFields(map[string]interface{}{
			"height":     ev.Height,
			"difficulty": ev.Difficulty.String(),
		}).Info("difficulty updated")
	default:
		s.log.Warnf("unrecognized event: %#v", e)
	}
}
