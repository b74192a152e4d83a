// Package telemetry provides the node's structured logging and metrics on
// top of go.uber.org/zap and github.com/prometheus/client_golang. The
// field-based call shape (WithField/WithFields chaining into leveled log
// calls) wraps a zap.SugaredLogger underneath.
package telemetry

import "go.uber.org/zap"

// Logger wraps a zap.SugaredLogger with a field-chaining call style.
type Logger struct {
	sugar *zap.SugaredLogger
}

// NewLogger builds a production zap logger at the given level name
// (debug, info, warn, error).
func NewLogger(level string) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: base.Sugar()}, nil
}

// WithField returns a child logger carrying key=value in every entry.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(key, value)}
}

// WithFields returns a child logger carrying every key/value pair.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{sugar: l.sugar.With(args...)}
}

func (l *Logger) Debug(msg string)                            { l.sugar.Debug(msg) }
func (l *Logger) Debugf(format string, args ...interface{})   { l.sugar.Debugf(format, args...) }
func (l *Logger) Info(msg string)                              { l.sugar.Info(msg) }
func (l *Logger) Infof(format string, args ...interface{})    { l.sugar.Infof(format, args...) }
func (l *Logger) Warn(msg string)                              { l.sugar.Warn(msg) }
func (l *Logger) Warnf(format string, args ...interface{})    { l.sugar.Warnf(format, args...) }
func (l *Logger) Error(msg string)                             { l.sugar.Error(msg) }
func (l *Logger) Errorf(format string, args ...interface{})   { l.sugar.Errorf(format, args...) }
func (l *Logger) Fatal(msg string)                             { l.sugar.Fatal(msg) }
func (l *Logger) Fatalf(format string, args ...interface{})   { l.sugar.Fatalf(format, args...) }

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
