// Package log provides the thin structured-logging seam the rest of
// this module depends on, backed directly by go.uber.org/zap rather
// than an org-internal facade interface.
package log

import "go.uber.org/zap"

// Logger is the narrow surface the DAG store, the layout engine and
// the dagviz-sim command log through. Keeping it narrow means callers
// can satisfy it without importing zap themselves.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	With(keysAndValues ...interface{}) Logger
}

type sugared struct {
	s *zap.SugaredLogger
}

func (l sugared) Debugw(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l sugared) Infow(msg string, kv ...interface{})  { l.s.Infow(msg, kv...) }
func (l sugared) Warnw(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }
func (l sugared) Errorw(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }

func (l sugared) With(kv ...interface{}) Logger {
	return sugared{s: l.s.With(kv...)}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return sugared{s: zap.NewNop().Sugar()}
}

// Dev returns a human-readable development Logger, or Nop() if the
// zap development config fails to build (it never does with defaults,
// but the error path is preserved rather than panicking on a
// visualization library's behalf).
func Dev() Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		return Nop()
	}
	return sugared{s: l.Sugar()}
}
