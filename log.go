package pathx

import "go.uber.org/zap"

// engineLogger wraps a *zap.Logger with the handful of Debug-level
// events this package ever emits. It is never nil in practice —
// newEngineLogger substitutes zap.NewNop() when Config has no logger —
// but every call site still checks for a nil
// receiver so a zero-value Engine built by hand (as in a test) doesn't
// have to remember to set one.
type engineLogger struct {
	z *zap.Logger
}

func newEngineLogger(z *zap.Logger) *engineLogger {
	if z == nil {
		z = zap.NewNop()
	}
	return &engineLogger{z: z}
}

func (l *engineLogger) enabled() bool {
	return l != nil && l.z.Core().Enabled(zap.DebugLevel)
}

func (l *engineLogger) parseStart(expr string) {
	if !l.enabled() {
		return
	}
	l.z.Debug("pathx: parse start", zap.String("expr", expr))
}

func (l *engineLogger) cacheHit(cache, key string) {
	if !l.enabled() {
		return
	}
	l.z.Debug("pathx: cache hit", zap.String("cache", cache), zap.String("key", key))
}

func (l *engineLogger) cacheMiss(cache, key string) {
	if !l.enabled() {
		return
	}
	l.z.Debug("pathx: cache miss", zap.String("cache", cache), zap.String("key", key))
}

func (l *engineLogger) step(index int, axis Axis, matched int) {
	if !l.enabled() {
		return
	}
	l.z.Debug("pathx: step evaluated",
		zap.Int("step", index),
		zap.String("axis", axis.String()),
		zap.Int("matched", matched),
	)
}

func (l *engineLogger) latched(err *Error) {
	if !l.enabled() {
		return
	}
	l.z.Debug("pathx: error latched", zap.String("code", err.Code.String()), zap.Int("pos", err.Pos))
}
