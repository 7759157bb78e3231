package mfcam

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var loggerVal atomic.Pointer[zap.Logger]

func init() {
	loggerVal.Store(zap.NewNop())
}

// SetLogger installs a logger for package diagnostics (device open/close,
// format negotiation, subsystem lifecycle). The default is a no-op logger.
// Pass nil to silence logging again. Safe for concurrent use.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerVal.Store(l)
}

func logger() *zap.Logger {
	return loggerVal.Load()
}
