// Package logz holds the package-level diagnostic logger used at the few call
// sites that warrant one: an out-of-range page number, a deferred corruption
// check, a segment overrun during a head walk. It is nop by default.
package logz

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger installs l as the package-level diagnostic logger. Passing nil
// restores the nop logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// L returns the current diagnostic logger.
func L() *zap.Logger {
	return logger
}
