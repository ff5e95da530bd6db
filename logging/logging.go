// Package logging provides the structured logger used by the so3 packages and tools. Log entries
// are zapcore entries fanned out to a list of appenders.
package logging

import (
	"io"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var (
	globalMu     sync.RWMutex
	globalLogger Logger = NewLogger("so3")
)

// ReplaceGlobal installs logger as the global logger. The returned function puts back the one it
// replaced.
func ReplaceGlobal(logger Logger) func() {
	globalMu.Lock()
	defer globalMu.Unlock()
	prev := globalLogger
	globalLogger = logger
	return func() {
		ReplaceGlobal(prev)
	}
}

// Global returns the global logger. The spatialmath assertions and the CLI log through it.
func Global() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// NewLogger returns a logger writing Info+ entries to stdout with UTC timestamps.
func NewLogger(name string) Logger {
	return newImpl(name, INFO, true, NewStdoutAppender())
}

// NewDebugLogger is NewLogger at the Debug level.
func NewDebugLogger(name string) Logger {
	return newImpl(name, DEBUG, true, NewStdoutAppender())
}

// NewWriterLogger returns a logger writing entries at or above level to w with UTC timestamps.
// The CLI uses it to keep log lines on stderr, apart from command output.
func NewWriterLogger(name string, w io.Writer, level Level) Logger {
	return newImpl(name, level, true, NewWriterAppender(w))
}

// NewBlankLogger returns a Debug+ logger with no appenders. Entries go nowhere until one is added.
func NewBlankLogger(name string) Logger {
	return newImpl(name, DEBUG, true)
}

// NewTestLogger returns a Debug+ logger that writes through tb.Log in local time.
func NewTestLogger(tb testing.TB) Logger {
	return newImpl("", DEBUG, false, NewTestAppender(tb))
}

// NewObservedTestLogger is NewTestLogger plus an in-memory observer that tests can query for the
// entries logged.
func NewObservedTestLogger(tb testing.TB) (Logger, *observer.ObservedLogs) {
	observed, logs := observer.New(zap.LevelEnablerFunc(zapcore.DebugLevel.Enabled))
	return newImpl("", DEBUG, false, NewTestAppender(tb), observed), logs
}
