package log

import (
	"sync"
	"time"
)

// Logger is the interface applications implement to receive diagnostics.
// Pass nil or NoopLogger to disable logging.
type Logger interface {
	// Log records a diagnostic event. Implementations must be thread-safe.
	Log(event Event)
}

// NoopLogger discards all events. Use when logging is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger
)

// Default returns the process-wide diagnostics logger. Until SetDefault is
// called it is a SlogAdapter over slog.Default().
func Default() Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l == nil {
		return defaultSlog
	}
	return l
}

// SetDefault replaces the process-wide diagnostics logger and returns the
// previous one. Passing nil restores the slog-backed default.
func SetDefault(l Logger) Logger {
	prev := Default()
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
	return prev
}

// Warn stamps the event with the current time and LevelWarn and hands it to l.
// A nil l sends the event to Default().
func Warn(l Logger, event Event) {
	event.Level = LevelWarn
	emit(l, event)
}

// Debug is like Warn with LevelDebug.
func Debug(l Logger, event Event) {
	event.Level = LevelDebug
	emit(l, event)
}

func emit(l Logger, event Event) {
	if l == nil {
		l = Default()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	l.Log(event)
}
