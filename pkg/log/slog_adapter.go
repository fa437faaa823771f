package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes diagnostics to an slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
// A nil logger means slog.Default() at the time each event is logged.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// defaultSlog backs Default() until SetDefault is called.
var defaultSlog Logger = NewSlogAdapter(nil)

// Log writes the event at the slog level matching event.Level.
func (a *SlogAdapter) Log(event Event) {
	logger := a.logger
	if logger == nil {
		logger = slog.Default()
	}

	attrs := []slog.Attr{
		slog.String("component", event.Component),
		slog.String("op", event.Operation),
	}
	if event.Attribute != "" {
		attrs = append(attrs, slog.String("attr", event.Attribute))
	}
	if event.Value != "" {
		attrs = append(attrs, slog.String("value", event.Value))
	}
	if event.SessionID != "" {
		attrs = append(attrs, slog.String("session_id", event.SessionID))
	}

	logger.LogAttrs(context.Background(), slogLevel(event.Level), event.Message, attrs...)
}

func slogLevel(l Level) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
