package log

import (
	"github.com/sirupsen/logrus"
)

// LogrusAdapter writes diagnostics to a logrus.FieldLogger, for hosts that
// already route their logging through logrus.
type LogrusAdapter struct {
	logger logrus.FieldLogger
}

// NewLogrusAdapter creates a LogrusAdapter writing to logger.
func NewLogrusAdapter(logger logrus.FieldLogger) *LogrusAdapter {
	return &LogrusAdapter{logger: logger}
}

// Log writes the event with its fields attached.
func (a *LogrusAdapter) Log(event Event) {
	fields := logrus.Fields{
		"component": event.Component,
		"op":        event.Operation,
	}
	if event.Attribute != "" {
		fields["attr"] = event.Attribute
	}
	if event.Value != "" {
		fields["value"] = event.Value
	}
	if event.SessionID != "" {
		fields["session_id"] = event.SessionID
	}

	entry := a.logger.WithFields(fields)
	switch event.Level {
	case LevelDebug:
		entry.Debug(event.Message)
	case LevelInfo:
		entry.Info(event.Message)
	case LevelError:
		entry.Error(event.Message)
	default:
		entry.Warn(event.Message)
	}
}

var _ Logger = (*LogrusAdapter)(nil)
