package log

import (
	"fmt"
	"strings"
	"time"
)

// Event represents a single diagnostic.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint" json:"timestamp"`

	// SessionID groups the events of one process run or document load (UUID).
	SessionID string `cbor:"2,keyasint,omitempty" json:"session_id,omitempty"`

	// Level is the event severity.
	Level Level `cbor:"3,keyasint" json:"level"`

	// Component is the type or package reporting, e.g. "geom.Vec".
	Component string `cbor:"4,keyasint" json:"component"`

	// Operation is the method that detected the condition, e.g. "ProjectOnAxis".
	Operation string `cbor:"5,keyasint" json:"op"`

	// Attribute is the record attribute involved, if any.
	Attribute string `cbor:"6,keyasint,omitempty" json:"attr,omitempty"`

	// Value is the offending input rendered as text, if any.
	Value string `cbor:"7,keyasint,omitempty" json:"value,omitempty"`

	// Message is a human-readable description.
	Message string `cbor:"8,keyasint" json:"message"`
}

// String renders the event on one line for console output.
func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %-5s %s.%s: %s",
		e.Timestamp.Format("15:04:05.000"), e.Level, e.Component, e.Operation, e.Message)
	if e.Attribute != "" {
		fmt.Fprintf(&b, " attr=%s", e.Attribute)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, " value=%q", e.Value)
	}
	return b.String()
}

// Level is the severity of an event.
type Level uint8

const (
	// LevelDebug is for detail useful only while debugging.
	LevelDebug Level = 0
	// LevelInfo is for noteworthy but expected conditions.
	LevelInfo Level = 1
	// LevelWarn is for recovered misuse or malformed input.
	LevelWarn Level = 2
	// LevelError is for conditions the caller should act on.
	LevelError Level = 3
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("invalid level: %s (must be debug, info, warn, or error)", s)
	}
}
