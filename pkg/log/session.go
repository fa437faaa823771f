package log

import "github.com/google/uuid"

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

type sessionLogger struct {
	next Logger
	id   string
}

// WithSession returns a Logger that stamps every event lacking a SessionID
// with id before passing it to next. A nil next means Default().
func WithSession(next Logger, id string) Logger {
	return &sessionLogger{next: next, id: id}
}

func (s *sessionLogger) Log(event Event) {
	if event.SessionID == "" {
		event.SessionID = s.id
	}
	next := s.next
	if next == nil {
		next = Default()
	}
	next.Log(event)
}

type scopeLogger struct {
	next      Logger
	component string
	operation string
}

// WithScope returns a Logger that overwrites Component and Operation on
// every event. Callers use it to attribute warnings raised by shared helpers
// to the higher-level operation that invoked them. A nil next means Default().
func WithScope(next Logger, component, operation string) Logger {
	return &scopeLogger{next: next, component: component, operation: operation}
}

func (s *scopeLogger) Log(event Event) {
	event.Component = s.component
	event.Operation = s.operation
	next := s.next
	if next == nil {
		next = Default()
	}
	next.Log(event)
}
