package log

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

type mockLogger struct{ mock.Mock }

func (m *mockLogger) Log(event Event) { m.Called(event) }

func TestMultiLoggerCallsAll(t *testing.T) {
	event := Event{Level: LevelWarn, Component: "record", Operation: "Int", Message: "m"}

	mocks := []*mockLogger{{}, {}, {}}
	loggers := make([]Logger, len(mocks))
	for i, m := range mocks {
		m.On("Log", event).Once()
		loggers[i] = m
	}

	NewMultiLogger(loggers...).Log(event)

	for _, m := range mocks {
		m.AssertExpectations(t)
	}
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	rec := NewRecorder()
	multi := NewMultiLogger(nil, rec, nil)

	multi.Log(Event{Message: "one"})

	if rec.Len() != 1 {
		t.Fatalf("got %d events, want 1", rec.Len())
	}
}

func TestMultiLoggerEmptyList(t *testing.T) {
	NewMultiLogger().Log(Event{Message: "dropped"})
}
