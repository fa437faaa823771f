package log

import (
	"os"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger appends diagnostics to a .dlog file as a stream of CBOR events.
// It is safe for concurrent use.
type FileLogger struct {
	path     string
	minLevel Level

	mu      sync.Mutex
	file    *os.File
	encoder *cbor.Encoder
	written int
	closed  bool
}

// FileLoggerOption configures a FileLogger.
type FileLoggerOption func(*FileLogger)

// WithMinLevel drops events below level. The default keeps every event.
func WithMinLevel(level Level) FileLoggerOption {
	return func(l *FileLogger) { l.minLevel = level }
}

// NewFileLogger opens path for appending, creating it with permissions 0644
// if needed.
func NewFileLogger(path string, opts ...FileLoggerOption) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	l := &FileLogger{
		path:    path,
		file:    f,
		encoder: NewEncoder(f),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Path returns the file being written.
func (l *FileLogger) Path() string { return l.path }

// Log appends event. Events without a timestamp get the current time, and
// timestamps are stored in UTC. Encoding errors are dropped; diagnostics never
// fail the operation that raised them.
func (l *FileLogger) Log(event Event) {
	if event.Level < l.minLevel {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	event.Timestamp = event.Timestamp.UTC()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	if l.encoder.Encode(event) == nil {
		l.written++
	}
}

// Written returns how many events reached the file.
func (l *FileLogger) Written() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.written
}

// Close flushes and closes the file. Later calls to Log are ignored and
// further calls to Close return nil.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	syncErr := l.file.Sync()
	if err := l.file.Close(); err != nil {
		return err
	}
	return syncErr
}

// Compile-time interface satisfaction check.
var _ Logger = (*FileLogger)(nil)
