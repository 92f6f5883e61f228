package log

import (
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger writes drone events to a .plog file as a CBOR sequence.
// It is safe for concurrent use.
type FileLogger struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	encoder *cbor.Encoder
	written int
	dropped int
	closed  bool
}

// NewFileLogger opens path for appending, creating it with mode 0644 if
// needed.
func NewFileLogger(path string) (*FileLogger, error) {
	return openFileLogger(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY)
}

// NewTruncatingFileLogger opens path and discards any previous content.
func NewTruncatingFileLogger(path string) (*FileLogger, error) {
	return openFileLogger(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY)
}

func openFileLogger(path string, flags int) (*FileLogger, error) {
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{
		path:    path,
		file:    f,
		encoder: NewEncoder(f),
	}, nil
}

// Log appends an event. Events logged after Close are ignored. Encoding
// failures are counted, never returned: capture must not disturb the drone
// connection.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	if err := l.encoder.Encode(event); err != nil {
		l.dropped++
		return
	}
	l.written++
}

// Path returns the file path.
func (l *FileLogger) Path() string {
	return l.path
}

// Counts returns the number of events written and dropped so far.
func (l *FileLogger) Counts() (written, dropped int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.written, l.dropped
}

// Close closes the file. Calling Close more than once is harmless.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return l.file.Close()
}

// Compile-time interface satisfaction check.
var _ Logger = (*FileLogger)(nil)
