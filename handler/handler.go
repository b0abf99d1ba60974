package handler

import (
	"github.com/pkg/errors"

	"github.com/philipp01105/linelog/core"
)

// ErrClosed is returned by Handle after Close
var ErrClosed = errors.New("handler is closed")

// Handler defines the interface for log handlers
type Handler interface {
	// Handle renders and writes a log entry. The entry is not retained
	// after Handle returns.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Func adapts a plain function to the Handler interface. Close is a no-op.
type Func func(entry *core.Entry) error

// Handle calls f(entry)
func (f Func) Handle(entry *core.Entry) error {
	return f(entry)
}

// Close implements Handler
func (f Func) Close() error {
	return nil
}
