package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/formatter"
	"github.com/philipp01105/linelog/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: formatter.NewDefaultLineFormatter())
	Formatter formatter.Formatter
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewDefaultLineFormatter()
	}
}

// ConsoleHandler writes each entry as one newline-terminated line
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	mu              sync.Mutex // protects buf and writer
	buf             bytes.Buffer
	processed       atomic.Uint64
	closed          atomic.Bool
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}

	// Cache BufferFormatter for the handler-owned buffer path
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	if h.bufferFormatter != nil {
		h.buf.Grow(256)
	}
	return h
}

// Formatter returns the formatter used to render entries
func (h *ConsoleHandler) Formatter() formatter.Formatter {
	return h.formatter
}

// Handle formats and writes an entry synchronously.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if h.closed.Load() {
		return handler.ErrClosed
	}

	var err error
	if h.bufferFormatter != nil {
		h.mu.Lock()
		h.buf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.buf)
		_, err = h.writer.Write(h.buf.Bytes())
		h.mu.Unlock()
	} else {
		line := h.formatter.Format(entry) + "\n"
		h.mu.Lock()
		_, err = io.WriteString(h.writer, line)
		h.mu.Unlock()
	}

	if err == nil {
		h.processed.Add(1)
	}
	return err
}

// Processed returns the number of entries written successfully
func (h *ConsoleHandler) Processed() uint64 {
	return h.processed.Load()
}

// CanRecycleEntry returns true because entries are written before Handle returns.
func (h *ConsoleHandler) CanRecycleEntry() bool {
	return true
}

// Close closes the handler. Later calls to Handle return handler.ErrClosed.
func (h *ConsoleHandler) Close() error {
	h.closed.Store(true)
	return nil
}
