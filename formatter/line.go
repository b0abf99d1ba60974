package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/philipp01105/linelog/core"
)

// DefaultLineLength is the wrap width used by NewDefaultLineFormatter
const DefaultLineLength = 120

// LineFormatter renders an entry as one human-readable line:
//
//	[timestamp] [thread name] [thread id] [[file:method:line]] [flag] message
//
// Every bracketed part is optional and controlled by the formatter's
// Options. A LineFormatter is immutable and safe for concurrent use.
type LineFormatter struct {
	options    Options
	lineLength int
}

// NewLineFormatter creates a formatter for opts. A lineLength of 0 or
// less disables wrapping even when WordWrap is set.
func NewLineFormatter(opts Options, lineLength int) *LineFormatter {
	if lineLength < 0 {
		lineLength = 0
	}
	return &LineFormatter{options: opts, lineLength: lineLength}
}

// NewDefaultLineFormatter creates a formatter with DefaultOptions and
// DefaultLineLength.
func NewDefaultLineFormatter() *LineFormatter {
	return NewLineFormatter(DefaultOptions, DefaultLineLength)
}

// Options returns the formatter's option set
func (f *LineFormatter) Options() Options {
	return f.options
}

// LineLength returns the configured maximum line length (0 = unlimited)
func (f *LineFormatter) LineLength() int {
	return f.lineLength
}

// wraps reports whether lines are broken at the configured length
func (f *LineFormatter) wraps() bool {
	return f.lineLength > 0 && f.options.Contains(WordWrap)
}

// Format renders entry without a trailing newline. The result contains
// line breaks only when word wrap is active or the message has its own.
func (f *LineFormatter) Format(entry *core.Entry) string {
	if entry == nil {
		return ""
	}
	if f.options == None {
		return entry.Message
	}

	buf := getBuffer()
	defer putBuffer(buf)

	f.appendLine(buf, entry)
	return buf.String()
}

// FormatEntry appends the rendered entry and a newline to buf (implements BufferFormatter).
func (f *LineFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if entry != nil {
		f.appendLine(buf, entry)
	}
	buf.WriteByte('\n')
}

// FormatTo renders the entry and writes it, newline-terminated, to w
func (f *LineFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// appendLine writes the prefix fields in their fixed order followed by
// the message, wrapping if configured.
func (f *LineFormatter) appendLine(buf *bytes.Buffer, entry *core.Entry) {
	start := buf.Len()
	f.appendPrefix(buf, entry, start)
	if f.wraps() {
		prefixWidth := displayWidth(string(buf.Bytes()[start:]))
		appendWrapped(buf, start, prefixWidth, entry.Message, f.lineLength)
		return
	}
	if entry.Message == "" {
		return
	}
	if buf.Len() > start {
		buf.WriteByte(' ')
	}
	buf.WriteString(entry.Message)
}

func (f *LineFormatter) appendPrefix(buf *bytes.Buffer, entry *core.Entry, start int) {
	opts := f.options

	// Timestamp
	if layout := timestampLayout(opts); layout != "" {
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), layout))
	}

	// Thread
	if opts.Contains(ThreadName) && entry.Thread.Name != "" {
		separate(buf, start)
		buf.WriteString(entry.Thread.Name)
	}
	if opts.Contains(ThreadID) && entry.Thread.ID != "" {
		separate(buf, start)
		buf.WriteString(entry.Thread.ID)
	}

	// Location
	if loc := resolveLocation(opts, entry.Caller); !loc.empty() {
		separate(buf, start)
		buf.WriteByte('[')
		inner := buf.Len()
		if loc.file != "" {
			buf.WriteString(loc.file)
		}
		if loc.method != "" {
			separateWith(buf, inner, ':')
			buf.WriteString(loc.method)
		}
		if loc.hasLine {
			separateWith(buf, inner, ':')
			buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(loc.line), 10))
		}
		buf.WriteByte(']')
	}

	// Severity
	if tok := levelToken(opts, entry.Level); tok != "" {
		separate(buf, start)
		buf.WriteString(tok)
	}
}

// separate writes a field separator unless nothing has been written since start
func separate(buf *bytes.Buffer, start int) {
	separateWith(buf, start, ' ')
}

func separateWith(buf *bytes.Buffer, start int, sep byte) {
	if buf.Len() > start {
		buf.WriteByte(sep)
	}
}
