package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/philipp01105/linelog/core"
)

// JSONFormatter renders the same option-selected fields as LineFormatter,
// as one JSON object per entry. WordWrap has no effect.
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(opts Options) *JSONFormatter {
	return &JSONFormatter{options: opts}
}

// Options returns the formatter's option set
func (f *JSONFormatter) Options() Options {
	return f.options
}

// Format formats an entry as a JSON object without a trailing newline
func (f *JSONFormatter) Format(entry *core.Entry) string {
	if entry == nil {
		return "{}"
	}
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatJSONToBuffer(entry, buf)
	return buf.String()
}

// FormatTo formats an entry as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats an entry as JSON into the given buffer (implements BufferFormatter).
func (f *JSONFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if entry == nil {
		buf.WriteString("{}\n")
		return
	}
	f.formatJSONToBuffer(entry, buf)
	buf.WriteByte('\n')
}

// formatJSONToBuffer builds JSON manually into the buffer without allocations
func (f *JSONFormatter) formatJSONToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	opts := f.options
	buf.WriteByte('{')

	if opts.Contains(TimestampLong) {
		buf.WriteString(`"time":"`)
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), time.RFC3339Nano))
		buf.WriteString(`",`)
	} else if opts.Contains(TimestampShort) {
		buf.WriteString(`"time":"`)
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), ShortTimestampFormat))
		buf.WriteString(`",`)
	}

	if opts.Contains(ThreadName) && entry.Thread.Name != "" {
		appendJSONStringField(buf, "thread", entry.Thread.Name)
	}
	if opts.Contains(ThreadID) && entry.Thread.ID != "" {
		appendJSONStringField(buf, "thread_id", entry.Thread.ID)
	}

	loc := resolveLocation(opts, entry.Caller)
	if loc.file != "" {
		appendJSONStringField(buf, "file", loc.file)
	}
	if loc.method != "" {
		appendJSONStringField(buf, "method", loc.method)
	}
	if loc.hasLine {
		buf.WriteString(`"line":`)
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(loc.line), 10))
		buf.WriteByte(',')
	}

	if tok := levelToken(opts, entry.Level); tok != "" {
		appendJSONStringField(buf, "level", tok)
	}

	buf.WriteString(`"message":"`)
	appendJSONString(buf, entry.Message)
	buf.WriteString(`"}`)
}

// appendJSONStringField writes "key":"value", with a trailing comma
func appendJSONStringField(buf *bytes.Buffer, key, value string) {
	buf.WriteByte('"')
	buf.WriteString(key)
	buf.WriteString(`":"`)
	appendJSONString(buf, value)
	buf.WriteString(`",`)
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
