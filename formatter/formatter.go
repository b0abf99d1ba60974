package formatter

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/philipp01105/linelog/core"
)

// Formatter renders a log entry as text
type Formatter interface {
	// Format renders an entry. It never fails and never retains the entry.
	Format(entry *core.Entry) string
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without an intermediate string.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it, newline-terminated, to w
	FormatTo(entry *core.Entry, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatEntry appends the newline-terminated rendering of entry to buf.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

const (
	// LongTimestampFormat is used when TimestampLong is enabled
	LongTimestampFormat = "2006-01-02 15:04:05.000"
	// ShortTimestampFormat is used when only TimestampShort is enabled
	ShortTimestampFormat = "15:04:05.000"
)

// timestampLayout returns the layout selected by opts, or "" when no
// timestamp is requested. The long form wins when both are set.
func timestampLayout(opts Options) string {
	switch {
	case opts.Contains(TimestampLong):
		return LongTimestampFormat
	case opts.Contains(TimestampShort):
		return ShortTimestampFormat
	default:
		return ""
	}
}

// levelToken returns the severity token selected by opts, or "".
// The long form wins when both are set.
func levelToken(opts Options, level core.Level) string {
	switch {
	case opts.Contains(LogFlagLong):
		return level.String()
	case opts.Contains(LogFlagShort):
		return level.Short()
	default:
		return ""
	}
}

// location holds the sub-fields of the location token that are both
// enabled and present on the entry.
type location struct {
	file    string
	method  string
	line    int
	hasLine bool
}

func (l location) empty() bool {
	return l.file == "" && l.method == "" && !l.hasLine
}

// resolveLocation picks the location sub-fields for an entry. FilePath
// wins over FileName; an entry without a full path falls back to its
// short file name.
func resolveLocation(opts Options, c core.CallerInfo) location {
	var loc location
	switch {
	case opts.Contains(FilePath) && c.File != "":
		loc.file = c.File
	case opts.Contains(FilePath), opts.Contains(FileName):
		loc.file = c.FileName()
	}
	if opts.Contains(MethodName) {
		loc.method = shortFunctionName(c.Function)
	}
	if opts.Contains(LineNumber) && (c.Defined || c.Line != 0) {
		loc.line = c.Line
		loc.hasLine = true
	}
	return loc
}

// shortFunctionName drops the import path from a runtime function name:
// "github.com/a/b/pkg.(*T).Run" becomes "pkg.(*T).Run".
func shortFunctionName(fn string) string {
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		return fn[i+1:]
	}
	return fn
}

// widthCondition measures terminal columns independent of the locale, so
// ambiguous-width runes count as one column.
var widthCondition = &runewidth.Condition{EastAsianWidth: false}

// displayWidth returns the number of terminal columns s occupies. Wide
// East Asian glyphs count as two columns.
func displayWidth(s string) int {
	return widthCondition.StringWidth(s)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
