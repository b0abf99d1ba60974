package formatter

import (
	"bytes"
	"strings"
)

// appendWrapped writes msg after the prefix that occupies buf from start
// on, so that no physical line is wider than limit, breaking only at
// whitespace. A word wider than the space left on an empty line is
// written unbroken on its own line. Continuation lines are indented to
// the column where the message starts, unless that leaves no room for a
// word. A prefix wider than limit is broken at its field separators like
// the message and disables the indent.
func appendWrapped(buf *bytes.Buffer, start, prefixWidth int, msg string, limit int) {
	if prefixWidth > limit {
		prefix := string(buf.Bytes()[start:])
		buf.Truncate(start)

		w := wrapper{buf: buf, limit: limit, lineEmpty: true}
		for _, field := range strings.Fields(prefix) {
			w.word(field)
		}
		w.message(msg)
		return
	}

	if msg == "" {
		return
	}

	// Fits as is: keep the message untouched.
	if strings.IndexByte(msg, '\n') < 0 {
		width := displayWidth(msg)
		if prefixWidth > 0 {
			width += prefixWidth + 1
		}
		if width <= limit {
			if prefixWidth > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(msg)
			return
		}
	}

	indent := 0
	if prefixWidth > 0 && prefixWidth+1 < limit {
		indent = prefixWidth + 1
	}

	w := wrapper{buf: buf, limit: limit, indent: indent, col: prefixWidth, lineEmpty: prefixWidth == 0}
	w.message(msg)
}

// wrapper tracks the state of the physical line being written
type wrapper struct {
	buf       *bytes.Buffer
	limit     int
	indent    int
	col       int  // width already used on the current line
	lineEmpty bool // no word or prefix on the current line yet
}

// message writes msg word by word; embedded newlines start new lines.
func (w *wrapper) message(msg string) {
	for i, paragraph := range strings.Split(msg, "\n") {
		if i > 0 {
			w.newline()
		}
		for _, word := range strings.Fields(paragraph) {
			w.word(word)
		}
	}
}

func (w *wrapper) newline() {
	w.buf.WriteByte('\n')
	w.col = 0
	w.lineEmpty = true
}

func (w *wrapper) word(word string) {
	width := displayWidth(word)

	if !w.lineEmpty {
		if w.col+1+width <= w.limit {
			w.buf.WriteByte(' ')
			w.buf.WriteString(word)
			w.col += 1 + width
			return
		}
		w.newline()
	}

	// Indent continuation lines unless the word would then overflow.
	if w.indent > 0 && w.indent+width <= w.limit {
		for i := 0; i < w.indent; i++ {
			w.buf.WriteByte(' ')
		}
		w.col = w.indent
	}
	w.buf.WriteString(word)
	w.col += width
	w.lineEmpty = false
}
