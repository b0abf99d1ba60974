// Package formatter turns log entries into text.
//
// Options is an immutable bitset of eleven presentation toggles
// (timestamps, thread, location, severity, word wrap). Its String form
// lists the enabled toggles in declaration order joined by "|", or
// "None", and ParseOptions reads that form back.
//
// LineFormatter holds an Options value and a maximum line length and
// renders every entry with the same fixed field order:
//
//	timestamp, thread name, thread id, [file:method:line], severity, message
//
// A field appears only when its toggle is enabled and the entry carries a
// value for it, so disabled or missing fields never leave stray
// separators. Conflicting pairs resolve to the more verbose toggle:
// TimestampLong over TimestampShort, LogFlagLong over LogFlagShort and
// FilePath over FileName. With WordWrap and a positive line length the
// message is broken at whitespace and continuation lines are indented
// under the first character of the message.
//
// Formatters are pure: they hold no mutable state, perform no I/O in
// Format and are safe for concurrent use. Both LineFormatter and
// JSONFormatter also implement WriterFormatter and BufferFormatter so
// handlers can render into their own buffers.
package formatter
