// Package sloghandler provides an adapter from handler.Handler to
// log/slog.Handler, so programs logging through the standard library get
// their records rendered by a linelog formatter.
//
// The record's PC becomes the entry's caller and the calling goroutine's
// id becomes the thread id. Two attributes are lifted out of the record:
// "thread" names the thread and "thread_id" overrides the goroutine id.
// Every other attribute is appended to the message as key=value, with
// group names joined by dots.
package sloghandler
