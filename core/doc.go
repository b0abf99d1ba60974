// Package core defines the shared types used across linelog.
//
// Entry is the log event handed to a formatter: the message, its
// severity Level, the timestamp, where it was emitted from (CallerInfo)
// and who emitted it (ThreadInfo). Formatters treat an Entry as
// read-only input and never retain it after returning.
//
// Entry objects are pooled via sync.Pool. Hosts get an Entry with
// GetEntry and return it with PutEntry once every handler has consumed
// it.
//
// Go has no OS thread names, so ThreadInfo is filled by the host: the
// name is a label the host attaches (a named logger, a zap field, a slog
// attribute) and the ID is usually the goroutine id from GoroutineID.
package core
