// Package consolehandler provides a synchronous handler that writes one
// formatted line per entry to any io.Writer (default: os.Stdout).
//
// Formatting happens under the handler's lock into a handler-owned
// buffer when the formatter implements formatter.BufferFormatter, so the
// steady state allocates nothing per entry. Writers known to be safe for
// concurrent use (io.Discard, *os.File) are still written under the lock
// so lines from different goroutines never interleave.
package consolehandler
