package logger

import (
	"os"
	"sync"

	"github.com/philipp01105/linelog/formatter"
	"github.com/philipp01105/linelog/handler/consolehandler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    os.Stderr,
		Formatter: formatter.NewDefaultLineFormatter(),
	})

	defaultLogger = NewBuilder().
		WithHandler(h).
		WithLevel(InfoLevel).
		WithCaller(true).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger.
// Each calls the default logger's internal log directly so the caller
// skip matches the method form.

// Verbose logs a verbose message using the default logger
func Verbose(msg string) {
	if l := Default(); VerboseLevel >= l.level {
		l.log(VerboseLevel, msg)
	}
}

// Debug logs a debug message using the default logger
func Debug(msg string) {
	if l := Default(); DebugLevel >= l.level {
		l.log(DebugLevel, msg)
	}
}

// Info logs an info message using the default logger
func Info(msg string) {
	if l := Default(); InfoLevel >= l.level {
		l.log(InfoLevel, msg)
	}
}

// Warn logs a warning message using the default logger
func Warn(msg string) {
	if l := Default(); WarnLevel >= l.level {
		l.log(WarnLevel, msg)
	}
}

// Error logs an error message using the default logger
func Error(msg string) {
	if l := Default(); ErrorLevel >= l.level {
		l.log(ErrorLevel, msg)
	}
}

// Named returns a child of the default logger with the given thread name
func Named(threadName string) *Logger {
	return Default().Named(threadName)
}
