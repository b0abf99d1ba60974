package logger

import (
	"fmt"
	"time"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/handler"
)

// Logger is a minimal host pipeline around a handler (immutable)
type Logger struct {
	handler       handler.Handler
	level         core.Level
	threadName    string
	includeCaller bool
	goroutineID   bool
	coarseClock   bool
	callerSkip    int
	recycleEntry  bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	level         core.Level
	threadName    string
	includeCaller bool
	goroutineID   bool
	coarseClock   bool
	callerSkip    int
	recycleEntry  bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default level
		callerSkip: 3,              // GetCaller -> log -> Info/Debug/... -> call site
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	if rc, ok := h.(interface{ CanRecycleEntry() bool }); ok {
		b.recycleEntry = rc.CanRecycleEntry()
	} else {
		b.recycleEntry = false
	}
	return b
}

// WithLevel sets the minimum level that reaches the handler
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithCaller enables file, function and line capture
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithThreadName sets the thread name stamped on every entry
func (b *Builder) WithThreadName(name string) *Builder {
	b.threadName = name
	return b
}

// WithGoroutineID stamps the logging goroutine's id as the thread id
func (b *Builder) WithGoroutineID(enabled bool) *Builder {
	b.goroutineID = enabled
	return b
}

// WithCoarseClock timestamps entries with core.CoarseNow instead of
// time.Now, trading up to 500µs of precision for a cheaper clock read.
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	if b.coarseClock {
		core.StartCoarseClock()
	}
	return &Logger{
		handler:       b.handler,
		level:         b.level,
		threadName:    b.threadName,
		includeCaller: b.includeCaller,
		goroutineID:   b.goroutineID,
		coarseClock:   b.coarseClock,
		callerSkip:    b.callerSkip,
		recycleEntry:  b.recycleEntry,
	}
}

// Named returns a child Logger that stamps threadName on its entries
func (l *Logger) Named(threadName string) *Logger {
	child := *l
	child.threadName = threadName
	return &child
}

// Enabled reports whether entries at level reach the handler
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.level && l.handler != nil
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string) {
	if level < l.level {
		return
	}
	l.log(level, msg)
}

// log builds the entry and hands it to the handler
func (l *Logger) log(level core.Level, msg string) {
	if l.handler == nil {
		return
	}

	entry := core.GetEntry()
	if l.coarseClock {
		entry.Time = core.CoarseNow()
	} else {
		entry.Time = time.Now()
	}
	entry.Level = level
	entry.Message = msg
	entry.Thread.Name = l.threadName
	if l.goroutineID {
		entry.Thread = core.CurrentThread(l.threadName)
	}
	if l.includeCaller {
		entry.Caller = core.GetCaller(l.callerSkip)
	}

	err := l.handler.Handle(entry)
	if err != nil {
		return
	}

	// Return entry to pool if handler supports it
	if l.recycleEntry {
		core.PutEntry(entry)
	}
}

// Verbose logs a verbose message
func (l *Logger) Verbose(msg string) {
	if core.VerboseLevel < l.level {
		return
	}
	l.log(core.VerboseLevel, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, msg)
}

// Verbosef logs a verbose message with formatting
func (l *Logger) Verbosef(format string, args ...interface{}) {
	if core.VerboseLevel < l.level {
		return
	}
	l.log(core.VerboseLevel, fmt.Sprintf(format, args...))
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
