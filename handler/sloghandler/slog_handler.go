package sloghandler

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/handler"
)

const (
	// ThreadKey is the attribute key that names the emitting thread
	ThreadKey = "thread"
	// ThreadIDKey is the attribute key that overrides the thread id
	ThreadIDKey = "thread_id"
)

// SlogHandler implements slog.Handler on top of a handler.Handler.
type SlogHandler struct {
	handler  handler.Handler
	level    core.Level
	attrs    []slog.Attr // pre-configured attrs, group-qualified
	group    string
	thread   core.ThreadInfo
	recycled bool
}

var _ slog.Handler = (*SlogHandler)(nil)

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h handler.Handler, level core.Level) *SlogHandler {
	s := &SlogHandler{
		handler: h,
		level:   level,
	}
	if rc, ok := h.(interface{ CanRecycleEntry() bool }); ok {
		s.recycled = rc.CanRecycleEntry()
	}
	return s
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.level
}

// Handle converts a slog.Record to a core.Entry and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	entry.Time = record.Time
	entry.Level = slogLevelToCore(record.Level)
	entry.Thread = s.thread
	if entry.Thread.ID == "" {
		entry.Thread.ID = core.CurrentThread("").ID
	}

	if record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		frame, _ := frames.Next()
		entry.Caller = core.CallerInfo{
			File:     frame.File,
			Line:     frame.Line,
			Function: frame.Function,
			Defined:  frame.File != "",
		}
	}

	var msg strings.Builder
	msg.WriteString(record.Message)
	for _, a := range s.attrs {
		appendAttr(&msg, "", a)
	}
	record.Attrs(func(a slog.Attr) bool {
		if s.group == "" && liftThread(&entry.Thread, a) {
			return true
		}
		appendAttr(&msg, s.group, a)
		return true
	})
	entry.Message = msg.String()

	err := s.handler.Handle(entry)
	if s.recycled {
		core.PutEntry(entry)
	}
	return err
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := s.clone()
	for _, a := range attrs {
		if s.group == "" && liftThread(&clone.thread, a) {
			continue
		}
		if s.group != "" {
			a.Key = s.group + "." + a.Key
		}
		clone.attrs = append(clone.attrs, a)
	}
	return clone
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	clone := s.clone()
	if s.group != "" {
		clone.group = s.group + "." + name
	} else {
		clone.group = name
	}
	return clone
}

func (s *SlogHandler) clone() *SlogHandler {
	c := *s
	c.attrs = make([]slog.Attr, len(s.attrs), len(s.attrs)+4)
	copy(c.attrs, s.attrs)
	return &c
}

// liftThread moves the thread attributes into t. It reports whether a
// was consumed.
func liftThread(t *core.ThreadInfo, a slog.Attr) bool {
	switch a.Key {
	case ThreadKey:
		t.Name = a.Value.Resolve().String()
		return true
	case ThreadIDKey:
		t.ID = a.Value.Resolve().String()
		return true
	default:
		return false
	}
}

// appendAttr writes " key=value", flattening groups into dotted keys.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.VerboseLevel
	}
}
