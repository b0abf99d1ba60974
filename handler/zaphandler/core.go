package zaphandler

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/formatter"
)

const (
	// ThreadKey is the field key that names the emitting thread
	ThreadKey = "thread"
	// ThreadIDKey is the field key that overrides the goroutine id
	ThreadIDKey = "thread_id"
)

// Core is a zapcore.Core that renders entries with a linelog formatter
type Core struct {
	zapcore.LevelEnabler
	formatter formatter.Formatter
	bufFmt    formatter.BufferFormatter
	out       zapcore.WriteSyncer
	thread    core.ThreadInfo
	context   []zapcore.Field
}

var _ zapcore.Core = (*Core)(nil)

// NewCore creates a core writing formatted lines to out
func NewCore(f formatter.Formatter, out zapcore.WriteSyncer, enab zapcore.LevelEnabler) *Core {
	c := &Core{
		LevelEnabler: enab,
		formatter:    f,
		out:          zapcore.Lock(out),
	}
	c.bufFmt, _ = f.(formatter.BufferFormatter)
	return c
}

// New builds a *zap.Logger backed by a Core. Caller capture is enabled
// so location options have something to render.
func New(f formatter.Formatter, w io.Writer, level zapcore.LevelEnabler, opts ...zap.Option) *zap.Logger {
	opts = append([]zap.Option{zap.AddCaller()}, opts...)
	return zap.New(NewCore(f, zapcore.AddSync(w), level), opts...)
}

// With returns a core carrying additional context fields
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.context = make([]zapcore.Field, 0, len(c.context)+len(fields))
	clone.context = append(clone.context, c.context...)
	for _, f := range fields {
		if liftThread(&clone.thread, f) {
			continue
		}
		clone.context = append(clone.context, f)
	}
	return &clone
}

// Check adds the core to ce when the entry's level is enabled
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry and writes it as one line
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = ent.Time
	entry.Level = zapLevelToCore(ent.Level)
	entry.Thread = c.thread
	if ent.Caller.Defined {
		entry.Caller = core.CallerInfo{
			File:     ent.Caller.File,
			Line:     ent.Caller.Line,
			Function: ent.Caller.Function,
			Defined:  true,
		}
	}

	msg := getBuffer()
	defer putBuffer(msg)
	msg.WriteString(ent.Message)
	appendFields(msg, c.context)
	for _, f := range fields {
		if liftThread(&entry.Thread, f) {
			continue
		}
		appendFields(msg, []zapcore.Field{f})
	}
	entry.Message = msg.String()

	if entry.Thread.Name == "" {
		entry.Thread.Name = ent.LoggerName
	}
	if entry.Thread.ID == "" {
		entry.Thread.ID = core.CurrentThread("").ID
	}

	line := getBuffer()
	defer putBuffer(line)
	if c.bufFmt != nil {
		c.bufFmt.FormatEntry(entry, line)
	} else {
		line.WriteString(c.formatter.Format(entry))
		line.WriteByte('\n')
	}

	if _, err := c.out.Write(line.Bytes()); err != nil {
		return err
	}
	if ent.Level > zapcore.ErrorLevel {
		// Flush before a panic or exit.
		return c.Sync()
	}
	return nil
}

// Sync flushes the underlying writer
func (c *Core) Sync() error {
	return c.out.Sync()
}

// liftThread moves thread fields into t. It reports whether f was consumed.
func liftThread(t *core.ThreadInfo, f zapcore.Field) bool {
	switch f.Key {
	case ThreadKey:
		t.Name = fieldValue(f)
		return true
	case ThreadIDKey:
		t.ID = fieldValue(f)
		return true
	default:
		return false
	}
}

// appendFields writes " key=value" for each field, in order
func appendFields(buf *bytes.Buffer, fields []zapcore.Field) {
	for _, f := range fields {
		if f.Type == zapcore.SkipType {
			continue
		}
		buf.WriteByte(' ')
		buf.WriteString(f.Key)
		buf.WriteByte('=')
		buf.WriteString(fieldValue(f))
	}
}

// fieldValue renders a single field's value using zap's own encoding
func fieldValue(f zapcore.Field) string {
	enc := zapcore.NewMapObjectEncoder()
	f.AddTo(enc)
	v, ok := enc.Fields[f.Key]
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarnLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	case level >= zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.VerboseLevel
	}
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 {
		return
	}
	bufferPool.Put(buf)
}
