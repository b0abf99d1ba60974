package gologhandler

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/kataras/golog"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/handler"
)

// Config holds configuration for Attach
type Config struct {
	// Handler receives one entry per golog record (required)
	Handler handler.Handler
	// ThreadName is rendered when the formatter enables ThreadName
	ThreadName string
}

// Attach registers a golog handler that forwards every record to
// cfg.Handler. Record fields are appended to the message as key=value
// pairs. Records are marked handled so golog prints nothing itself,
// unless cfg.Handler fails, in which case golog falls back to its own
// output for that record.
func Attach(l *golog.Logger, cfg Config) {
	recycle := false
	if rc, ok := cfg.Handler.(interface{ CanRecycleEntry() bool }); ok {
		recycle = rc.CanRecycleEntry()
	}

	l.Handle(func(record *golog.Log) bool {
		entry := core.GetEntry()
		if !record.Time.IsZero() {
			entry.Time = record.Time
		}
		entry.Level = gologLevelToCore(record.Level)
		entry.Message = record.Message + fieldsSuffix(record.Fields)
		entry.Thread = core.CurrentThread(cfg.ThreadName)
		if len(record.Stacktrace) > 0 {
			entry.Caller = callerFromFrame(record.Stacktrace[0])
		}

		err := cfg.Handler.Handle(entry)
		if recycle {
			core.PutEntry(entry)
		}
		return err == nil
	})
}

// fieldsSuffix renders fields as " key=value" pairs in key order
func fieldsSuffix(fields golog.Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		fmt.Fprint(&b, fields[k])
	}
	return b.String()
}

// callerFromFrame converts golog's caller frame. golog records the
// source as "file:line" and shortens package functions to "pkg/Func",
// which is turned back into "pkg.Func".
func callerFromFrame(f golog.Frame) core.CallerInfo {
	c := core.CallerInfo{
		File:     f.Source,
		Function: f.Function,
		Defined:  true,
	}
	if i := strings.LastIndexByte(f.Source, ':'); i > 0 {
		if line, err := strconv.Atoi(f.Source[i+1:]); err == nil {
			c.File = f.Source[:i]
			c.Line = line
		}
	}
	if !strings.Contains(c.Function, ".") {
		c.Function = strings.Replace(c.Function, "/", ".", 1)
	}
	c.ShortFile = filepath.Base(c.File)
	return c
}

// gologLevelToCore converts a golog.Level to a core.Level.
func gologLevelToCore(level golog.Level) core.Level {
	switch level {
	case golog.FatalLevel, golog.ErrorLevel:
		return core.ErrorLevel
	case golog.WarnLevel:
		return core.WarnLevel
	case golog.InfoLevel:
		return core.InfoLevel
	case golog.DebugLevel:
		return core.DebugLevel
	default:
		return core.UnknownLevel
	}
}
