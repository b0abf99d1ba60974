package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/philipp01105/linelog/core"
)

// event is one JSON-lines input record
type event struct {
	Message    string    `json:"message"`
	Level      string    `json:"level"`
	Time       time.Time `json:"time"`
	File       string    `json:"file"`
	Function   string    `json:"function"`
	Line       int       `json:"line"`
	ThreadName string    `json:"thread_name"`
	ThreadID   string    `json:"thread_id"`
}

// decodeEvent parses a single input line into an entry. A missing level
// means Info; an unrecognized one renders as Unknown. A missing time is
// replaced with now.
func decodeEvent(line []byte, now time.Time) (*core.Entry, error) {
	var ev event
	if err := json.Unmarshal(line, &ev); err != nil {
		return nil, errors.Wrap(err, "invalid event")
	}

	level := core.InfoLevel
	if strings.TrimSpace(ev.Level) != "" {
		l, ok := core.ParseLevel(ev.Level)
		if !ok {
			l = core.UnknownLevel
		}
		level = l
	}

	ts := ev.Time
	if ts.IsZero() {
		ts = now
	}

	entry := &core.Entry{
		Time:    ts,
		Level:   level,
		Message: ev.Message,
		Thread: core.ThreadInfo{
			Name: ev.ThreadName,
			ID:   ev.ThreadID,
		},
	}
	if ev.File != "" || ev.Function != "" || ev.Line != 0 {
		entry.Caller = core.CallerInfo{
			File:     ev.File,
			Line:     ev.Line,
			Function: ev.Function,
			Defined:  true,
		}
		if ev.File != "" {
			entry.Caller.ShortFile = filepath.Base(ev.File)
		}
	}
	return entry, nil
}
