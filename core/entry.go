package core

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Entry represents one log event with all its metadata
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Caller  CallerInfo
	Thread  ThreadInfo
}

// CallerInfo contains information about the code that emitted the entry
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// FileName returns the base name of the originating file.
func (c CallerInfo) FileName() string {
	if c.ShortFile != "" {
		return c.ShortFile
	}
	if c.File == "" {
		return ""
	}
	return filepath.Base(c.File)
}

// ThreadInfo identifies the thread of execution that emitted the entry
type ThreadInfo struct {
	Name string
	ID   string
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves a zeroed Entry from the pool with Time set to now
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	*e = Entry{Time: time.Now()}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	*e = Entry{}
	entryPool.Put(e)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}
	return CallerFromPC(pc, file, line)
}

// CallerFromPC builds CallerInfo from an already captured program counter.
// Hosts such as log/slog record the PC and resolve it later.
func CallerFromPC(pc uintptr, file string, line int) CallerInfo {
	var funcName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
