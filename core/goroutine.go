package core

import (
	"bytes"
	"runtime"
	"strconv"
)

var goroutinePrefix = []byte("goroutine ")

// GoroutineID returns the id of the calling goroutine, or 0 if the
// runtime stack header cannot be parsed.
func GoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// CurrentThread returns ThreadInfo for the calling goroutine.
func CurrentThread(name string) ThreadInfo {
	t := ThreadInfo{Name: name}
	if id := GoroutineID(); id != 0 {
		t.ID = strconv.FormatUint(id, 10)
	}
	return t
}
