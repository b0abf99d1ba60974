package core

import "strings"

// Level represents the severity of a log entry
type Level int8

const (
	// UnknownLevel marks a severity the host could not classify
	UnknownLevel Level = iota - 1
	// VerboseLevel for very detailed tracing output
	VerboseLevel
	// DebugLevel for debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

var levelNames = [...]string{
	VerboseLevel: "Verbose",
	DebugLevel:   "Debug",
	InfoLevel:    "Info",
	WarnLevel:    "Warning",
	ErrorLevel:   "Error",
}

var levelCodes = [...]string{
	VerboseLevel: "V",
	DebugLevel:   "D",
	InfoLevel:    "I",
	WarnLevel:    "W",
	ErrorLevel:   "E",
}

// Valid reports whether l is one of the five known severities.
func (l Level) Valid() bool {
	return l >= VerboseLevel && l <= ErrorLevel
}

// String returns the full severity name, or "Unknown".
func (l Level) String() string {
	if !l.Valid() {
		return "Unknown"
	}
	return levelNames[l]
}

// Short returns the single-letter severity code, or "?".
func (l Level) Short() string {
	if !l.Valid() {
		return "?"
	}
	return levelCodes[l]
}

// ParseLevel converts a severity name or code to a Level.
// Unrecognized input yields UnknownLevel and false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "V", "VERBOSE", "TRACE":
		return VerboseLevel, true
	case "D", "DEBUG":
		return DebugLevel, true
	case "I", "INFO":
		return InfoLevel, true
	case "W", "WARN", "WARNING":
		return WarnLevel, true
	case "E", "ERROR":
		return ErrorLevel, true
	default:
		return UnknownLevel, false
	}
}
