package formatter

import (
	"strings"

	"github.com/pkg/errors"
)

// Options is an immutable set of presentation toggles. Each toggle owns
// one bit; the zero value is the empty set.
type Options uint16

// None is the empty set: only the message is rendered.
const None Options = 0

const (
	// WordWrap breaks long lines at whitespace (needs a line length > 0)
	WordWrap Options = 1 << iota
	// TimestampShort renders the time of day
	TimestampShort
	// TimestampLong renders the full date and time; wins over TimestampShort
	TimestampLong
	// FilePath renders the full originating file path; wins over FileName
	FilePath
	// FileName renders the base name of the originating file
	FileName
	// MethodName renders the originating function
	MethodName
	// LineNumber renders the originating line
	LineNumber
	// ThreadName renders the emitting thread's name
	ThreadName
	// ThreadID renders the emitting thread's identifier
	ThreadID
	// LogFlagShort renders a one-letter severity code
	LogFlagShort
	// LogFlagLong renders the full severity name; wins over LogFlagShort
	LogFlagLong

	optionCount = iota
)

// DefaultOptions is the preset used by NewDefaultLineFormatter.
const DefaultOptions = WordWrap | TimestampShort | FileName | MethodName | LineNumber | LogFlagShort

// allOptions lists the single-bit options in declaration order, which is
// also the canonical order used by String.
var allOptions = [optionCount]Options{
	WordWrap, TimestampShort, TimestampLong, FilePath, FileName, MethodName,
	LineNumber, ThreadName, ThreadID, LogFlagShort, LogFlagLong,
}

var optionNames = [optionCount]string{
	"WordWrap", "TimestampShort", "TimestampLong", "FilePath", "FileName", "MethodName",
	"LineNumber", "ThreadName", "ThreadID", "LogFlagShort", "LogFlagLong",
}

// optionAliases maps normalized alternate spellings to options.
var optionAliases = map[string]Options{
	"shorttimestamp": TimestampShort,
	"longtimestamp":  TimestampLong,
	"shortlogflag":   LogFlagShort,
	"longlogflag":    LogFlagLong,
	"shortflag":      LogFlagShort,
	"longflag":       LogFlagLong,
}

// ErrUnknownOption is the cause of every option parsing failure.
var ErrUnknownOption = errors.New("unknown formatter option")

const optionSeparator = "|"

// NewOptions returns the union of opts. Duplicates collapse and an empty
// argument list yields None.
func NewOptions(opts ...Options) Options {
	var o Options
	for _, opt := range opts {
		o |= opt
	}
	return o
}

// Contains reports whether every toggle in opt is enabled.
func (o Options) Contains(opt Options) bool {
	return o&opt == opt
}

// With returns a new set with opt added.
func (o Options) With(opt Options) Options {
	return o | opt
}

// Without returns a new set with opt removed.
func (o Options) Without(opt Options) Options {
	return o &^ opt
}

// Len returns the number of enabled toggles.
func (o Options) Len() int {
	n := 0
	for _, opt := range allOptions {
		if o&opt != 0 {
			n++
		}
	}
	return n
}

// String lists the enabled toggles in declaration order joined by "|",
// or "None" for the empty set. Bits outside the known toggles are ignored.
func (o Options) String() string {
	if o.Len() == 0 {
		return "None"
	}
	var b strings.Builder
	for i, opt := range allOptions {
		if o&opt == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(optionSeparator)
		}
		b.WriteString(optionNames[i])
	}
	return b.String()
}

// Names returns the canonical names of the enabled toggles.
func (o Options) Names() []string {
	names := make([]string, 0, o.Len())
	for i, opt := range allOptions {
		if o&opt != 0 {
			names = append(names, optionNames[i])
		}
	}
	return names
}

// MarshalText implements encoding.TextMarshaler.
func (o Options) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Options) UnmarshalText(text []byte) error {
	parsed, err := ParseOptions(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseOption resolves a single option name. Matching ignores case and
// "-", "_" and space separators, so "TimestampLong", "timestamp_long" and
// "long-timestamp" all name the same toggle. "None" yields the empty set.
func ParseOption(name string) (Options, error) {
	key := normalizeOptionName(name)
	if key == "none" {
		return None, nil
	}
	for i, canonical := range optionNames {
		if strings.ToLower(canonical) == key {
			return allOptions[i], nil
		}
	}
	if opt, ok := optionAliases[key]; ok {
		return opt, nil
	}
	return None, errors.Wrapf(ErrUnknownOption, "%q", name)
}

// ParseOptions parses the "|"-joined form produced by String. Commas are
// accepted as separators too. Blank input yields None.
func ParseOptions(s string) (Options, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ','
	})
	return ParseOptionNames(fields)
}

// ParseOptionNames parses a list of option names into a set.
func ParseOptionNames(names []string) (Options, error) {
	var o Options
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		opt, err := ParseOption(name)
		if err != nil {
			return None, err
		}
		o |= opt
	}
	return o, nil
}

func normalizeOptionName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '\t':
			return -1
		}
		return r
	}, strings.ToLower(name))
}
