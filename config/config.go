package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/philipp01105/linelog/formatter"
)

var (
	// ErrInvalidLineLength is returned for a negative line_length
	ErrInvalidLineLength = errors.New("line_length must not be negative")
	// ErrUnknownPreset is returned for a preset other than "default" or "none"
	ErrUnknownPreset = errors.New("unknown preset")
)

// Config is the construction-time configuration of a LineFormatter
type Config struct {
	Options    formatter.Options
	LineLength int
}

// Default returns the configuration of formatter.NewDefaultLineFormatter
func Default() Config {
	return Config{
		Options:    formatter.DefaultOptions,
		LineLength: formatter.DefaultLineLength,
	}
}

// NewFormatter builds the immutable formatter described by c
func (c Config) NewFormatter() *formatter.LineFormatter {
	return formatter.NewLineFormatter(c.Options, c.LineLength)
}

// NewJSONFormatter builds a JSON formatter selecting the same fields as c
func (c Config) NewJSONFormatter() *formatter.JSONFormatter {
	return formatter.NewJSONFormatter(c.Options)
}

// Validate reports configuration values the formatter cannot honor
func (c Config) Validate() error {
	if c.LineLength < 0 {
		return errors.Wrapf(ErrInvalidLineLength, "got %d", c.LineLength)
	}
	return nil
}

// String renders c for diagnostics
func (c Config) String() string {
	return fmt.Sprintf("options=%s line_length=%d", c.Options, c.LineLength)
}

// fileConfig mirrors the on-disk layout. Options stays untyped because
// it may be a string or a list.
type fileConfig struct {
	Preset     string      `yaml:"preset" toml:"preset" json:"preset"`
	Options    interface{} `yaml:"options" toml:"options" json:"options"`
	LineLength *int        `yaml:"line_length" toml:"line_length" json:"line_length"`
}

// resolve layers the keys present in the file over the preset. Without a
// preset the defaults apply, so a file that only sets line_length keeps
// the default options.
func (fc fileConfig) resolve() (Config, error) {
	var cfg Config
	switch strings.ToLower(strings.TrimSpace(fc.Preset)) {
	case "none":
	case "", "default":
		cfg = Default()
	default:
		return Config{}, errors.Wrapf(ErrUnknownPreset, "%q", fc.Preset)
	}

	if fc.Options != nil {
		opts, err := parseOptionValue(fc.Options)
		if err != nil {
			return Config{}, errors.Wrap(err, "invalid options")
		}
		cfg.Options = opts
	}
	if fc.LineLength != nil {
		cfg.LineLength = *fc.LineLength
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parseOptionValue accepts the shapes the decoders produce for options:
// a string or a list of strings.
func parseOptionValue(v interface{}) (formatter.Options, error) {
	switch val := v.(type) {
	case string:
		return formatter.ParseOptions(val)
	case []string:
		return formatter.ParseOptionNames(val)
	case []interface{}:
		names := make([]string, 0, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return formatter.None, errors.Errorf("option #%d is %T, want string", i, item)
			}
			names = append(names, s)
		}
		return formatter.ParseOptionNames(names)
	default:
		return formatter.None, errors.Errorf("options is %T, want string or list", v)
	}
}

// Load reads a configuration file, choosing the decoder from its extension
func Load(path string) (Config, error) {
	format := DetectFormat(path)
	if format == FormatAuto {
		return Config{}, errors.Wrapf(ErrUnknownFormat, "cannot detect format from file extension: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config")
	}

	cfg, err := LoadBytes(data, format)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to load config from file %s", path)
	}
	return cfg, nil
}

// LoadBytes decodes a configuration in the given format
func LoadBytes(data []byte, format Format) (Config, error) {
	var fc fileConfig
	if err := decode(data, format, &fc); err != nil {
		return Config{}, err
	}
	return fc.resolve()
}
