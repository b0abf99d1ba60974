package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/formatter"
)

func TestLoadBytes_Formats(t *testing.T) {
	want := Config{
		Options:    formatter.FileName | formatter.LineNumber | formatter.LogFlagShort,
		LineLength: 80,
	}

	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"yaml list", FormatYAML, "options: [FileName, LineNumber, LogFlagShort]\nline_length: 80\n"},
		{"yaml string", FormatYAML, "options: \"FileName|LineNumber|LogFlagShort\"\nline_length: 80\n"},
		{"toml list", FormatTOML, "options = [\"file-name\", \"line-number\", \"short-log-flag\"]\nline_length = 80\n"},
		{"toml string", FormatTOML, "options = \"FileName|LineNumber|LogFlagShort\"\nline_length = 80\n"},
		{"json list", FormatJSON, `{"options": ["FileName", "LineNumber", "LogFlagShort"], "line_length": 80}`},
		{"json string", FormatJSON, `{"options": "filename|linenumber|logflagshort", "line_length": 80}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadBytes([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestLoadBytes_Preset(t *testing.T) {
	cfg, err := LoadBytes([]byte("preset: default\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = LoadBytes([]byte("preset: default\nline_length: 0\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, formatter.DefaultOptions, cfg.Options)
	assert.Equal(t, 0, cfg.LineLength)

	_, err = LoadBytes([]byte("preset: fancy\n"), FormatYAML)
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}

func TestLoadBytes_Empty(t *testing.T) {
	cfg, err := LoadBytes(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadBytes_MissingKeysKeepDefaults(t *testing.T) {
	cfg, err := LoadBytes([]byte("line_length: 80\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, formatter.DefaultOptions, cfg.Options)
	assert.Equal(t, 80, cfg.LineLength)

	cfg, err = LoadBytes([]byte(`options = "LogFlagLong"`), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, formatter.LogFlagLong, cfg.Options)
	assert.Equal(t, formatter.DefaultLineLength, cfg.LineLength)
}

func TestLoadBytes_NonePreset(t *testing.T) {
	cfg, err := LoadBytes([]byte(`{"preset": "none"}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
	assert.Equal(t, "None", cfg.Options.String())

	cfg, err = LoadBytes([]byte("preset: none\nline_length: 40\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, formatter.None, cfg.Options)
	assert.Equal(t, 40, cfg.LineLength)
}

func TestLoadBytes_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
		cause  error
	}{
		{"unknown option", FormatYAML, "options: [FileName, Sparkles]\n", formatter.ErrUnknownOption},
		{"negative length", FormatTOML, "line_length = -1\n", ErrInvalidLineLength},
		{"unknown format", Format("ini"), "x=1", ErrUnknownFormat},
		{"non-string option", FormatJSON, `{"options": [1, 2]}`, nil},
		{"unknown yaml key", FormatYAML, "colour: red\n", nil},
		{"unknown toml key", FormatTOML, "colour = \"red\"\n", nil},
		{"unknown json key", FormatJSON, `{"colour": "red"}`, nil},
		{"broken yaml", FormatYAML, "options: [FileName\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBytes([]byte(tt.data), tt.format)
			require.Error(t, err)
			if tt.cause != nil {
				assert.True(t, errors.Is(err, tt.cause), "expected cause %v, got %v", tt.cause, err)
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "linelog.yml")
	require.NoError(t, os.WriteFile(path, []byte("options: [WordWrap, LogFlagLong]\nline_length: 12\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, formatter.WordWrap|formatter.LogFlagLong, cfg.Options)

	f := cfg.NewFormatter()
	assert.Equal(t, 12, f.LineLength())
	out := f.Format(&core.Entry{Level: core.InfoLevel, Message: "one two three"})
	assert.Equal(t, "Info one two\n     three", out)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("linelog.ini")
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("a.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("a.YML"))
	assert.Equal(t, FormatTOML, DetectFormat("/etc/linelog.toml"))
	assert.Equal(t, FormatJSON, DetectFormat("cfg.json"))
	assert.Equal(t, FormatAuto, DetectFormat("cfg"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestConfig_String(t *testing.T) {
	cfg := Config{Options: formatter.FileName, LineLength: 40}
	assert.Equal(t, "options=FileName line_length=40", cfg.String())
	assert.Equal(t, formatter.FileName, cfg.NewJSONFormatter().Options())
}
