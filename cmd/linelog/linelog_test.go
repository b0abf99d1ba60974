package main

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/linelog/config"
	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/formatter"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFormat_Text(t *testing.T) {
	in := `{"message":"started","level":"info","file":"/src/Server.m","function":"m","line":42}
{"message":"disk low","level":"W","thread_name":"main","thread_id":"7"}
`
	out, errOut, err := execute(t, in, "format",
		"--options", "ThreadName|ThreadID|FileName|MethodName|LineNumber|LogFlagShort")
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Equal(t, "[Server.m:m:42] I started\nmain 7 W disk low\n", out)
}

func TestFormat_MalformedLinesSkipped(t *testing.T) {
	in := `{"message":"one"}

not json
{"message":"two","level":"error"}
`
	out, errOut, err := execute(t, in, "format", "--options", "LogFlagLong")
	require.NoError(t, err)
	assert.Equal(t, "Info one\nError two\n", out)
	assert.Contains(t, errOut, "W line 3: invalid event")
	assert.Contains(t, errOut, "W skipped 1 malformed event(s)")
}

func TestFormat_OversizedLineSkipped(t *testing.T) {
	huge := `{"message":"` + strings.Repeat("x", 2*maxEventSize) + `"}`
	in := `{"message":"one"}
{"message":"two"}
` + huge + `
{"message":"three"}`

	out, errOut, err := execute(t, in, "format", "--options", "LogFlagShort")
	require.NoError(t, err)
	assert.Equal(t, "I one\nI two\nI three\n", out)
	assert.Contains(t, errOut, "W line 3: event exceeds 1048576 bytes")
	assert.Contains(t, errOut, "W skipped 1 malformed event(s)")
}

func TestFormatStream_FlushesBeforeReadError(t *testing.T) {
	in := io.MultiReader(
		strings.NewReader("{\"message\":\"a\"}\n{\"message\":\"b\"}\n"),
		iotest.ErrReader(errors.New("disk gone")),
	)
	var out bytes.Buffer
	f := formatter.NewLineFormatter(formatter.LogFlagShort, 0)

	_, err := formatStream(in, &out, f, diagnostics(io.Discard))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
	assert.Equal(t, "I a\nI b\n", out.String())
}

func TestReadEvent(t *testing.T) {
	in := bufio.NewReaderSize(strings.NewReader("first\r\n"+strings.Repeat("y", maxEventSize)+"\nlast"), 16)

	line, tooLarge, err := readEvent(in, nil)
	require.NoError(t, err)
	assert.False(t, tooLarge)
	assert.Equal(t, "first\r\n", string(line))

	line, tooLarge, err = readEvent(in, nil)
	require.NoError(t, err)
	assert.False(t, tooLarge, "a line of exactly the maximum size is kept")
	assert.Len(t, line, maxEventSize+1)

	line, _, err = readEvent(in, nil)
	require.NoError(t, err)
	assert.Equal(t, "last", string(line))

	_, _, err = readEvent(in, nil)
	assert.ErrorIs(t, err, io.EOF)
}

func TestFormat_UnknownLevel(t *testing.T) {
	out, _, err := execute(t, `{"message":"odd","level":"fatal"}`, "format", "--options", "LogFlagShort")
	require.NoError(t, err)
	assert.Equal(t, "? odd\n", out)
}

func TestFormat_NoneKeepsMessage(t *testing.T) {
	out, _, err := execute(t, `{"message":"a\nb","level":"info"}`, "format", "--options", "None")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)
}

func TestFormat_WordWrap(t *testing.T) {
	in := `{"message":"aaaa bbbb cccc","level":"info"}`
	out, _, err := execute(t, in, "format", "--options", "WordWrap|LogFlagShort", "--line-length", "8")
	require.NoError(t, err)
	assert.Equal(t, "I aaaa\n  bbbb\n  cccc\n", out)
}

func TestFormat_JSON(t *testing.T) {
	out, _, err := execute(t, `{"message":"started","level":"info"}`, "format", "--json", "--options", "LogFlagLong")
	require.NoError(t, err)
	assert.Contains(t, out, `"message":"started"`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestFormat_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linelog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("options: [LogFlagLong, ThreadName]\nline_length: 0\n"), 0o644))

	out, _, err := execute(t, `{"message":"hi","thread_name":"w1"}`, "format", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "w1 Info hi\n", out)

	// flags override the file
	out, _, err = execute(t, `{"message":"hi","thread_name":"w1"}`, "format", "--config", path, "--options", "LogFlagShort")
	require.NoError(t, err)
	assert.Equal(t, "I hi\n", out)
}

func TestFormat_ConfigFileKeepsDefaultOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linelog.toml")
	require.NoError(t, os.WriteFile(path, []byte("line_length = 80\n"), 0o644))

	in := `{"message":"hi","level":"warn","time":"2026-01-02T03:04:05Z","file":"/srv/main.go","function":"main.run","line":9}`
	out, _, err := execute(t, in, "format", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "03:04:05.000 [main.go:main.run:9] W hi\n", out)
}

func TestFormat_InvalidFlags(t *testing.T) {
	_, _, err := execute(t, "", "format", "--options", "Bogus")
	require.Error(t, err)

	_, _, err = execute(t, "", "format", "--line-length=-1")
	require.ErrorIs(t, err, config.ErrInvalidLineLength)
}

func TestDescribe(t *testing.T) {
	out, _, err := execute(t, "", "describe", "log-flag-short", "word_wrap")
	require.NoError(t, err)
	assert.Equal(t, "WordWrap|LogFlagShort\n", out)

	out, _, err = execute(t, "", "describe", "None")
	require.NoError(t, err)
	assert.Equal(t, "None\n", out)

	out, _, err = execute(t, "", "describe", "-v", "TimestampLong|FilePath")
	require.NoError(t, err)
	assert.Equal(t, "TimestampLong|FilePath\noptions: 2\nbits: 0xc\n", out)

	_, _, err = execute(t, "", "describe", "Nope")
	require.Error(t, err)
}

func TestDecodeEvent(t *testing.T) {
	entry, err := decodeEvent([]byte(`{"message":"m","file":"/a/b.go","line":3}`), time.Now())
	require.NoError(t, err)
	assert.Equal(t, core.InfoLevel, entry.Level)
	assert.True(t, entry.Caller.Defined)
	assert.Equal(t, "b.go", entry.Caller.ShortFile)
	assert.False(t, entry.Time.IsZero())

	entry, err = decodeEvent([]byte(`{"message":"m"}`), time.Now())
	require.NoError(t, err)
	assert.False(t, entry.Caller.Defined)

	_, err = decodeEvent([]byte(`{"message":`), time.Now())
	assert.Error(t, err)
}
