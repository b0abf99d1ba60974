package zaphandler

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/formatter"
)

func TestCore_WritesFormattedLine(t *testing.T) {
	var buf bytes.Buffer
	log := New(formatter.NewLineFormatter(formatter.FileName|formatter.LogFlagShort, 0), &buf, zapcore.InfoLevel)

	log.Info("hello", zap.String("k", "v"), zap.Int("n", 3))

	assert.Equal(t, "[core_test.go] I hello k=v n=3\n", buf.String())
}

func TestCore_LevelGate(t *testing.T) {
	var buf bytes.Buffer
	log := New(formatter.NewLineFormatter(formatter.LogFlagShort, 0), &buf, zapcore.WarnLevel)

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Error("kept")
	assert.Equal(t, "E kept\n", buf.String())
}

func TestCore_Levels(t *testing.T) {
	tests := []struct {
		level zapcore.Level
		want  string
	}{
		{zapcore.Level(-2), "Verbose"},
		{zapcore.DebugLevel, "Debug"},
		{zapcore.InfoLevel, "Info"},
		{zapcore.WarnLevel, "Warning"},
		{zapcore.ErrorLevel, "Error"},
		{zapcore.DPanicLevel, "Error"},
	}

	all := zap.LevelEnablerFunc(func(zapcore.Level) bool { return true })
	for _, tt := range tests {
		var buf bytes.Buffer
		c := NewCore(formatter.NewLineFormatter(formatter.LogFlagLong, 0), zapcore.AddSync(&buf), all)

		require.NoError(t, c.Write(zapcore.Entry{Level: tt.level, Message: "m"}, nil))
		assert.Equal(t, tt.want+" m\n", buf.String(), "level %v", tt.level)
	}
}

func TestCore_ThreadFields(t *testing.T) {
	var buf bytes.Buffer
	opts := formatter.ThreadName | formatter.ThreadID
	log := New(formatter.NewLineFormatter(opts, 0), &buf, zapcore.InfoLevel)

	log.With(zap.String("thread", "worker"), zap.Int("thread_id", 9)).Info("job done", zap.Duration("took", time.Second))

	assert.Equal(t, "worker 9 job done took=1s\n", buf.String())
}

func TestCore_NamedLoggerIsThreadName(t *testing.T) {
	var buf bytes.Buffer
	log := New(formatter.NewLineFormatter(formatter.ThreadName|formatter.ThreadID, 0), &buf, zapcore.InfoLevel)

	log.Named("db").Info("connected")

	id := core.CurrentThread("").ID
	assert.Equal(t, "db "+id+" connected\n", buf.String())
}

func TestCore_ContextFieldsOrder(t *testing.T) {
	var buf bytes.Buffer
	log := New(formatter.NewLineFormatter(formatter.None, 0), &buf, zapcore.InfoLevel)

	log.With(zap.String("a", "1")).With(zap.String("b", "2")).Info("m", zap.Error(errors.New("boom")))

	assert.Equal(t, "m a=1 b=2 error=boom\n", buf.String())
}

func TestCore_Caller(t *testing.T) {
	var buf bytes.Buffer
	log := New(formatter.NewLineFormatter(formatter.MethodName|formatter.LineNumber, 0), &buf, zapcore.InfoLevel)

	log.Info("here")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[zaphandler.TestCore_Caller:"), out)
	assert.True(t, strings.HasSuffix(out, "] here\n"), out)
}

func TestCore_WordWrap(t *testing.T) {
	var buf bytes.Buffer
	log := New(formatter.NewLineFormatter(formatter.WordWrap|formatter.LogFlagShort, 12), &buf, zapcore.InfoLevel)

	log.Info("one two three four")

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 12, line)
	}
	assert.Equal(t, "I one two\n  three four\n", buf.String())
}

type plainFormatter struct{}

func (plainFormatter) Format(e *core.Entry) string { return "plain:" + e.Message }

func TestCore_PlainFormatterAndSync(t *testing.T) {
	var buf bytes.Buffer
	c := NewCore(plainFormatter{}, zapcore.AddSync(&buf), zapcore.InfoLevel)
	log := zap.New(c)

	log.Info("x")
	require.NoError(t, log.Sync())
	assert.Equal(t, "plain:x\n", buf.String())
}
