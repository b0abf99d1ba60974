package main

import (
	"bufio"
	"bytes"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/philipp01105/linelog/config"
	"github.com/philipp01105/linelog/formatter"
	"github.com/philipp01105/linelog/handler/consolehandler"
	"github.com/philipp01105/linelog/logger"
)

// maxEventSize bounds a single input line
const maxEventSize = 1 << 20

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format JSON-lines events read from stdin",
		Long: `Read one JSON event per line from stdin and write one formatted line per event.
Malformed lines are reported on stderr and skipped.`,
		Args: cobra.NoArgs,
		RunE: runFormat,
	}

	cmd.Flags().String("options", "", `option set, e.g. "TimestampShort|LogFlagShort" or "None"`)
	cmd.Flags().Int("line-length", formatter.DefaultLineLength, "word wrap width in characters, 0 disables wrapping")
	cmd.Flags().String("config", "", "configuration file (.yaml, .yml, .toml or .json)")
	cmd.Flags().Bool("json", false, "emit JSON objects instead of text lines")
	return cmd
}

// resolveConfig layers explicit flags over the config file over defaults
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("options") {
		s, _ := cmd.Flags().GetString("options")
		opts, err := formatter.ParseOptions(s)
		if err != nil {
			return config.Config{}, errors.Wrap(err, "invalid --options")
		}
		cfg.Options = opts
	}
	if cmd.Flags().Changed("line-length") {
		cfg.LineLength, _ = cmd.Flags().GetInt("line-length")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var f formatter.WriterFormatter = cfg.NewFormatter()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		f = cfg.NewJSONFormatter()
	}

	diag := diagnostics(cmd.ErrOrStderr())
	defer diag.Close()

	n, err := formatStream(cmd.InOrStdin(), cmd.OutOrStdout(), f, diag)
	if err != nil {
		return err
	}
	if n > 0 {
		diag.Warnf("skipped %d malformed event(s)", n)
	}
	return nil
}

// diagnostics returns the logger used for problems with the input stream
func diagnostics(w io.Writer) *logger.Logger {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    w,
		Formatter: formatter.NewLineFormatter(formatter.LogFlagShort, 0),
	})
	return logger.NewBuilder().
		WithHandler(h).
		WithLevel(logger.WarnLevel).
		Build()
}

// formatStream renders every event of r to w and returns the number of
// skipped lines. Blank lines are ignored. Output written before a read or
// write error is still flushed.
func formatStream(r io.Reader, w io.Writer, f formatter.WriterFormatter, diag *logger.Logger) (int, error) {
	out := bufio.NewWriter(w)
	skipped, err := formatLines(bufio.NewReader(r), out, f, diag)
	if flushErr := out.Flush(); flushErr != nil && err == nil {
		err = errors.Wrap(flushErr, "failed to write output")
	}
	return skipped, err
}

func formatLines(in *bufio.Reader, out io.Writer, f formatter.WriterFormatter, diag *logger.Logger) (int, error) {
	skipped := 0
	var buf []byte
	for lineNo := 1; ; lineNo++ {
		line, tooLarge, err := readEvent(in, buf[:0])
		if errors.Is(err, io.EOF) {
			return skipped, nil
		}
		if err != nil {
			return skipped, errors.Wrap(err, "failed to read input")
		}
		buf = line

		if tooLarge {
			skipped++
			diag.Warnf("line %d: event exceeds %d bytes", lineNo, maxEventSize)
			continue
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		entry, err := decodeEvent(line, time.Now())
		if err != nil {
			skipped++
			diag.Warnf("line %d: %v", lineNo, err)
			continue
		}
		if err := f.FormatTo(entry, out); err != nil {
			return skipped, errors.Wrap(err, "failed to write output")
		}
	}
}

// readEvent reads one line into buf. A line longer than maxEventSize is
// consumed without being kept and reported as tooLarge. io.EOF is only
// returned when no bytes remain.
func readEvent(in *bufio.Reader, buf []byte) (line []byte, tooLarge bool, err error) {
	size := 0
	for {
		chunk, rerr := in.ReadSlice('\n')
		size += len(chunk)
		if size <= maxEventSize+1 {
			buf = append(buf, chunk...)
		}
		if errors.Is(rerr, bufio.ErrBufferFull) {
			continue
		}
		if rerr != nil && (!errors.Is(rerr, io.EOF) || size == 0) {
			return nil, false, rerr
		}

		n := size
		if len(chunk) > 0 && chunk[len(chunk)-1] == '\n' {
			n--
		}
		if n > maxEventSize {
			return nil, true, nil
		}
		return buf, false, nil
	}
}
