// Package zaphandler lets go.uber.org/zap act as the host pipeline for a
// linelog formatter.
//
// Core implements zapcore.Core: zap keeps its level checks, sampling and
// caller capture, and every entry that reaches the core is rendered as
// one line by the configured formatter. Fields keyed "thread" and
// "thread_id" become the entry's thread name and id; a named logger
// supplies the thread name when no "thread" field is present. All other
// fields are appended to the message as key=value.
//
//	log := zaphandler.New(formatter.NewDefaultLineFormatter(), os.Stderr, zapcore.InfoLevel)
//	log.Named("http").Info("listening", zap.Int("port", 8080))
package zaphandler
