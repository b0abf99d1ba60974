// Package logger is a small host pipeline for linelog formatters.
//
// A Logger is immutable after construction: the handler, level, thread
// name and capture switches are set once via the Builder. It is safe for
// concurrent use without locking on the read path.
//
// The package initializes a default Logger (InfoLevel, caller capture,
// default line format to stderr). The package-level functions Info,
// Error, Debug, etc. delegate to it:
//
//	logger.Info("ready")
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    WithLevel(logger.DebugLevel).
//	    WithCaller(true).
//	    WithGoroutineID(true).
//	    Build()
//
// Named returns a child Logger that stamps a thread name on its entries,
// which formatters render when ThreadName is enabled:
//
//	workerLog := log.Named("worker-1")
package logger
