// Package handler defines the boundary between a host logging pipeline
// and the formatters.
//
// A Handler receives one core.Entry per log event, renders it with its
// formatter and writes the result. Handlers are synchronous: Handle
// returns once the line is written, so hosts may recycle the entry
// immediately afterwards.
//
// Implementations live in sub-packages:
//
//   - consolehandler writes one rendered line per entry to an io.Writer.
//   - multihandler fans one entry out to several handlers.
//   - sloghandler adapts a Handler to log/slog.Handler.
//   - zaphandler exposes a formatter as a zapcore.Core.
//   - gologhandler renders the records of a kataras/golog logger.
package handler
