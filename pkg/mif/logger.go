package mif

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with layer-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithLayer adds the layer base path to the logger.
func (l *Logger) WithLayer(base string) *Logger {
	return &Logger{
		Logger: l.Logger.With("layer", base),
	}
}

// LogLoad logs the outcome of loading a layer.
func (l *Logger) LogLoad(base string, records int, err error) {
	if err != nil {
		l.Error("load failed",
			"layer", base,
			"records_read", records,
			"error", err,
		)
	} else {
		l.Info("layer loaded",
			"layer", base,
			"records", records,
		)
	}
}

// LogDump logs the outcome of writing a layer.
func (l *Logger) LogDump(base string, records int, err error) {
	if err != nil {
		l.Error("dump failed",
			"layer", base,
			"records_written", records,
			"error", err,
		)
	} else {
		l.Info("layer written",
			"layer", base,
			"records", records,
		)
	}
}

// LogRecordError logs a record that could not be decoded or encoded.
func (l *Logger) LogRecordError(index int, err error) {
	l.Debug("record failed",
		"record", index,
		"error", err,
	)
}

func loggerOrNoop(l *Logger) *Logger {
	if l == nil {
		return NoopLogger()
	}
	return l
}
