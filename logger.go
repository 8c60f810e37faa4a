package voxelpal

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with voxelpal-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDiameter adds a diameter field to the logger.
func (l *Logger) WithDiameter(diameter int) *Logger {
	return &Logger{
		Logger: l.Logger.With("diameter", diameter),
	}
}

// LogEncode logs an encode operation.
func (l *Logger) LogEncode(cells int, s Stats, err error) {
	if err != nil {
		l.Error("encode failed",
			"cells", cells,
			"error", err,
		)
		return
	}
	l.Info("encode completed",
		"cells", cells,
		"state", s.State.String(),
		"palette_size", s.PaletteSize,
		"bit_width", s.BitWidth,
		"words", s.Words,
	)
}

// LogDecode logs a decode operation.
func (l *Logger) LogDecode(cells int, err error) {
	if err != nil {
		l.Error("decode failed",
			"error", err,
		)
	} else {
		l.Debug("decode completed",
			"cells", cells,
		)
	}
}

// LogSet logs a single-cell write.
func (l *Logger) LogSet(x, y, z uint8, value uint16, err error) {
	if err != nil {
		l.Warn("set rejected",
			"x", x, "y", y, "z", z,
			"value", value,
			"error", err,
		)
	} else {
		l.Debug("set completed",
			"x", x, "y", y, "z", z,
			"value", value,
		)
	}
}
