package logger

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New creates a JSON slog.Logger writing to w at the given level.
func New(level slog.Level, w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// NewRotatingFile returns a size-rotated log file writer.
func NewRotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
}
