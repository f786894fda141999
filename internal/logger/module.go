package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/polkiloo/kicktracker/internal/config"
)

// Module wires slog logger for dependency injection.
var Module = fx.Provide(newLogger)

type loggerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
}

func newLogger(p loggerParams) *slog.Logger {
	var out io.Writer = os.Stdout
	if p.Config.LogFile != "" {
		file := NewRotatingFile(p.Config.LogFile)
		out = io.MultiWriter(os.Stdout, file)
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error { return file.Close() },
		})
	}
	return New(p.Config.LogLevel, out)
}
