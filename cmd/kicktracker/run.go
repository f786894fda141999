package main

import (
	"context"
	"fmt"
	"os"
)

// lifecycle is the subset of *fx.App used to drive the service.
type lifecycle interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Done() <-chan os.Signal
}

// run starts the app and blocks until ctx is cancelled or fx asks to shut down.
func run(ctx context.Context, app lifecycle) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start application: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		return fmt.Errorf("stop application: %w", err)
	}
	return nil
}
