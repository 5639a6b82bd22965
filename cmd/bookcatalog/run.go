package main

import (
	"context"
	"fmt"

	"go.uber.org/fx"
)

// run starts app and blocks until ctx is cancelled or app requests shutdown.
func run(ctx context.Context, app *fx.App) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		return fmt.Errorf("failed to stop application: %w", err)
	}
	return nil
}
