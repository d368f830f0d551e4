package components

import (
	"context"

	"probook/internal/pkg/config"
	"probook/internal/usecase/commands"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewIdempotencyJanitor,
	),
	fx.Invoke(startJanitor),
)

func NewIdempotencyJanitor(repo commands.IdempotencyRepository, cfg config.Config) *commands.IdempotencyJanitor {
	return commands.NewIdempotencyJanitor(repo, cfg.Janitor.Interval)
}

func startJanitor(lc fx.Lifecycle, janitor *commands.IdempotencyJanitor) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go janitor.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
