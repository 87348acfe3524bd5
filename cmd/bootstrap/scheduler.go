package bootstrap

import (
	"context"

	"auction-engine/internal/pkg/clock"
	"auction-engine/internal/pkg/config"
	"auction-engine/internal/usecase/commands"
	"auction-engine/internal/worker"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(startScheduler),
)

func NewScheduler(
	repo commands.AuctionRepository,
	resolver *commands.WinnerResolver,
	broadcaster commands.EventBroadcaster,
	notifier commands.NotificationDispatcher,
	clk clock.Clock,
	cfg config.Config,
) *worker.Scheduler {
	return worker.NewScheduler(repo, resolver, broadcaster, notifier, clk, cfg.Auction.TickInterval)
}

func startScheduler(lc fx.Lifecycle, scheduler *worker.Scheduler) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				scheduler.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
