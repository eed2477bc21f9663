package components

import (
	"context"
	"log/slog"

	"cellar-shop/internal/infra/outbox"
	"cellar-shop/internal/infra/tracking"
	"cellar-shop/internal/pkg/clock"
	"cellar-shop/internal/pkg/config"
	"cellar-shop/internal/usecase/commands"
	"cellar-shop/internal/usecase/queries"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewOutboxWorker,
		NewTrackingPoller,
	),
	fx.Invoke(runWorkers),
)

func NewOutboxWorker(
	jobs outbox.JobStore,
	m outbox.Mailer,
	p outbox.Publisher,
	confirmation commands.ConfirmationRecorder,
	recorder outbox.Recorder,
	clk clock.Clock,
	cfg config.Config,
) *outbox.Worker {
	return outbox.NewWorker(jobs, m, p, confirmation, recorder, clk, outbox.Options{
		Interval:  cfg.Worker.OutboxInterval,
		BatchSize: cfg.Worker.OutboxBatchSize,
	})
}

// NewTrackingPoller returns nil when no carrier is configured.
func NewTrackingPoller(
	orders queries.OrderQueries,
	carrier commands.Carrier,
	ingester commands.OrderCommands,
	recorder tracking.Recorder,
	cfg config.Config,
) *tracking.Poller {
	if !cfg.Carrier.Enabled() {
		return nil
	}
	return tracking.NewPoller(orders, carrier, ingester, recorder, tracking.Options{
		Interval:    cfg.Carrier.PollInterval,
		BatchSize:   int(cfg.Carrier.PollBatchSize),
		CallTimeout: cfg.Carrier.Timeout,
	})
}

func runWorkers(lc fx.Lifecycle, worker *outbox.Worker, poller *tracking.Poller, logger *slog.Logger) {
	var (
		cancel context.CancelFunc
		group  *errgroup.Group
	)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			group, ctx = errgroup.WithContext(ctx)

			group.Go(func() error {
				worker.Run(ctx)
				return nil
			})
			if poller != nil {
				group.Go(func() error {
					poller.Run(ctx)
					return nil
				})
			}
			logger.Info("Background workers started", "tracking_poller", poller != nil)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			done := make(chan error, 1)
			go func() { done <- group.Wait() }()
			select {
			case err := <-done:
				logger.Info("Background workers stopped")
				return err
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
