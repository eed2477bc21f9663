package tracking

import (
	"context"
	"log/slog"
	"time"

	"cellar-shop/internal/pkg/errs"
	"cellar-shop/internal/usecase/commands"
	"cellar-shop/internal/usecase/queries"
)

const DefaultCallTimeout = 10 * time.Second

type TrackedOrderLister interface {
	ListCarrierTracked(ctx context.Context, limit int) ([]queries.CarrierTrackedOrder, error)
}

type StatusIngester interface {
	IngestCarrierStatus(ctx context.Context, update commands.CarrierStatusUpdate) (bool, error)
}

type Recorder interface {
	TrackingPoll(outcome string)
}

type Options struct {
	Interval    time.Duration
	BatchSize   int
	CallTimeout time.Duration
}

// Poller asks the carrier about every open shipment and feeds the answers
// through the same path as the webhook.
type Poller struct {
	orders   TrackedOrderLister
	carrier  commands.Carrier
	ingester StatusIngester
	recorder Recorder
	opts     Options
}

func NewPoller(orders TrackedOrderLister, carrier commands.Carrier, ingester StatusIngester, recorder Recorder, opts Options) *Poller {
	if opts.Interval <= 0 {
		opts.Interval = 15 * time.Minute
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 50
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = DefaultCallTimeout
	}
	return &Poller{
		orders:   orders,
		carrier:  carrier,
		ingester: ingester,
		recorder: recorder,
		opts:     opts,
	}
}

func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.opts.Interval)
	defer ticker.Stop()

	slog.Info("tracking poller started", slog.Duration("interval", p.opts.Interval))
	for {
		select {
		case <-ticker.C:
			p.PollOnce(ctx)
		case <-ctx.Done():
			slog.Info("tracking poller stopped")
			return
		}
	}
}

// PollOnce returns how many orders changed status.
func (p *Poller) PollOnce(ctx context.Context) int {
	orders, err := p.orders.ListCarrierTracked(ctx, p.opts.BatchSize)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list carrier tracked orders", slog.String("error", err.Error()))
		return 0
	}

	applied := 0
	for _, o := range orders {
		if ctx.Err() != nil {
			break
		}
		if p.pollOne(ctx, o) {
			applied++
		}
	}
	if applied > 0 {
		slog.InfoContext(ctx, "tracking poll applied updates",
			slog.Int("checked", len(orders)),
			slog.Int("applied", applied))
	}
	return applied
}

func (p *Poller) pollOne(ctx context.Context, o queries.CarrierTrackedOrder) bool {
	callCtx, cancel := context.WithTimeout(ctx, p.opts.CallTimeout)
	status, err := p.carrier.TrackShipment(callCtx, o.TrackingNumber)
	cancel()
	if err != nil {
		p.record("carrier_error")
		slog.WarnContext(ctx, "carrier tracking lookup failed",
			slog.String("order_id", o.OrderNumber),
			slog.String("tracking_number", o.TrackingNumber),
			slog.Bool("retryable", errs.IsRetryable(err)),
			slog.String("error", err.Error()))
		return false
	}

	applied, err := p.ingester.IngestCarrierStatus(ctx, commands.CarrierStatusUpdate{
		TrackingNumber: o.TrackingNumber,
		Code:           status.Code,
		Description:    status.Description,
		OccurredAt:     status.OccurredAt,
	})
	if err != nil {
		p.record("ingest_error")
		slog.ErrorContext(ctx, "failed to apply carrier status",
			slog.String("order_id", o.OrderNumber),
			slog.String("tracking_number", o.TrackingNumber),
			slog.String("error", err.Error()))
		return false
	}
	if applied {
		p.record("applied")
	} else {
		p.record("unchanged")
	}
	return applied
}

func (p *Poller) record(outcome string) {
	if p.recorder != nil {
		p.recorder.TrackingPoll(outcome)
	}
}
