package components

import (
	"context"
	"log/slog"

	"cellar-shop/internal/handler"
	"cellar-shop/internal/infra/carrier"
	"cellar-shop/internal/infra/carrier/ups"
	"cellar-shop/internal/infra/events"
	"cellar-shop/internal/infra/mailer"
	"cellar-shop/internal/infra/metrics"
	"cellar-shop/internal/infra/outbox"
	"cellar-shop/internal/infra/tracking"
	"cellar-shop/internal/pkg/config"
	"cellar-shop/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integration",
	fx.Provide(
		metrics.New,
		func(m *metrics.Metrics) handler.Telemetry { return m },
		func(m *metrics.Metrics) ups.Recorder { return m },
		func(m *metrics.Metrics) outbox.Recorder { return m },
		func(m *metrics.Metrics) tracking.Recorder { return m },
		NewCarrier,
		NewMailer,
		NewPublisher,
	),
)

func NewCarrier(cfg config.Config, cache redis.Cmdable, recorder ups.Recorder, logger *slog.Logger) commands.Carrier {
	if !cfg.Carrier.Enabled() {
		logger.Warn("Carrier credentials not configured; shipments are disabled", "carrier", cfg.Carrier.Name)
		return carrier.NewDisabled(cfg.Carrier.Name)
	}
	return ups.NewClient(cfg.Carrier, cache, recorder)
}

func NewMailer(cfg config.Config, logger *slog.Logger) (outbox.Mailer, error) {
	if cfg.Mail.SMTPHost == "" {
		logger.Warn("SMTP_HOST not set; emails are logged instead of sent")
		return mailer.NewLogMailer(), nil
	}
	return mailer.NewSMTPMailer(cfg.Mail)
}

type eventPublisher interface {
	outbox.Publisher
	Close() error
}

func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) outbox.Publisher {
	var p eventPublisher
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Warn("KAFKA_BROKERS not set; order events are logged instead of published")
		p = events.NewLogPublisher()
	} else {
		p = events.NewKafkaPublisher(cfg.Kafka)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})

	return p
}
