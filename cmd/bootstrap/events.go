package bootstrap

import (
	"context"
	"log/slog"

	"booking-core/internal/infra/events"
	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Invoke(
		StartOutboxRelay,
	),
)

func StartOutboxRelay(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork) {
	if len(cfg.Kafka.Brokers) == 0 {
		slog.Info("no kafka brokers configured; booking events stay in the outbox")
		return
	}

	publisher := events.NewKafkaPublisher(cfg.Kafka)
	relay := events.NewRelay(uow, publisher, cfg.Kafka.PollInterval, cfg.Kafka.BatchSize)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			slog.Info("outbox relay started", "topic", cfg.Kafka.Topic, "interval", cfg.Kafka.PollInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			relay.Stop()
			return publisher.Close()
		},
	})
}
