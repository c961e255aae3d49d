package worker

import (
	"context"
	"log/slog"
	"sync"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/errors"
	"storefront/internal/infra/pubsub"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

// eventConsumer is the subset of *pubsub.Consumer the delivery needs.
type eventConsumer interface {
	Consume(ctx context.Context, handler pubsub.MessageHandler) error
	Close() error
}

type kafkaDelivery struct {
	consumer  eventConsumer
	processor *handler.EventProcessor
	logger    *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// ConsumerParams holds dependencies for the Kafka order event consumer
type ConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.EventProcessor
}

// NewConsumer creates the Kafka delivery for the order timeline. Without configured
// brokers it serves nothing and returns immediately.
func NewConsumer(params ConsumerParams) (delivery.Delivery, error) {
	d := &kafkaDelivery{
		processor: params.Processor,
		logger:    params.Logger,
	}

	if params.Cfg.Kafka.Enabled() {
		d.consumer = pubsub.NewConsumer(params.Cfg.Kafka.Brokers, params.Cfg.Kafka.Topic, params.Cfg.Kafka.GroupID)
		params.Lc.Append(fx.Hook{
			OnStop: d.stop,
		})
	}

	return d, nil
}

// Serve consumes order events until stopped. A storage failure ends consumption
// with the offset uncommitted.
func (d *kafkaDelivery) Serve(ctx context.Context) error {
	if d.consumer == nil {
		d.logger.Info("Kafka brokers not configured, order event consumer disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	d.mu.Lock()
	d.cancel = cancel
	d.mu.Unlock()
	defer cancel()

	d.logger.Info("Starting Kafka order event consumer")

	err := d.consumer.Consume(ctx, d.handle)
	if ctx.Err() != nil {
		return nil
	}

	return errors.Wrap(err, "order event consumer stopped")
}

func (d *kafkaDelivery) handle(ctx context.Context, msg kafka.Message) error {
	err := d.processor.Process(ctx, msg.Value, pubsub.Header(msg, "request_id"))
	if errors.Is(err, handler.ErrMalformedEvent) {
		d.logger.Error("[Worker] Skipping malformed order event",
			slog.Int("partition", msg.Partition),
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)

		return nil
	}

	return err
}

func (d *kafkaDelivery) stop(_ context.Context) error {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
	}
	d.mu.Unlock()

	d.logger.Info("Shutting down Kafka order event consumer")

	return d.consumer.Close()
}
