package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

var producerTracer = otel.Tracer("storefront/pubsub/kafka")

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a Kafka topic. Messages are keyed by
// order id so the events of one order land on one partition.
type kafkaPublisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on the given brokers.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return &kafkaPublisher{
		topic:  topic,
		logger: logger,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
			RequiredAcks:           kafka.RequireAll,
		},
	}
}

func (p *kafkaPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEventMessage) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	key := event.OrderID.String()
	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}
	for name, value := range messageAttributes(event) {
		msg.Headers = append(msg.Headers, kafka.Header{Key: name, Value: []byte(value)})
	}

	ctx, span := producerTracer.Start(ctx, "send "+p.topic,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingOperationName("send"),
			semconv.MessagingOperationTypePublish,
			semconv.MessagingDestinationName(p.topic),
			semconv.MessagingKafkaMessageKey(key),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, NewMessageCarrier(&msg))

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return errors.Wrap(err, "failed to write kafka message")
	}

	p.logger.Debug("[Kafka] Event published",
		slog.String("event_id", event.EventID.String()),
		slog.String("topic", p.topic),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
