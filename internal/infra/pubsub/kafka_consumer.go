package pubsub

import (
	"context"
	"strconv"

	"storefront/internal/errors"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

var consumerTracer = otel.Tracer("storefront/pubsub/kafka-consumer")

// MessageHandler processes one message payload. Returning an error stops consumption
// without committing the offset, so the message is redelivered after restart.
type MessageHandler func(ctx context.Context, msg kafka.Message) error

// messageReader is the subset of *kafka.Reader the consumer needs.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads a topic as part of a consumer group and commits after each handled message.
type Consumer struct {
	reader  messageReader
	topic   string
	groupID string
}

// NewConsumer creates a group consumer for topic.
func NewConsumer(brokers []string, topic, groupID string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
		topic:   topic,
		groupID: groupID,
	}
}

// Consume blocks until ctx is cancelled or the handler fails.
func (c *Consumer) Consume(ctx context.Context, handler MessageHandler) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		if err := c.processMessage(ctx, msg, handler); err != nil {
			return err
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return errors.Wrap(err, "failed to commit kafka offset")
		}
	}
}

func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message, handler MessageHandler) error {
	parentCtx := otel.GetTextMapPropagator().Extract(ctx, NewMessageCarrier(&msg))

	spanCtx, span := consumerTracer.Start(parentCtx, "process "+c.topic,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingOperationName("process"),
			semconv.MessagingOperationTypeDeliver,
			semconv.MessagingDestinationName(c.topic),
			semconv.MessagingKafkaConsumerGroup(c.groupID),
			semconv.MessagingKafkaMessageOffset(int(msg.Offset)),
			semconv.MessagingDestinationPartitionID(strconv.Itoa(msg.Partition)),
			semconv.MessagingKafkaMessageKey(string(msg.Key)),
		),
	)
	defer span.End()

	if err := handler(spanCtx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	return nil
}

func (c *Consumer) Close() error {
	return errors.WithStack(c.reader.Close())
}

// Header returns the value of a message header, or "" when absent.
func Header(msg kafka.Message, key string) string {
	return NewMessageCarrier(&msg).Get(key)
}
