package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/pkg/logger"
)

// Publisher wraps a Kafka sync producer for purchase-intent events
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishCartItemAdded publishes a cart-item-added event with tracing
func (p *Publisher) PublishCartItemAdded(ctx context.Context, event CartItemAddedEvent) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish.cart_item_added",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicCartItemAdded),
			attribute.String("event.type", EventTypeCartItemAdded),
			attribute.String("product.id", event.ProductID),
			attribute.Int("product.quantity", event.Quantity),
		),
	)
	defer span.End()

	if event.EventID == "" {
		event.EventID = fmt.Sprintf("evt_%d", time.Now().UnixNano())
	}
	event.EventType = EventTypeCartItemAdded
	event.Timestamp = time.Now()

	return p.publish(ctx, span, TopicCartItemAdded, event.ProductID, event.EventType, event.EventID, event)
}

// PublishCheckoutStarted publishes a checkout-started event with tracing
func (p *Publisher) PublishCheckoutStarted(ctx context.Context, event CheckoutStartedEvent) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish.checkout_started",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicCheckoutStarted),
			attribute.String("event.type", EventTypeCheckoutStarted),
			attribute.String("product.id", event.ProductID),
			attribute.Int64("order.total", event.Total),
		),
	)
	defer span.End()

	if event.EventID == "" {
		event.EventID = fmt.Sprintf("evt_%d", time.Now().UnixNano())
	}
	event.EventType = EventTypeCheckoutStarted
	event.Timestamp = time.Now()

	return p.publish(ctx, span, TopicCheckoutStarted, event.ProductID, event.EventType, event.EventID, event)
}

func (p *Publisher) publish(ctx context.Context, span trace.Span, topic, key, eventType, eventID string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{
			Key:   []byte("event_type"),
			Value: []byte(eventType),
		},
		{
			Key:   []byte("event_id"),
			Value: []byte(eventID),
		},
	}
	for key, value := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		return fmt.Errorf("failed to send message to topic %s: %w", topic, err)
	}

	span.SetAttributes(
		attribute.Int64("messaging.kafka.partition", int64(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)

	logger.Info(ctx).
		Str("topic", topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// Close closes the underlying producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
