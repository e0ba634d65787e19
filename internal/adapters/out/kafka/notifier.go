package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"

	"github.com/IBM/sarama"
)

// Notifier implements ports.Notifier over a Kafka sync producer.
// Events are keyed by order id, so all events of one order land in the
// same partition and keep their relative order.
type Notifier struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewNotifier creates a Kafka-backed notifier. The producer is
// configured idempotent with acks from all in-sync replicas: delivery
// to the broker is reliable even though callers treat the publish
// itself as best-effort.
func NewNotifier(brokers []string, topic string, logger *slog.Logger) (*Notifier, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &Notifier{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_notifier"),
	}, nil
}

// OrderPlaced publishes an order.placed event.
func (n *Notifier) OrderPlaced(ctx context.Context, buyerID, orderID kernel.UUID) error {
	event := OrderPlacedEvent{
		EventType: EventTypeOrderPlaced,
		OrderID:   orderID.String(),
		BuyerID:   buyerID.String(),
		Timestamp: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     n.topic,
		Key:       sarama.StringEncoder(event.OrderID),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: event.Timestamp,
	}

	partition, offset, err := n.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	n.logger.DebugContext(ctx, "order event published",
		"topic", n.topic,
		"order_id", event.OrderID,
		"partition", partition,
		"offset", offset)

	return nil
}

// Close shuts the underlying producer down.
func (n *Notifier) Close() error {
	if err := n.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}
