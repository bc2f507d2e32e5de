// Package kafka publishes order lifecycle events for downstream consumers
// (notifications, analytics). Publishing is best effort: events go out after
// the database transaction commits, and a broker failure is logged, never
// propagated back into the business operation.
package kafka

import (
	"encoding/json"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/IBM/sarama"
)

// orderChangedEvent is the wire representation of an order status change.
type orderChangedEvent struct {
	OrderID    string  `json:"order_id"`
	ClientID   string  `json:"client_id"`
	CourierID  *string `json:"courier_id,omitempty"`
	Status     string  `json:"status"`
	TotalPrice string  `json:"total_price"`
	OccurredAt string  `json:"occurred_at"`
}

// OrderProducer publishes order status changes to a Kafka topic using a
// synchronous producer, so a returned nil means the broker acknowledged the
// event.
type OrderProducer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

var _ ports.OrderEventPublisher = &OrderProducer{}

// NewOrderProducer connects a synchronous producer to the given brokers.
func NewOrderProducer(brokers []string, topic string, logger *slog.Logger) (*OrderProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return &OrderProducer{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}, nil
}

// PublishOrderChanged sends the order's current state to the topic, keyed by
// order ID so all events for one order land on the same partition in order.
func (p *OrderProducer) PublishOrderChanged(aggregate *order.Order) error {
	event := orderChangedEvent{
		OrderID:    aggregate.ID().String(),
		ClientID:   aggregate.ClientID().String(),
		Status:     aggregate.Status().String(),
		TotalPrice: aggregate.TotalPrice().String(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if courierID := aggregate.Courier(); courierID != nil {
		s := courierID.String()
		event.CourierID = &s
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		p.logger.Error("failed to publish order event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err))
		return err
	}

	p.logger.Debug("order event published",
		slog.String("order_id", event.OrderID),
		slog.String("status", event.Status),
		slog.Int64("partition", int64(partition)),
		slog.Int64("offset", offset))
	return nil
}

// Close shuts down the underlying producer.
func (p *OrderProducer) Close() error {
	return p.producer.Close()
}

// NoopOrderProducer is used when no Kafka brokers are configured.
// It satisfies the publisher port and drops every event.
type NoopOrderProducer struct{}

var _ ports.OrderEventPublisher = NoopOrderProducer{}

// PublishOrderChanged drops the event.
func (NoopOrderProducer) PublishOrderChanged(_ *order.Order) error {
	return nil
}
