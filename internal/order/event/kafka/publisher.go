package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/order/service"
)

// OrderEventPublisher реализует service.OrderEventPublisher используя Kafka
type OrderEventPublisher struct {
	logger *zap.Logger
	writer *kafka.Writer
	topic  string
}

// NewOrderEventPublisher создаёт новый Kafka publisher для событий заказа
func NewOrderEventPublisher(logger *zap.Logger, brokers []string, topic string) *OrderEventPublisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &OrderEventPublisher{
		logger: logger,
		writer: writer,
		topic:  topic,
	}
}

// Close закрывает Kafka writer
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

// PublishOrderCreated публикует событие оформленного заказа в Kafka.
// Ключ сообщения — user_id: события одного пользователя попадают
// в одну партицию и обрабатываются по порядку
func (p *OrderEventPublisher) PublishOrderCreated(ctx context.Context, event service.OrderCreatedEvent) error {
	payload := map[string]interface{}{
		"event_id":      uuid.New().String(),
		"event_type":    "order.created",
		"event_version": 1,
		"occurred_at":   time.Now().UTC().Format(time.RFC3339),
		"order_id":      event.OrderID,
		"user_id":       event.UserID,
		"total_price":   event.TotalPrice,
	}

	valueBytes, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to marshal order created event",
			zap.Error(err),
			zap.String("order_id", event.OrderID),
		)
		return err
	}

	message := kafka.Message{
		Key:   []byte(event.UserID),
		Value: valueBytes,
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		p.logger.Error("failed to publish order created event",
			zap.Error(err),
			zap.String("topic", p.topic),
			zap.String("order_id", event.OrderID),
			zap.String("user_id", event.UserID),
		)
		return err
	}

	p.logger.Info("order created event published",
		zap.String("topic", p.topic),
		zap.String("order_id", event.OrderID),
		zap.String("user_id", event.UserID),
		zap.Float64("total_price", event.TotalPrice),
	)

	return nil
}
