package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/notification/service"
)

// fetchErrorBackoff — пауза перед повторным FetchMessage после ошибки,
// чтобы постоянная ошибка (брокер недоступен) не крутила цикл вхолостую
const fetchErrorBackoff = time.Second

// messageReader покрывает используемую часть *kafka.Reader
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// OrderCreatedConsumer обрабатывает события оформления заказа из Kafka
type OrderCreatedConsumer struct {
	logger       *zap.Logger
	reader       messageReader
	service      *service.NotificationService
	maxAttempts  int
	backoffBase  time.Duration
	fetchBackoff time.Duration
}

// NewOrderCreatedConsumer создаёт новый consumer для событий оформления заказа
func NewOrderCreatedConsumer(
	logger *zap.Logger,
	brokers []string,
	groupID, topic string,
	svc *service.NotificationService,
	maxAttempts int,
	backoffBase time.Duration,
) *OrderCreatedConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6, // 10MB
	})

	return &OrderCreatedConsumer{
		logger:       logger,
		reader:       reader,
		service:      svc,
		maxAttempts:  maxAttempts,
		backoffBase:  backoffBase,
		fetchBackoff: fetchErrorBackoff,
	}
}

// Start запускает consumer и начинает обработку сообщений
// Использует at-least-once семантику: FetchMessage + CommitMessages после успешной обработки
func (c *OrderCreatedConsumer) Start(ctx context.Context) error {
	c.logger.Info("starting kafka consumer",
		zap.String("topic", c.reader.Config().Topic),
		zap.String("group_id", c.reader.Config().GroupID),
		zap.Int("max_retry_attempts", c.maxAttempts),
		zap.Duration("retry_backoff_base", c.backoffBase),
	)

	for {
		// FetchMessage вместо ReadMessage для ручного контроля commit
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			// Если контекст отменён, выходим
			if ctx.Err() != nil {
				c.logger.Info("consumer context cancelled, stopping")
				return nil
			}
			// FetchMessage возвращает io.EOF после закрытия reader
			if errors.Is(err, io.EOF) {
				c.logger.Info("kafka reader closed, stopping consumer")
				return nil
			}
			c.logger.Error("failed to fetch message from kafka",
				zap.Error(err),
			)
			select {
			case <-ctx.Done():
				c.logger.Info("consumer context cancelled, stopping")
				return nil
			case <-time.After(c.fetchBackoff):
			}
			continue
		}

		// Обрабатываем сообщение
		shouldCommit := c.processMessage(ctx, m)

		// Коммитим offset только после успешной обработки
		if shouldCommit {
			if err := c.reader.CommitMessages(ctx, m); err != nil {
				c.logger.Error("failed to commit message offset",
					zap.Error(err),
					zap.String("topic", m.Topic),
					zap.Int("partition", m.Partition),
					zap.Int64("offset", m.Offset),
				)
				continue
			}

			c.logger.Debug("message offset committed",
				zap.String("topic", m.Topic),
				zap.Int("partition", m.Partition),
				zap.Int64("offset", m.Offset),
			)
		}
	}
}

// processMessage обрабатывает одно сообщение из Kafka
// Возвращает true, если нужно закоммитить offset
func (c *OrderCreatedConsumer) processMessage(ctx context.Context, m kafka.Message) bool {
	// Парсим JSON сообщение
	var payload map[string]interface{}
	if err := json.Unmarshal(m.Value, &payload); err != nil {
		c.logger.Error("failed to unmarshal kafka message, skipping",
			zap.Error(err),
			zap.String("topic", m.Topic),
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset),
		)
		// Некорректный JSON не станет корректным при повторе - коммитим
		return true
	}

	event, err := parseOrderCreatedEvent(payload)
	if err != nil {
		c.logger.Error("failed to parse order created event, skipping",
			zap.Error(err),
			zap.String("topic", m.Topic),
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset),
		)
		return true
	}

	c.logger.Info("received order created event",
		zap.String("event_id", event.EventID),
		zap.String("order_id", event.OrderID),
		zap.String("user_id", event.UserID),
		zap.Int("partition", m.Partition),
		zap.Int64("offset", m.Offset),
	)

	// Пытаемся обработать событие с retry
	if !c.handleWithRetry(ctx, event) {
		// DLQ нет: после исчерпания retry пропускаем сообщение,
		// иначе одно poison-pill событие заблокирует партицию
		c.logger.Error("failed to handle order created event after all retries, skipping",
			zap.String("order_id", event.OrderID),
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset),
		)
		return true
	}

	c.logger.Info("order created event processed successfully",
		zap.String("order_id", event.OrderID),
		zap.Int("partition", m.Partition),
		zap.Int64("offset", m.Offset),
	)

	return true
}

// handleWithRetry обрабатывает событие с retry логикой
// Возвращает true при успешной обработке, false при исчерпании попыток
func (c *OrderCreatedConsumer) handleWithRetry(ctx context.Context, event service.OrderCreatedEvent) bool {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		// Вычисляем backoff: 1s, 2s, 4s (экспоненциально)
		if attempt > 1 {
			backoff := c.backoffBase * time.Duration(1<<uint(attempt-2))
			c.logger.Info("retrying order created event",
				zap.String("order_id", event.OrderID),
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", c.maxAttempts),
				zap.Duration("backoff", backoff),
			)

			select {
			case <-ctx.Done():
				return false
			case <-time.After(backoff):
				// Продолжаем retry
			}
		}

		err := c.service.HandleOrderCreated(ctx, event)
		if err == nil {
			if attempt > 1 {
				c.logger.Info("order created event processed successfully after retry",
					zap.String("order_id", event.OrderID),
					zap.Int("attempt", attempt),
				)
			}
			return true
		}

		lastErr = err
		c.logger.Warn("failed to handle order created event",
			zap.Error(err),
			zap.String("order_id", event.OrderID),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.maxAttempts),
		)
	}

	c.logger.Error("exhausted all retry attempts",
		zap.Error(lastErr),
		zap.String("order_id", event.OrderID),
		zap.Int("max_attempts", c.maxAttempts),
	)

	return false
}

// parseOrderCreatedEvent преобразует payload в OrderCreatedEvent
func parseOrderCreatedEvent(payload map[string]interface{}) (service.OrderCreatedEvent, error) {
	event := service.OrderCreatedEvent{}

	if v, ok := payload["event_id"].(string); ok {
		event.EventID = v
	}
	if v, ok := payload["event_type"].(string); ok {
		event.EventType = v
	}
	if v, ok := payload["event_version"].(float64); ok {
		event.EventVersion = int(v)
	}
	if v, ok := payload["occurred_at"].(string); ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			event.OccurredAt = t
		}
	}
	if v, ok := payload["order_id"].(string); ok && v != "" {
		event.OrderID = v
	} else {
		return event, fmt.Errorf("order_id is required")
	}
	if v, ok := payload["user_id"].(string); ok && v != "" {
		event.UserID = v
	} else {
		return event, fmt.Errorf("user_id is required")
	}
	if v, ok := payload["total_price"].(float64); ok {
		event.TotalPrice = v
	}

	return event, nil
}

// Close закрывает Kafka reader
func (c *OrderCreatedConsumer) Close() error {
	c.logger.Info("closing kafka consumer")
	return c.reader.Close()
}
