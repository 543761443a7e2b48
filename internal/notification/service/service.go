package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/notification/repository"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/notification/sms"
)

// ErrValidation оборачивает ошибки валидации входных данных
var ErrValidation = errors.New("validation failed")

// OrderCreatedEvent описывает событие оформленного заказа из Kafka
type OrderCreatedEvent struct {
	EventID      string
	EventType    string
	EventVersion int
	OccurredAt   time.Time
	OrderID      string
	UserID       string
	TotalPrice   float64
}

// NotificationService содержит бизнес-логику отправки SMS-уведомлений
type NotificationService struct {
	logger *zap.Logger
	phones repository.PhoneDirectory
	sender sms.Sender
}

// NewNotificationService создаёт новый экземпляр NotificationService
func NewNotificationService(
	logger *zap.Logger,
	phones repository.PhoneDirectory,
	sender sms.Sender,
) *NotificationService {
	return &NotificationService{
		logger: logger,
		phones: phones,
		sender: sender,
	}
}

// SendNotification отправляет SMS пользователю.
// Возвращает repository.ErrUserNotFound / repository.ErrNoPhoneNumber,
// если отправка невозможна
func (s *NotificationService) SendNotification(ctx context.Context, userID, message string) error {
	if userID == "" {
		return fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if message == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}

	phone, err := s.phones.GetPhoneNumber(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) || errors.Is(err, repository.ErrNoPhoneNumber) {
			return err
		}
		s.logger.Error("failed to look up phone number", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("lookup phone: %w", err)
	}

	if err := s.sender.Send(ctx, phone, message); err != nil {
		s.logger.Error("failed to send sms",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return fmt.Errorf("send sms: %w", err)
	}

	s.logger.Info("sms sent", zap.String("user_id", userID))
	return nil
}

// HandleOrderCreated обрабатывает событие оформленного заказа:
// отправляет пользователю SMS с подтверждением
func (s *NotificationService) HandleOrderCreated(ctx context.Context, event OrderCreatedEvent) error {
	s.logger.Info("handling order created event",
		zap.String("event_id", event.EventID),
		zap.String("order_id", event.OrderID),
		zap.String("user_id", event.UserID),
		zap.Float64("total_price", event.TotalPrice),
	)

	message := fmt.Sprintf("Your order %s has been placed. Total: $%.2f", event.OrderID, event.TotalPrice)
	return s.SendNotification(ctx, event.UserID, message)
}
