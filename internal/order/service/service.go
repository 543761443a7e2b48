package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/order/repository"
)

// ErrEmptyCart возвращается при оформлении заказа с пустой корзиной
var ErrEmptyCart = errors.New("cart is empty")

// ErrInvalidStatus возвращается при неизвестном статусе заказа
var ErrInvalidStatus = errors.New("invalid order status")

// ErrNotCancellable возвращается при отмене заказа в финальном статусе
var ErrNotCancellable = errors.New("order cannot be cancelled")

// ErrValidation оборачивает ошибки валидации входных данных
var ErrValidation = errors.New("validation failed")

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=CartReader --dir=. --output=./mocks --outpkg=mocks

// CartReader определяет чтение корзины, достаточное для оформления заказа
type CartReader interface {
	GetCartItems(ctx context.Context, userID string) ([]repository.OrderItem, error)
	CalculateTotal(ctx context.Context, userID string) (float64, error)
}

// OrderCreatedEvent описывает событие оформленного заказа
type OrderCreatedEvent struct {
	OrderID    string
	UserID     string
	TotalPrice float64
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=OrderEventPublisher --dir=. --output=./mocks --outpkg=mocks

// OrderEventPublisher публикует события заказа для downstream-подписчиков
// (notification service)
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error
}

// Service содержит бизнес-логику оформления заказов.
//
// CreateOrder читает корзину через Cart Service, сохраняет заказ и снимает
// документ корзины напрямую в общем store — без возврата остатков,
// резерв переходит к заказу. Чтение и снятие не атомарны: добавление
// в корзину между ними теряется из заказа, но остаток при этом
// не утекает — DropCart не трогает каталог.
type Service struct {
	logger    *zap.Logger
	orders    repository.OrderRepository
	checkout  repository.CheckoutStore
	cart      CartReader
	publisher OrderEventPublisher
}

// NewService создаёт новый экземпляр Service
func NewService(
	logger *zap.Logger,
	orders repository.OrderRepository,
	checkout repository.CheckoutStore,
	cart CartReader,
	publisher OrderEventPublisher,
) *Service {
	return &Service{
		logger:    logger,
		orders:    orders,
		checkout:  checkout,
		cart:      cart,
		publisher: publisher,
	}
}

// CreateOrder оформляет заказ из текущей корзины пользователя
// Возвращает ErrEmptyCart, если корзина пуста или отсутствует
func (s *Service) CreateOrder(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: user_id is required", ErrValidation)
	}

	items, err := s.cart.GetCartItems(ctx, userID)
	if err != nil {
		s.logger.Error("failed to read cart", zap.Error(err), zap.String("user_id", userID))
		return "", fmt.Errorf("read cart: %w", err)
	}
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	total, err := s.cart.CalculateTotal(ctx, userID)
	if err != nil {
		s.logger.Error("failed to calculate cart total", zap.Error(err), zap.String("user_id", userID))
		return "", fmt.Errorf("calculate total: %w", err)
	}

	orderID, err := s.orders.Create(ctx, repository.Order{
		UserID:     userID,
		Items:      items,
		TotalPrice: total,
		Status:     repository.StatusPlaced,
	})
	if err != nil {
		s.logger.Error("failed to create order", zap.Error(err), zap.String("user_id", userID))
		return "", fmt.Errorf("create order: %w", err)
	}

	// Заказ сохранён — корзину снимаем, резерв остаётся за заказом.
	// Неудача здесь оставляет устаревшую корзину, но заказ действителен
	if err := s.checkout.DropCart(ctx, userID); err != nil {
		s.logger.Error("failed to drop cart after checkout, cart is stale",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("order_id", orderID),
		)
	}

	// Событие best-effort: заказ оформлен независимо от доставки уведомления
	if err := s.publisher.PublishOrderCreated(ctx, OrderCreatedEvent{
		OrderID:    orderID,
		UserID:     userID,
		TotalPrice: total,
	}); err != nil {
		s.logger.Error("failed to publish order created event",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
	}

	s.logger.Info("order created",
		zap.String("order_id", orderID),
		zap.String("user_id", userID),
		zap.Float64("total_price", total),
		zap.Int("items", len(items)),
	)

	return orderID, nil
}

// GetOrder возвращает заказ по ID
// Возвращает repository.ErrOrderNotFound, если заказа нет
func (s *Service) GetOrder(ctx context.Context, orderID string) (repository.Order, error) {
	if orderID == "" {
		return repository.Order{}, fmt.Errorf("%w: order_id is required", ErrValidation)
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return repository.Order{}, err
		}
		s.logger.Error("failed to get order", zap.Error(err))
		return repository.Order{}, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// GetOrdersByUser возвращает все заказы пользователя
func (s *Service) GetOrdersByUser(ctx context.Context, userID string) ([]repository.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}

	orders, err := s.orders.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list orders", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// CancelOrder отменяет заказ и возвращает его позиции в остатки каталога.
// Отменить можно только заказ в статусе placed
func (s *Service) CancelOrder(ctx context.Context, orderID string) error {
	if orderID == "" {
		return fmt.Errorf("%w: order_id is required", ErrValidation)
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return err
		}
		s.logger.Error("failed to get order", zap.Error(err))
		return fmt.Errorf("get order: %w", err)
	}

	if order.Status != repository.StatusPlaced {
		return fmt.Errorf("%w: status is %s", ErrNotCancellable, order.Status)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, repository.StatusCancelled); err != nil {
		s.logger.Error("failed to cancel order", zap.Error(err), zap.String("order_id", orderID))
		return fmt.Errorf("cancel order: %w", err)
	}

	// Резерв заказа возвращается в каталог. Неудача оставляет расхождение
	// остатка — фиксируем в логе для сверки
	if err := s.checkout.RestockItems(ctx, order.Items); err != nil {
		s.logger.Error("CRITICAL: restock after cancellation failed, manual reconciliation required",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
	}

	s.logger.Info("order cancelled", zap.String("order_id", orderID))
	return nil
}

// UpdateStatus устанавливает новый статус заказа
// Возвращает ErrInvalidStatus при неизвестном статусе
func (s *Service) UpdateStatus(ctx context.Context, orderID, status string) error {
	if orderID == "" {
		return fmt.Errorf("%w: order_id is required", ErrValidation)
	}
	if !repository.ValidStatus(status) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return err
		}
		s.logger.Error("failed to update order status", zap.Error(err))
		return fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("status", status),
	)
	return nil
}

// DeleteOrder удаляет заказ
// Возвращает repository.ErrOrderNotFound, если заказа нет
func (s *Service) DeleteOrder(ctx context.Context, orderID string) error {
	if orderID == "" {
		return fmt.Errorf("%w: order_id is required", ErrValidation)
	}

	if err := s.orders.Delete(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return err
		}
		s.logger.Error("failed to delete order", zap.Error(err))
		return fmt.Errorf("delete order: %w", err)
	}

	s.logger.Info("order deleted", zap.String("order_id", orderID))
	return nil
}
