package repository

import (
	"context"
	"errors"
	"time"
)

// Статусы жизненного цикла заказа
const (
	StatusPlaced    = "placed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// ValidStatus проверяет, что статус принадлежит известному набору
func ValidStatus(status string) bool {
	switch status {
	case StatusPlaced, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderItem представляет одну позицию заказа
type OrderItem struct {
	ProductID string
	Quantity  int32
}

// Order представляет заказ пользователя
type Order struct {
	ID         string
	UserID     string
	Items      []OrderItem
	TotalPrice float64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ErrOrderNotFound возвращается, когда заказ не найден
var ErrOrderNotFound = errors.New("order not found")

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=OrderRepository --dir=. --output=./mocks --outpkg=mocks

// OrderRepository определяет интерфейс для работы с хранилищем заказов
type OrderRepository interface {
	// Create сохраняет новый заказ и возвращает его ID
	Create(ctx context.Context, order Order) (string, error)

	// GetByID получает заказ по ID
	// Возвращает ErrOrderNotFound, если заказа нет
	GetByID(ctx context.Context, orderID string) (Order, error)

	// GetByUserID возвращает все заказы пользователя, новые первыми
	GetByUserID(ctx context.Context, userID string) ([]Order, error)

	// UpdateStatus устанавливает новый статус заказа
	// Возвращает ErrOrderNotFound, если заказа нет
	UpdateStatus(ctx context.Context, orderID, status string) error

	// Delete удаляет заказ
	// Возвращает ErrOrderNotFound, если заказа нет
	Delete(ctx context.Context, orderID string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=CheckoutStore --dir=. --output=./mocks --outpkg=mocks

// CheckoutStore определяет прямой доступ заказа к общему документному store:
// снятие корзины после оформления и возврат остатков при отмене.
// Корзина снимается без возврата остатков — резерв переходит к заказу,
// поэтому ClearCart RPC корзины здесь не подходит.
type CheckoutStore interface {
	// DropCart удаляет документ корзины пользователя без возврата остатков.
	// Отсутствие корзины не ошибка
	DropCart(ctx context.Context, userID string) error

	// RestockItems возвращает количества позиций в остатки каталога
	// (используется при отмене заказа)
	RestockItems(ctx context.Context, items []OrderItem) error
}
