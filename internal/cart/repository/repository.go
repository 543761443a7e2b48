package repository

import (
	"context"
	"errors"
)

// Product представляет снимок товара, достаточный для операций корзины.
// Полная модель каталога живёт в product service; корзине нужны только
// цена и остаток.
type Product struct {
	ID    string
	Name  string
	Price float64
	Stock int64
}

// CartItem представляет одну позицию корзины (товар + количество)
type CartItem struct {
	ProductID string
	Quantity  int32
}

// Cart представляет корзину пользователя (одна корзина на пользователя)
type Cart struct {
	UserID string
	Items  []CartItem
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ProductRepository --dir=. --output=./mocks --outpkg=mocks

// ProductRepository определяет интерфейс корзины к хранилищу каталога.
// Source of truth по остаткам; кэш никогда не авторитетен.
type ProductRepository interface {
	// FindProduct получает снимок товара по ID
	// Возвращает ErrProductNotFound, если товар не найден
	FindProduct(ctx context.Context, productID string) (Product, error)

	// AdjustStock атомарно изменяет остаток товара на delta
	// (delta < 0 — резервирование, delta > 0 — возврат остатка).
	// Отрицательная delta применяется только если stock >= -delta,
	// иначе возвращается ErrInsufficientStock. Остаток никогда
	// не уходит ниже нуля.
	AdjustStock(ctx context.Context, productID string, delta int64) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=CartRepository --dir=. --output=./mocks --outpkg=mocks

// CartRepository определяет интерфейс для работы с хранилищем корзин.
// Service слой зависит от этого интерфейса, а не от конкретной реализации
type CartRepository interface {
	// FindCart получает корзину пользователя
	// Возвращает ErrCartNotFound, если корзины нет
	FindCart(ctx context.Context, userID string) (Cart, error)

	// UpsertAppendItem добавляет позицию в корзину пользователя,
	// создавая корзину при её отсутствии
	UpsertAppendItem(ctx context.Context, userID string, item CartItem) error

	// RemoveItem удаляет из корзины все позиции с указанным товаром
	// Возвращает ErrCartNotFound / ErrItemNotFound
	RemoveItem(ctx context.Context, userID, productID string) error

	// SetItemQuantity устанавливает количество для первой позиции
	// с указанным товаром. Возвращает ErrItemNotFound, если позиции нет
	SetItemQuantity(ctx context.Context, userID, productID string, quantity int32) error

	// DeleteCart удаляет документ корзины целиком
	// Возвращает ErrCartNotFound, если корзины нет
	DeleteCart(ctx context.Context, userID string) error
}

// ErrProductNotFound возвращается, когда товар не найден в каталоге
var ErrProductNotFound = errors.New("product not found")

// ErrCartNotFound возвращается, когда у пользователя нет корзины
var ErrCartNotFound = errors.New("cart not found")

// ErrItemNotFound возвращается, когда товара нет среди позиций корзины
var ErrItemNotFound = errors.New("product not in cart")

// ErrInsufficientStock возвращается, когда остатка товара не хватает
// для запрошенного изменения
var ErrInsufficientStock = errors.New("not enough stock available")
