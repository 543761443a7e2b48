package repository

import (
	"context"
	"errors"
	"time"
)

// Product представляет полную модель товара каталога
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	Brand       string
	Stock       int64
	Attributes  map[string]string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListFilter описывает фильтрацию и пагинацию листинга каталога.
// Нулевые значения означают отсутствие фильтра
type ListFilter struct {
	Category string
	Brand    string
	MinPrice float64
	MaxPrice float64
	Page     int32
	Limit    int32
}

// ErrProductNotFound возвращается, когда товар не найден
var ErrProductNotFound = errors.New("product not found")

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ProductRepository --dir=. --output=./mocks --outpkg=mocks

// ProductRepository определяет интерфейс для работы с хранилищем каталога
type ProductRepository interface {
	// Create сохраняет новый товар и возвращает его ID
	Create(ctx context.Context, product Product) (string, error)

	// GetByID получает товар по ID
	// Возвращает ErrProductNotFound, если товара нет
	GetByID(ctx context.Context, productID string) (Product, error)

	// List возвращает страницу товаров по фильтру
	List(ctx context.Context, filter ListFilter) ([]Product, error)

	// Update заменяет изменяемые поля товара
	// Возвращает ErrProductNotFound, если товара нет
	Update(ctx context.Context, product Product) error

	// Delete удаляет товар
	// Возвращает ErrProductNotFound, если товара нет
	Delete(ctx context.Context, productID string) error
}
