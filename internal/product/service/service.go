package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cache"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/product/repository"
)

// ErrValidation оборачивает ошибки валидации входных данных
var ErrValidation = errors.New("validation failed")

// Service содержит бизнес-логику каталога товаров.
//
// Каталог — source of truth по товарам. Горячие чтения товара кэширует
// cart service под ключом product:<id>; здесь каждая мутация синхронно
// инвалидирует этот ключ, чтобы корзина не видела устаревшие цену и остаток.
type Service struct {
	logger   *zap.Logger
	products repository.ProductRepository
	cache    cache.Cache
}

// NewService создаёт новый экземпляр Service
func NewService(logger *zap.Logger, products repository.ProductRepository, c cache.Cache) *Service {
	return &Service{
		logger:   logger,
		products: products,
		cache:    c,
	}
}

// CreateInput содержит входные данные для создания товара
type CreateInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Brand       string
	Stock       int64
	Attributes  map[string]string
}

// Create добавляет новый товар в каталог и возвращает его
func (s *Service) Create(ctx context.Context, input CreateInput) (repository.Product, error) {
	if input.Name == "" {
		return repository.Product{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.Price < 0 {
		return repository.Product{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if input.Stock < 0 {
		return repository.Product{}, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}

	productID, err := s.products.Create(ctx, repository.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Brand:       input.Brand,
		Stock:       input.Stock,
		Attributes:  input.Attributes,
	})
	if err != nil {
		s.logger.Error("failed to create product", zap.Error(err))
		return repository.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("product created",
		zap.String("product_id", productID),
		zap.String("name", input.Name),
	)

	return s.products.GetByID(ctx, productID)
}

// Get возвращает товар по ID
// Возвращает repository.ErrProductNotFound, если товара нет
func (s *Service) Get(ctx context.Context, productID string) (repository.Product, error) {
	if productID == "" {
		return repository.Product{}, fmt.Errorf("%w: product_id is required", ErrValidation)
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return repository.Product{}, err
		}
		s.logger.Error("failed to get product", zap.Error(err))
		return repository.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// List возвращает страницу товаров по фильтру
func (s *Service) List(ctx context.Context, filter repository.ListFilter) ([]repository.Product, error) {
	if filter.MinPrice > 0 && filter.MaxPrice > 0 && filter.MinPrice > filter.MaxPrice {
		return nil, fmt.Errorf("%w: min_price must not exceed max_price", ErrValidation)
	}

	products, err := s.products.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list products", zap.Error(err))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// UpdateInput содержит входные данные для обновления товара
type UpdateInput struct {
	ProductID   string
	Name        string
	Description string
	Price       float64
	Category    string
	Brand       string
	Stock       int64
	Attributes  map[string]string
}

// Update заменяет изменяемые поля товара и инвалидирует его кэш
// Возвращает repository.ErrProductNotFound, если товара нет
func (s *Service) Update(ctx context.Context, input UpdateInput) (repository.Product, error) {
	if input.ProductID == "" {
		return repository.Product{}, fmt.Errorf("%w: product_id is required", ErrValidation)
	}
	if input.Name == "" {
		return repository.Product{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.Price < 0 {
		return repository.Product{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if input.Stock < 0 {
		return repository.Product{}, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}

	err := s.products.Update(ctx, repository.Product{
		ID:          input.ProductID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Brand:       input.Brand,
		Stock:       input.Stock,
		Attributes:  input.Attributes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return repository.Product{}, err
		}
		s.logger.Error("failed to update product", zap.Error(err))
		return repository.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	// Инвалидация синхронно после записи, до ответа вызывающему
	s.invalidate(ctx, input.ProductID)

	s.logger.Info("product updated", zap.String("product_id", input.ProductID))
	return s.products.GetByID(ctx, input.ProductID)
}

// Delete удаляет товар из каталога и инвалидирует его кэш
// Возвращает repository.ErrProductNotFound, если товара нет
func (s *Service) Delete(ctx context.Context, productID string) error {
	if productID == "" {
		return fmt.Errorf("%w: product_id is required", ErrValidation)
	}

	if err := s.products.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return err
		}
		s.logger.Error("failed to delete product", zap.Error(err))
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.invalidate(ctx, productID)

	s.logger.Info("product deleted", zap.String("product_id", productID))
	return nil
}

// invalidate удаляет product-ключ из кэша best-effort.
// Пропущенная инвалидация ограничена TTL записи
func (s *Service) invalidate(ctx context.Context, productID string) {
	if err := s.cache.Delete(ctx, cache.ProductKey(productID)); err != nil {
		s.logger.Warn("cache invalidation failed",
			zap.Error(err),
			zap.String("product_id", productID),
		)
	}
}
