package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cache"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/product/repository"
)

// fakeProductRepo — stateful in-memory каталог
type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]repository.Product
	nextID   int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]repository.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, product repository.Product) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	product.ID = fmt.Sprintf("product-%d", f.nextID)
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	f.products[product.ID] = product
	return product.ID, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, productID string) (repository.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[productID]
	if !ok {
		return repository.Product{}, repository.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) List(_ context.Context, filter repository.ListFilter) ([]repository.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]repository.Product, 0)
	for _, p := range f.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Brand != "" && p.Brand != filter.Brand {
			continue
		}
		if filter.MinPrice > 0 && p.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product repository.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.products[product.ID]
	if !ok {
		return repository.ErrProductNotFound
	}
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now().UTC()
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[productID]; !ok {
		return repository.ErrProductNotFound
	}
	delete(f.products, productID)
	return nil
}

// recordingCache записывает удалённые ключи
type recordingCache struct {
	mu      sync.Mutex
	deleted []string
	failAll bool
}

func (c *recordingCache) Get(context.Context, string) ([]byte, error) {
	return nil, cache.ErrCacheMiss
}

func (c *recordingCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (c *recordingCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, key)
	if c.failAll {
		return errors.New("cache unavailable")
	}
	return nil
}

func (c *recordingCache) wasDeleted(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range c.deleted {
		if k == key {
			return true
		}
	}
	return false
}

func newTestService() (*Service, *fakeProductRepo, *recordingCache) {
	repo := newFakeProductRepo()
	c := &recordingCache{}
	return NewService(zap.NewNop(), repo, c), repo, c
}

func TestCreate_Success(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	product, err := svc.Create(ctx, CreateInput{
		Name:       "Widget",
		Price:      9.99,
		Category:   "gadgets",
		Brand:      "Acme",
		Stock:      100,
		Attributes: map[string]string{"color": "red"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, product.ID)
	require.Equal(t, "Widget", product.Name)
	require.Equal(t, int64(100), product.Stock)
	require.Equal(t, "red", product.Attributes["color"])
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	tests := []struct {
		name  string
		input CreateInput
	}{
		{"empty name", CreateInput{Price: 1}},
		{"negative price", CreateInput{Name: "Widget", Price: -1}},
		{"negative stock", CreateInput{Name: "Widget", Price: 1, Stock: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestList_Filters(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.Create(ctx, CreateInput{Name: "Cheap", Price: 5, Category: "gadgets", Brand: "Acme"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{Name: "Expensive", Price: 500, Category: "gadgets", Brand: "Other"})
	require.NoError(t, err)

	products, err := svc.List(ctx, repository.ListFilter{Category: "gadgets"})
	require.NoError(t, err)
	require.Len(t, products, 2)

	products, err = svc.List(ctx, repository.ListFilter{Brand: "Acme"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Cheap", products[0].Name)

	products, err = svc.List(ctx, repository.ListFilter{MinPrice: 100})
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Expensive", products[0].Name)

	_, err = svc.List(ctx, repository.ListFilter{MinPrice: 100, MaxPrice: 10})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdate_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	svc, _, c := newTestService()

	created, err := svc.Create(ctx, CreateInput{Name: "Widget", Price: 10, Stock: 5})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, UpdateInput{
		ProductID: created.ID,
		Name:      "Widget v2",
		Price:     12,
		Stock:     7,
	})
	require.NoError(t, err)
	require.Equal(t, "Widget v2", updated.Name)
	require.Equal(t, int64(7), updated.Stock)

	// Мутация каталога инвалидирует product-ключ общего кэша
	require.True(t, c.wasDeleted(cache.ProductKey(created.ID)))
}

func TestUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.Update(ctx, UpdateInput{ProductID: "missing", Name: "X", Price: 1})
	require.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestDelete_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	svc, _, c := newTestService()

	created, err := svc.Create(ctx, CreateInput{Name: "Widget", Price: 10})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.True(t, c.wasDeleted(cache.ProductKey(created.ID)))

	err = svc.Delete(ctx, created.ID)
	require.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestDelete_CacheFailureDoesNotFailRequest(t *testing.T) {
	ctx := context.Background()
	svc, _, c := newTestService()
	c.failAll = true

	created, err := svc.Create(ctx, CreateInput{Name: "Widget", Price: 10})
	require.NoError(t, err)

	// Ошибка кэша не фейлит мутацию каталога
	require.NoError(t, svc.Delete(ctx, created.ID))
}
