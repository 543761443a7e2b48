package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cache"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/repository"
)

// fakeProductRepo — stateful in-memory каталог с той же семантикой остатков,
// что и у MongoDB реализации: отрицательная delta проходит только при
// достаточном остатке, остаток никогда не уходит ниже нуля.
type fakeProductRepo struct {
	mu          sync.Mutex
	products    map[string]repository.Product
	findCalls   int
	adjustCalls int
	failAdjust  error // если задано, AdjustStock возвращает эту ошибку
}

func newFakeProductRepo(products ...repository.Product) *fakeProductRepo {
	m := make(map[string]repository.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) FindProduct(_ context.Context, productID string) (repository.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	p, ok := f.products[productID]
	if !ok {
		return repository.Product{}, repository.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) AdjustStock(_ context.Context, productID string, delta int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adjustCalls++
	if f.failAdjust != nil {
		return f.failAdjust
	}
	p, ok := f.products[productID]
	if !ok {
		return repository.ErrProductNotFound
	}
	if p.Stock+delta < 0 {
		return repository.ErrInsufficientStock
	}
	p.Stock += delta
	f.products[productID] = p
	return nil
}

func (f *fakeProductRepo) stock(t *testing.T, productID string) int64 {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[productID]
	require.True(t, ok, "product %s must exist", productID)
	return p.Stock
}

// fakeCartRepo — stateful in-memory хранилище корзин с семантикой
// MongoDB реализации ($push с upsert, $pull всех совпадений)
type fakeCartRepo struct {
	mu         sync.Mutex
	carts      map[string][]repository.CartItem
	findCalls  int
	failUpsert error
	failRemove error
	failSet    error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string][]repository.CartItem)}
}

func (f *fakeCartRepo) FindCart(_ context.Context, userID string) (repository.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	items, ok := f.carts[userID]
	if !ok {
		return repository.Cart{}, repository.ErrCartNotFound
	}
	copied := make([]repository.CartItem, len(items))
	copy(copied, items)
	return repository.Cart{UserID: userID, Items: copied}, nil
}

func (f *fakeCartRepo) UpsertAppendItem(_ context.Context, userID string, item repository.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpsert != nil {
		return f.failUpsert
	}
	f.carts[userID] = append(f.carts[userID], item)
	return nil
}

func (f *fakeCartRepo) RemoveItem(_ context.Context, userID, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRemove != nil {
		return f.failRemove
	}
	items, ok := f.carts[userID]
	if !ok {
		return repository.ErrCartNotFound
	}
	kept := items[:0]
	removed := false
	for _, it := range items {
		if it.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return repository.ErrItemNotFound
	}
	f.carts[userID] = kept
	return nil
}

func (f *fakeCartRepo) SetItemQuantity(_ context.Context, userID, productID string, quantity int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSet != nil {
		return f.failSet
	}
	items, ok := f.carts[userID]
	if !ok {
		return repository.ErrItemNotFound
	}
	for i, it := range items {
		if it.ProductID == productID {
			items[i].Quantity = quantity
			return nil
		}
	}
	return repository.ErrItemNotFound
}

func (f *fakeCartRepo) DeleteCart(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.carts[userID]; !ok {
		return repository.ErrCartNotFound
	}
	delete(f.carts, userID)
	return nil
}

func (f *fakeCartRepo) items(t *testing.T, userID string) []repository.CartItem {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]repository.CartItem(nil), f.carts[userID]...)
}

// recordingCache — рабочий in-memory кэш, который дополнительно записывает
// все удалённые ключи; failAll переводит его в режим "всё падает"
type recordingCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
	failAll bool
}

func newRecordingCache() *recordingCache {
	return &recordingCache{data: make(map[string][]byte)}
}

func (c *recordingCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failAll {
		return nil, errors.New("cache unavailable")
	}
	v, ok := c.data[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return v, nil
}

func (c *recordingCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failAll {
		return errors.New("cache unavailable")
	}
	c.data[key] = value
	return nil
}

func (c *recordingCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, key)
	if c.failAll {
		return errors.New("cache unavailable")
	}
	delete(c.data, key)
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

func newTestService(products *fakeProductRepo, carts *fakeCartRepo, c cache.Cache) *CartService {
	return NewCartService(zap.NewNop(), products, carts, c, time.Minute)
}

func TestAddItem_Success(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Name: "Widget", Price: 10, Stock: 5})
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	err := svc.AddItem(ctx, "user-1", "p1", 3)
	require.NoError(t, err)

	require.Equal(t, int64(2), products.stock(t, "p1"))
	items := carts.items(t, "user-1")
	require.Len(t, items, 1)
	require.Equal(t, "p1", items[0].ProductID)
	require.Equal(t, int32(3), items[0].Quantity)
}

func TestAddItem_InvalidQuantity(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 5})
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	for _, quantity := range []int32{0, -1} {
		err := svc.AddItem(ctx, "user-1", "p1", quantity)
		require.ErrorIs(t, err, ErrInvalidQuantity)
	}

	// Невалидное количество отклоняется до обращения к хранилищам
	require.Equal(t, 0, products.adjustCalls)
	require.Equal(t, int64(5), products.stock(t, "p1"))
	require.Empty(t, carts.items(t, "user-1"))
}

func TestAddItem_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo()
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	err := svc.AddItem(ctx, "user-1", "missing", 1)
	require.ErrorIs(t, err, repository.ErrProductNotFound)
	require.Empty(t, carts.items(t, "user-1"))
}

func TestAddItem_InsufficientStock(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 0})
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	err := svc.AddItem(ctx, "user-1", "p1", 1)
	require.ErrorIs(t, err, repository.ErrInsufficientStock)

	// Ни остаток, ни корзина не изменились
	require.Equal(t, int64(0), products.stock(t, "p1"))
	require.Empty(t, carts.items(t, "user-1"))
}

func TestAddItem_ExactStock(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 3})
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	// quantity == stock проходит, остаток становится ровно нулём
	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 3))
	require.Equal(t, int64(0), products.stock(t, "p1"))

	// Следующая единица уже не резервируется
	err := svc.AddItem(ctx, "user-1", "p1", 1)
	require.ErrorIs(t, err, repository.ErrInsufficientStock)
}

func TestAddItem_StaleCacheDoesNotOversell(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 0})
	carts := newFakeCartRepo()
	c := newRecordingCache()
	svc := newTestService(products, carts, c)

	// Протухший снимок в кэше обещает большой остаток
	require.NoError(t, c.Set(ctx, cache.ProductKey("p1"),
		[]byte(`{"id":"p1","name":"Widget","price":10,"stock":100}`), time.Minute))

	// Авторитетная проверка в каталоге всё равно отклоняет резервирование
	err := svc.AddItem(ctx, "user-1", "p1", 5)
	require.ErrorIs(t, err, repository.ErrInsufficientStock)
	require.Equal(t, int64(0), products.stock(t, "p1"))
	require.Empty(t, carts.items(t, "user-1"))
}

func TestAddItem_CompensatesStockOnCartWriteFailure(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 5})
	carts := newFakeCartRepo()
	carts.failUpsert = errors.New("mongo write failed")
	svc := newTestService(products, carts, newRecordingCache())

	err := svc.AddItem(ctx, "user-1", "p1", 3)
	require.Error(t, err)

	// Зарезервированный остаток возвращён компенсацией
	require.Equal(t, int64(5), products.stock(t, "p1"))
	require.Empty(t, carts.items(t, "user-1"))
}

func TestRemoveItem_RestocksSumOfDuplicateLines(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 10})
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	// Повторное добавление создаёт отдельные позиции с тем же товаром
	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 2))
	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 3))
	require.Equal(t, int64(5), products.stock(t, "p1"))
	require.Len(t, carts.items(t, "user-1"), 2)

	// Удаление убирает все позиции и возвращает суммарное количество
	require.NoError(t, svc.RemoveItem(ctx, "user-1", "p1"))
	require.Equal(t, int64(10), products.stock(t, "p1"))
	require.Empty(t, carts.items(t, "user-1"))

	// Корзина осталась, но позиции уже нет
	err := svc.RemoveItem(ctx, "user-1", "p1")
	require.ErrorIs(t, err, repository.ErrItemNotFound)
}

func TestRemoveItem_CartNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeProductRepo(), newFakeCartRepo(), newRecordingCache())

	err := svc.RemoveItem(ctx, "user-1", "p1")
	require.ErrorIs(t, err, repository.ErrCartNotFound)
}

func TestRemoveItem_MissingProductStillRemoves(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 5})
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 2))

	// Товар исчез из каталога — возвращать остаток некуда
	products.mu.Lock()
	delete(products.products, "p1")
	products.mu.Unlock()

	require.NoError(t, svc.RemoveItem(ctx, "user-1", "p1"))
	require.Empty(t, carts.items(t, "user-1"))
}

func TestRemoveItem_CompensatesRestockOnCartWriteFailure(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 5})
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 3))
	require.Equal(t, int64(2), products.stock(t, "p1"))

	carts.failRemove = errors.New("mongo write failed")
	err := svc.RemoveItem(ctx, "user-1", "p1")
	require.Error(t, err)

	// Возврат остатка откатился, резервирование сохранилось
	require.Equal(t, int64(2), products.stock(t, "p1"))
	require.Len(t, carts.items(t, "user-1"), 1)
}

func TestUpdateItem_IncreaseReservesDelta(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 10})
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 2))
	require.NoError(t, svc.UpdateItem(ctx, "user-1", "p1", 5))

	require.Equal(t, int64(5), products.stock(t, "p1"))
	items := carts.items(t, "user-1")
	require.Len(t, items, 1)
	require.Equal(t, int32(5), items[0].Quantity)
}

func TestUpdateItem_DecreaseRestoresDelta(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 10})
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 5))
	require.Equal(t, int64(5), products.stock(t, "p1"))

	require.NoError(t, svc.UpdateItem(ctx, "user-1", "p1", 1))
	require.Equal(t, int64(9), products.stock(t, "p1"))
}

func TestUpdateItem_SameQuantityIsNoop(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 10})
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 2))
	adjustsBefore := products.adjustCalls

	require.NoError(t, svc.UpdateItem(ctx, "user-1", "p1", 2))
	require.Equal(t, adjustsBefore, products.adjustCalls)
}

func TestUpdateItem_InsufficientStockForDelta(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 3})
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 2))
	require.Equal(t, int64(1), products.stock(t, "p1"))

	// Дельта +8 при остатке 1 — отклоняется, количество не меняется
	err := svc.UpdateItem(ctx, "user-1", "p1", 10)
	require.ErrorIs(t, err, repository.ErrInsufficientStock)

	require.Equal(t, int64(1), products.stock(t, "p1"))
	items := carts.items(t, "user-1")
	require.Equal(t, int32(2), items[0].Quantity)
}

func TestUpdateItem_Errors(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 10})
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	err := svc.UpdateItem(ctx, "user-1", "p1", 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	err = svc.UpdateItem(ctx, "user-1", "p1", 3)
	require.ErrorIs(t, err, repository.ErrCartNotFound)

	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 1))
	err = svc.UpdateItem(ctx, "user-1", "other", 3)
	require.ErrorIs(t, err, repository.ErrItemNotFound)
}

func TestGetItems_EmptyWhenNoCart(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeProductRepo(), newFakeCartRepo(), newRecordingCache())

	items, err := svc.GetItems(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestGetItems_SecondReadServedFromCache(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 10})
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 2))

	first, err := svc.GetItems(ctx, "user-1")
	require.NoError(t, err)
	findsAfterFirst := carts.findCalls

	second, err := svc.GetItems(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, first, second)
	// Повторное чтение не ходит в хранилище
	require.Equal(t, findsAfterFirst, carts.findCalls)
}

func TestCalculateTotal(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(
		repository.Product{ID: "p1", Price: 10, Stock: 100},
		repository.Product{ID: "p2", Price: 2.5, Stock: 100},
	)
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 3))
	require.NoError(t, svc.AddItem(ctx, "user-1", "p2", 4))

	total, err := svc.CalculateTotal(ctx, "user-1")
	require.NoError(t, err)
	require.InDelta(t, 40.0, total, 1e-9) // 3×10 + 4×2.5
}

func TestCalculateTotal_NoCartIsZero(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeProductRepo(), newFakeCartRepo(), newRecordingCache())

	total, err := svc.CalculateTotal(ctx, "user-1")
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestCalculateTotal_SkipsMissingProducts(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(
		repository.Product{ID: "p1", Price: 10, Stock: 100},
		repository.Product{ID: "p2", Price: 5, Stock: 100},
	)
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 2))
	require.NoError(t, svc.AddItem(ctx, "user-1", "p2", 1))

	// p2 исчез из каталога — его позиция не участвует в сумме
	products.mu.Lock()
	delete(products.products, "p2")
	products.mu.Unlock()

	total, err := svc.CalculateTotal(ctx, "user-1")
	require.NoError(t, err)
	require.InDelta(t, 20.0, total, 1e-9)
}

func TestCalculateTotal_CachedAggregateReused(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 100})
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 3))

	total, err := svc.CalculateTotal(ctx, "user-1")
	require.NoError(t, err)
	require.InDelta(t, 30.0, total, 1e-9)

	findsAfterFirst := carts.findCalls
	total, err = svc.CalculateTotal(ctx, "user-1")
	require.NoError(t, err)
	require.InDelta(t, 30.0, total, 1e-9)
	require.Equal(t, findsAfterFirst, carts.findCalls)
}

// Полный жизненный цикл одной позиции: add -> update -> remove.
// На каждом шаге остаток и сумма корзины согласованы с резервом
func TestCartLifecycle_AddUpdateRemove(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Name: "Widget", Price: 10, Stock: 5})
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	// Добавили 3: резерв снял 3 со склада
	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 3))
	require.Equal(t, int64(2), products.stock(t, "p1"))

	total, err := svc.CalculateTotal(ctx, "user-1")
	require.NoError(t, err)
	require.InDelta(t, 30.0, total, 1e-9)

	// Уменьшили до 1: разница вернулась на склад
	require.NoError(t, svc.UpdateItem(ctx, "user-1", "p1", 1))
	require.Equal(t, int64(4), products.stock(t, "p1"))

	total, err = svc.CalculateTotal(ctx, "user-1")
	require.NoError(t, err)
	require.InDelta(t, 10.0, total, 1e-9)

	// Удалили позицию: резерв снят полностью, корзина пустая, но существует
	require.NoError(t, svc.RemoveItem(ctx, "user-1", "p1"))
	require.Equal(t, int64(5), products.stock(t, "p1"))

	items, err := svc.GetItems(ctx, "user-1")
	require.NoError(t, err)
	require.Empty(t, items)

	total, err = svc.CalculateTotal(ctx, "user-1")
	require.NoError(t, err)
	require.InDelta(t, 0.0, total, 1e-9)
}

func TestClearCart_RestocksAllAndDeletes(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(
		repository.Product{ID: "p1", Price: 10, Stock: 10},
		repository.Product{ID: "p2", Price: 5, Stock: 10},
	)
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 3))
	require.NoError(t, svc.AddItem(ctx, "user-1", "p2", 4))

	require.NoError(t, svc.ClearCart(ctx, "user-1"))

	require.Equal(t, int64(10), products.stock(t, "p1"))
	require.Equal(t, int64(10), products.stock(t, "p2"))

	// Документ корзины удалён целиком
	err := svc.ClearCart(ctx, "user-1")
	require.ErrorIs(t, err, repository.ErrCartNotFound)
}

func TestClearCart_SkipsMissingProducts(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(
		repository.Product{ID: "p1", Price: 10, Stock: 10},
		repository.Product{ID: "p2", Price: 5, Stock: 10},
	)
	carts := newFakeCartRepo()
	svc := newTestService(products, carts, newRecordingCache())

	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 3))
	require.NoError(t, svc.AddItem(ctx, "user-1", "p2", 4))

	products.mu.Lock()
	delete(products.products, "p2")
	products.mu.Unlock()

	require.NoError(t, svc.ClearCart(ctx, "user-1"))
	require.Equal(t, int64(10), products.stock(t, "p1"))
}

func TestCacheInvalidation_AfterAddItem(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 10})
	carts := newFakeCartRepo()
	c := newRecordingCache()
	svc := newTestService(products, carts, c)

	// Прогреваем кэш чтениями
	_, err := svc.CalculateTotal(ctx, "user-1")
	require.NoError(t, err)
	_, err = svc.GetItems(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 2))

	// Мутация инвалидирует все затронутые ключи до ответа вызывающему
	require.True(t, c.wasDeleted(cache.ProductKey("p1")))
	require.True(t, c.wasDeleted(cache.CartKey("user-1")))
	require.True(t, c.wasDeleted(cache.CartTotalKey("user-1")))

	// Следующее чтение видит свежие данные
	total, err := svc.CalculateTotal(ctx, "user-1")
	require.NoError(t, err)
	require.InDelta(t, 20.0, total, 1e-9)
}

func TestCacheFailure_DegradesToStoreReads(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 5})
	carts := newFakeCartRepo()
	c := newRecordingCache()
	c.failAll = true
	svc := newTestService(products, carts, c)

	// Полный отказ кэша не мешает ни одной операции
	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 3))

	items, err := svc.GetItems(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)

	total, err := svc.CalculateTotal(ctx, "user-1")
	require.NoError(t, err)
	require.InDelta(t, 30.0, total, 1e-9)

	require.NoError(t, svc.UpdateItem(ctx, "user-1", "p1", 1))
	require.NoError(t, svc.RemoveItem(ctx, "user-1", "p1"))
	require.Equal(t, int64(5), products.stock(t, "p1"))
}

func TestCorruptedCacheSnapshotFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo(repository.Product{ID: "p1", Price: 10, Stock: 5})
	carts := newFakeCartRepo()
	c := newRecordingCache()
	svc := newTestService(products, carts, c)

	require.NoError(t, c.Set(ctx, cache.ProductKey("p1"), []byte("{not json"), time.Minute))

	// Повреждённый снимок вычищается, данные берутся из каталога
	require.NoError(t, svc.AddItem(ctx, "user-1", "p1", 2))
	require.Equal(t, int64(3), products.stock(t, "p1"))
	require.True(t, c.wasDeleted(cache.ProductKey("p1")))
}
