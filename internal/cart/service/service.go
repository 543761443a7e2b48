package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cache"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/repository"
)

// ErrInvalidQuantity возвращается при неположительном количестве
var ErrInvalidQuantity = errors.New("quantity must be positive")

// CartService содержит бизнес-логику корзины: резервирование остатков
// и когерентность кэша поверх авторитетных хранилищ.
//
// Консистентность между каталогом и корзиной: сначала атомарное изменение
// остатка, затем мутация корзины; при неудаче мутации — компенсирующее
// обратное изменение остатка. Два хранилища не связаны транзакцией,
// окно между записями закрывается компенсацией (политика описана в DESIGN.md).
//
// Кэш best-effort: любая ошибка кэша (включая таймаут) трактуется как промах
// при чтении и как no-op при записи/инвалидации; запрос из-за кэша не фейлится.
type CartService struct {
	logger   *zap.Logger
	products repository.ProductRepository
	carts    repository.CartRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewCartService создаёт новый экземпляр CartService
// Принимает repositories и cache как зависимости — это позволяет подменять их в тестах
func NewCartService(
	logger *zap.Logger,
	products repository.ProductRepository,
	carts repository.CartRepository,
	c cache.Cache,
	cacheTTL time.Duration,
) *CartService {
	return &CartService{
		logger:   logger,
		products: products,
		carts:    carts,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// Снимки для сериализации в кэш. Доменные типы не знают про JSON,
// поэтому формат кэша зафиксирован отдельными структурами.
type productSnapshot struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock"`
}

type cartItemSnapshot struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

// AddItem резервирует quantity единиц товара и добавляет позицию в корзину
// пользователя (корзина создаётся при первом добавлении).
// Возвращает repository.ErrProductNotFound / repository.ErrInsufficientStock
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int32) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	// Читаем товар через кэш; отказ здесь — быстрый путь,
	// авторитетная проверка остатка происходит в AdjustStock
	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return err
	}
	if product.Stock < int64(quantity) {
		return repository.ErrInsufficientStock
	}

	// Атомарное резервирование остатка в каталоге
	if err := s.products.AdjustStock(ctx, productID, -int64(quantity)); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) || errors.Is(err, repository.ErrInsufficientStock) {
			return err
		}
		s.logger.Error("failed to reserve stock",
			zap.Error(err),
			zap.String("product_id", productID),
			zap.Int32("quantity", quantity),
		)
		return fmt.Errorf("reserve stock: %w", err)
	}
	// Инвалидация синхронно после записи, до ответа вызывающему
	s.invalidate(ctx, cache.ProductKey(productID))

	if err := s.carts.UpsertAppendItem(ctx, userID, repository.CartItem{
		ProductID: productID,
		Quantity:  quantity,
	}); err != nil {
		// Корзина не записалась — возвращаем зарезервированный остаток
		s.compensateStock(ctx, productID, int64(quantity))
		s.logger.Error("failed to append cart item",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("product_id", productID),
		)
		return fmt.Errorf("append cart item: %w", err)
	}
	s.invalidate(ctx, cache.CartKey(userID), cache.CartTotalKey(userID))

	s.logger.Info("item added to cart",
		zap.String("user_id", userID),
		zap.String("product_id", productID),
		zap.Int32("quantity", quantity),
	)
	return nil
}

// RemoveItem удаляет все позиции с указанным товаром из корзины
// и возвращает их суммарное количество обратно в остаток.
// Возвращает repository.ErrCartNotFound / repository.ErrItemNotFound
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) error {
	cart, err := s.carts.FindCart(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return err
		}
		return fmt.Errorf("find cart: %w", err)
	}

	var restock int64
	for _, it := range cart.Items {
		if it.ProductID == productID {
			restock += int64(it.Quantity)
		}
	}
	if restock == 0 {
		return repository.ErrItemNotFound
	}

	// Возврат остатка до удаления позиции; при неудаче удаления — компенсация
	if err := s.products.AdjustStock(ctx, productID, restock); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			// Товар удалён из каталога, возвращать остаток некуда —
			// позицию из корзины всё равно убираем
			s.logger.Warn("restock target missing in catalog",
				zap.String("product_id", productID),
				zap.Int64("quantity", restock),
			)
		} else {
			return fmt.Errorf("restore stock: %w", err)
		}
	}
	s.invalidate(ctx, cache.ProductKey(productID))

	if err := s.carts.RemoveItem(ctx, userID, productID); err != nil {
		s.compensateStock(ctx, productID, -restock)
		s.logger.Error("failed to remove cart item",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("product_id", productID),
		)
		return fmt.Errorf("remove cart item: %w", err)
	}
	s.invalidate(ctx, cache.CartKey(userID), cache.CartTotalKey(userID))

	s.logger.Info("item removed from cart",
		zap.String("user_id", userID),
		zap.String("product_id", productID),
		zap.Int64("restocked", restock),
	)
	return nil
}

// UpdateItem устанавливает новое количество для позиции корзины.
// Остаток корректируется на дельту: положительная дельта требует
// stock >= delta, отрицательная всегда проходит (возврат остатка).
func (s *CartService) UpdateItem(ctx context.Context, userID, productID string, newQuantity int32) error {
	if newQuantity <= 0 {
		return ErrInvalidQuantity
	}

	cart, err := s.carts.FindCart(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return err
		}
		return fmt.Errorf("find cart: %w", err)
	}

	var oldQuantity int32
	found := false
	for _, it := range cart.Items {
		if it.ProductID == productID {
			oldQuantity = it.Quantity
			found = true
			break
		}
	}
	if !found {
		return repository.ErrItemNotFound
	}

	delta := int64(newQuantity) - int64(oldQuantity)
	if delta == 0 {
		return nil
	}

	if err := s.products.AdjustStock(ctx, productID, -delta); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) || errors.Is(err, repository.ErrInsufficientStock) {
			return err
		}
		return fmt.Errorf("adjust stock: %w", err)
	}
	s.invalidate(ctx, cache.ProductKey(productID))

	if err := s.carts.SetItemQuantity(ctx, userID, productID, newQuantity); err != nil {
		s.compensateStock(ctx, productID, delta)
		s.logger.Error("failed to set item quantity",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("product_id", productID),
		)
		return fmt.Errorf("set item quantity: %w", err)
	}
	s.invalidate(ctx, cache.CartKey(userID), cache.CartTotalKey(userID))

	s.logger.Info("cart item updated",
		zap.String("user_id", userID),
		zap.String("product_id", productID),
		zap.Int32("old_quantity", oldQuantity),
		zap.Int32("new_quantity", newQuantity),
	)
	return nil
}

// GetItems возвращает позиции корзины пользователя (read-through через кэш).
// Отсутствие корзины — не ошибка: возвращается пустой список.
func (s *CartService) GetItems(ctx context.Context, userID string) ([]repository.CartItem, error) {
	key := cache.CartKey(userID)
	if raw, ok := s.cacheGet(ctx, key); ok {
		var snap []cartItemSnapshot
		if err := json.Unmarshal(raw, &snap); err == nil {
			items := make([]repository.CartItem, 0, len(snap))
			for _, it := range snap {
				items = append(items, repository.CartItem{ProductID: it.ProductID, Quantity: it.Quantity})
			}
			return items, nil
		}
		// Повреждённый снимок — убираем и идём в хранилище
		s.invalidate(ctx, key)
	}

	cart, err := s.carts.FindCart(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return []repository.CartItem{}, nil
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}

	snap := make([]cartItemSnapshot, 0, len(cart.Items))
	for _, it := range cart.Items {
		snap = append(snap, cartItemSnapshot{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	if raw, err := json.Marshal(snap); err == nil {
		s.cacheSet(ctx, key, raw)
	}

	return cart.Items, nil
}

// ClearCart возвращает остаток по всем позициям и удаляет корзину целиком.
// Возвращает repository.ErrCartNotFound, если корзины нет.
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	cart, err := s.carts.FindCart(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return err
		}
		return fmt.Errorf("find cart: %w", err)
	}

	for _, it := range cart.Items {
		if err := s.products.AdjustStock(ctx, it.ProductID, int64(it.Quantity)); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				s.logger.Warn("restock target missing in catalog",
					zap.String("product_id", it.ProductID),
					zap.Int32("quantity", it.Quantity),
				)
				continue
			}
			// Частичный возврат уже случился; повтор ClearCart вернёт остаток
			// этих позиций ещё раз — фиксируем в логе для сверки
			s.logger.Error("failed to restore stock during cart clear, restitution is partial",
				zap.Error(err),
				zap.String("user_id", userID),
				zap.String("product_id", it.ProductID),
			)
			return fmt.Errorf("restore stock: %w", err)
		}
		s.invalidate(ctx, cache.ProductKey(it.ProductID))
	}

	if err := s.carts.DeleteCart(ctx, userID); err != nil && !errors.Is(err, repository.ErrCartNotFound) {
		return fmt.Errorf("delete cart: %w", err)
	}
	s.invalidate(ctx, cache.CartKey(userID), cache.CartTotalKey(userID))

	s.logger.Info("cart cleared",
		zap.String("user_id", userID),
		zap.Int("items", len(cart.Items)),
	)
	return nil
}

// CalculateTotal возвращает сумму корзины (Σ price × quantity).
// Агрегат кэшируется отдельным ключом; отсутствие корзины — total 0, не ошибка.
func (s *CartService) CalculateTotal(ctx context.Context, userID string) (float64, error) {
	key := cache.CartTotalKey(userID)
	if raw, ok := s.cacheGet(ctx, key); ok {
		var total float64
		if err := json.Unmarshal(raw, &total); err == nil {
			return total, nil
		}
		s.invalidate(ctx, key)
	}

	cart, err := s.carts.FindCart(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("find cart: %w", err)
	}

	var total float64
	for _, it := range cart.Items {
		product, err := s.getProduct(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				// Товар исчез из каталога — позиция не участвует в сумме
				s.logger.Warn("cart references missing product",
					zap.String("user_id", userID),
					zap.String("product_id", it.ProductID),
				)
				continue
			}
			return 0, err
		}
		total += product.Price * float64(it.Quantity)
	}

	if raw, err := json.Marshal(total); err == nil {
		s.cacheSet(ctx, key, raw)
	}

	return total, nil
}

// getProduct читает товар через кэш (read-through):
// hit → снимок из кэша, miss → каталог + заполнение кэша с TTL
func (s *CartService) getProduct(ctx context.Context, productID string) (repository.Product, error) {
	key := cache.ProductKey(productID)
	if raw, ok := s.cacheGet(ctx, key); ok {
		var snap productSnapshot
		if err := json.Unmarshal(raw, &snap); err == nil {
			return repository.Product{
				ID:    snap.ID,
				Name:  snap.Name,
				Price: snap.Price,
				Stock: snap.Stock,
			}, nil
		}
		s.invalidate(ctx, key)
	}

	product, err := s.products.FindProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return repository.Product{}, err
		}
		return repository.Product{}, fmt.Errorf("find product: %w", err)
	}

	if raw, err := json.Marshal(productSnapshot{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
		Stock: product.Stock,
	}); err == nil {
		s.cacheSet(ctx, key, raw)
	}

	return product, nil
}

// compensateStock откатывает изменение остатка после неудачной мутации корзины.
// Неудача самой компенсации оставляет расхождение остатка — только лог,
// дальше разбирается сверка.
func (s *CartService) compensateStock(ctx context.Context, productID string, delta int64) {
	if err := s.products.AdjustStock(ctx, productID, delta); err != nil {
		s.logger.Error("CRITICAL: stock compensation failed, manual reconciliation required",
			zap.Error(err),
			zap.String("product_id", productID),
			zap.Int64("delta", delta),
		)
		return
	}
	s.invalidate(ctx, cache.ProductKey(productID))
}

// cacheGet возвращает значение и true при попадании.
// Любая ошибка кэша трактуется как промах и логируется на warn.
func (s *CartService) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("cache get failed, falling back to store",
				zap.Error(err),
				zap.String("key", key),
			)
		}
		return nil, false
	}
	return raw, true
}

// cacheSet заполняет кэш best-effort
func (s *CartService) cacheSet(ctx context.Context, key string, value []byte) {
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		s.logger.Warn("cache set failed",
			zap.Error(err),
			zap.String("key", key),
		)
	}
}

// invalidate удаляет ключи из кэша best-effort.
// Пропущенная инвалидация ограничена TTL записи.
func (s *CartService) invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("cache invalidation failed",
				zap.Error(err),
				zap.String("key", key),
			)
		}
	}
}
