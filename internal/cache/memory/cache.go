package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cache"
)

// Cache — простая in-memory реализация cache.Cache.
// Используется как локальный backend, когда Redis не поднят, и в тестах.
type Cache struct {
	mu       sync.RWMutex
	entries  map[string]*entry
	stop     chan struct{}
	stopOnce sync.Once
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e *entry) expired() bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

// New создаёт новый in-memory кэш с периодической очисткой истёкших ключей
func New() *Cache {
	c := &Cache{
		entries: make(map[string]*entry),
		stop:    make(chan struct{}),
	}
	go c.evictLoop()
	return c
}

// Close останавливает фоновую очистку. Повторный вызов безопасен.
func (c *Cache) Close() error {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
	return nil
}

func (c *Cache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || e.expired() {
		return nil, cache.ErrCacheMiss
	}
	// Возвращаем копию, чтобы вызывающий код не мутировал кэш
	cp := make([]byte, len(e.value))
	copy(cp, e.value)
	return cp, nil
}

func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	c.entries[key] = &entry{value: cp, expiresAt: expiresAt}
	return nil
}

func (c *Cache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *Cache) evictLoop() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			for key, e := range c.entries {
				if e.expired() {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
