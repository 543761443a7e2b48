// Package cache определяет интерфейс кэша для горячих чтений каталога
// и корзины. Ключи разделяются сервисами: мутация каталога инвалидирует
// тот же product-ключ, который читает корзина.
// Кэш best-effort: он никогда не авторитетен, любая его ошибка
// деградирует до чтения из хранилища и не фейлит запрос.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss возвращается, когда ключа нет в кэше или он истёк.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache абстрагирует key-value кэш с TTL на ключ.
// Все операции безопасны для конкурентного использования.
type Cache interface {
	// Get возвращает значение по ключу.
	// Возвращает ErrCacheMiss, если ключа нет или он истёк.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение с указанным TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет ключ. Удаление отсутствующего ключа не ошибка.
	Delete(ctx context.Context, key string) error
}

// Семейства ключей. Снимки сериализуются в JSON.
const (
	productKeyPrefix   = "product:"
	cartKeyPrefix      = "cart:"
	cartTotalKeyPrefix = "cart:total:"
)

// ProductKey возвращает ключ снимка товара
func ProductKey(productID string) string {
	return productKeyPrefix + productID
}

// CartKey возвращает ключ снимка корзины пользователя
func CartKey(userID string) string {
	return cartKeyPrefix + userID
}

// CartTotalKey возвращает ключ производного агрегата — суммы корзины
func CartTotalKey(userID string) string {
	return cartTotalKeyPrefix + userID
}
