package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cache"
)

func TestCache_SetGetDelete(t *testing.T) {
	c := New()
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	_, err := c.Get(ctx, "missing")
	require.ErrorIs(t, err, cache.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)

	// Возвращается копия: мутация результата не трогает кэш
	got[0] = 'x'
	got2, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got2)

	require.NoError(t, c.Delete(ctx, "k"))
	_, err = c.Get(ctx, "k")
	require.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestCache_TTLExpiry(t *testing.T) {
	c := New()
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", []byte("v"), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, err := c.Get(ctx, "short")
	require.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestCache_CloseStopsEviction(t *testing.T) {
	c := New()

	require.NoError(t, c.Close())
	// Повторный Close безопасен
	require.NoError(t, c.Close())

	// Фоновая горутина завершилась: канал stop закрыт
	select {
	case <-c.stop:
	case <-time.After(time.Second):
		t.Fatal("stop channel is not closed after Close")
	}

	// Кэш остаётся рабочим после Close, истечение проверяется при чтении
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)
}
