package pagecache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	cache := NewMemory(time.Minute)

	_, err := cache.Get(ctx, "ninja")
	require.ErrorIs(t, err, ErrPageNotFound)

	require.NoError(t, cache.Set(ctx, "ninja", "<html></html>"))
	page, err := cache.Get(ctx, "ninja")
	require.NoError(t, err)
	require.Equal(t, "<html></html>", page)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemory(10 * time.Millisecond)

	require.NoError(t, cache.Set(ctx, "ninja", "<html></html>"))
	time.Sleep(25 * time.Millisecond)

	_, err := cache.Get(ctx, "ninja")
	require.ErrorIs(t, err, ErrPageNotFound)
}
