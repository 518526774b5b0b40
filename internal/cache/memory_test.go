package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Minute))

	value, ok, err := c.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("value"), value)

	require.NoError(t, c.Delete(ctx, "key"))

	_, ok, err = c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_TTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	current := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	require.NoError(t, c.Set(ctx, "expiring", []byte("v"), 5*time.Minute))
	require.NoError(t, c.Set(ctx, "forever", []byte("v"), 0))

	_, ok, err := c.Get(ctx, "expiring")
	require.NoError(t, err)
	assert.True(t, ok)

	current = current.Add(6 * time.Minute)

	_, ok, err = c.Get(ctx, "expiring")
	require.NoError(t, err)
	assert.False(t, ok, "entry past its TTL must be gone")

	_, ok, err = c.Get(ctx, "forever")
	require.NoError(t, err)
	assert.True(t, ok, "zero TTL means no expiry")
}

func TestMemoryCache_Overwrite(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "key", []byte("old"), 0))
	require.NoError(t, c.Set(ctx, "key", []byte("new"), 0))

	value, ok, err := c.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("new"), value)
}

func TestMemoryCache_DeleteMissingKey(t *testing.T) {
	c := NewMemoryCache()
	assert.NoError(t, c.Delete(context.Background(), "never-set"))
}
