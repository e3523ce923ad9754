package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCacheService_SetIfAbsent(t *testing.T) {
	ctx := context.Background()
	c := NewCacheService(60, 600)

	ok, err := c.SetIfAbsent(ctx, "k", "first", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.SetIfAbsent(ctx, "k", "second", time.Minute)
	require.NoError(t, err)
	require.False(t, ok)

	v, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "first", v)

	require.NoError(t, c.Delete(ctx, "k"))
	_, found, err = c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, found)
}

func TestCacheService_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewCacheService(60, 600)

	ok, err := c.SetIfAbsent(ctx, "k", "v", 10*time.Millisecond)
	require.NoError(t, err)
	require.True(t, ok)

	require.Eventually(t, func() bool {
		ok, _ := c.SetIfAbsent(ctx, "k", "again", time.Minute)
		return ok
	}, time.Second, 20*time.Millisecond)
}
