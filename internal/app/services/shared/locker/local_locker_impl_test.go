package locker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker(t *testing.T) {
	ctx := context.Background()

	t.Run("Exclusive Until Unlocked", func(t *testing.T) {
		l := NewLocalLocker()

		acquired, token, err := l.TryLock(ctx, "k", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)
		assert.NotEmpty(t, token)

		acquired, _, err = l.TryLock(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)

		require.NoError(t, l.Unlock(ctx, "k", token))
		acquired, _, err = l.TryLock(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("Foreign Token Cannot Unlock Or Refresh", func(t *testing.T) {
		l := NewLocalLocker()
		_, _, err := l.TryLock(ctx, "k", time.Minute)
		require.NoError(t, err)

		assert.Error(t, l.Unlock(ctx, "k", "someone-else"))
		assert.Error(t, l.Refresh(ctx, "k", "someone-else", time.Minute))
	})

	t.Run("Expiry And Refresh", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		l := &localLocker{locks: make(map[string]localLock), now: func() time.Time { return now }}

		acquired, token, err := l.TryLock(ctx, "k", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		now = now.Add(50 * time.Second)
		require.NoError(t, l.Refresh(ctx, "k", token, time.Minute))

		now = now.Add(50 * time.Second)
		acquired, _, err = l.TryLock(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired, "refresh must extend the lock")

		now = now.Add(time.Minute)
		acquired, _, err = l.TryLock(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired, "expired lock is free again")

		assert.NoError(t, l.Unlock(ctx, "missing", "any"), "unlocking an absent key is a no-op")
	})
}
