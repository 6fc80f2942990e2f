package memory

import (
	"context"
	"testing"
	"time"

	"techmart-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryIsolatesCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Hour)

	s := store.NewSession("sid-1", time.Now())
	require.NoError(t, s.Cart.Add("P001", 2))
	require.NoError(t, repo.Save(ctx, s))

	// Mutating after save must not leak into the stored copy.
	require.NoError(t, s.Cart.Add("P001", 5))

	got, found, err := repo.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, got.Cart.Quantity("P001"))
}

func TestSessionRepositoryMissingAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Hour)

	_, found, err := repo.Get(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Save(ctx, store.NewSession("sid-2", time.Now())))
	require.NoError(t, repo.Delete(ctx, "sid-2"))
	_, found, _ = repo.Get(ctx, "sid-2")
	assert.False(t, found)
}

func TestSessionRepositoryCountsLiveSessions(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(50 * time.Millisecond)

	require.NoError(t, repo.Save(ctx, store.NewSession("a", time.Now())))
	require.NoError(t, repo.Save(ctx, store.NewSession("b", time.Now())))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Eventually(t, func() bool {
		n, _ := repo.Count(ctx)
		return n == 0
	}, time.Second, 10*time.Millisecond)
}
