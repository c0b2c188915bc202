package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/detail/domain"
)

// setupTestRedis creates a miniredis server and returns a repository
// backed by a real client
func setupTestRedis(t *testing.T) (*RedisSessionRepository, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	repo := NewRedisSessionRepository(client)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return repo, mr, cleanup
}

func redisSession() *domain.Session {
	session := domain.NewSession("sess-1", "prod-1")
	session.Snapshot = &domain.ProductSnapshot{
		ID:     "prod-1",
		Title:  "Ao Thun Basic",
		Price:  100000,
		Stock:  5,
		Colors: []string{"Red", "Blue"},
		Sizes:  []string{"S", "M", "L"},
	}
	session.SelectedColor = "Red"
	session.SelectedSize = "M"
	session.Quantity = 2
	return session
}

func TestRedisSessionRepository_CreateFindRoundTrip(t *testing.T) {
	repo, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, redisSession()))
	assert.True(t, mr.Exists("detailSession:sess-1"))

	found, err := repo.FindByID(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "prod-1", found.ProductID)
	assert.Equal(t, "Red", found.SelectedColor)
	assert.Equal(t, "M", found.SelectedSize)
	assert.Equal(t, 2, found.Quantity)
	require.NotNil(t, found.Snapshot)
	assert.Equal(t, int64(100000), found.Snapshot.Price)
}

func TestRedisSessionRepository_SavePersistsMutations(t *testing.T) {
	repo, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	session := redisSession()
	require.NoError(t, repo.Create(ctx, session))

	session.Quantity = 5
	session.ValidationError = domain.MsgSelectColorAndSize
	require.NoError(t, repo.Save(ctx, session))

	found, err := repo.FindByID(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 5, found.Quantity)
	assert.Equal(t, domain.MsgSelectColorAndSize, found.ValidationError)
}

func TestRedisSessionRepository_MissResolvesToNotFound(t *testing.T) {
	repo, _, cleanup := setupTestRedis(t)
	defer cleanup()

	_, err := repo.FindByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRedisSessionRepository_Delete(t *testing.T) {
	repo, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, redisSession()))
	require.NoError(t, repo.Delete(ctx, "sess-1"))

	assert.False(t, mr.Exists("detailSession:sess-1"))
	_, err := repo.FindByID(ctx, "sess-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRedisSessionRepository_CountScansSessionKeys(t *testing.T) {
	repo, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	for _, id := range []string{"sess-1", "sess-2", "sess-3"} {
		session := domain.NewSession(id, "prod-1")
		require.NoError(t, repo.Create(ctx, session))
	}
	// Pending selections live under a different prefix and must not count
	mr.Set("productSelection:sess-1", "{}")

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestRedisSessionRepository_SavePendingSelection(t *testing.T) {
	repo, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	sel := domain.PendingSelection{
		ProductID:     "prod-1",
		SelectedColor: "Red",
		SelectedSize:  "M",
		Quantity:      2,
	}
	require.NoError(t, repo.SavePendingSelection(context.Background(), "sess-1", sel))

	raw, err := mr.Get("productSelection:sess-1")
	require.NoError(t, err)

	var stored domain.PendingSelection
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, sel, stored)
}

func TestRedisSessionRepository_SessionExpires(t *testing.T) {
	repo, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, redisSession()))

	mr.FastForward(sessionTTL + time.Minute)

	_, err := repo.FindByID(ctx, "sess-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
