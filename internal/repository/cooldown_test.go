package repository

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return srv, client
}

func TestCooldownRepository_SaveAndLoad(t *testing.T) {
	srv, client := newTestRedis(t)
	repo := NewCooldownRepository(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "phone-1", "plaza", 1000, 15*time.Minute))
	require.NoError(t, repo.Save(ctx, "phone-1", "museo", 2000, 0))
	require.NoError(t, repo.Save(ctx, "phone-1", "plaza", 3000, 15*time.Minute))

	snapshot, err := repo.Load(ctx, "phone-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"plaza": 3000, "museo": 2000}, snapshot)
	assert.Equal(t, time.Hour, srv.TTL("cooldown:phone-1"))

	other, err := repo.Load(ctx, "phone-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCooldownRepository_TTLCoversLongestCooldown(t *testing.T) {
	srv, client := newTestRedis(t)
	repo := NewCooldownRepository(client, 24*time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "phone-1", "museo", 1000, 72*time.Hour))
	assert.Equal(t, 72*time.Hour, srv.TTL("cooldown:phone-1"))

	// более короткий период не сокращает срок жизни хеша
	require.NoError(t, repo.Save(ctx, "phone-1", "plaza", 2000, 15*time.Minute))
	assert.Equal(t, 72*time.Hour, srv.TTL("cooldown:phone-1"))

	srv.FastForward(48 * time.Hour)
	snapshot, err := repo.Load(ctx, "phone-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"museo": 1000, "plaza": 2000}, snapshot)

	require.NoError(t, repo.Save(ctx, "phone-2", "forever", 3000, time.Duration(math.MaxInt64)))
	assert.Equal(t, maxCooldownTTL, srv.TTL("cooldown:phone-2"))
}

func TestCooldownRepository_SkipsCorruptValues(t *testing.T) {
	srv, client := newTestRedis(t)
	repo := NewCooldownRepository(client, 0)
	srv.HSet("cooldown:phone-1", "plaza", "not-a-number")
	srv.HSet("cooldown:phone-1", "museo", "42")

	snapshot, err := repo.Load(context.Background(), "phone-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"museo": 42}, snapshot)
}

func TestCooldownRepository_RedisDown(t *testing.T) {
	srv, client := newTestRedis(t)
	repo := NewCooldownRepository(client, time.Hour)
	srv.Close()

	_, err := repo.Load(context.Background(), "phone-1")
	assert.Error(t, err)
	assert.Error(t, repo.Save(context.Background(), "phone-1", "plaza", 1, time.Minute))
}

func TestPlaceRepository_Cache(t *testing.T) {
	srv, client := newTestRedis(t)
	repo := NewPlaceRepository(nil, client)
	ctx := context.Background()

	cached, err := repo.GetPlaceFromCache(ctx, "plaza")
	require.NoError(t, err)
	assert.Nil(t, cached)

	place := &models.Place{ID: "plaza", RadiusM: 50, Content: models.Content{Title: "Plaza"}}
	require.NoError(t, repo.SetPlaceCache(ctx, place))
	assert.Equal(t, placeCacheTTL, srv.TTL("place:plaza"))

	cached, err = repo.GetPlaceFromCache(ctx, "plaza")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "Plaza", cached.Content.Title)

	require.NoError(t, repo.InvalidatePlaceCache(ctx, "plaza"))
	assert.False(t, srv.Exists("place:plaza"))
}
