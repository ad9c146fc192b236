package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/wasteland/pkg/adapters/redis"
	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/aretw0/wasteland/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T, opts ...redis.Option) (*miniredis.Miniredis, *redis.Store) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	store := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = store.Close() })
	return mr, store
}

func TestRedisStore_Contract(t *testing.T) {
	_, store := setupStore(t)
	ports.RunReportStoreContract(t, store)
}

func TestRedisStore_PrefixAndTTL(t *testing.T) {
	mr, store := setupStore(t, redis.WithPrefix("test:"), redis.WithTTL(time.Minute))
	ctx := context.Background()

	err := store.Save(ctx, "k1", &domain.Report{Digest: "d"})
	require.NoError(t, err)

	assert.True(t, mr.Exists("test:k1"))
	assert.Equal(t, time.Minute, mr.TTL("test:k1"))

	mr.FastForward(2 * time.Minute)
	_, err = store.Load(ctx, "k1")
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestRedisStore_CorruptValue(t *testing.T) {
	mr, store := setupStore(t)
	require.NoError(t, mr.Set("wasteland:report:bad", "{not json"))

	_, err := store.Load(context.Background(), "bad")
	assert.ErrorContains(t, err, "unmarshal")
}

func TestNewFromURL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store, err := redis.NewFromURL("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	defer store.Close()
	assert.NoError(t, store.Ping(context.Background()))

	_, err = redis.NewFromURL("://nope")
	assert.Error(t, err)
}
