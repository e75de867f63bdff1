package redis_test

import (
	"context"
	"testing"
	"todoTracker/internal/repository"
	kvredis "todoTracker/internal/repository/kv/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ repository.Store = (*kvredis.Store)(nil)

func setupTestRedis(t *testing.T) (*goredis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

// TestStore_SetGet тестирует запись под префиксом раздела
func TestStore_SetGet(t *testing.T) {
	ctx := context.Background()
	client, mr := setupTestRedis(t)
	store := kvredis.NewWithClient(client, repository.PartitionShared)

	require.NoError(t, store.Set(ctx, "taskCount", []byte("4")))

	value, err := store.Get(ctx, "taskCount")
	require.NoError(t, err)
	assert.Equal(t, "4", string(value))

	raw, err := mr.Get("todo:shared:taskCount")
	require.NoError(t, err)
	assert.Equal(t, "4", raw)
}

// TestStore_GetMissing тестирует отсутствующий ключ
func TestStore_GetMissing(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := kvredis.NewWithClient(client, repository.PartitionLocal)

	_, err := store.Get(context.Background(), "tasks")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestStore_Delete тестирует удаление
func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	client, _ := setupTestRedis(t)
	store := kvredis.NewWithClient(client, repository.PartitionLocal)

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestNew тестирует подключение и ошибку недоступного сервера
func TestNew(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	store, err := kvredis.New(ctx, kvredis.Options{Addr: mr.Addr()}, repository.PartitionShared)
	require.NoError(t, err)
	assert.NoError(t, store.HealthCheck(ctx))
	require.NoError(t, store.Close())

	addr := mr.Addr()
	mr.Close()
	_, err = kvredis.New(ctx, kvredis.Options{Addr: addr}, repository.PartitionShared)
	assert.Error(t, err)
}
