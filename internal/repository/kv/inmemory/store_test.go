package inmemory_test

import (
	"context"
	"testing"
	"todoTracker/internal/repository"
	"todoTracker/internal/repository/kv/inmemory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ repository.Store = (*inmemory.Store)(nil)

// TestStore_SetGet тестирует запись и чтение
func TestStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store := inmemory.New(repository.PartitionLocal)

	require.NoError(t, store.Set(ctx, "tasks", []byte(`[]`)))

	value, err := store.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)
}

// TestStore_GetMissing тестирует отсутствующий ключ
func TestStore_GetMissing(t *testing.T) {
	store := inmemory.New(repository.PartitionShared)

	_, err := store.Get(context.Background(), "taskCount")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestStore_ValueIsCopied тестирует, что хранилище не разделяет буфер с вызывающим
func TestStore_ValueIsCopied(t *testing.T) {
	ctx := context.Background()
	store := inmemory.New(repository.PartitionLocal)

	buf := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", buf))
	buf[0] = 'z'

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(value))

	value[1] = 'z'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

// TestStore_Delete тестирует удаление, повторное удаление не ошибка
func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := inmemory.New(repository.PartitionLocal)

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, store.HealthCheck(ctx))
}
