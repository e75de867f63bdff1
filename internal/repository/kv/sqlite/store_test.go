package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"todoTracker/internal/repository"
	"todoTracker/internal/repository/kv/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var _ repository.Store = (*sqlite.Store)(nil)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormsqlite.Open(filepath.Join(t.TempDir(), "kv.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// TestStore_SetGetOverwrite тестирует upsert значения
func TestStore_SetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.NewWithDB(setupTestDB(t), repository.PartitionLocal)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "tasks", []byte(`[]`)))
	require.NoError(t, store.Set(ctx, "tasks", []byte(`[{"id":"x"}]`)))

	value, err := store.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"x"}]`, string(value))
}

// TestStore_PartitionsAreIsolated тестирует, что разделы одной базы не пересекаются
func TestStore_PartitionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	local, err := sqlite.NewWithDB(db, repository.PartitionLocal)
	require.NoError(t, err)
	shared, err := sqlite.NewWithDB(db, repository.PartitionShared)
	require.NoError(t, err)

	require.NoError(t, local.Set(ctx, "appTheme", []byte("Dark")))

	_, err = shared.Get(ctx, "appTheme")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, shared.Set(ctx, "appTheme", []byte("Blue")))
	value, err := local.Get(ctx, "appTheme")
	require.NoError(t, err)
	assert.Equal(t, "Dark", string(value))
}

// TestStore_Delete тестирует удаление ключа
func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.NewWithDB(setupTestDB(t), repository.PartitionLocal)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestStore_OpenFile тестирует открытие файла и переживание переоткрытия
func TestStore_OpenFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "todo.db")

	store, err := sqlite.Open(path, repository.PartitionLocal)
	require.NoError(t, err)
	require.NoError(t, store.HealthCheck(ctx))
	require.NoError(t, store.Set(ctx, "hasSeenOnboarding", []byte("true")))
	require.NoError(t, store.Close())

	reopened, err := sqlite.Open(path, repository.PartitionLocal)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, "hasSeenOnboarding")
	require.NoError(t, err)
	assert.Equal(t, "true", string(value))
}
