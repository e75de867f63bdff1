package app

import (
	"context"
	"fmt"
	"todoTracker/internal/config"
	"todoTracker/internal/logger"
	"todoTracker/internal/repository"
	"todoTracker/internal/repository/kv/inmemory"
	"todoTracker/internal/repository/kv/postgres"
	"todoTracker/internal/repository/kv/redis"
	"todoTracker/internal/repository/kv/sqlite"

	"go.uber.org/zap"
)

// openStore открывает раздел по его драйверу. Второй результат закрывает соединение.
// Postgres с тем же url переиспользует пул уже открытого раздела.
func openStore(ctx context.Context, cfg config.StoreConfig, partition string, pools map[string]*postgres.Store) (repository.Store, func(), error) {
	logger.Info("App: Открытие хранилища",
		zap.String("partition", partition),
		zap.String("driver", cfg.Driver))

	switch cfg.Driver {
	case config.DriverInMemory:
		return inmemory.New(partition), func() {}, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.Path, partition)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("App: Ошибка закрытия sqlite", err, zap.String("partition", partition))
			}
		}, nil

	case config.DriverPostgres:
		if owner, ok := pools[cfg.URL]; ok {
			return owner.WithPartition(partition), func() {}, nil
		}
		store, err := postgres.New(ctx, cfg.URL, partition)
		if err != nil {
			return nil, nil, err
		}
		pools[cfg.URL] = store
		return store, store.Close, nil

	case config.DriverRedis:
		store, err := redis.New(ctx, redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}, partition)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("App: Ошибка закрытия redis", err, zap.String("partition", partition))
			}
		}, nil
	}
	return nil, nil, fmt.Errorf("неизвестный драйвер %q", cfg.Driver)
}
