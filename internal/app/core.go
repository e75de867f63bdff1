package app

import (
	"context"
	"fmt"
	"todoTracker/internal/config"
	"todoTracker/internal/gateway"
	"todoTracker/internal/logger"
	"todoTracker/internal/notify"
	"todoTracker/internal/repository"
	"todoTracker/internal/repository/kv/postgres"
	"todoTracker/internal/service"
	"todoTracker/internal/widget"
)

// Core - собранное хранилище задач со всеми зависимостями.
// Общее для HTTP-сервера и CLI.
type Core struct {
	Store   *service.TaskStore
	Gateway *gateway.Gateway
	Center  *notify.LocalCenter
	Widget  *widget.Provider

	closers []func()
}

// NewCore открывает оба раздела, загружает снимок и пересчитывает напоминания
func NewCore(ctx context.Context, cfg *config.Config) (*Core, error) {
	c := &Core{}
	pools := make(map[string]*postgres.Store)

	local, err := c.open(ctx, cfg.Storage.Local, repository.PartitionLocal, pools)
	if err != nil {
		return nil, err
	}
	shared, err := c.open(ctx, cfg.Storage.Shared, repository.PartitionShared, pools)
	if err != nil {
		c.Close()
		return nil, err
	}

	c.Gateway = gateway.New(local, shared)
	c.Center = notify.NewLocalCenter(cfg.Reminders.Authorized)
	c.Store = service.NewTaskStore(c.Gateway, notify.NewScheduler(c.Center))
	c.Widget = widget.NewProvider(c.Gateway, nil)

	c.Store.Load(ctx)
	return c, nil
}

func (c *Core) open(ctx context.Context, cfg config.StoreConfig, partition string, pools map[string]*postgres.Store) (repository.Store, error) {
	store, closer, err := openStore(ctx, cfg, partition, pools)
	if err != nil {
		return nil, fmt.Errorf("раздел %s: %w", partition, err)
	}
	c.closers = append(c.closers, closer)
	return store, nil
}

// Close закрывает разделы в обратном порядке
func (c *Core) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
	logger.Info("App: Хранилища закрыты")
}
