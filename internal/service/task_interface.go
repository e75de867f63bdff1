package service

import (
	"context"
	"todoTracker/internal/models/task"
	"todoTracker/internal/notify"

	"github.com/google/uuid"
)

// Persistence - шлюз хранения снимка и настроек
type Persistence interface {
	SaveSnapshot(ctx context.Context, tasks []task.Task) error
	LoadSnapshot(ctx context.Context) []task.Task
	SaveSetting(ctx context.Context, key, value string) error
	LoadSetting(ctx context.Context, key, def string) string
	HealthCheck(ctx context.Context) error
}

// Reminders - планировщик напоминаний по срокам задач
type Reminders interface {
	Schedule(ctx context.Context, t task.Task) notify.Result
	Cancel(ctx context.Context, id uuid.UUID)
	Resync(ctx context.Context, tasks []task.Task) []notify.Result
}
