package handlers

import (
	"context"
	"todoTracker/internal/models/task"
	"todoTracker/internal/widget"

	"github.com/google/uuid"
)

type TaskService interface {
	Add(context.Context, task.Draft) (task.Task, error)
	Edit(context.Context, uuid.UUID, ...task.DraftOption) (task.Task, error)
	ToggleStatus(context.Context, uuid.UUID) (task.Task, error)
	Remove(context.Context, uuid.UUID) error
	Get(context.Context, uuid.UUID) (task.Task, error)
	Snapshot() []task.Task
	Theme(context.Context) task.Theme
	SetTheme(context.Context, task.Theme) error
	OnboardingSeen(context.Context) bool
	MarkOnboardingSeen(context.Context)
	HealthCheck(context.Context) error
}

type WidgetProvider interface {
	Timeline(context.Context) widget.Timeline
}
