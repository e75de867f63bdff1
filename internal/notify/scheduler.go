// Package notify переводит сроки задач в локальные напоминания.
// На каждую задачу приходится не больше одного напоминания, ключ - id задачи.
package notify

import (
	"context"
	"fmt"
	"time"
	"todoTracker/internal/logger"
	"todoTracker/internal/models/task"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const reminderTitle = "Напоминание о задаче"

// Result - итог решения о напоминании, уходит в лог и не влияет на операцию хранилища
type Result struct {
	TaskID    uuid.UUID
	Scheduled bool
	FireAt    time.Time
	Err       error
}

type Scheduler struct {
	center Center
	now    func() time.Time
}

type Option func(*Scheduler)

func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

func NewScheduler(center Center, options ...Option) *Scheduler {
	s := &Scheduler{
		center: center,
		now:    time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// ReminderTime - за сутки до срока; без срока напоминания нет
func ReminderTime(t task.Task) (time.Time, bool) {
	if t.DueDate == nil {
		return time.Time{}, false
	}
	return t.DueDate.AddDate(0, 0, -1), true
}

func NewRequest(t task.Task, fireAt time.Time) Request {
	return Request{
		ID:     t.ID.String(),
		Title:  reminderTitle,
		Body:   fmt.Sprintf("Срок задачи «%s» приближается! (%s)", t.Name, t.DueDate.Format("02 Jan 2006")),
		FireAt: fireAt,
	}
}

// Schedule всегда сначала снимает прежнее напоминание задачи, затем ставит новое,
// если момент напоминания строго в будущем
func (s *Scheduler) Schedule(ctx context.Context, t task.Task) Result {
	s.center.Remove(ctx, t.ID.String())

	res := Result{TaskID: t.ID}
	fireAt, ok := ReminderTime(t)
	if !ok || !fireAt.After(s.now()) {
		report(res)
		return res
	}

	res.FireAt = fireAt
	if err := s.center.Add(ctx, NewRequest(t, fireAt)); err != nil {
		res.Err = err
		report(res)
		return res
	}

	res.Scheduled = true
	report(res)
	return res
}

func (s *Scheduler) Cancel(ctx context.Context, id uuid.UUID) {
	s.center.Remove(ctx, id.String())
	logger.Debug("Notify: Напоминание снято", zap.String("task_id", id.String()))
}

func (s *Scheduler) Resync(ctx context.Context, tasks []task.Task) []Result {
	results := make([]Result, 0, len(tasks))
	scheduled := 0
	for _, t := range tasks {
		res := s.Schedule(ctx, t)
		if res.Scheduled {
			scheduled++
		}
		results = append(results, res)
	}
	logger.Info("Notify: Напоминания пересчитаны", zap.Int("tasks", len(tasks)), zap.Int("scheduled", scheduled))
	return results
}

func report(res Result) {
	switch {
	case res.Err != nil:
		logger.Error("Notify: Не удалось запланировать напоминание", res.Err,
			zap.String("task_id", res.TaskID.String()),
			zap.Time("fire_at", res.FireAt))
	case res.Scheduled:
		logger.Info("Notify: Напоминание запланировано",
			zap.String("task_id", res.TaskID.String()),
			zap.Time("fire_at", res.FireAt))
	default:
		logger.Debug("Notify: Напоминание не требуется", zap.String("task_id", res.TaskID.String()))
	}
}
