package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
	"todoTracker/internal/gateway"
	"todoTracker/internal/logger"
	"todoTracker/internal/models/task"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskStore владеет списком задач. Все изменения идут под одним мьютексом,
// снимок сохраняется синхронно до возврата из операции.
// Ошибки записи и планирования только логируются и изменение не откатывают.
type TaskStore struct {
	mtx         sync.Mutex
	tasks       []task.Task
	persistence Persistence
	reminders   Reminders
	now         func() time.Time
	newID       func() uuid.UUID
}

func NewTaskStore(persistence Persistence, reminders Reminders, options ...StoreOption) *TaskStore {
	s := &TaskStore{
		tasks:       []task.Task{},
		persistence: persistence,
		reminders:   reminders,
		now:         time.Now,
		newID:       uuid.New,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Load восстанавливает список при старте и пересчитывает напоминания
func (s *TaskStore) Load(ctx context.Context) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.tasks = s.persistence.LoadSnapshot(ctx)
	logger.Info("Service: Задачи загружены", zap.Int("count", len(s.tasks)))

	s.reminders.Resync(ctx, s.cloneTasks())
	return len(s.tasks)
}

func (s *TaskStore) Add(ctx context.Context, draft task.Draft) (task.Task, error) {
	draft, err := validateDraft(draft)
	if err != nil {
		logger.Info("Service: Черновик отклонён", zap.Error(err))
		return task.Task{}, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	created := task.Task{
		ID:           s.freshID(),
		Name:         draft.Name,
		Description:  draft.Description,
		Status:       task.StatusPending,
		Priority:     draft.Priority,
		Category:     draft.Category,
		CreationDate: s.now(),
		DueDate:      draft.DueDate,
	}.Clone()
	s.tasks = append(s.tasks, created)

	logger.Info("Service: Задача добавлена", zap.String("task_id", created.ID.String()))
	s.persist(ctx)
	s.reminders.Schedule(ctx, created.Clone())
	return created.Clone(), nil
}

// Update заменяет редактируемые поля, id, статус и дата создания сохраняются
func (s *TaskStore) Update(ctx context.Context, id uuid.UUID, draft task.Draft) (task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	ind := s.indexOf(id)
	if ind < 0 {
		logger.Info("Service: Задача не найдена", zap.String("target_id", id.String()))
		return task.Task{}, NewNotFound(id.String())
	}
	return s.replaceLocked(ctx, ind, draft)
}

// Edit применяет опции к текущему черновику задачи под тем же мьютексом,
// поэтому параллельные частичные правки не теряют друг друга
func (s *TaskStore) Edit(ctx context.Context, id uuid.UUID, options ...task.DraftOption) (task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	ind := s.indexOf(id)
	if ind < 0 {
		logger.Info("Service: Задача не найдена", zap.String("target_id", id.String()))
		return task.Task{}, NewNotFound(id.String())
	}
	draft := s.tasks[ind].Draft()
	draft.Apply(options...)
	return s.replaceLocked(ctx, ind, draft)
}

func (s *TaskStore) replaceLocked(ctx context.Context, ind int, draft task.Draft) (task.Task, error) {
	draft, err := validateDraft(draft)
	if err != nil {
		return task.Task{}, err
	}

	updated := s.tasks[ind]
	updated.Name = draft.Name
	updated.Description = draft.Description
	updated.Priority = draft.Priority
	updated.Category = draft.Category
	updated.DueDate = draft.DueDate
	s.tasks[ind] = updated.Clone()

	logger.Info("Service: Задача обновлена", zap.String("task_id", updated.ID.String()))
	s.persist(ctx)
	s.reminders.Schedule(ctx, s.tasks[ind].Clone())
	return s.tasks[ind].Clone(), nil
}

// ToggleStatus не трогает напоминание: у выполненной задачи оно остаётся в силе
func (s *TaskStore) ToggleStatus(ctx context.Context, id uuid.UUID) (task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	ind := s.indexOf(id)
	if ind < 0 {
		logger.Info("Service: Задача не найдена", zap.String("target_id", id.String()))
		return task.Task{}, NewNotFound(id.String())
	}

	s.tasks[ind].Status = s.tasks[ind].Status.Toggled()
	logger.Info("Service: Статус изменён",
		zap.String("task_id", id.String()),
		zap.String("status", string(s.tasks[ind].Status)))

	s.persist(ctx)
	return s.tasks[ind].Clone(), nil
}

func (s *TaskStore) Remove(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	ind := s.indexOf(id)
	if ind < 0 {
		logger.Info("Service: Задача не найдена", zap.String("target_id", id.String()))
		return NewNotFound(id.String())
	}

	s.tasks = slices.Delete(s.tasks, ind, ind+1)
	logger.Info("Service: Задача удалена", zap.String("task_id", id.String()))

	s.persist(ctx)
	s.reminders.Cancel(ctx, id)
	return nil
}

func (s *TaskStore) Get(ctx context.Context, id uuid.UUID) (task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	ind := s.indexOf(id)
	if ind < 0 {
		return task.Task{}, NewNotFound(id.String())
	}
	return s.tasks[ind].Clone(), nil
}

// Snapshot возвращает копию списка в порядке добавления
func (s *TaskStore) Snapshot() []task.Task {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.cloneTasks()
}

func (s *TaskStore) ResyncReminders(ctx context.Context) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.reminders.Resync(ctx, s.cloneTasks())
}

func (s *TaskStore) Theme(ctx context.Context) task.Theme {
	raw := s.persistence.LoadSetting(ctx, gateway.KeyTheme, string(task.ThemeLight))
	theme, ok := task.ParseTheme(raw)
	if !ok {
		logger.Warn("Service: Неизвестная тема, используется светлая", zap.String("value", raw))
	}
	return theme
}

func (s *TaskStore) SetTheme(ctx context.Context, theme task.Theme) error {
	if !theme.Valid() {
		return NewValidationError("theme", fmt.Sprintf("неизвестная тема %q", theme))
	}
	if err := s.persistence.SaveSetting(ctx, gateway.KeyTheme, string(theme)); err != nil {
		logger.Error("Service: Не удалось сохранить тему", err)
	}
	return nil
}

func (s *TaskStore) OnboardingSeen(ctx context.Context) bool {
	seen, err := strconv.ParseBool(s.persistence.LoadSetting(ctx, gateway.KeyOnboardingSeen, "false"))
	return err == nil && seen
}

// MarkOnboardingSeen - флаг только взводится, обратного перехода нет
func (s *TaskStore) MarkOnboardingSeen(ctx context.Context) {
	if err := s.persistence.SaveSetting(ctx, gateway.KeyOnboardingSeen, strconv.FormatBool(true)); err != nil {
		logger.Error("Service: Не удалось сохранить флаг онбординга", err)
	}
}

func (s *TaskStore) HealthCheck(ctx context.Context) error {
	if err := s.persistence.HealthCheck(ctx); err != nil {
		return fmt.Errorf("проверка здоровья сервиса: %w", err)
	}
	return nil
}

func (s *TaskStore) persist(ctx context.Context) {
	if err := s.persistence.SaveSnapshot(ctx, s.cloneTasks()); err != nil {
		logger.Error("Service: Не удалось сохранить снимок", err, zap.Int("tasks", len(s.tasks)))
	}
}

func (s *TaskStore) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool {
		return t.ID == id
	})
}

func (s *TaskStore) freshID() uuid.UUID {
	for {
		id := s.newID()
		if id != uuid.Nil && s.indexOf(id) < 0 {
			return id
		}
	}
}

func (s *TaskStore) cloneTasks() []task.Task {
	res := make([]task.Task, len(s.tasks))
	for i, t := range s.tasks {
		res[i] = t.Clone()
	}
	return res
}

func validateDraft(draft task.Draft) (task.Draft, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" {
		return draft, NewValidationError("name", "название не может быть пустым")
	}
	if !draft.Priority.Valid() {
		return draft, NewValidationError("priority", fmt.Sprintf("неизвестный приоритет %q", draft.Priority))
	}
	if !draft.Category.Valid() {
		return draft, NewValidationError("category", fmt.Sprintf("неизвестная категория %q", draft.Category))
	}
	if draft.DueDate != nil && draft.DueDate.IsZero() {
		draft.DueDate = nil
	}
	return draft, nil
}
