// Package gateway хранит снимок задач, счётчик для виджета и настройки
// в двух разделах key-value хранилища: локальном и общем с виджетом.
package gateway

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"todoTracker/internal/logger"
	"todoTracker/internal/models/task"
	"todoTracker/internal/repository"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	KeyTasks          = "tasks"
	KeyTaskCount      = "taskCount"
	KeyTheme          = "appTheme"
	KeyOnboardingSeen = "hasSeenOnboarding"
)

//go:embed snapshot.schema.json
var snapshotSchemaSource string

var snapshotSchema = jsonschema.MustCompileString("snapshot.schema.json", snapshotSchemaSource)

type Gateway struct {
	local  repository.Store
	shared repository.Store
}

func New(local, shared repository.Store) *Gateway {
	return &Gateway{
		local:  local,
		shared: shared,
	}
}

// SaveSnapshot пишет снимок в оба раздела и счётчик в общий.
// Ошибки отдельных записей собираются вместе, уже записанное не откатывается.
func (g *Gateway) SaveSnapshot(ctx context.Context, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}

	encoded, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("сериализация снимка: %w", err)
	}

	var errs error
	if err := g.local.Set(ctx, KeyTasks, encoded); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("локальный раздел: %w", err))
	}
	if err := g.shared.Set(ctx, KeyTasks, encoded); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("общий раздел: %w", err))
	}
	if err := g.shared.Set(ctx, KeyTaskCount, []byte(strconv.Itoa(len(tasks)))); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("счётчик задач: %w", err))
	}

	if errs != nil {
		return fmt.Errorf("сохранение снимка: %w", errs)
	}

	logger.Debug("Gateway: Снимок сохранён", zap.Int("tasks", len(tasks)), zap.Int("bytes", len(encoded)))
	return nil
}

// LoadSnapshot никогда не возвращает ошибку: нет данных или они битые - пустой список
func (g *Gateway) LoadSnapshot(ctx context.Context) []task.Task {
	data, err := g.local.Get(ctx, KeyTasks)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Gateway: Не удалось прочитать снимок", zap.Error(err))
		}
		return []task.Task{}
	}

	tasks, err := decodeSnapshot(data)
	if err != nil {
		logger.Warn("Gateway: Снимок повреждён, начинаем с пустого списка", zap.Error(err))
		return []task.Task{}
	}
	return tasks
}

func decodeSnapshot(data []byte) ([]task.Task, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("разбор json: %w", err)
	}
	if err := snapshotSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("проверка схемы: %w", err)
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("декодирование задач: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(tasks))
	res := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if _, ok := seen[t.ID]; ok {
			logger.Warn("Gateway: Повтор идентификатора в снимке пропущен", zap.String("task_id", t.ID.String()))
			continue
		}
		seen[t.ID] = struct{}{}
		res = append(res, t)
	}
	return res, nil
}

// LoadTaskCount - путь чтения виджета, только общий раздел
func (g *Gateway) LoadTaskCount(ctx context.Context) int {
	data, err := g.shared.Get(ctx, KeyTaskCount)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Gateway: Не удалось прочитать счётчик задач", zap.Error(err))
		}
		return 0
	}

	count, err := strconv.Atoi(string(data))
	if err != nil || count < 0 {
		logger.Warn("Gateway: Некорректный счётчик задач", zap.String("value", string(data)))
		return 0
	}
	return count
}

func (g *Gateway) SaveSetting(ctx context.Context, key, value string) error {
	if err := g.local.Set(ctx, key, []byte(value)); err != nil {
		return fmt.Errorf("сохранение настройки %s: %w", key, err)
	}
	return nil
}

func (g *Gateway) LoadSetting(ctx context.Context, key, def string) string {
	data, err := g.local.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Gateway: Не удалось прочитать настройку", zap.String("key", key), zap.Error(err))
		}
		return def
	}
	return string(data)
}

func (g *Gateway) HealthCheck(ctx context.Context) error {
	return multierr.Combine(
		g.local.HealthCheck(ctx),
		g.shared.HealthCheck(ctx),
	)
}
