package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"todoTracker/internal/handlers/dto"
	"todoTracker/internal/logger"
	"todoTracker/internal/models/task"
	"todoTracker/internal/query"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskHandler struct {
	service TaskService
	widget  WidgetProvider
	now     func() time.Time
}

func NewTaskHandler(service TaskService, widget WidgetProvider) *TaskHandler {
	return &TaskHandler{
		service: service,
		widget:  widget,
		now:     time.Now,
	}
}

// ListTasks - GET /tasks?search=&priority=&category=
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	filter, err := parseFilter(r)
	if err != nil {
		logger.Warn("HTTP: Неверный фильтр", zap.Error(err), zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	view := query.Build(h.service.Snapshot(), filter)
	logger.Info("HTTP_OUT: Список задач",
		zap.Duration("ms", time.Since(start)),
		zap.Int("pending", len(view.Pending)),
		zap.Int("completed", len(view.Completed)),
		zap.Int("http_status", http.StatusOK))
	responseWithJSON(w, http.StatusOK, toPayload("view", dto.FromView(view, h.now())))
}

// GetAllTasks - GET /tasks/all, порядок добавления без фильтров
func (h *TaskHandler) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	tasks := h.service.Snapshot()
	logger.Info("HTTP_OUT: Все задачи",
		zap.Duration("ms", time.Since(start)),
		zap.Int("count", len(tasks)),
		zap.Int("http_status", http.StatusOK))
	responseWithJSON(w, http.StatusOK,
		toPayload("tasks", dto.FromTaskList(tasks, h.now())),
		toPayload("count", len(tasks)),
	)
}

func (h *TaskHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: Неверный Content-Type", zap.String("content_type", r.Header.Get("Content-Type")))
		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type должен быть application/json")
		return
	}

	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("HTTP: Ошибка парсинга тела", zap.Error(err), zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "Неверный JSON")
		return
	}

	options, err := createOptions(req)
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.Add(r.Context(), task.NewDraft(req.Name, options...))
	if err != nil {
		handleServiceError(w, r, err, "add")
		return
	}

	logger.Info("HTTP_OUT: Задача создана",
		zap.Duration("ms", time.Since(start)),
		zap.String("task_id", created.ID.String()),
		zap.Int("http_status", http.StatusCreated))
	responseWithJSON(w, http.StatusCreated, toPayload("task", dto.FromTask(created, h.now())))
}

func (h *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	t, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err, "get")
		return
	}

	logger.Info("HTTP_OUT: Задача найдена",
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))
	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(t, h.now())))
}

func (h *TaskHandler) UpdateTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	if !checkContentType(r, "application/json") {
		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type должен быть application/json")
		return
	}

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("HTTP: Ошибка парсинга тела", zap.Error(err), zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "Неверный JSON")
		return
	}

	options, err := updateOptions(req)
	if err != nil {
		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.service.Edit(r.Context(), id, options...)
	if err != nil {
		handleServiceError(w, r, err, "update")
		return
	}

	logger.Info("HTTP_OUT: Задача обновлена",
		zap.Duration("ms", time.Since(start)),
		zap.String("task_id", id.String()),
		zap.Int("http_status", http.StatusOK))
	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(updated, h.now())))
}

func (h *TaskHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	toggled, err := h.service.ToggleStatus(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err, "toggle")
		return
	}

	logger.Info("HTTP_OUT: Статус задачи изменён",
		zap.Duration("ms", time.Since(start)),
		zap.String("status", string(toggled.Status)),
		zap.Int("http_status", http.StatusOK))
	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(toggled, h.now())))
}

func (h *TaskHandler) DeleteTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		handleServiceError(w, r, err, "remove")
		return
	}

	logger.Info("HTTP_OUT: Задача удалена",
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusNoContent))
	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	stats := query.Summarize(h.service.Snapshot())
	responseWithJSON(w, http.StatusOK, toPayload("statistics", stats))
}

func (h *TaskHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	responseWithJSON(w, http.StatusOK, toPayload("theme", h.service.Theme(r.Context())))
}

func (h *TaskHandler) PutTheme(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var req dto.ThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responseWithError(w, http.StatusBadRequest, "Неверный JSON")
		return
	}

	theme, ok := task.ParseTheme(req.Theme)
	if !ok {
		logger.Warn("HTTP: Неизвестная тема", zap.String("theme", req.Theme))
		responseWithError(w, http.StatusBadRequest, fmt.Sprintf("неизвестная тема %q", req.Theme))
		return
	}
	if err := h.service.SetTheme(r.Context(), theme); err != nil {
		handleServiceError(w, r, err, "set_theme")
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("theme", theme))
}

func (h *TaskHandler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	responseWithJSON(w, http.StatusOK, toPayload("seen", h.service.OnboardingSeen(r.Context())))
}

func (h *TaskHandler) MarkOnboardingSeen(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	h.service.MarkOnboardingSeen(r.Context())
	responseWithJSON(w, http.StatusOK, toPayload("seen", true))
}

func (h *TaskHandler) GetWidgetTimeline(w http.ResponseWriter, r *http.Request) {
	timeline := h.widget.Timeline(r.Context())
	responseWithJSON(w, http.StatusOK,
		toPayload("entries", timeline.Entries),
		toPayload("policy", timeline.Policy),
	)
}

func (h *TaskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.service.HealthCheck(r.Context()); err != nil {
		logger.Error("HTTP: Проверка здоровья не пройдена", err)
		responseWithJSON(w, http.StatusServiceUnavailable,
			toPayload("status", "unhealthy"),
			toPayload("error", err.Error()),
		)
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("status", "ok"))
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		logger.Warn("HTTP: Неверный ID",
			zap.String("id", chi.URLParam(r, "id")),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "Неверный ID")
		return uuid.Nil, false
	}
	return id, true
}
