package dto

import (
	"time"
	"todoTracker/internal/models/task"
	"todoTracker/internal/notify"
	"todoTracker/internal/query"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Priority    string     `json:"priority,omitempty"`
	Category    string     `json:"category,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// UpdateTaskRequest - частичное обновление, пустые поля не меняются
type UpdateTaskRequest struct {
	Name         *string    `json:"name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Priority     *string    `json:"priority,omitempty"`
	Category     *string    `json:"category,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	ClearDueDate bool       `json:"clearDueDate,omitempty"`
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

type TaskResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	Category     string     `json:"category"`
	CreationDate time.Time  `json:"creationDate"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	ReminderAt   *time.Time `json:"reminderAt,omitempty"`
	IsOverdue    bool       `json:"isOverdue"`
}

type ViewResponse struct {
	Pending              []TaskResponse `json:"pending"`
	Completed            []TaskResponse `json:"completed"`
	CompletionPercentage float64        `json:"completionPercentage"`
}

func FromTask(t task.Task, now time.Time) TaskResponse {
	res := TaskResponse{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
		Category:     string(t.Category),
		CreationDate: t.CreationDate,
		DueDate:      t.DueDate,
		IsOverdue:    !t.IsCompleted() && t.DueDate != nil && t.DueDate.Before(now),
	}
	if fireAt, ok := notify.ReminderTime(t); ok && fireAt.After(now) {
		res.ReminderAt = &fireAt
	}
	return res
}

func FromTaskList(tasks []task.Task, now time.Time) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t, now)
	}
	return result
}

func FromView(v query.View, now time.Time) ViewResponse {
	return ViewResponse{
		Pending:              FromTaskList(v.Pending, now),
		Completed:            FromTaskList(v.Completed, now),
		CompletionPercentage: v.CompletionPercentage,
	}
}
