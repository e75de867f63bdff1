package task

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Status       Status     `json:"status"`
	Priority     Priority   `json:"priority"`
	Category     Category   `json:"category"`
	CreationDate time.Time  `json:"creationDate"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
}

// Draft - редактируемые поля задачи, вход для добавления и изменения
type Draft struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Category    Category   `json:"category"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// Clone возвращает копию без общих указателей
func (t Task) Clone() Task {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}

func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Draft возвращает редактируемые поля задачи
func (t Task) Draft() Draft {
	c := t.Clone()
	return Draft{
		Name:        c.Name,
		Description: c.Description,
		Priority:    c.Priority,
		Category:    c.Category,
		DueDate:     c.DueDate,
	}
}

// NewDraft собирает черновик со значениями по умолчанию формы добавления
func NewDraft(name string, options ...DraftOption) Draft {
	d := Draft{
		Name:     name,
		Priority: PriorityMedium,
		Category: CategoryPersonal,
	}
	d.Apply(options...)
	return d
}
