package task

import (
	"time"
)

type DraftOption func(*Draft)

func (d *Draft) Apply(options ...DraftOption) {
	for _, opt := range options {
		if opt != nil {
			opt(d)
		}
	}
}

func WithName(name string) DraftOption {
	return func(d *Draft) {
		d.Name = name
	}
}

func WithDescription(description string) DraftOption {
	return func(d *Draft) {
		d.Description = description
	}
}

func WithPriority(priority Priority) DraftOption {
	if priority == "" {
		return nil
	}
	return func(d *Draft) {
		d.Priority = priority
	}
}

func WithCategory(category Category) DraftOption {
	if category == "" {
		return nil
	}
	return func(d *Draft) {
		d.Category = category
	}
}

// в отличие от остальных опций нулевое время здесь значит "убрать срок"
func WithDueDate(dueDate time.Time) DraftOption {
	return func(d *Draft) {
		if dueDate.IsZero() {
			d.DueDate = nil
			return
		}
		d.DueDate = &dueDate
	}
}

func WithoutDueDate() DraftOption {
	return func(d *Draft) {
		d.DueDate = nil
	}
}
