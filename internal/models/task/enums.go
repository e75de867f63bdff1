package task

import (
	"fmt"
	"strings"
)

type Status string
type Priority string
type Category string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// значения приоритета - это отображаемые метки, сортировка идёт по ним
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryOther    Category = "Other"
)

var (
	Statuses   = []Status{StatusPending, StatusCompleted}
	Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}
	Categories = []Category{CategoryWork, CategoryPersonal, CategoryOther}
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted:
		return true
	}
	return false
}

// Toggled возвращает противоположный статус
func (s Status) Toggled() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryOther:
		return true
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	for _, v := range Statuses {
		if strings.EqualFold(string(v), strings.TrimSpace(s)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("неизвестный статус %q", s)
}

func ParsePriority(s string) (Priority, error) {
	for _, v := range Priorities {
		if strings.EqualFold(string(v), strings.TrimSpace(s)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("неизвестный приоритет %q", s)
}

func ParseCategory(s string) (Category, error) {
	for _, v := range Categories {
		if strings.EqualFold(string(v), strings.TrimSpace(s)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("неизвестная категория %q", s)
}

func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (p *Priority) UnmarshalText(b []byte) error {
	v, err := ParsePriority(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
