// Package widget отдаёт ленту виджета с количеством задач.
// Виджет только читает общий раздел и переживает его отсутствие.
package widget

import (
	"context"
	"time"
)

// PolicyAtEnd - обновить ленту после окончания текущего периода показа
const PolicyAtEnd = "atEnd"

type Entry struct {
	Date      time.Time `json:"date"`
	TaskCount int       `json:"taskCount"`
}

type Timeline struct {
	Entries []Entry `json:"entries"`
	Policy  string  `json:"policy"`
}

// CountReader - путь чтения счётчика из общего раздела
type CountReader interface {
	LoadTaskCount(ctx context.Context) int
}

type Provider struct {
	counts CountReader
	now    func() time.Time
}

func NewProvider(counts CountReader, now func() time.Time) *Provider {
	if now == nil {
		now = time.Now
	}
	return &Provider{counts: counts, now: now}
}

func (p *Provider) Placeholder() Entry {
	return Entry{Date: p.now(), TaskCount: 0}
}

func (p *Provider) Snapshot() Entry {
	return p.Placeholder()
}

func (p *Provider) Timeline(ctx context.Context) Timeline {
	return Timeline{
		Entries: []Entry{{Date: p.now(), TaskCount: p.counts.LoadTaskCount(ctx)}},
		Policy:  PolicyAtEnd,
	}
}
