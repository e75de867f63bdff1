package service

import (
	"time"

	"github.com/google/uuid"
)

type StoreOption func(*TaskStore)

func WithClock(now func() time.Time) StoreOption {
	return func(s *TaskStore) {
		s.now = now
	}
}

func WithIDGenerator(newID func() uuid.UUID) StoreOption {
	return func(s *TaskStore) {
		s.newID = newID
	}
}
