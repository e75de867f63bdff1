package repository

import "context"

// Store - долговременное key-value хранилище одного раздела.
// Раздел (partition) отделяет данные приложения от данных, видимых виджету.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	HealthCheck(ctx context.Context) error
}

const (
	PartitionLocal  = "local"
	PartitionShared = "shared"
)
