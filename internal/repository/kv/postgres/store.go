package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"
	"todoTracker/internal/logger"
	repo "todoTracker/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Store struct {
	pool      *pgxpool.Pool
	partition string
	ownsPool  bool
}

// New создаёт пул, применяет миграции и возвращает раздел хранилища
func New(ctx context.Context, connString, partition string) (*Store, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		logger.Error("Repository: Ошибка загрузки конфига", err)
		return nil, fmt.Errorf("загрузка конфига: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnIdleTime = time.Minute * 5

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Error("Repository: Ошибка создания пула", err)
		return nil, fmt.Errorf("создание пула: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Error("Repository: Неудачная проверка ping", err)
		return nil, fmt.Errorf("проверка соединения ping: %w", err)
	}

	if err := Migrate(connString); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("Repository: Успешное создание подключения к PostgreSQL", zap.String("partition", partition))
	return &Store{pool: pool, partition: partition, ownsPool: true}, nil
}

// WithPartition возвращает другой раздел поверх того же пула
func (s *Store) WithPartition(partition string) *Store {
	return &Store{pool: s.pool, partition: partition}
}

func (s *Store) Close() {
	if !s.ownsPool {
		return
	}
	s.pool.Close()
	logger.Info("Repository: Закрытие всех соединений PostgreSQL")
}

func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		logger.Error("Repository: Неудачная проверка ping", err)
		return fmt.Errorf("проверка соединения ping: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()

	query := `SELECT value
				FROM kv_entries
				WHERE partition = $1 AND key = $2`

	var value []byte
	err := s.pool.QueryRow(ctx, query, s.partition, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		logger.Error("Repository: Не удалось прочитать ключ", err, zap.String("key", key))
		return nil, fmt.Errorf("чтение ключа %s: %w", key, err)
	}

	slowQuery(start)
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()

	query := `INSERT INTO kv_entries (partition, key, value, updated_at)
				VALUES ($1, $2, $3, NOW())
				ON CONFLICT (partition, key)
				DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	if _, err := s.pool.Exec(ctx, query, s.partition, key, value); err != nil {
		logger.Error("Repository: Не удалось записать ключ", err, zap.String("key", key))
		return fmt.Errorf("запись ключа %s: %w", key, err)
	}

	slowQuery(start)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_entries
				WHERE partition = $1 AND key = $2`

	if _, err := s.pool.Exec(ctx, query, s.partition, key); err != nil {
		logger.Error("Repository: Не удалось удалить ключ", err, zap.String("key", key))
		return fmt.Errorf("удаление ключа %s: %w", key, err)
	}
	return nil
}

func slowQuery(start time.Time) {
	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}
}
