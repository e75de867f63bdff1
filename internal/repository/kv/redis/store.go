package redis

import (
	"context"
	"errors"
	"fmt"
	"todoTracker/internal/logger"
	repo "todoTracker/internal/repository"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "todo"

type Options struct {
	Addr     string
	Password string
	DB       int
}

type Store struct {
	client    *goredis.Client
	partition string
	ownsConn  bool
}

// New подключается к Redis и проверяет соединение
func New(ctx context.Context, opts Options, partition string) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		logger.Error("Repository: Redis недоступен", err, zap.String("addr", opts.Addr))
		return nil, fmt.Errorf("проверка соединения redis: %w", err)
	}

	logger.Info("Repository: Подключение к Redis", zap.String("addr", opts.Addr), zap.String("partition", partition))
	return &Store{client: client, partition: partition, ownsConn: true}, nil
}

// NewWithClient использует готовый клиент, закрывать его будет вызывающий
func NewWithClient(client *goredis.Client, partition string) *Store {
	return &Store{client: client, partition: partition}
}

func (s *Store) Close() error {
	if !s.ownsConn {
		return nil
	}
	return s.client.Close()
}

func (s *Store) key(key string) string {
	return keyPrefix + ":" + s.partition + ":" + key
}

func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		logger.Error("Repository: Неудачная проверка ping", err)
		return fmt.Errorf("проверка соединения ping: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repo.ErrNotFound
		}
		return nil, fmt.Errorf("чтение ключа %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		logger.Error("Repository: Не удалось записать ключ", err, zap.String("key", key))
		return fmt.Errorf("запись ключа %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("удаление ключа %s: %w", key, err)
	}
	return nil
}
