package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"
	"todoTracker/internal/logger"
	repo "todoTracker/internal/repository"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Entry - строка таблицы kv_entries
type Entry struct {
	Partition string `gorm:"primaryKey;size:64"`
	Key       string `gorm:"primaryKey;size:128"`
	Value     []byte
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "kv_entries"
}

type Store struct {
	db        *gorm.DB
	partition string
}

// Open открывает файл базы и готовит схему
func Open(path, partition string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.Error("Repository: Ошибка открытия SQLite", err, zap.String("path", path))
		return nil, fmt.Errorf("открытие sqlite: %w", err)
	}

	store, err := NewWithDB(db, partition)
	if err != nil {
		return nil, err
	}
	logger.Info("Repository: SQLite готово", zap.String("path", path), zap.String("partition", partition))
	return store, nil
}

// NewWithDB использует уже открытое соединение, так оба раздела могут жить в одном файле
func NewWithDB(db *gorm.DB, partition string) (*Store, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("миграция kv_entries: %w", err)
	}
	return &Store{db: db, partition: partition}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("получение соединения: %w", err)
	}
	return sqlDB.Close()
}

func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("получение соединения: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Error("Repository: Неудачная проверка ping", err)
		return fmt.Errorf("проверка соединения ping: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var entry Entry
	err := s.db.WithContext(ctx).
		First(&entry, "partition = ? AND key = ?", s.partition, key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.ErrNotFound
		}
		return nil, fmt.Errorf("чтение ключа %s: %w", key, err)
	}
	return entry.Value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	entry := Entry{
		Partition: s.partition,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "partition"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		logger.Error("Repository: Не удалось записать ключ", err, zap.String("key", key))
		return fmt.Errorf("запись ключа %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).
		Where("partition = ? AND key = ?", s.partition, key).
		Delete(&Entry{}).Error
	if err != nil {
		return fmt.Errorf("удаление ключа %s: %w", key, err)
	}
	return nil
}
