package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverInMemory = "inmemory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Storage   StorageConfig   `yaml:"storage"`
	Reminders RemindersConfig `yaml:"reminders"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type ServerConfig struct {
	Port        string   `yaml:"port"`
	Host        string   `yaml:"host"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type LoggingConfig struct {
	Development bool `yaml:"development"`
}

// StorageConfig - отдельный драйвер на каждый раздел: локальный и общий с виджетом
type StorageConfig struct {
	Local  StoreConfig `yaml:"local"`
	Shared StoreConfig `yaml:"shared"`
}

type StoreConfig struct {
	Driver   string `yaml:"driver"` // "inmemory", "sqlite", "postgres" или "redis"
	Path     string `yaml:"path"`
	URL      string `yaml:"url"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type RemindersConfig struct {
	Authorized bool          `yaml:"authorized"`
	Interval   time.Duration `yaml:"interval"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

func Default() *Config {
	return &Config{
		Server:  ServerConfig{Host: "", Port: "8080", CORSOrigins: []string{"*"}},
		Logging: LoggingConfig{Development: true},
		Storage: StorageConfig{
			Local:  StoreConfig{Driver: DriverInMemory},
			Shared: StoreConfig{Driver: DriverInMemory},
		},
		Reminders: RemindersConfig{Authorized: true, Interval: time.Minute},
		RateLimit: RateLimitConfig{RequestsPerSecond: 10, Burst: 20},
	}
}

// Load читает YAML поверх значений по умолчанию
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("не могу открыть %s: %w", path, err)
	}
	defer file.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault не считает отсутствие файла ошибкой
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	for name, store := range map[string]StoreConfig{"local": c.Storage.Local, "shared": c.Storage.Shared} {
		switch store.Driver {
		case DriverInMemory:
		case DriverSQLite:
			if store.Path == "" {
				return fmt.Errorf("storage.%s: для sqlite нужен path", name)
			}
		case DriverPostgres:
			if store.URL == "" {
				return fmt.Errorf("storage.%s: для postgres нужен url", name)
			}
		case DriverRedis:
			if store.Addr == "" {
				return fmt.Errorf("storage.%s: для redis нужен addr", name)
			}
		default:
			return fmt.Errorf("storage.%s: неизвестный драйвер %q", name, store.Driver)
		}
	}
	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit: значения не могут быть отрицательными")
	}
	if c.RateLimit.RequestsPerSecond > 0 && c.RateLimit.Burst == 0 {
		return fmt.Errorf("rate_limit: при включённом лимите burst должен быть больше нуля")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
