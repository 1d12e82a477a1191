package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apigrpc "lizzyKeypad/internal/api/grpc"
	"lizzyKeypad/internal/api/http"
	"lizzyKeypad/internal/infrastructure/click"
	"lizzyKeypad/internal/infrastructure/kafka"
	"lizzyKeypad/internal/infrastructure/mongo"
	"lizzyKeypad/internal/infrastructure/pg"
	"lizzyKeypad/internal/infrastructure/redis"
	"lizzyKeypad/internal/infrastructure/sqlite"
	"lizzyKeypad/internal/pkg/logger"
	"lizzyKeypad/internal/pkg/otel"
)

const AppName = "CALCULATOR"

// Хранилища истории операций (CALCULATOR_STORAGE).
const (
	StoragePostgres = "pg"
	StorageMongo    = "mongo"
	StorageSQLite   = "sqlite"
)

// Config — конфиг приложения. Заполняется через envconfig с префиксом CALCULATOR.
type Config struct {
	Storage    string            `envconfig:"STORAGE" default:"pg"`
	Log        logger.Config     `envconfig:"LOG"`
	Server     http.ServerConfig `envconfig:"SERVER"`
	Grpc       apigrpc.Config    `envconfig:"GRPC"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	SQLite     sqlite.Config     `envconfig:"SQLITE"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
	Otel       otel.Config       `envconfig:"OTEL"`
}

// Validate проверяет значения, которые envconfig не может проверить сам.
func (c Config) Validate() error {
	switch c.Storage {
	case StoragePostgres, StorageMongo, StorageSQLite:
	default:
		return fmt.Errorf("unknown storage %q (want %s, %s or %s)", c.Storage, StoragePostgres, StorageMongo, StorageSQLite)
	}
	if c.ClickHouse.Enabled && !c.Kafka.Enabled {
		return errors.New("clickhouse analytics requires kafka: events reach clickhouse through the consumer")
	}
	return nil
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
// Без аргументов читается ./.env; переменные окружения имеют приоритет над файлом.
func LoadCfg(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Info("config: .env не найден, используем окружение", "error", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
