package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lizzyKeypad/internal/infrastructure/click"
)

// noEnvFile — несуществующий .env, чтобы тест не зависел от файла в рабочей директории.
func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadCfg_Defaults(t *testing.T) {
	cfg, err := LoadCfg(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "9090", cfg.Grpc.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 24*time.Hour, cfg.Redis.SessionTTL)
	assert.Equal(t, "keypad-operations", cfg.Kafka.Topic)
	assert.False(t, cfg.Kafka.Enabled)
	assert.False(t, cfg.ClickHouse.Enabled)
	assert.Contains(t, cfg.Server.AllowOrigins, "http://localhost:5173")
}

func TestLoadCfg_FromEnv(t *testing.T) {
	t.Setenv("CALCULATOR_STORAGE", "sqlite")
	t.Setenv("CALCULATOR_SQLITE_PATH", "/tmp/keypad.db")
	t.Setenv("CALCULATOR_SERVER_PORT", "8181")
	t.Setenv("CALCULATOR_REDIS_SESSION_TTL", "90m")
	t.Setenv("CALCULATOR_KAFKA_ENABLED", "true")
	t.Setenv("CALCULATOR_CLICKHOUSE_ENABLED", "true")
	t.Setenv("CALCULATOR_LOG_LEVEL", "debug")

	cfg, err := LoadCfg(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, "/tmp/keypad.db", cfg.SQLite.Path)
	assert.Equal(t, "8181", cfg.Server.Port)
	assert.Equal(t, 90*time.Minute, cfg.Redis.SessionTTL)
	assert.True(t, cfg.Kafka.Enabled)
	assert.True(t, cfg.ClickHouse.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// Значения из .env подхватываются, окружение их перекрывает.
func TestLoadCfg_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CALCULATOR_STORAGE=mongo\nCALCULATOR_GRPC_PORT=9191\n"), 0o600))
	t.Setenv("CALCULATOR_GRPC_PORT", "9292")
	// godotenv выставляет переменные процесса: t.Setenv вернёт их после теста.
	t.Setenv("CALCULATOR_STORAGE", "")
	require.NoError(t, os.Unsetenv("CALCULATOR_STORAGE"))

	cfg, err := LoadCfg(path)
	require.NoError(t, err)

	assert.Equal(t, StorageMongo, cfg.Storage)
	assert.Equal(t, "9292", cfg.Grpc.Port)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "postgres", cfg: Config{Storage: StoragePostgres}},
		{name: "sqlite", cfg: Config{Storage: StorageSQLite}},
		{name: "неизвестное хранилище", cfg: Config{Storage: "cassandra"}, wantErr: true},
		{name: "clickhouse без kafka", cfg: Config{Storage: StorageMongo, ClickHouse: click.Config{Enabled: true}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadCfg_InvalidStorage(t *testing.T) {
	t.Setenv("CALCULATOR_STORAGE", "cassandra")

	_, err := LoadCfg(noEnvFile(t))

	assert.Error(t, err)
}
