// Package sqlite — локальное хранилище истории операций в файле SQLite (modernc.org/sqlite, без cgo).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Config — настройки SQLite. Переменная: CALCULATOR_SQLITE_PATH.
type Config struct {
	Path string `envconfig:"PATH" default:"lizzykeypad.db"`
}

// DSN возвращает строку подключения: WAL и таймаут ожидания блокировки.
func (c *Config) DSN() string {
	return filepath.Clean(c.Path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

const createOperationsTable = `
CREATE TABLE IF NOT EXISTS operations (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	number1    TEXT NOT NULL,
	number2    TEXT NOT NULL,
	operation  TEXT NOT NULL,
	result     TEXT NOT NULL,
	display    TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS operations_created_at_idx ON operations (created_at DESC);
`

// DB обёртка над *sql.DB.
type DB struct {
	*sql.DB
}

// New открывает файл базы, проверяет пингом и создаёт таблицу операций.
func New(ctx context.Context, cfg *Config) (*DB, error) {
	if cfg == nil || strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	conn, err := sql.Open("sqlite", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}
	if _, err := conn.ExecContext(ctx, createOperationsTable); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("sqlite migrate: %w", err)
	}
	return &DB{conn}, nil
}

// Ping проверяет соединение (для readiness).
func (db *DB) Ping(ctx context.Context) error {
	return db.DB.PingContext(ctx)
}
