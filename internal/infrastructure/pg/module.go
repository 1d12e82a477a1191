package pg

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"
)

// Config — PostgreSQL для истории операций. Переменные: CALCULATOR_DB_HOST, PORT, USER, PASSWORD, NAME, SSLMODE, MAX_OPEN_CONNS, CONN_MAX_LIFETIME.
type Config struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"5433"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD" default:"postgres"`
	DBName          string        `envconfig:"NAME" default:"lizzykeypad"`
	SSLMode         string        `envconfig:"SSLMODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
}

// DSN — URL подключения для lib/pq; пароль экранируется.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

// DB — пул соединений.
type DB struct {
	*sql.DB
}

// New открывает пул и ждёт ответа на пинг не дольше ctx.
func New(ctx context.Context, cfg *Config) (*DB, error) {
	conn, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("pg open: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("pg ping %s:%s: %w", cfg.Host, cfg.Port, err)
	}
	return &DB{conn}, nil
}

// Ping — для readiness.
func (db *DB) Ping(ctx context.Context) error {
	return db.DB.PingContext(ctx)
}
