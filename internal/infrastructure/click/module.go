package click

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Config — ClickHouse для аналитики операций. Переменные: CALCULATOR_CLICKHOUSE_ENABLED, HOST, PORT, DATABASE, USERNAME, PASSWORD, DIAL_TIMEOUT.
type Config struct {
	Enabled     bool          `envconfig:"ENABLED" default:"false"`
	Host        string        `envconfig:"HOST" default:"localhost"`
	Port        string        `envconfig:"PORT" default:"9000"`
	Database    string        `envconfig:"DATABASE" default:"default"`
	Username    string        `envconfig:"USERNAME" default:"default"`
	Password    string        `envconfig:"PASSWORD" default:""`
	DialTimeout time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
}

// Addr — "host:port" нативного протокола.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Client держит *sql.DB поверх драйвера clickhouse.
type Client struct {
	db *sql.DB
}

// New открывает соединение по нативному протоколу и пингует сервер в пределах ctx.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	db := clickhouse.OpenDB(&clickhouse.Options{
		Addr: []string{cfg.Addr()},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		DialTimeout: cfg.DialTimeout,
		Compression: &clickhouse.Compression{Method: clickhouse.CompressionLZ4},
	})
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("clickhouse ping %s: %w", cfg.Addr(), err)
	}
	return &Client{db: db}, nil
}

func (c *Client) DB() *sql.DB {
	return c.db
}

func (c *Client) Close() error {
	return c.db.Close()
}

// Ping — для readiness.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
