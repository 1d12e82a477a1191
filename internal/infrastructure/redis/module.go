package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config — Redis для состояний сессий. Переменные: CALCULATOR_REDIS_HOST, PORT, PASSWORD, DB, SESSION_TTL, POOL_SIZE, TIMEOUT.
type Config struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD" default:""`
	DB       int    `envconfig:"DB" default:"0"`
	// SessionTTL — сколько живёт неактивная сессия клавиатуры. 0 — без срока.
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	PoolSize   int           `envconfig:"POOL_SIZE" default:"10"`
	// Timeout — на dial, чтение и запись по отдельности.
	Timeout time.Duration `envconfig:"TIMEOUT" default:"3s"`
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Client — redis.Client с проверенным соединением.
type Client struct {
	*redis.Client
}

// New создаёт клиента и пингует Redis в пределах ctx.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	cli := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.Timeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr(), err)
	}
	return &Client{Client: cli}, nil
}

// Ping — для readiness.
func (c *Client) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}
