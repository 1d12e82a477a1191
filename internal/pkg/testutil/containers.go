// Package testutil содержит хелперы для интеграционных тестов: контейнеры PostgreSQL, Redis, MongoDB, ClickHouse.
//
// Каждый хелпер пропускает тест в режиме -short, поднимает контейнер и останавливает его в t.Cleanup.
//
//	go test ./...          // с контейнерами (нужен Docker)
//	go test ./... -short   // только юнит-тесты
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

const startupTimeout = 2 * time.Minute

// skipShort пропускает интеграционный тест в short режиме.
func skipShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}
}

func terminateOnCleanup(t *testing.T, c testcontainers.Container) {
	t.Helper()
	t.Cleanup(func() {
		if err := c.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})
}

// mappedPort — порт контейнера, проброшенный на хост ("5432/tcp" → "32768").
type mappedPort interface {
	Port() string
}

// endpoint возвращает хост контейнера и строковый порт из результата MappedPort.
func endpoint(ctx context.Context, c testcontainers.Container, port mappedPort, err error) (string, string, error) {
	if err != nil {
		return "", "", fmt.Errorf("port: %w", err)
	}
	host, err := c.Host(ctx)
	if err != nil {
		return "", "", fmt.Errorf("host: %w", err)
	}
	return host, port.Port(), nil
}

// =============================================================================
// PostgreSQL
// =============================================================================

// PostgresContainer — параметры подключения к тестовому PostgreSQL.
type PostgresContainer struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// Postgres поднимает PostgreSQL в Docker.
func Postgres(t *testing.T) *PostgresContainer {
	t.Helper()
	skipShort(t)

	const (
		user     = "test"
		password = "test"
		dbName   = "testdb"
	)
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("postgres container: %v", err)
	}
	terminateOnCleanup(t, container)

	mapped, err := container.MappedPort(ctx, "5432")
	host, port, err := endpoint(ctx, container, mapped, err)
	if err != nil {
		t.Fatalf("postgres: %v", err)
	}
	return &PostgresContainer{Host: host, Port: port, User: user, Password: password, DBName: dbName}
}

// =============================================================================
// Redis
// =============================================================================

// RedisContainer — параметры подключения к тестовому Redis.
type RedisContainer struct {
	Host string
	Port string
}

// Redis поднимает Redis в Docker.
func Redis(t *testing.T) *RedisContainer {
	t.Helper()
	skipShort(t)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	container, err := redis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("redis container: %v", err)
	}
	terminateOnCleanup(t, container)

	mapped, err := container.MappedPort(ctx, "6379")
	host, port, err := endpoint(ctx, container, mapped, err)
	if err != nil {
		t.Fatalf("redis: %v", err)
	}
	return &RedisContainer{Host: host, Port: port}
}

// =============================================================================
// MongoDB
// =============================================================================

// MongoContainer — параметры подключения к тестовой MongoDB.
type MongoContainer struct {
	Host string
	Port string
}

// URI возвращает строку подключения для mongo-driver.
func (c *MongoContainer) URI() string {
	return fmt.Sprintf("mongodb://%s:%s", c.Host, c.Port)
}

// Mongo поднимает MongoDB в Docker.
func Mongo(t *testing.T) *MongoContainer {
	t.Helper()
	skipShort(t)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	container, err := mongodb.Run(ctx,
		"mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("mongo container: %v", err)
	}
	terminateOnCleanup(t, container)

	mapped, err := container.MappedPort(ctx, "27017")
	host, port, err := endpoint(ctx, container, mapped, err)
	if err != nil {
		t.Fatalf("mongo: %v", err)
	}
	return &MongoContainer{Host: host, Port: port}
}

// =============================================================================
// ClickHouse
// =============================================================================

// ClickHouseContainer — параметры подключения к тестовому ClickHouse (нативный протокол).
type ClickHouseContainer struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// ClickHouse поднимает ClickHouse в Docker.
func ClickHouse(t *testing.T) *ClickHouseContainer {
	t.Helper()
	skipShort(t)

	const (
		user     = "default"
		password = ""
		database = "default"
	)
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	container, err := clickhouse.Run(ctx,
		"clickhouse/clickhouse-server:24-alpine",
		clickhouse.WithUsername(user),
		clickhouse.WithPassword(password),
		clickhouse.WithDatabase(database),
	)
	if err != nil {
		t.Fatalf("clickhouse container: %v", err)
	}
	terminateOnCleanup(t, container)

	mapped, err := container.MappedPort(ctx, "9000")
	host, port, err := endpoint(ctx, container, mapped, err)
	if err != nil {
		t.Fatalf("clickhouse: %v", err)
	}
	return &ClickHouseContainer{Host: host, Port: port, User: user, Password: password, Database: database}
}
