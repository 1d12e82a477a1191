package mongo

import (
	"context"
	"log/slog"
	"math"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/pkg/testutil"
)

// setupMongoRepo поднимает MongoDB и возвращает репозиторий на пустой коллекции.
func setupMongoRepo(t *testing.T) *OperationRepo {
	t.Helper()

	c := testutil.Mongo(t)
	ctx := context.Background()

	client, err := New(ctx, &Config{
		URI:        c.URI(),
		Database:   "testdb",
		Collection: "operations",
	})
	require.NoError(t, err, "не удалось подключиться к MongoDB")
	t.Cleanup(func() {
		client.Close(context.Background())
	})

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	repo := NewOperationRepo(client, log)
	require.NoError(t, repo.EnsureIndexes(ctx), "не удалось создать индексы")
	return repo
}

func TestMongoRepo_SaveAndGetHistory(t *testing.T) {
	repo := setupMongoRepo(t)
	ctx := context.Background()

	now := time.Now()
	first := domain.Operation{SessionID: "s1", Number1: 10, Number2: 5, Operation: domain.OpAdd, Result: 15, Display: "15", Timestamp: now.Add(-time.Second)}
	second := domain.Operation{SessionID: "s1", Number1: 0, Number2: 0, Operation: domain.OpDiv, Result: math.NaN(), Display: "NaN", Timestamp: now}

	require.NoError(t, repo.SaveOperation(ctx, first), "SaveOperation должен успешно сохранить")
	require.NoError(t, repo.SaveOperation(ctx, second))

	history, err := repo.GetHistory(ctx)
	require.NoError(t, err, "GetHistory должен успешно вернуть данные")

	require.Len(t, history, 2)
	assert.Equal(t, "NaN", history[0].Display, "последние сначала")
	assert.True(t, math.IsNaN(history[0].Result))
	assert.Equal(t, 15.0, history[1].Result, "результат должен совпадать")
	assert.Equal(t, domain.OpAdd, history[1].Operation, "операция должна совпадать")
	assert.Equal(t, "s1", history[1].SessionID)

	assert.NoError(t, repo.Ping(ctx))
}

// Повторное создание индексов не падает.
func TestMongoRepo_EnsureIndexesIdempotent(t *testing.T) {
	repo := setupMongoRepo(t)

	assert.NoError(t, repo.EnsureIndexes(context.Background()))
}

func TestMongoRepo_EmptyHistory(t *testing.T) {
	repo := setupMongoRepo(t)

	history, err := repo.GetHistory(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}
