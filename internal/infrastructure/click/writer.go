package click

import (
	"context"
	"fmt"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/ports"
)

var _ ports.IOperationAnalytics = (*OperationWriter)(nil)

const keypadAnalyticsTable = "default.keypad_operations"

// OperationWriter записывает разрешённые операции клавиатуры в ClickHouse (GROUP BY operation, session, по времени).
type OperationWriter struct {
	db *Client
}

// NewOperationWriter создаёт писатель операций для аналитики.
func NewOperationWriter(db *Client) *OperationWriter {
	return &OperationWriter{db: db}
}

// EnsureTable создаёт таблицу аналитики, если её ещё нет. Вызывается один раз при старте приложения.
func (w *OperationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			session_id String,
			number1 Float64,
			number2 Float64,
			operation LowCardinality(String),
			result Float64,
			display String,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, operation)
		PARTITION BY toYYYYMM(created_at)`,
		keypadAnalyticsTable,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteOperation реализует ports.IOperationAnalytics: пишет одну операцию в ClickHouse.
func (w *OperationWriter) WriteOperation(ctx context.Context, op domain.Operation) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (session_id, number1, number2, operation, result, display, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		keypadAnalyticsTable,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		op.SessionID, op.Number1, op.Number2, string(op.Operation), op.Result, op.Display, op.Timestamp)
	if err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// CountBySession возвращает число записанных операций сессии.
func (w *OperationWriter) CountBySession(ctx context.Context, sessionID string) (uint64, error) {
	var n uint64
	query := fmt.Sprintf("SELECT count() FROM %s WHERE session_id = ?", keypadAnalyticsTable)
	if err := w.db.DB().QueryRowContext(ctx, query, sessionID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count operations: %w", err)
	}
	return n, nil
}
