package pg

import (
	"context"
	"fmt"
	"log/slog"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/ports"
)

var _ ports.IOperationRepository = (*OperationRepo)(nil)

const (
	insertOperation = `
INSERT INTO operations (session_id, number1, number2, operation, result, display, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectHistory = `
SELECT id, session_id, number1, number2, operation, result, display, created_at
FROM operations
ORDER BY created_at DESC, id DESC`
)

// OperationRepo — история операций в PostgreSQL. DOUBLE PRECISION хранит Infinity и NaN без потерь.
type OperationRepo struct {
	db  *DB
	log *slog.Logger
}

func NewOperationRepo(db *DB, log *slog.Logger) *OperationRepo {
	if log == nil {
		log = slog.Default()
	}
	return &OperationRepo{db: db, log: log}
}

func (r *OperationRepo) SaveOperation(ctx context.Context, op domain.Operation) error {
	_, err := r.db.ExecContext(ctx, insertOperation,
		op.SessionID, op.Number1, op.Number2, string(op.Operation), op.Result, op.Display, op.Timestamp)
	if err != nil {
		return fmt.Errorf("pg insert operation: %w", err)
	}
	r.log.Debug("operation inserted", "session", op.SessionID, "display", op.Display)
	return nil
}

// GetHistory — все операции, новые первыми.
func (r *OperationRepo) GetHistory(ctx context.Context) ([]domain.Operation, error) {
	rows, err := r.db.QueryContext(ctx, selectHistory)
	if err != nil {
		return nil, fmt.Errorf("pg select history: %w", err)
	}
	defer rows.Close()

	list := make([]domain.Operation, 0)
	for rows.Next() {
		var (
			op       domain.Operation
			operator string
		)
		if err := rows.Scan(&op.ID, &op.SessionID, &op.Number1, &op.Number2, &operator, &op.Result, &op.Display, &op.Timestamp); err != nil {
			return nil, fmt.Errorf("pg scan operation: %w", err)
		}
		op.Operation = domain.Operator(operator)
		list = append(list, op)
	}
	return list, rows.Err()
}

func (r *OperationRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
