package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/pkg/numfmt"
	"lizzyKeypad/internal/ports"
)

var _ ports.IOperationRepository = (*OperationRepo)(nil)

// OperationRepo реализует ports.IOperationRepository для SQLite.
// Числа хранятся текстом (numfmt.Encode): SQLite превращает NaN в NULL.
type OperationRepo struct {
	db  *DB
	log *slog.Logger
}

// NewOperationRepo возвращает репозиторий операций.
func NewOperationRepo(db *DB, log *slog.Logger) *OperationRepo {
	if log == nil {
		log = slog.Default()
	}
	return &OperationRepo{db: db, log: log}
}

// SaveOperation сохраняет операцию в БД.
func (r *OperationRepo) SaveOperation(ctx context.Context, op domain.Operation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO operations (session_id, number1, number2, operation, result, display, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		op.SessionID,
		numfmt.Encode(op.Number1),
		numfmt.Encode(op.Number2),
		string(op.Operation),
		numfmt.Encode(op.Result),
		op.Display,
		op.Timestamp.UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("sqlite insert operation: %w", err)
	}
	r.log.Debug("operation inserted", "session", op.SessionID, "display", op.Display)
	return nil
}

// GetHistory возвращает историю операций (последние сначала).
func (r *OperationRepo) GetHistory(ctx context.Context) ([]domain.Operation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, number1, number2, operation, result, display, created_at
		 FROM operations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("sqlite select history: %w", err)
	}
	defer rows.Close()

	list := make([]domain.Operation, 0)
	for rows.Next() {
		var (
			op                       domain.Operation
			number1, number2, result string
			operator                 string
			createdAt                int64
		)
		if err := rows.Scan(&op.ID, &op.SessionID, &number1, &number2, &operator, &result, &op.Display, &createdAt); err != nil {
			return nil, err
		}
		if op.Number1, err = numfmt.Decode(number1); err != nil {
			return nil, fmt.Errorf("operation %d number1: %w", op.ID, err)
		}
		if op.Number2, err = numfmt.Decode(number2); err != nil {
			return nil, fmt.Errorf("operation %d number2: %w", op.ID, err)
		}
		if op.Result, err = numfmt.Decode(result); err != nil {
			return nil, fmt.Errorf("operation %d result: %w", op.ID, err)
		}
		op.Operation = domain.Operator(operator)
		op.Timestamp = time.UnixMilli(createdAt).UTC()
		list = append(list, op)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *OperationRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
