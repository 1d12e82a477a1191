package pg

import (
	"context"
)

const createOperationsTable = `
CREATE TABLE IF NOT EXISTS operations (
	id         SERIAL PRIMARY KEY,
	session_id TEXT NOT NULL,
	number1    DOUBLE PRECISION NOT NULL,
	number2    DOUBLE PRECISION NOT NULL,
	operation  VARCHAR(1) NOT NULL,
	result     DOUBLE PRECISION NOT NULL,
	display    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS operations_created_at_idx ON operations (created_at DESC);
`

// Migrate создаёт таблицу operations, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createOperationsTable)
	return err
}
