package stock

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresLedger struct{ db *sql.DB }

// NewPostgresLedger creates a Postgres-backed stock ledger. Every mutation
// is a single UPDATE whose WHERE clause carries the guard, so the check and
// the write commit as one indivisible statement.
func NewPostgresLedger(db *sql.DB) Ledger { return &postgresLedger{db: db} }

func (l *postgresLedger) TrySet(ctx context.Context, productID uuid.UUID, quantity int) (bool, error) {
	if quantity < 0 {
		return false, nil
	}
	res, err := l.db.ExecContext(ctx,
		`UPDATE products SET stock_quantity=$2, updated_at=NOW() WHERE id=$1`,
		productID, quantity)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (l *postgresLedger) TryDecrement(ctx context.Context, productID uuid.UUID, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, nil
	}
	res, err := l.db.ExecContext(ctx, `
		UPDATE products SET stock_quantity = stock_quantity - $2, updated_at = NOW()
		WHERE id = $1 AND stock_quantity >= $2`,
		productID, quantity)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (l *postgresLedger) TryIncrement(ctx context.Context, productID uuid.UUID, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, nil
	}
	res, err := l.db.ExecContext(ctx, `
		UPDATE products SET stock_quantity = stock_quantity + $2, updated_at = NOW()
		WHERE id = $1`,
		productID, quantity)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
