// Package stock implements the stock control and reservation protocol.
// All changes to a product's stock quantity go through a Ledger, whose
// operations are single atomic conditional updates against the store.
package stock

import (
	"context"

	"github.com/google/uuid"
)

// Ledger owns the authoritative stock quantity per product. Each method is
// one atomic guard-and-write against the durable store: the returned bool
// reports whether the guard held, and a false result carries no side
// effect. The error return is reserved for storage failures.
type Ledger interface {
	// TrySet unconditionally sets the stock quantity. It returns false
	// only if the product does not exist. Used for administrative
	// corrections.
	TrySet(ctx context.Context, productID uuid.UUID, quantity int) (bool, error)

	// TryDecrement subtracts quantity if quantity > 0 and the current
	// stock covers it. This is the sole path for reservations and sales:
	// the guard and the write happen as one step, so two concurrent
	// callers can never both spend the same units.
	TryDecrement(ctx context.Context, productID uuid.UUID, quantity int) (bool, error)

	// TryIncrement adds quantity if quantity > 0. Used for releases and
	// restocking; inactive products may still be restocked.
	TryIncrement(ctx context.Context, productID uuid.UUID, quantity int) (bool, error)
}
