package stock

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arka-distribution/arka-backend/internal/modules/catalog"
)

// ErrInvalidQuantity is returned for non-positive quantities, before any
// lookup or mutation.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// ErrInactiveProduct is returned when a reservation targets a deactivated
// product. Inactive products can still be restocked, but not reserved.
var ErrInactiveProduct = errors.New("product is inactive")

// ErrLedgerInconsistency means a release or restock failed against a
// product the caller had successfully reserved. This is a defect signal,
// not a business outcome: released units can no longer be reconciled.
var ErrLedgerInconsistency = errors.New("stock ledger inconsistency")

// ProductReader is the catalog lookup the reservation service needs.
type ProductReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
}

// Service implements the reserve -> (confirm | release) protocol on top of
// the ledger primitives. A reservation is not a stored entity: it is a
// debited quantity the caller is responsible for confirming or releasing.
type Service interface {
	// Reserve debits stock for an anticipated sale. The boolean is the
	// business outcome: false means insufficient stock and is not an
	// error. The ledger's guarded decrement is the single source of
	// truth for sufficiency; the service never pre-checks the quantity
	// against a separately read value.
	Reserve(ctx context.Context, productID uuid.UUID, quantity int) (bool, error)

	// Release returns previously reserved units to availability. A guard
	// failure here means the product vanished after reservation and
	// surfaces as ErrLedgerInconsistency.
	Release(ctx context.Context, productID uuid.UUID, quantity int) error

	// ConfirmSale finalizes a reservation. Stock was already debited at
	// reserve time, so this touches nothing and returns the current
	// product snapshot for downstream use such as invoicing.
	ConfirmSale(ctx context.Context, productID uuid.UUID, quantity int) (*catalog.Product, error)

	// Restock adds received units. Allowed for inactive products.
	Restock(ctx context.Context, productID uuid.UUID, quantity int) error

	// SetStock performs an administrative stock correction.
	SetStock(ctx context.Context, productID uuid.UUID, quantity int) (*catalog.Product, error)
}

type service struct {
	products ProductReader
	ledger   Ledger
	log      *zap.Logger
}

// NewService creates a new reservation service.
func NewService(products ProductReader, ledger Ledger, log *zap.Logger) Service {
	return &service{products: products, ledger: ledger, log: log}
}

func (s *service) Reserve(ctx context.Context, productID uuid.UUID, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, ErrInvalidQuantity
	}
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return false, err
	}
	if !p.Active {
		return false, fmt.Errorf("%w: %s", ErrInactiveProduct, p.SKU)
	}

	ok, err := s.ledger.TryDecrement(ctx, productID, quantity)
	if err != nil {
		return false, err
	}
	if ok {
		s.log.Info("stock reserved",
			zap.String("product_id", productID.String()),
			zap.Int("quantity", quantity))
	} else {
		s.log.Warn("reservation rejected: insufficient stock",
			zap.String("product_id", productID.String()),
			zap.Int("quantity", quantity))
	}
	return ok, nil
}

func (s *service) Release(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	ok, err := s.ledger.TryIncrement(ctx, productID, quantity)
	if err != nil {
		return err
	}
	if !ok {
		s.log.Error("release failed: reserved product missing from ledger",
			zap.String("product_id", productID.String()),
			zap.Int("quantity", quantity))
		return fmt.Errorf("%w: release of %d units against product %s", ErrLedgerInconsistency, quantity, productID)
	}
	s.log.Info("stock released",
		zap.String("product_id", productID.String()),
		zap.Int("quantity", quantity))
	return nil
}

func (s *service) ConfirmSale(ctx context.Context, productID uuid.UUID, quantity int) (*catalog.Product, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	// Quantity is not re-validated: the contract requires the caller to
	// have reserved first, and the debit already happened then.
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	s.log.Info("sale confirmed",
		zap.String("product_id", productID.String()),
		zap.Int("quantity", quantity))
	return p, nil
}

func (s *service) Restock(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	ok, err := s.ledger.TryIncrement(ctx, productID, quantity)
	if err != nil {
		return err
	}
	if !ok {
		return catalog.ErrProductNotFound
	}
	s.log.Info("stock received",
		zap.String("product_id", productID.String()),
		zap.Int("quantity", quantity))
	return nil
}

func (s *service) SetStock(ctx context.Context, productID uuid.UUID, quantity int) (*catalog.Product, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	ok, err := s.ledger.TrySet(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	s.log.Info("stock corrected",
		zap.String("product_id", productID.String()),
		zap.Int("quantity", quantity))
	return s.products.GetByID(ctx, productID)
}
