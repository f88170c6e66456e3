package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when the referenced product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ErrCategoryNotFound is returned when the referenced category does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// ProductRepository defines the interface for product storage. It never
// writes stock_quantity; stock mutations go through the stock ledger.
type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	GetBySKU(ctx context.Context, sku string) (*Product, error)
	ListActive(ctx context.Context, limit, offset int) ([]*Product, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*Product, error)
	Search(ctx context.Context, query string) ([]*Product, error)
	ListLowStock(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	ExistsBySKUExcluding(ctx context.Context, sku string, id uuid.UUID) (bool, error)
}

// CategoryRepository defines the interface for category storage.
type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, c *Category) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}
