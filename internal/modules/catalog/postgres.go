package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

const productColumns = `id, sku, name, description, brand, purchase_price, sale_price,
stock_quantity, minimum_stock, weight_kg, dimensions, active, category_id, created_at, updated_at`

type productPostgres struct{ db *sql.DB }

// NewProductPostgresRepository creates a Postgres-backed product repository.
func NewProductPostgresRepository(db *sql.DB) ProductRepository { return &productPostgres{db: db} }

func (r *productPostgres) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, sku, name, description, brand, purchase_price, sale_price,
		   stock_quantity, minimum_stock, weight_kg, dimensions, active, category_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		p.ID, p.SKU, p.Name, p.Description, p.Brand, p.PurchasePrice, p.SalePrice,
		p.StockQuantity, p.MinimumStock, p.Weight, p.Dimensions, p.Active, p.CategoryID)
	return err
}

func (r *productPostgres) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

func (r *productPostgres) GetBySKU(ctx context.Context, sku string) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
	return scanProduct(row)
}

func (r *productPostgres) ListActive(ctx context.Context, limit, offset int) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE active ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r *productPostgres) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE category_id = $1 AND active ORDER BY created_at DESC`, categoryID)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r *productPostgres) Search(ctx context.Context, query string) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE active AND (name ILIKE '%'||$1||'%' OR description ILIKE '%'||$1||'%' OR brand ILIKE '%'||$1||'%')
		ORDER BY name`, query)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r *productPostgres) ListLowStock(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE active AND stock_quantity <= minimum_stock ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

// Update writes every mutable field except stock_quantity, which only the
// stock ledger may change.
func (r *productPostgres) Update(ctx context.Context, p *Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products SET
		  sku=$2, name=$3, description=$4, brand=$5, purchase_price=$6, sale_price=$7,
		  minimum_stock=$8, weight_kg=$9, dimensions=$10, category_id=$11, updated_at=NOW()
		WHERE id=$1`,
		p.ID, p.SKU, p.Name, p.Description, p.Brand, p.PurchasePrice, p.SalePrice,
		p.MinimumStock, p.Weight, p.Dimensions, p.CategoryID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *productPostgres) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET active=$2, updated_at=NOW() WHERE id=$1`, id, active)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *productPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *productPostgres) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1)`, sku).Scan(&exists)
	return exists, err
}

func (r *productPostgres) ExistsBySKUExcluding(ctx context.Context, sku string, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1 AND id <> $2)`, sku, id).Scan(&exists)
	return exists, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProductInto(s rowScanner, p *Product) error {
	return s.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Brand,
		&p.PurchasePrice, &p.SalePrice, &p.StockQuantity, &p.MinimumStock,
		&p.Weight, &p.Dimensions, &p.Active, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
}

func scanProduct(row *sql.Row) (*Product, error) {
	p := &Product{}
	if err := scanProductInto(row, p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanProducts(rows *sql.Rows) ([]*Product, error) {
	defer rows.Close()
	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := scanProductInto(rows, p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// ---- Category ----

type categoryPostgres struct{ db *sql.DB }

// NewCategoryPostgresRepository creates a Postgres-backed category repository.
func NewCategoryPostgresRepository(db *sql.DB) CategoryRepository { return &categoryPostgres{db: db} }

func (r *categoryPostgres) Create(ctx context.Context, c *Category) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, description, active) VALUES ($1,$2,$3,$4)`,
		c.ID, c.Name, c.Description, c.Active)
	return err
}

func (r *categoryPostgres) GetByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	c := &Category{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, active, created_at, updated_at
		FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *categoryPostgres) List(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, active, created_at, updated_at
		FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var categories []*Category
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoryPostgres) Update(ctx context.Context, c *Category) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE categories SET name=$2, description=$3, active=$4, updated_at=NOW() WHERE id=$1`,
		c.ID, c.Name, c.Description, c.Active)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *categoryPostgres) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE lower(name) = lower($1))`, name).Scan(&exists)
	return exists, err
}
