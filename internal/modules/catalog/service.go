package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrDuplicateSKU is returned when a product create or update would reuse
// an SKU that belongs to another product.
var ErrDuplicateSKU = errors.New("sku already in use")

// ErrValidation wraps request validation failures.
var ErrValidation = errors.New("validation failed")

const maxSKULength = 50

// Service defines catalog business logic for products and categories.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	GetProductBySKU(ctx context.Context, sku string) (*Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]*Product, error)
	ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*Product, error)
	SearchProducts(ctx context.Context, query string) ([]*Product, error)
	LowStockProducts(ctx context.Context) ([]*Product, error)
	ActivateProduct(ctx context.Context, id uuid.UUID) error
	DeactivateProduct(ctx context.Context, id uuid.UUID) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	CreateCategory(ctx context.Context, req CategoryRequest) (*Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req CategoryRequest) (*Category, error)
}

// CreateProductRequest holds the data for creating a product, including its
// initial stock snapshot. After creation, stock changes only through the
// stock ledger.
type CreateProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Brand         string          `json:"brand"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	InitialStock  int             `json:"initial_stock"`
	MinimumStock  int             `json:"minimum_stock"`
	Weight        decimal.Decimal `json:"weight_kg"`
	Dimensions    string          `json:"dimensions"`
	CategoryID    string          `json:"category_id"`
}

// UpdateProductRequest holds the data for updating a product. Stock is
// deliberately absent; corrections go through the stock endpoints.
type UpdateProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Brand         string          `json:"brand"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	MinimumStock  int             `json:"minimum_stock"`
	Weight        decimal.Decimal `json:"weight_kg"`
	Dimensions    string          `json:"dimensions"`
	CategoryID    string          `json:"category_id"`
}

// CategoryRequest holds the data for creating or updating a category.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      *bool  `json:"active,omitempty"`
}

type service struct {
	products   ProductRepository
	categories CategoryRepository
	log        *zap.Logger
}

// NewService creates a new catalog service.
func NewService(products ProductRepository, categories CategoryRepository, log *zap.Logger) Service {
	return &service{products: products, categories: categories, log: log}
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if err := validateSKU(req.SKU); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.InitialStock < 0 || req.MinimumStock < 0 {
		return nil, fmt.Errorf("%w: stock levels cannot be negative", ErrValidation)
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid category_id", ErrValidation)
	}

	exists, err := s.products.ExistsBySKU(ctx, req.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSKU, req.SKU)
	}

	// Conventional, not enforced: a sale price at or below cost is allowed
	// but worth surfacing.
	if !req.SalePrice.GreaterThan(req.PurchasePrice) {
		s.log.Warn("sale price does not exceed purchase price",
			zap.String("sku", req.SKU),
			zap.String("sale_price", req.SalePrice.String()),
			zap.String("purchase_price", req.PurchasePrice.String()))
	}

	p := &Product{
		ID:            uuid.New(),
		SKU:           req.SKU,
		Name:          req.Name,
		Description:   req.Description,
		Brand:         req.Brand,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		StockQuantity: req.InitialStock,
		MinimumStock:  req.MinimumStock,
		Weight:        req.Weight,
		Dimensions:    req.Dimensions,
		Active:        true,
		CategoryID:    categoryID,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("product created", zap.String("id", p.ID.String()), zap.String("sku", p.SKU))
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*Product, error) {
	if err := validateSKU(req.SKU); err != nil {
		return nil, err
	}
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.SKU != req.SKU {
		taken, err := s.products.ExistsBySKUExcluding(ctx, req.SKU, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSKU, req.SKU)
		}
	}

	p.SKU = req.SKU
	p.Name = req.Name
	p.Description = req.Description
	p.Brand = req.Brand
	p.PurchasePrice = req.PurchasePrice
	p.SalePrice = req.SalePrice
	p.MinimumStock = req.MinimumStock
	p.Weight = req.Weight
	p.Dimensions = req.Dimensions
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid category_id", ErrValidation)
		}
		p.CategoryID = categoryID
	}
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("product updated", zap.String("id", id.String()))
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *service) GetProductBySKU(ctx context.Context, sku string) (*Product, error) {
	return s.products.GetBySKU(ctx, sku)
}

func (s *service) ListProducts(ctx context.Context, limit, offset int) ([]*Product, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.products.ListActive(ctx, limit, offset)
}

func (s *service) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*Product, error) {
	return s.products.ListByCategory(ctx, categoryID)
}

func (s *service) SearchProducts(ctx context.Context, query string) ([]*Product, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrValidation)
	}
	return s.products.Search(ctx, query)
}

func (s *service) LowStockProducts(ctx context.Context) ([]*Product, error) {
	return s.products.ListLowStock(ctx)
}

func (s *service) ActivateProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.products.SetActive(ctx, id, true); err != nil {
		return err
	}
	s.log.Info("product activated", zap.String("id", id.String()))
	return nil
}

func (s *service) DeactivateProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.products.SetActive(ctx, id, false); err != nil {
		return err
	}
	s.log.Info("product deactivated", zap.String("id", id.String()))
	return nil
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("product deleted", zap.String("id", id.String()))
	return nil
}

func (s *service) CreateCategory(ctx context.Context, req CategoryRequest) (*Category, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	exists, err := s.categories.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: category %q already exists", ErrValidation, req.Name)
	}
	c := &Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Active:      true,
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetCategory(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.categories.List(ctx)
}

func (s *service) UpdateCategory(ctx context.Context, id uuid.UUID, req CategoryRequest) (*Category, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = req.Name
	c.Description = req.Description
	if req.Active != nil {
		c.Active = *req.Active
	}
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func validateSKU(sku string) error {
	if sku == "" {
		return fmt.Errorf("%w: sku is required", ErrValidation)
	}
	if len(sku) > maxSKULength {
		return fmt.Errorf("%w: sku exceeds %d characters", ErrValidation, maxSKULength)
	}
	return nil
}
