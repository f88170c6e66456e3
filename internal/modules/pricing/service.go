package pricing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arka-distribution/arka-backend/internal/modules/catalog"
)

// ProductReader is the catalog lookup the pricing service needs.
type ProductReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
}

// Service exposes pricing queries over catalog products.
type Service interface {
	ProductMargin(ctx context.Context, productID uuid.UUID) (*MarginReport, error)
	SuggestPrice(ctx context.Context, productID uuid.UUID, minMargin decimal.Decimal) (*PriceSuggestion, error)
	Quote(ctx context.Context, req QuoteRequest) (*Quote, error)
}

// MarginReport describes the profitability of one product.
type MarginReport struct {
	ProductID     uuid.UUID       `json:"product_id"`
	SKU           string          `json:"sku"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Margin        decimal.Decimal `json:"margin"`
	Profit        decimal.Decimal `json:"profit"`
	PriceIsValid  bool            `json:"price_is_valid"`
}

// PriceSuggestion is a sale price derived from cost and a minimum margin.
type PriceSuggestion struct {
	ProductID      uuid.UUID       `json:"product_id"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	MinimumMargin  decimal.Decimal `json:"minimum_margin"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
}

// QuoteRequest asks for a priced order.
type QuoteRequest struct {
	Items []QuoteItemRequest `json:"items"`
}

// QuoteItemRequest is one line of a quote request.
type QuoteItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// QuoteItem is one priced line: the unit price after volume discount times
// the quantity.
type QuoteItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Quote is a fully priced order.
type Quote struct {
	Items    []QuoteItem     `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

type service struct {
	products ProductReader
	calc     *Calculator
}

// NewService creates a new pricing service.
func NewService(products ProductReader, calc *Calculator) Service {
	return &service{products: products, calc: calc}
}

func (s *service) ProductMargin(ctx context.Context, productID uuid.UUID) (*MarginReport, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	margin, err := s.calc.ProfitMargin(p.SalePrice, p.PurchasePrice)
	if err != nil {
		return nil, fmt.Errorf("margin for product %s: %w", p.SKU, err)
	}
	return &MarginReport{
		ProductID:     p.ID,
		SKU:           p.SKU,
		SalePrice:     p.SalePrice,
		PurchasePrice: p.PurchasePrice,
		Margin:        margin,
		Profit:        s.calc.ProfitAmount(p.SalePrice, p.PurchasePrice),
		PriceIsValid:  s.calc.IsValidSalePrice(p.SalePrice, p.PurchasePrice),
	}, nil
}

func (s *service) SuggestPrice(ctx context.Context, productID uuid.UUID, minMargin decimal.Decimal) (*PriceSuggestion, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	suggested, err := s.calc.SuggestedSalePrice(p.PurchasePrice, minMargin)
	if err != nil {
		return nil, err
	}
	return &PriceSuggestion{
		ProductID:      p.ID,
		PurchasePrice:  p.PurchasePrice,
		MinimumMargin:  minMargin,
		SuggestedPrice: suggested,
	}, nil
}

func (s *service) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: quote needs at least one item", catalog.ErrValidation)
	}
	items := make([]QuoteItem, 0, len(req.Items))
	subtotals := make([]decimal.Decimal, 0, len(req.Items))
	for _, item := range req.Items {
		id, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid product_id %q", catalog.ErrValidation, item.ProductID)
		}
		p, err := s.products.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		unit := s.calc.VolumeDiscount(p.SalePrice, item.Quantity)
		subtotal, err := s.calc.ItemSubtotal(unit, item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", p.SKU, err)
		}
		items = append(items, QuoteItem{
			ProductID: p.ID,
			SKU:       p.SKU,
			Quantity:  item.Quantity,
			UnitPrice: unit,
			Subtotal:  subtotal,
		})
		subtotals = append(subtotals, subtotal)
	}
	orderSubtotal := s.calc.OrderTotal(subtotals)
	total := s.calc.TotalWithTax(orderSubtotal)
	return &Quote{
		Items:    items,
		Subtotal: orderSubtotal,
		TaxRate:  s.calc.TaxRate(),
		Tax:      total.Sub(orderSubtotal),
		Total:    total,
	}, nil
}
