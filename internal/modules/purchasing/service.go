// Package purchasing advises purchase orders: it joins the low-stock view
// of the catalog with the replenishment rules and purchase pricing. It is
// read-only and never touches the stock ledger.
package purchasing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/arka-distribution/arka-backend/internal/modules/catalog"
	"github.com/arka-distribution/arka-backend/internal/modules/pricing"
	"github.com/arka-distribution/arka-backend/internal/modules/stock"
)

// LowStockLister is the catalog view the advisor consumes.
type LowStockLister interface {
	ListLowStock(ctx context.Context) ([]*catalog.Product, error)
}

// Service computes replenishment suggestions.
type Service interface {
	Suggestions(ctx context.Context) (*ReplenishmentPlan, error)
}

// SuggestionLine is one product worth reordering.
type SuggestionLine struct {
	ProductID         uuid.UUID       `json:"product_id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	StockQuantity     int             `json:"stock_quantity"`
	MinimumStock      int             `json:"minimum_stock"`
	SuggestedQuantity int             `json:"suggested_quantity"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`
}

// ReplenishmentPlan lists suggested reorders and their estimated total cost.
type ReplenishmentPlan struct {
	Lines []SuggestionLine `json:"lines"`
	Total decimal.Decimal  `json:"total"`
}

type service struct {
	products LowStockLister
	calc     *pricing.Calculator
	log      *zap.Logger
}

// NewService creates a new purchasing advisor.
func NewService(products LowStockLister, calc *pricing.Calculator, log *zap.Logger) Service {
	return &service{products: products, calc: calc, log: log}
}

func (s *service) Suggestions(ctx context.Context) (*ReplenishmentPlan, error) {
	candidates, err := s.products.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	// the lister is not trusted to have applied the predicate
	candidates = stock.ReplenishmentCandidates(candidates)

	plan := &ReplenishmentPlan{Lines: []SuggestionLine{}, Total: decimal.Zero}
	for _, p := range candidates {
		qty := stock.SuggestedQuantity(p, 0)
		if qty == 0 {
			// minimum stock of zero yields nothing to order
			continue
		}
		unit := s.calc.VolumeDiscount(p.PurchasePrice, qty)
		lineCost, err := s.calc.ItemSubtotal(unit, qty)
		if err != nil {
			return nil, err
		}
		plan.Lines = append(plan.Lines, SuggestionLine{
			ProductID:         p.ID,
			SKU:               p.SKU,
			Name:              p.Name,
			StockQuantity:     p.StockQuantity,
			MinimumStock:      p.MinimumStock,
			SuggestedQuantity: qty,
			UnitCost:          unit,
			EstimatedCost:     lineCost,
		})
		plan.Total = plan.Total.Add(lineCost)
	}
	plan.Total = plan.Total.Round(2)
	s.log.Info("replenishment plan computed",
		zap.Int("candidates", len(candidates)),
		zap.Int("lines", len(plan.Lines)),
		zap.String("total", plan.Total.String()))
	return plan, nil
}
