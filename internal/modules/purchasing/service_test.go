package purchasing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arka-distribution/arka-backend/internal/modules/catalog"
	"github.com/arka-distribution/arka-backend/internal/modules/pricing"
)

type fakeLister struct{ products []*catalog.Product }

func (f *fakeLister) ListLowStock(ctx context.Context) ([]*catalog.Product, error) {
	return f.products, nil
}

func lowStockProduct(sku string, stock, minimum int, purchasePrice string) *catalog.Product {
	price, _ := decimal.NewFromString(purchasePrice)
	return &catalog.Product{
		ID:            uuid.New(),
		SKU:           sku,
		Name:          sku,
		PurchasePrice: price,
		StockQuantity: stock,
		MinimumStock:  minimum,
		Active:        true,
	}
}

func TestSuggestions(t *testing.T) {
	ctx := context.Background()
	calc := pricing.NewCalculator()

	// stock 5, min 10 -> suggested 15; 15 units earn no volume discount
	p1 := lowStockProduct("ARKA-001", 5, 10, "100.00")
	// stock 10, min 30 -> suggested 50; 50 units earn the 5% tier
	p2 := lowStockProduct("ARKA-002", 10, 30, "10.00")

	svc := NewService(&fakeLister{products: []*catalog.Product{p1, p2}}, calc, zap.NewNop())

	plan, err := svc.Suggestions(ctx)
	require.NoError(t, err)
	require.Len(t, plan.Lines, 2)

	require.Equal(t, 15, plan.Lines[0].SuggestedQuantity)
	require.True(t, plan.Lines[0].UnitCost.Equal(decimal.New(100, 0)), "got %s", plan.Lines[0].UnitCost)
	require.True(t, plan.Lines[0].EstimatedCost.Equal(decimal.New(1500, 0)), "got %s", plan.Lines[0].EstimatedCost)

	require.Equal(t, 50, plan.Lines[1].SuggestedQuantity)
	require.True(t, plan.Lines[1].UnitCost.Equal(decimal.New(95, -1)), "got %s", plan.Lines[1].UnitCost)
	require.True(t, plan.Lines[1].EstimatedCost.Equal(decimal.New(475, 0)), "got %s", plan.Lines[1].EstimatedCost)

	require.True(t, plan.Total.Equal(decimal.New(1975, 0)), "got %s", plan.Total)
}

func TestSuggestionsSkipsZeroQuantity(t *testing.T) {
	calc := pricing.NewCalculator()
	// min 0 and stock 0: candidate by predicate, but nothing to order
	p := lowStockProduct("ARKA-003", 0, 0, "10.00")

	svc := NewService(&fakeLister{products: []*catalog.Product{p}}, calc, zap.NewNop())
	plan, err := svc.Suggestions(context.Background())
	require.NoError(t, err)
	require.Empty(t, plan.Lines)
	require.True(t, plan.Total.IsZero())
}

func TestSuggestionsFiltersNonCandidates(t *testing.T) {
	calc := pricing.NewCalculator()
	healthy := lowStockProduct("ARKA-004", 100, 10, "10.00")
	inactive := lowStockProduct("ARKA-005", 0, 10, "10.00")
	inactive.Active = false

	svc := NewService(&fakeLister{products: []*catalog.Product{healthy, inactive}}, calc, zap.NewNop())
	plan, err := svc.Suggestions(context.Background())
	require.NoError(t, err)
	require.Empty(t, plan.Lines)
}
