package stock

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/arka-distribution/arka-backend/internal/modules/catalog"
)

func product(stock, minimum int, active bool) *catalog.Product {
	return &catalog.Product{
		ID:            uuid.New(),
		StockQuantity: stock,
		MinimumStock:  minimum,
		Active:        active,
	}
}

func TestRequiresReplenishment(t *testing.T) {
	tests := []struct {
		name    string
		product *catalog.Product
		want    bool
	}{
		{name: "below minimum", product: product(5, 10, true), want: true},
		{name: "at minimum", product: product(10, 10, true), want: true},
		{name: "above minimum", product: product(11, 10, true), want: false},
		{name: "inactive never qualifies", product: product(0, 10, false), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RequiresReplenishment(tt.product))
		})
	}
}

func TestSuggestedQuantity(t *testing.T) {
	tests := []struct {
		name    string
		product *catalog.Product
		target  int
		want    int
	}{
		{name: "default target is twice the minimum", product: product(5, 10, true), target: 0, want: 15},
		{name: "target at minimum floored to twice the minimum", product: product(5, 10, true), target: 10, want: 15},
		{name: "target below minimum floored too", product: product(5, 10, true), target: 8, want: 15},
		{name: "explicit target above minimum honored", product: product(5, 10, true), target: 30, want: 25},
		{name: "stock above target yields zero", product: product(40, 10, true), target: 30, want: 0},
		{name: "zero minimum yields zero", product: product(0, 0, true), target: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SuggestedQuantity(tt.product, tt.target))
		})
	}
}

func TestReplenishmentCandidates(t *testing.T) {
	low1 := product(1, 10, true)
	ok := product(50, 10, true)
	low2 := product(2, 10, true)
	inactive := product(0, 10, false)

	got := ReplenishmentCandidates([]*catalog.Product{low1, ok, low2, inactive})

	// input order is preserved, no re-sorting
	require.Equal(t, []*catalog.Product{low1, low2}, got)
}

func TestReplenishmentCandidatesEmpty(t *testing.T) {
	require.Empty(t, ReplenishmentCandidates(nil))
	require.Empty(t, ReplenishmentCandidates([]*catalog.Product{product(50, 10, true)}))
}
