package stock

import "github.com/arka-distribution/arka-backend/internal/modules/catalog"

// RequiresReplenishment reports whether an active product has fallen to or
// below its minimum stock. Inactive products never qualify.
func RequiresReplenishment(p *catalog.Product) bool {
	return p.Active && p.StockQuantity <= p.MinimumStock
}

// SuggestedQuantity computes how many units to reorder to reach targetLevel.
// A target at or below the product's minimum stock is overridden to twice
// the minimum; this floor is business policy, so a caller-supplied target
// smaller than the minimum is deliberately ignored. Passing 0 selects the
// default target.
func SuggestedQuantity(p *catalog.Product, targetLevel int) int {
	if targetLevel <= p.MinimumStock {
		targetLevel = 2 * p.MinimumStock
	}
	if n := targetLevel - p.StockQuantity; n > 0 {
		return n
	}
	return 0
}

// ReplenishmentCandidates filters active products that need replenishment,
// preserving the input order.
func ReplenishmentCandidates(products []*catalog.Product) []*catalog.Product {
	var candidates []*catalog.Product
	for _, p := range products {
		if RequiresReplenishment(p) {
			candidates = append(candidates, p)
		}
	}
	return candidates
}
