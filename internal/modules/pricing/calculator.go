// Package pricing implements deterministic fixed-point price arithmetic:
// subtotals, tax-inclusive totals, margins and volume discounts. The
// calculator performs no I/O.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrNonPositiveQuantity is returned when a quantity is zero or negative.
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
	// ErrZeroPurchasePrice guards the margin division; it is not a
	// business validity check.
	ErrZeroPurchasePrice = errors.New("purchase price cannot be zero")
	// ErrZeroSalePrice guards the margin division.
	ErrZeroSalePrice = errors.New("sale price cannot be zero")
	// ErrNegativeMargin is returned when a suggested price is requested
	// with a negative minimum margin.
	ErrNegativeMargin = errors.New("minimum margin cannot be negative")
	// ErrMarginTooHigh guards the price suggestion division: a margin of
	// 100% or more has no finite price.
	ErrMarginTooHigh = errors.New("minimum margin must be below 1")
)

const (
	currencyScale = 2
	marginScale   = 4
)

var one = decimal.NewFromInt(1)

// Calculator computes money amounts with half-up rounding at two decimal
// places (four for margins).
type Calculator struct {
	taxRate decimal.Decimal
}

// NewCalculator creates a calculator with the standard 19% tax rate.
func NewCalculator() *Calculator {
	return &Calculator{taxRate: decimal.New(19, -2)}
}

// NewCalculatorWithTaxRate creates a calculator with a custom tax rate.
func NewCalculatorWithTaxRate(rate decimal.Decimal) *Calculator {
	return &Calculator{taxRate: rate}
}

// TaxRate returns the configured tax rate.
func (c *Calculator) TaxRate() decimal.Decimal { return c.taxRate }

// ItemSubtotal computes unit price times quantity, rounded to 2 decimals.
func (c *Calculator) ItemSubtotal(unitSalePrice decimal.Decimal, quantity int) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, ErrNonPositiveQuantity
	}
	return unitSalePrice.Mul(decimal.NewFromInt(int64(quantity))).Round(currencyScale), nil
}

// OrderTotal sums item subtotals, rounded to 2 decimals.
func (c *Calculator) OrderTotal(subtotals []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, s := range subtotals {
		total = total.Add(s)
	}
	return total.Round(currencyScale)
}

// TotalWithTax adds tax to an already-rounded subtotal. The tax itself is
// rounded to 2 decimals before the addition; computing it on the rounded
// subtotal keeps the result reproducible.
func (c *Calculator) TotalWithTax(subtotal decimal.Decimal) decimal.Decimal {
	tax := subtotal.Mul(c.taxRate).Round(currencyScale)
	return subtotal.Add(tax).Round(currencyScale)
}

// ProfitMargin computes (sale - purchase) / sale at 4-decimal precision.
func (c *Calculator) ProfitMargin(salePrice, purchasePrice decimal.Decimal) (decimal.Decimal, error) {
	if purchasePrice.IsZero() {
		return decimal.Zero, ErrZeroPurchasePrice
	}
	if salePrice.IsZero() {
		return decimal.Zero, ErrZeroSalePrice
	}
	return salePrice.Sub(purchasePrice).DivRound(salePrice, marginScale), nil
}

// ProfitAmount computes the absolute profit per unit.
func (c *Calculator) ProfitAmount(salePrice, purchasePrice decimal.Decimal) decimal.Decimal {
	return salePrice.Sub(purchasePrice).Round(currencyScale)
}

// IsValidSalePrice reports whether the sale price exceeds the purchase
// price. Advisory only; writes are not rejected on it.
func (c *Calculator) IsValidSalePrice(salePrice, purchasePrice decimal.Decimal) bool {
	return salePrice.GreaterThan(purchasePrice)
}

// SuggestedSalePrice computes purchase / (1 - minMargin), rounded to 2
// decimals.
func (c *Calculator) SuggestedSalePrice(purchasePrice, minMargin decimal.Decimal) (decimal.Decimal, error) {
	if minMargin.IsNegative() {
		return decimal.Zero, ErrNegativeMargin
	}
	if minMargin.GreaterThanOrEqual(one) {
		return decimal.Zero, ErrMarginTooHigh
	}
	return purchasePrice.DivRound(one.Sub(minMargin), currencyScale), nil
}

// VolumeDiscount applies the tiered quantity discount to a base price:
// 10% from 100 units, 5% from 50, 2% from 20.
func (c *Calculator) VolumeDiscount(basePrice decimal.Decimal, quantity int) decimal.Decimal {
	var rate decimal.Decimal
	switch {
	case quantity >= 100:
		rate = decimal.New(10, -2)
	case quantity >= 50:
		rate = decimal.New(5, -2)
	case quantity >= 20:
		rate = decimal.New(2, -2)
	default:
		return basePrice.Round(currencyScale)
	}
	return basePrice.Sub(basePrice.Mul(rate)).Round(currencyScale)
}
