package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func requireDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(dec(t, want)), "expected %s, got %s", want, got)
}

func TestItemSubtotal(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name     string
		price    string
		quantity int
		want     string
		wantErr  error
	}{
		{name: "simple multiply", price: "10.00", quantity: 3, want: "30.00"},
		{name: "rounds half up", price: "0.335", quantity: 1, want: "0.34"},
		{name: "zero quantity rejected", price: "10.00", quantity: 0, wantErr: ErrNonPositiveQuantity},
		{name: "negative quantity rejected", price: "10.00", quantity: -2, wantErr: ErrNonPositiveQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ItemSubtotal(dec(t, tt.price), tt.quantity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			requireDecimalEqual(t, tt.want, got)
		})
	}
}

func TestOrderTotal(t *testing.T) {
	c := NewCalculator()

	total := c.OrderTotal([]decimal.Decimal{dec(t, "10.00"), dec(t, "19.99"), dec(t, "0.01")})
	requireDecimalEqual(t, "30.00", total)

	requireDecimalEqual(t, "0", c.OrderTotal(nil))
}

func TestTotalWithTax(t *testing.T) {
	c := NewCalculator()

	requireDecimalEqual(t, "119.00", c.TotalWithTax(dec(t, "100.00")))

	// Tax is rounded on its own before the addition.
	requireDecimalEqual(t, "11.89", c.TotalWithTax(dec(t, "9.99")))
}

func TestTotalWithTaxCustomRate(t *testing.T) {
	c := NewCalculatorWithTaxRate(dec(t, "0.07"))
	requireDecimalEqual(t, "107.00", c.TotalWithTax(dec(t, "100.00")))
}

func TestProfitMargin(t *testing.T) {
	c := NewCalculator()

	margin, err := c.ProfitMargin(dec(t, "150.00"), dec(t, "100.00"))
	require.NoError(t, err)
	requireDecimalEqual(t, "0.3333", margin)

	_, err = c.ProfitMargin(dec(t, "150.00"), decimal.Zero)
	require.ErrorIs(t, err, ErrZeroPurchasePrice)

	_, err = c.ProfitMargin(decimal.Zero, dec(t, "100.00"))
	require.ErrorIs(t, err, ErrZeroSalePrice)
}

func TestProfitAmount(t *testing.T) {
	c := NewCalculator()
	requireDecimalEqual(t, "50.00", c.ProfitAmount(dec(t, "150.00"), dec(t, "100.00")))
}

func TestIsValidSalePrice(t *testing.T) {
	c := NewCalculator()
	require.True(t, c.IsValidSalePrice(dec(t, "150.00"), dec(t, "100.00")))
	require.False(t, c.IsValidSalePrice(dec(t, "100.00"), dec(t, "100.00")))
	require.False(t, c.IsValidSalePrice(dec(t, "99.99"), dec(t, "100.00")))
}

func TestSuggestedSalePrice(t *testing.T) {
	c := NewCalculator()

	suggested, err := c.SuggestedSalePrice(dec(t, "100.00"), dec(t, "0.30"))
	require.NoError(t, err)
	requireDecimalEqual(t, "142.86", suggested)

	_, err = c.SuggestedSalePrice(dec(t, "100.00"), dec(t, "-0.10"))
	require.ErrorIs(t, err, ErrNegativeMargin)

	_, err = c.SuggestedSalePrice(dec(t, "100.00"), dec(t, "1"))
	require.ErrorIs(t, err, ErrMarginTooHigh)
}

func TestVolumeDiscount(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		quantity int
		want     string
	}{
		{quantity: 1, want: "100.00"},
		{quantity: 19, want: "100.00"},
		{quantity: 20, want: "98.00"},
		{quantity: 49, want: "98.00"},
		{quantity: 50, want: "95.00"},
		{quantity: 99, want: "95.00"},
		{quantity: 100, want: "90.00"},
		{quantity: 500, want: "90.00"},
	}
	for _, tt := range tests {
		got := c.VolumeDiscount(dec(t, "100.00"), tt.quantity)
		requireDecimalEqual(t, tt.want, got)
	}
}
