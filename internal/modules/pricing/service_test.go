package pricing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/arka-distribution/arka-backend/internal/modules/catalog"
)

type fakeReader struct{ products map[uuid.UUID]*catalog.Product }

func (f *fakeReader) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return p, nil
}

func newTestPricing(t *testing.T, products ...*catalog.Product) Service {
	t.Helper()
	reader := &fakeReader{products: make(map[uuid.UUID]*catalog.Product)}
	for _, p := range products {
		reader.products[p.ID] = p
	}
	return NewService(reader, NewCalculator())
}

func testProduct(t *testing.T, sale, purchase string) *catalog.Product {
	t.Helper()
	return &catalog.Product{
		ID:            uuid.New(),
		SKU:           "ARKA-100",
		SalePrice:     dec(t, sale),
		PurchasePrice: dec(t, purchase),
		Active:        true,
	}
}

func TestProductMargin(t *testing.T) {
	p := testProduct(t, "150.00", "100.00")
	svc := newTestPricing(t, p)

	report, err := svc.ProductMargin(context.Background(), p.ID)
	require.NoError(t, err)
	requireDecimalEqual(t, "0.3333", report.Margin)
	requireDecimalEqual(t, "50.00", report.Profit)
	require.True(t, report.PriceIsValid)

	_, err = svc.ProductMargin(context.Background(), uuid.New())
	require.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestProductMarginZeroPurchasePrice(t *testing.T) {
	p := testProduct(t, "150.00", "0")
	svc := newTestPricing(t, p)

	_, err := svc.ProductMargin(context.Background(), p.ID)
	require.ErrorIs(t, err, ErrZeroPurchasePrice)
}

func TestSuggestPrice(t *testing.T) {
	p := testProduct(t, "150.00", "100.00")
	svc := newTestPricing(t, p)

	suggestion, err := svc.SuggestPrice(context.Background(), p.ID, dec(t, "0.30"))
	require.NoError(t, err)
	requireDecimalEqual(t, "142.86", suggestion.SuggestedPrice)

	_, err = svc.SuggestPrice(context.Background(), p.ID, dec(t, "-0.1"))
	require.ErrorIs(t, err, ErrNegativeMargin)
}

func TestQuote(t *testing.T) {
	p := testProduct(t, "100.00", "60.00")
	svc := newTestPricing(t, p)

	quote, err := svc.Quote(context.Background(), QuoteRequest{Items: []QuoteItemRequest{
		{ProductID: p.ID.String(), Quantity: 20},
	}})
	require.NoError(t, err)
	require.Len(t, quote.Items, 1)
	// 2% tier at 20 units: unit 98.00, subtotal 1960.00, tax 372.40
	requireDecimalEqual(t, "98.00", quote.Items[0].UnitPrice)
	requireDecimalEqual(t, "1960.00", quote.Items[0].Subtotal)
	requireDecimalEqual(t, "1960.00", quote.Subtotal)
	requireDecimalEqual(t, "372.40", quote.Tax)
	requireDecimalEqual(t, "2332.40", quote.Total)
}

func TestQuoteErrors(t *testing.T) {
	p := testProduct(t, "100.00", "60.00")
	svc := newTestPricing(t, p)
	ctx := context.Background()

	_, err := svc.Quote(ctx, QuoteRequest{})
	require.ErrorIs(t, err, catalog.ErrValidation)

	_, err = svc.Quote(ctx, QuoteRequest{Items: []QuoteItemRequest{{ProductID: "bad", Quantity: 1}}})
	require.ErrorIs(t, err, catalog.ErrValidation)

	_, err = svc.Quote(ctx, QuoteRequest{Items: []QuoteItemRequest{{ProductID: uuid.NewString(), Quantity: 1}}})
	require.ErrorIs(t, err, catalog.ErrProductNotFound)

	_, err = svc.Quote(ctx, QuoteRequest{Items: []QuoteItemRequest{{ProductID: p.ID.String(), Quantity: 0}}})
	require.ErrorIs(t, err, ErrNonPositiveQuantity)
}
