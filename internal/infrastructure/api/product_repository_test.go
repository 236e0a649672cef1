package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salimdiab/pos-console/internal/gateway"
)

type staticSession struct{ token string }

func (s staticSession) Token() string { return s.token }
func (s staticSession) Clear() error  { return nil }

func newBackend(t *testing.T, routes map[string]string) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Path
		if r.URL.RawQuery != "" {
			key += "?" + r.URL.RawQuery
		}
		body, ok := routes[key]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return gateway.New(gateway.Config{BaseURL: srv.URL}, staticSession{token: "tok"})
}

func TestListDecodesPageEnvelope(t *testing.T) {
	client := newBackend(t, map[string]string{
		"/products?page=2": `{
			"current_page": 2,
			"data": [{"id": 7, "code": "P7", "name": "Widget", "price": 9.5, "isStockLow": true}],
			"from": 11,
			"last_page": 3,
			"per_page": 10,
			"total": 23,
			"links": [{"url": null, "label": "previous", "page": null, "active": false}]
		}`,
	})
	repo := NewProductRepository(client)

	page, err := repo.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.LastPage)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Widget", page.Data[0].Name)
	assert.True(t, page.Data[0].IsStockLow)
	assert.True(t, page.HasNext())
	assert.True(t, page.HasPrev())
}

func TestSearchAcceptsBareArray(t *testing.T) {
	client := newBackend(t, map[string]string{
		"/products?q=wid": `[{"id": 1, "code": "P1", "name": "Widget", "price": 9.5}]`,
	})
	repo := NewProductRepository(client)

	products, err := repo.Search(context.Background(), "wid")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
}

func TestSearchAcceptsPageEnvelope(t *testing.T) {
	client := newBackend(t, map[string]string{
		"/products?q=wid": `{"current_page": 1, "data": [{"id": 1, "name": "Widget"}], "last_page": 1}`,
	})
	repo := NewProductRepository(client)

	products, err := repo.Search(context.Background(), "wid")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].ID)
}

func TestBySubcategoryUnwrapsResultsEnvelope(t *testing.T) {
	client := newBackend(t, map[string]string{
		"/products/sub/4": `{"number-results": 2, "results": [{"id": 1, "name": "A"}, {"id": 2, "name": "B"}]}`,
	})
	repo := NewProductRepository(client)

	products, err := repo.BySubcategory(context.Background(), 4)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestBySubcategoryEmptyResult(t *testing.T) {
	client := newBackend(t, map[string]string{
		"/products/sub/9": `{"number-results": 0, "results": []}`,
	})
	repo := NewProductRepository(client)

	products, err := repo.BySubcategory(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogFromPageEnvelope(t *testing.T) {
	client := newBackend(t, map[string]string{
		"/products": `{"current_page": 1, "data": [{"id": 1, "name": "Widget", "price": 9.5}], "last_page": 1}`,
	})
	repo := NewProductRepository(client)

	catalog, err := repo.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, 9.5, catalog[0].Price)
}

func TestOverviewDecodesSpacedFieldNames(t *testing.T) {
	client := newBackend(t, map[string]string{
		"/products/overview/1": `{
			"best sellers": [{"product_id": 1, "name": "Widget", "total_quantity": "42"}],
			"worst sellers": [{"product_id": 2, "name": "Gadget", "total_quantity": "1"}]
		}`,
	})
	repo := NewProductRepository(client)

	overview, err := repo.Overview(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, overview.BestSellers, 1)
	assert.Equal(t, "42", overview.BestSellers[0].TotalQuantity)
	require.Len(t, overview.WorstSellers, 1)
	assert.Equal(t, "Gadget", overview.WorstSellers[0].Name)
}

func TestDashboardLowStockCount(t *testing.T) {
	client := newBackend(t, map[string]string{
		"/lowStockCount": `{"number-of-low-stock-items": 5}`,
		"/monthly-rate":  `{"month": 8, "year": 2026, "total_profit": 1234.5}`,
	})
	repo := NewDashboardRepository(client)

	count, err := repo.LowStockCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)

	rate, err := repo.MonthlyRate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, rate.Month)
	assert.Equal(t, 1234.5, rate.TotalProfit)
}
