package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/salimdiab/pos-console/internal/domain/entity"
	"github.com/salimdiab/pos-console/internal/domain/repository"
	"github.com/salimdiab/pos-console/internal/gateway"
	"github.com/salimdiab/pos-console/pkg/pagination"
)

// ProductRepository talks to the inventory endpoints of the POS backend.
type ProductRepository struct {
	client *gateway.Client
}

// NewProductRepository creates a new product repository.
func NewProductRepository(client *gateway.Client) *ProductRepository {
	return &ProductRepository{client: client}
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// List returns one page of the product listing.
func (r *ProductRepository) List(ctx context.Context, page int) (*pagination.Page[entity.Product], error) {
	path := "/products"
	if page > 1 {
		path = fmt.Sprintf("/products?page=%d", page)
	}
	var result pagination.Page[entity.Product]
	if err := r.client.Get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Search returns products matching a free-text query. The backend answers
// either with a bare array or with a page envelope depending on the query, so
// both shapes are accepted.
func (r *ProductRepository) Search(ctx context.Context, query string) ([]entity.Product, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, "/products?q="+url.QueryEscape(query), &raw); err != nil {
		return nil, err
	}

	var list []entity.Product
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var page pagination.Page[entity.Product]
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("decode product search response: %w", err)
	}
	return page.Data, nil
}

type subcategoryFilterResponse struct {
	Count   int              `json:"number-results"`
	Results []entity.Product `json:"results"`
}

// BySubcategory returns the products filed under a subcategory.
func (r *ProductRepository) BySubcategory(ctx context.Context, subcategoryID int64) ([]entity.Product, error) {
	var resp subcategoryFilterResponse
	if err := r.client.Get(ctx, fmt.Sprintf("/products/sub/%d", subcategoryID), &resp); err != nil {
		return nil, err
	}
	if resp.Count == 0 {
		return nil, nil
	}
	return resp.Results, nil
}

// Catalog returns the slim product snapshot the receipt form selects from.
// The listing endpoint wraps its data in a page envelope; older deployments
// return a bare array.
func (r *ProductRepository) Catalog(ctx context.Context) ([]entity.CatalogProduct, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, "/products", &raw); err != nil {
		return nil, err
	}

	var list []entity.CatalogProduct
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var page pagination.Page[entity.CatalogProduct]
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("decode product catalog response: %w", err)
	}
	return page.Data, nil
}

// Overview returns the best and worst sellers of the last months.
func (r *ProductRepository) Overview(ctx context.Context, months int) (*entity.SalesOverview, error) {
	var overview entity.SalesOverview
	if err := r.client.Get(ctx, fmt.Sprintf("/products/overview/%d", months), &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

func (r *ProductRepository) Manufacturers(ctx context.Context) ([]entity.Manufacturer, error) {
	var out []entity.Manufacturer
	if err := r.client.Get(ctx, "/manufacturers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProductRepository) ImportCompanies(ctx context.Context) ([]entity.ImportCompany, error) {
	var out []entity.ImportCompany
	if err := r.client.Get(ctx, "/import-companies", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProductRepository) Create(ctx context.Context, input *repository.ProductInput) error {
	return r.client.Post(ctx, "/products", input, nil)
}

func (r *ProductRepository) Update(ctx context.Context, id int64, input *repository.ProductInput) error {
	return r.client.Put(ctx, fmt.Sprintf("/products/%d", id), input, nil)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/products/%d", id))
}
