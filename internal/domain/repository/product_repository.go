package repository

import (
	"context"

	"github.com/salimdiab/pos-console/internal/domain/entity"
	"github.com/salimdiab/pos-console/pkg/pagination"
)

// ProductInput carries the fields of a product create/update form.
type ProductInput struct {
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	SubcategoryID   int64   `json:"subcategory_id"`
	Price           float64 `json:"price"`
	ManufacturerID  int64   `json:"manufacture_id"`
	ImportCompanyID int64   `json:"import_company_id"`
	Minimum         int     `json:"minimum"`
	Image           string  `json:"image,omitempty"`
}

// ProductRepository is the inventory surface of the POS backend.
type ProductRepository interface {
	// List returns one page of the product listing.
	List(ctx context.Context, page int) (*pagination.Page[entity.Product], error)
	// Search returns products matching a free-text query.
	Search(ctx context.Context, query string) ([]entity.Product, error)
	// BySubcategory returns the products filed under a subcategory.
	BySubcategory(ctx context.Context, subcategoryID int64) ([]entity.Product, error)
	// Catalog returns the slim product snapshot the receipt form selects from.
	Catalog(ctx context.Context) ([]entity.CatalogProduct, error)
	// Overview returns the best and worst sellers of the last n months.
	Overview(ctx context.Context, months int) (*entity.SalesOverview, error)
	Manufacturers(ctx context.Context) ([]entity.Manufacturer, error)
	ImportCompanies(ctx context.Context) ([]entity.ImportCompany, error)
	Create(ctx context.Context, input *ProductInput) error
	Update(ctx context.Context, id int64, input *ProductInput) error
	Delete(ctx context.Context, id int64) error
}
