package service

import (
	"context"

	"github.com/salimdiab/pos-console/internal/domain/entity"
	"github.com/salimdiab/pos-console/internal/domain/repository"
	"github.com/salimdiab/pos-console/pkg/pagination"
)

// ProductService handles the inventory screen: one page of products per
// request, optionally narrowed by a search query or a subcategory filter.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{productRepo: productRepo, categoryRepo: categoryRepo}
}

// ListInput narrows the product listing. Query wins over SubcategoryID;
// Page only applies to the unfiltered listing.
type ListInput struct {
	Page          int
	Query         string
	SubcategoryID int64
}

// List returns the products to display. Filtered results come back as a
// single page because the backend does not paginate them.
func (s *ProductService) List(ctx context.Context, input *ListInput) (*pagination.Page[entity.Product], error) {
	if input.Query != "" {
		products, err := s.productRepo.Search(ctx, input.Query)
		if err != nil {
			return nil, err
		}
		return pagination.Single(products), nil
	}

	if input.SubcategoryID != 0 {
		products, err := s.productRepo.BySubcategory(ctx, input.SubcategoryID)
		if err != nil {
			return nil, err
		}
		return pagination.Single(products), nil
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	return s.productRepo.List(ctx, page)
}

// FormRefs holds the reference lists the product form's dropdowns need.
type FormRefs struct {
	Subcategories   []entity.Subcategory
	Manufacturers   []entity.Manufacturer
	ImportCompanies []entity.ImportCompany
}

// Refs fetches the dropdown data for the product create/edit form.
func (s *ProductService) Refs(ctx context.Context) (*FormRefs, error) {
	subcategories, err := s.categoryRepo.Subcategories(ctx)
	if err != nil {
		return nil, err
	}
	manufacturers, err := s.productRepo.Manufacturers(ctx)
	if err != nil {
		return nil, err
	}
	importCompanies, err := s.productRepo.ImportCompanies(ctx)
	if err != nil {
		return nil, err
	}
	return &FormRefs{
		Subcategories:   subcategories,
		Manufacturers:   manufacturers,
		ImportCompanies: importCompanies,
	}, nil
}

// Create adds a product to the inventory.
func (s *ProductService) Create(ctx context.Context, input *repository.ProductInput) error {
	return s.productRepo.Create(ctx, input)
}

// Update changes an existing product.
func (s *ProductService) Update(ctx context.Context, id int64, input *repository.ProductInput) error {
	return s.productRepo.Update(ctx, id, input)
}

// Delete removes a product from the inventory.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.productRepo.Delete(ctx, id)
}
