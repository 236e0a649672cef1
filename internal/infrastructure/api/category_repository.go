package api

import (
	"context"
	"fmt"

	"github.com/salimdiab/pos-console/internal/domain/entity"
	"github.com/salimdiab/pos-console/internal/domain/repository"
	"github.com/salimdiab/pos-console/internal/gateway"
)

// CategoryRepository talks to the category tree endpoints of the POS backend.
type CategoryRepository struct {
	client *gateway.Client
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(client *gateway.Client) *CategoryRepository {
	return &CategoryRepository{client: client}
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

type categoryForm struct {
	Name string `json:"name"`
}

type subcategoryForm struct {
	Name       string `json:"name"`
	CategoryID int64  `json:"category_id"`
}

func (r *CategoryRepository) Categories(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	if err := r.client.Get(ctx, "/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CategoryRepository) Subcategories(ctx context.Context) ([]entity.Subcategory, error) {
	var out []entity.Subcategory
	if err := r.client.Get(ctx, "/subcategories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, name string) error {
	return r.client.Post(ctx, "/categories", &categoryForm{Name: name}, nil)
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, id int64, name string) error {
	return r.client.Put(ctx, fmt.Sprintf("/categories/%d", id), &categoryForm{Name: name}, nil)
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/categories/%d", id))
}

func (r *CategoryRepository) CreateSubcategory(ctx context.Context, name string, categoryID int64) error {
	return r.client.Post(ctx, "/subcategories", &subcategoryForm{Name: name, CategoryID: categoryID}, nil)
}

func (r *CategoryRepository) UpdateSubcategory(ctx context.Context, id int64, name string, categoryID int64) error {
	return r.client.Put(ctx, fmt.Sprintf("/subcategories/%d", id), &subcategoryForm{Name: name, CategoryID: categoryID}, nil)
}

func (r *CategoryRepository) DeleteSubcategory(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/subcategories/%d", id))
}
