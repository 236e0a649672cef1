package repository

import (
	"context"

	"github.com/salimdiab/pos-console/internal/domain/entity"
)

// CategoryRepository is the category tree surface of the POS backend.
type CategoryRepository interface {
	Categories(ctx context.Context) ([]entity.Category, error)
	Subcategories(ctx context.Context) ([]entity.Subcategory, error)
	CreateCategory(ctx context.Context, name string) error
	UpdateCategory(ctx context.Context, id int64, name string) error
	DeleteCategory(ctx context.Context, id int64) error
	CreateSubcategory(ctx context.Context, name string, categoryID int64) error
	UpdateSubcategory(ctx context.Context, id int64, name string, categoryID int64) error
	DeleteSubcategory(ctx context.Context, id int64) error
}
