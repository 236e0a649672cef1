package service

import (
	"context"

	"github.com/salimdiab/pos-console/internal/domain/entity"
	"github.com/salimdiab/pos-console/internal/domain/repository"
)

// CategoryService handles the category tree screen.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Tree is the category screen's view model: categories with their
// subcategories grouped underneath.
type Tree struct {
	Categories    []entity.Category
	Subcategories map[int64][]entity.Subcategory
}

// Tree fetches categories and subcategories and groups them for display.
func (s *CategoryService) Tree(ctx context.Context) (*Tree, error) {
	categories, err := s.categoryRepo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	subcategories, err := s.categoryRepo.Subcategories(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[int64][]entity.Subcategory, len(categories))
	for _, sub := range subcategories {
		grouped[sub.CategoryID] = append(grouped[sub.CategoryID], sub)
	}

	return &Tree{Categories: categories, Subcategories: grouped}, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) error {
	return s.categoryRepo.CreateCategory(ctx, name)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, name string) error {
	return s.categoryRepo.UpdateCategory(ctx, id, name)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.categoryRepo.DeleteCategory(ctx, id)
}

func (s *CategoryService) CreateSubcategory(ctx context.Context, name string, categoryID int64) error {
	return s.categoryRepo.CreateSubcategory(ctx, name, categoryID)
}

func (s *CategoryService) UpdateSubcategory(ctx context.Context, id int64, name string, categoryID int64) error {
	return s.categoryRepo.UpdateSubcategory(ctx, id, name, categoryID)
}

func (s *CategoryService) DeleteSubcategory(ctx context.Context, id int64) error {
	return s.categoryRepo.DeleteSubcategory(ctx, id)
}
