// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/adapter"
	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
)

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute returns the merged built-in and user-added categories.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListCategoriesOutput{Categories: categories}, nil
}
