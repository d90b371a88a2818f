// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/adapter"
	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
)

// GetCategoryUseCase handles category lookup logic.
type GetCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewGetCategoryUseCase creates a new GetCategoryUseCase instance.
func NewGetCategoryUseCase(categoryRepo adapter.CategoryRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute looks up a category by id. It returns domain ErrCategoryNotFound
// when the id resolves to neither a built-in nor a user-added category;
// rendering callers substitute entity.UnknownCategory instead of failing.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, id string) (*entity.Category, error) {
	return uc.categoryRepo.FindByID(ctx, id)
}
