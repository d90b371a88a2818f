// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/adapter"
	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name      string
	IconPath  string
	BgColor   string
	TextColor string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles user-defined category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute upserts a user-defined category. The id is derived from the name,
// so creating the same name twice overwrites the earlier entry instead of
// duplicating it. A collision with a built-in id is accepted but the
// built-in descriptor keeps precedence when listed.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameEmpty,
			"category name must not be empty",
			domainerror.ErrCategoryNameEmpty,
		)
	}
	if len(name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	cat := &entity.Category{
		ID:        DeriveCategoryID(name),
		Name:      name,
		IconPath:  input.IconPath,
		BgColor:   input.BgColor,
		TextColor: input.TextColor,
	}

	if err := uc.categoryRepo.Upsert(ctx, cat); err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	return &CreateCategoryOutput{Category: cat}, nil
}

// DeriveCategoryID derives the deterministic category id from a display
// name: lower-cased, runs of whitespace collapsed to single hyphens.
// The same name always maps to the same id.
func DeriveCategoryID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
