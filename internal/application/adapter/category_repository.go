// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
)

// CategoryRepository defines the interface for category registry operations.
type CategoryRepository interface {
	// List retrieves the merged set of built-in and user-added categories.
	// Built-in entries take precedence on id collision.
	List(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a category by id. Returns domain
	// ErrCategoryNotFound when the id resolves to neither a default nor a
	// user-added category; callers render a fallback descriptor instead of
	// failing.
	FindByID(ctx context.Context, id string) (*entity.Category, error)

	// Upsert adds or replaces a user-defined category in persisted storage.
	Upsert(ctx context.Context, category *entity.Category) error
}
