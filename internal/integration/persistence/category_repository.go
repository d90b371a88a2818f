package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/adapter"
	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/persistence/model"
)

const categoriesKey = "expense-tracker:categories"

// CategoryRepository stores user-created categories as a single JSON
// object blob keyed by category id. The built-in defaults are never
// persisted, so listing merges them in with the defaults taking
// precedence over any stored category reusing a default id.
type CategoryRepository struct {
	store adapter.BlobStore
	mu    sync.Mutex
}

// NewCategoryRepository creates a category repository backed by the given store.
func NewCategoryRepository(store adapter.BlobStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// List returns the default categories in their canonical order followed
// by user-created categories sorted by id.
func (r *CategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	defaults := entity.DefaultCategories()
	defaultIDs := make(map[string]bool, len(defaults))
	categories := make([]*entity.Category, 0, len(defaults)+len(stored))
	for _, cat := range defaults {
		defaultIDs[cat.ID] = true
		categories = append(categories, cat)
	}

	userIDs := make([]string, 0, len(stored))
	for id := range stored {
		if !defaultIDs[id] {
			userIDs = append(userIDs, id)
		}
	}
	sort.Strings(userIDs)
	for _, id := range userIDs {
		categories = append(categories, stored[id].ToCategoryEntity())
	}
	return categories, nil
}

// FindByID resolves a category by id, defaults first.
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cat := range entity.DefaultCategories() {
		if cat.ID == id {
			return cat, nil
		}
	}

	stored, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if record, ok := stored[id]; ok {
		return record.ToCategoryEntity(), nil
	}
	return nil, domainerror.ErrCategoryNotFound
}

// Upsert stores or replaces a user-created category.
func (r *CategoryRepository) Upsert(ctx context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.load(ctx)
	if err != nil {
		return err
	}
	if stored == nil {
		stored = make(map[string]model.CategoryModel)
	}
	stored[category.ID] = model.FromCategoryEntity(category)

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encoding categories: %w", err)
	}
	if err := r.store.Save(ctx, categoriesKey, raw); err != nil {
		return fmt.Errorf("saving categories: %w", err)
	}
	return nil
}

// load reads the stored category map. A corrupt blob is treated as empty
// so the defaults remain available.
func (r *CategoryRepository) load(ctx context.Context) (map[string]model.CategoryModel, error) {
	raw, found, err := r.store.Load(ctx, categoriesKey)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	if !found {
		return nil, nil
	}

	var stored map[string]model.CategoryModel
	if err := json.Unmarshal(raw, &stored); err != nil {
		slog.Warn("stored category blob is corrupt, falling back to defaults", "error", err)
		return nil, nil
	}
	return stored, nil
}
