// Package model defines the serialized persistence representations.
package model

import "github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"

// CategoryModel is the JSON shape of one category inside the persisted
// category map blob (keyed by category id).
type CategoryModel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IconPath  string `json:"iconPath"`
	BgColor   string `json:"bgColor"`
	TextColor string `json:"textColor"`
}

// FromCategoryEntity converts a domain category to its persisted form.
func FromCategoryEntity(cat *entity.Category) CategoryModel {
	return CategoryModel{
		ID:        cat.ID,
		Name:      cat.Name,
		IconPath:  cat.IconPath,
		BgColor:   cat.BgColor,
		TextColor: cat.TextColor,
	}
}

// ToCategoryEntity converts a persisted category back to its domain form.
func (m CategoryModel) ToCategoryEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		IconPath:  m.IconPath,
		BgColor:   m.BgColor,
		TextColor: m.TextColor,
	}
}
