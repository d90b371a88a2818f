// Package entity defines the core business entities for the domain layer.
package entity

// Category represents an expense category with its display metadata.
// Icon paths and color tokens are opaque to the core; the UI interprets them.
type Category struct {
	ID        string
	Name      string
	IconPath  string
	BgColor   string
	TextColor string
}

// UnknownCategory is the fallback descriptor used when an expense references
// a category id that no longer resolves. Rendering must not fail on it.
func UnknownCategory(id string) *Category {
	return &Category{
		ID:        id,
		Name:      "Unknown",
		IconPath:  "M8.228 9c.549-1.165 2.03-2 3.772-2 2.21 0 4 1.343 4 3 0 1.4-1.278 2.575-3.006 2.907-.542.104-.994.54-.994 1.093m0 3h.01M21 12a9 9 0 11-18 0 9 9 0 0118 0z",
		BgColor:   "bg-gray-100",
		TextColor: "text-gray-600",
	}
}

// DefaultCategories returns the ten built-in categories in their canonical
// order. The set is fixed; user-added categories merge into it with defaults
// taking precedence on id collision.
func DefaultCategories() []*Category {
	return []*Category{
		{
			ID:        "groceries",
			Name:      "Groceries",
			IconPath:  "M16 11V7a4 4 0 00-8 0v4M5 9h14l1 12H4L5 9z",
			BgColor:   "bg-orange-100",
			TextColor: "text-blue-600",
		},
		{
			ID:        "entertainment",
			Name:      "Entertainment",
			IconPath:  "M19 7l-.867 12.142A2 2 0 0116.138 21H7.862a2 2 0 01-1.995-1.858L5 7m5 4v6m4-6v6m1-10V4a1 1 0 00-1-1h-4a1 1 0 00-1 1v3M4 7h16",
			BgColor:   "bg-purple-100",
			TextColor: "text-purple-600",
		},
		{
			ID:        "gas",
			Name:      "Gas",
			IconPath:  "M13 10V3L4 14h7v7l9-11h-7z",
			BgColor:   "bg-red-100",
			TextColor: "text-red-600",
		},
		{
			ID:        "shopping",
			Name:      "Shopping",
			IconPath:  "M16 11V7a4 4 0 00-8 0v4M5 9h14l1 12H4L5 9z",
			BgColor:   "bg-pink-100",
			TextColor: "text-pink-600",
		},
		{
			ID:        "news",
			Name:      "News",
			IconPath:  "M19 20H5a2 2 0 01-2-2V6a2 2 0 012-2h10a2 2 0 012 2v1m2 13a2 2 0 01-2-2V7m2 13a2 2 0 002-2V9a2 2 0 00-2-2h-2m-4-3H9M7 16h6M7 8h6v4H7V8z",
			BgColor:   "bg-yellow-100",
			TextColor: "text-yellow-600",
		},
		{
			ID:        "rent",
			Name:      "Rent",
			IconPath:  "M3 12l2-2m0 0l7-7 7 7M5 10v10a1 1 0 001 1h3m10-11l2 2m-2-2v10a1 1 0 01-1 1h-3m-6 0a1 1 0 001-1v-4a1 1 0 011-1h2a1 1 0 011 1v4a1 1 0 001 1m-6 0h6",
			BgColor:   "bg-blue-100",
			TextColor: "text-blue-600",
		},
		{
			ID:        "transportation",
			Name:      "Transportation",
			IconPath:  "M8 7V3m8 4V3m-9 8h10M5 21h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v12a2 2 0 002 2z",
			BgColor:   "bg-green-100",
			TextColor: "text-green-600",
		},
		{
			ID:        "utilities",
			Name:      "Utilities",
			IconPath:  "M4.318 6.318a4.5 4.5 0 000 6.364L12 20.364l7.682-7.682a4.5 4.5 0 00-6.364-6.364L12 7.636l-1.318-1.318a4.5 4.5 0 00-6.364 0z",
			BgColor:   "bg-indigo-100",
			TextColor: "text-indigo-600",
		},
		{
			ID:        "healthcare",
			Name:      "Healthcare",
			IconPath:  "M21 15.546c-.523 0-1.046.151-1.5.454a2.704 2.704 0 01-3 0 2.704 2.704 0 00-3 0 2.704 2.704 0 01-3 0 2.704 2.704 0 00-3 0 2.704 2.704 0 01-3 0 2.701 2.701 0 00-1.5-.454M9 6v2m3-2v2m3-2v2M9 3h.01M12 3h.01M15 3h.01M21 21v-7a2 2 0 00-2-2H5a2 2 0 00-2 2v7h18z",
			BgColor:   "bg-teal-100",
			TextColor: "text-teal-600",
		},
		{
			ID:        "dining",
			Name:      "Dining",
			IconPath:  "M12 8c1.105 0 2-.895 2-2s-.895-2-2-2-2 .895-2 2 .895 2 2 2zm0 2c-1.105 0-2 .895-2 2s.895 2 2 2 2-.895 2-2-.895-2-2-2zm0 6c-1.105 0-2 .895-2 2s.895 2 2 2 2-.895 2-2-.895-2-2-2z",
			BgColor:   "bg-amber-100",
			TextColor: "text-amber-600",
		},
	}
}
