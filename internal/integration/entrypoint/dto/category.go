package dto

// CreateCategoryRequest represents the create category request payload
type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	IconPath  string `json:"iconPath"`
	BgColor   string `json:"bgColor"`
	TextColor string `json:"textColor"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IconPath  string `json:"iconPath"`
	BgColor   string `json:"bgColor"`
	TextColor string `json:"textColor"`
}

// CategoryListResponse represents the list categories response
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
