package dto

import (
	"time"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/usecase/expense"
	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
)

// ToCategoryResponse converts a category entity to its response shape.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        cat.ID,
		Name:      cat.Name,
		IconPath:  cat.IconPath,
		BgColor:   cat.BgColor,
		TextColor: cat.TextColor,
	}
}

// ToCategoryListResponse converts a list of category entities to the list response.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	out := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		out[i] = ToCategoryResponse(cat)
	}
	return CategoryListResponse{Categories: out}
}

// ToConversionResponse converts a conversion snapshot to its response shape.
func ToConversionResponse(snap *entity.ConversionSnapshot) *ConversionResponse {
	if snap == nil {
		return nil
	}
	return &ConversionResponse{
		OriginalAmount:   snap.OriginalAmount.StringFixed(2),
		OriginalCurrency: snap.OriginalCurrency,
		USDAmount:        snap.USDAmount.StringFixed(2),
		ExchangeRate:     snap.ExchangeRate.String(),
		LastUpdated:      snap.LastUpdated.UTC().Format(time.RFC3339),
	}
}

// ToExpenseResponse converts a single stored expense to its response shape.
// The category descriptor and relative label are resolved by the caller.
func ToExpenseResponse(exp *entity.Expense, cat *entity.Category, dateLabel string) ExpenseResponse {
	return ExpenseResponse{
		ID:         exp.ID.String(),
		Category:   ToCategoryResponse(cat),
		Amount:     exp.Amount.StringFixed(2),
		Currency:   exp.Currency,
		Date:       exp.Date,
		DateLabel:  dateLabel,
		Receipt:    exp.Receipt,
		CreatedAt:  exp.CreatedAt.UTC().Format(time.RFC3339),
		Conversion: ToConversionResponse(exp.Conversion),
	}
}

// ToExpenseListResponse converts a list use case output to the list response.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	items := make([]ExpenseResponse, len(output.Expenses))
	for i, item := range output.Expenses {
		items[i] = ExpenseResponse{
			ID:         item.ID.String(),
			Category:   ToCategoryResponse(item.Category),
			Amount:     item.Amount.StringFixed(2),
			Currency:   item.Currency,
			Date:       item.Date,
			DateLabel:  item.DateLabel,
			Receipt:    item.Receipt,
			CreatedAt:  item.CreatedAt.UTC().Format(time.RFC3339),
			Conversion: ToConversionResponse(item.Conversion),
		}
	}
	return ExpenseListResponse{
		Expenses: items,
		Pagination: PaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
			HasMore:    output.Pagination.HasMore,
		},
		TotalUSD: output.Total.StringFixed(2),
	}
}
