package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/usecase/category"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	getUseCase    *category.GetCategoryUseCase
	createUseCase *category.CreateCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	getUseCase *category.GetCategoryUseCase,
	createUseCase *category.CreateCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Get handles GET /categories/:id requests.
func (c *CategoryController) Get(ctx *gin.Context) {
	cat, err := c.getUseCase.Execute(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Category not found",
				Code:  string(domainerror.ErrCodeCategoryNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve category",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	// Parse request body
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCategoryFields),
		})
		return
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		Name:      req.Name,
		IconPath:  req.IconPath,
		BgColor:   req.BgColor,
		TextColor: req.TextColor,
	})
	if err != nil {
		var catErr *domainerror.CategoryError
		if errors.As(err, &catErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: catErr.Message,
				Code:  string(catErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to create category",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}
