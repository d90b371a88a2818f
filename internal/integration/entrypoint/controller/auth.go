package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/usecase/auth"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/entrypoint/dto"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	loginUseCase *auth.LoginUserUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(loginUseCase *auth.LoginUserUseCase) *AuthController {
	return &AuthController{loginUseCase: loginUseCase}
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	// Parse request body
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidCredentials),
		})
		return
	}

	// Execute use case
	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid email or password",
				Code:  string(domainerror.ErrCodeInvalidCredentials),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to log in",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken: output.AccessToken,
		User: dto.UserResponse{
			Email: output.Email,
			Name:  output.Name,
		},
	})
}
