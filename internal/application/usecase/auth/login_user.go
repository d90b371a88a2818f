// Package auth contains authentication-related use cases.
//
// Authentication is mocked: a single demo account is configured at startup
// and there is no user store. The flow still issues real signed tokens so
// the rest of the API can enforce a session.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/adapter"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	Email       string
	Name        string
}

// LoginUserUseCase handles the mocked login logic.
type LoginUserUseCase struct {
	demoEmail        string
	demoName         string
	demoPasswordHash string
	passwordService  adapter.PasswordService
	tokenService     adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance. The demo
// password is received pre-hashed so the plain text never lives beyond
// process startup.
func NewLoginUserUseCase(
	demoEmail, demoName, demoPasswordHash string,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		demoEmail:        demoEmail,
		demoName:         demoName,
		demoPasswordHash: demoPasswordHash,
		passwordService:  passwordService,
		tokenService:     tokenService,
	}
}

// Execute performs the login. Email comparison is case-insensitive; the
// password is checked against the configured demo account's hash.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	if !strings.EqualFold(strings.TrimSpace(input.Email), uc.demoEmail) {
		return nil, domainerror.ErrInvalidCredentials
	}
	if err := uc.passwordService.ComparePassword(uc.demoPasswordHash, input.Password); err != nil {
		return nil, domainerror.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.tokenService.GenerateAccessToken(ctx, uc.demoEmail)
	if err != nil {
		return nil, err
	}

	return &LoginUserOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Email:       uc.demoEmail,
		Name:        uc.demoName,
	}, nil
}
