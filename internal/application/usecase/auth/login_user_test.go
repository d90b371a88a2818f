package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/adapter"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
)

// fakePasswordService treats the hash as "hashed:" plus the plain text.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) ComparePassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokenService struct {
	generateErr error
}

func (s fakeTokenService) GenerateAccessToken(ctx context.Context, email string) (string, time.Time, error) {
	if s.generateErr != nil {
		return "", time.Time{}, s.generateErr
	}
	return "token-for-" + email, time.Now().Add(time.Hour), nil
}

func (s fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func newLoginUseCase(tokens adapter.TokenService) *LoginUserUseCase {
	return NewLoginUserUseCase(
		"shihab@example.com",
		"Shihab Rahman",
		"hashed:secret123",
		fakePasswordService{},
		tokens,
	)
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	t.Run("valid credentials issue an access token", func(t *testing.T) {
		uc := newLoginUseCase(fakeTokenService{})

		output, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "shihab@example.com",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" {
			t.Error("expected an access token")
		}
		if output.Name != "Shihab Rahman" {
			t.Errorf("expected the demo user's name, got %q", output.Name)
		}
		if output.ExpiresAt.IsZero() {
			t.Error("expected an expiry timestamp")
		}
	})

	t.Run("email comparison is case-insensitive and trimmed", func(t *testing.T) {
		uc := newLoginUseCase(fakeTokenService{})

		_, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "  SHIHAB@Example.COM ",
			Password: "secret123",
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("unknown email is rejected", func(t *testing.T) {
		uc := newLoginUseCase(fakeTokenService{})

		_, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "someone@example.com",
			Password: "secret123",
		})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password is rejected with the same error", func(t *testing.T) {
		uc := newLoginUseCase(fakeTokenService{})

		_, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "shihab@example.com",
			Password: "wrong",
		})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("token generation failure surfaces", func(t *testing.T) {
		uc := newLoginUseCase(fakeTokenService{generateErr: errors.New("signing failed")})

		_, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "shihab@example.com",
			Password: "secret123",
		})
		if err == nil {
			t.Error("expected an error")
		}
	})
}
