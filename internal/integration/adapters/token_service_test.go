package adapters

import (
	"context"
	"testing"
	"time"
)

func TestTokenService(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	ctx := context.Background()

	t.Run("generated token validates and carries the email", func(t *testing.T) {
		token, expiresAt, err := svc.GenerateAccessToken(ctx, "shihab@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if time.Until(expiresAt) <= 0 {
			t.Error("expected a future expiry")
		}

		claims, err := svc.ValidateAccessToken(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.Email != "shihab@example.com" {
			t.Errorf("expected the email claim, got %q", claims.Email)
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		if _, err := svc.ValidateAccessToken(ctx, "not.a.token"); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		other := NewTokenService("other-secret", time.Hour)
		token, _, err := other.GenerateAccessToken(ctx, "shihab@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := svc.ValidateAccessToken(ctx, token); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		short := NewTokenService("test-secret", -time.Minute)
		token, _, err := short.GenerateAccessToken(ctx, "shihab@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := svc.ValidateAccessToken(ctx, token); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService()

	t.Run("hash verifies against the original password", func(t *testing.T) {
		hash, err := svc.HashPassword("secret123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hash == "secret123" {
			t.Error("expected the hash to differ from the plain text")
		}
		if err := svc.ComparePassword(hash, "secret123"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("wrong password fails comparison", func(t *testing.T) {
		hash, err := svc.HashPassword("secret123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.ComparePassword(hash, "wrong"); err == nil {
			t.Error("expected an error")
		}
	})
}
