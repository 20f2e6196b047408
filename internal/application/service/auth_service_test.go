package service

import (
	"testing"
	"time"

	"github.com/faturango/fatura-api/internal/config"
	"github.com/faturango/fatura-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T, password string) (*AuthService, *utils.JWTManager) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(config.AdminConfig{
		Username:     "admin",
		PasswordHash: string(hash),
	}, jwtManager), jwtManager
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, jwtManager := newTestAuthService(t, "s3cret")

	token, err := svc.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	claims, err := jwtManager.ValidateAdminToken(token)
	if err != nil {
		t.Fatalf("issued token did not validate: %v", err)
	}
	if !claims.Admin {
		t.Error("token must carry the admin claim")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t, "s3cret")

	if _, err := svc.Login("admin", "wrong"); err == nil {
		t.Error("expected an error for a wrong password")
	}
	if _, err := svc.Login("root", "s3cret"); err == nil {
		t.Error("expected an error for a wrong username")
	}
}

func TestLoginUnconfigured(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(config.AdminConfig{Username: "admin"}, jwtManager)

	if _, err := svc.Login("admin", "anything"); err == nil {
		t.Error("expected an error when no password hash is configured")
	}
}
