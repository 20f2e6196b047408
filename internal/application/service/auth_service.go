package service

import (
	"github.com/faturango/fatura-api/internal/config"
	"github.com/faturango/fatura-api/pkg/apperror"
	"github.com/faturango/fatura-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the single review admin. There are no end-user
// accounts; the admin credentials come from configuration.
type AuthService struct {
	admin      config.AdminConfig
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(admin config.AdminConfig, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		admin:      admin,
		jwtManager: jwtManager,
	}
}

// Login verifies the admin credentials and issues a token for the review
// endpoints.
func (s *AuthService) Login(username, password string) (string, error) {
	if s.admin.PasswordHash == "" {
		return "", apperror.NewUnavailableError("Admin login is not configured")
	}
	if username != s.admin.Username {
		return "", apperror.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)); err != nil {
		return "", apperror.ErrInvalidCredentials
	}
	return s.jwtManager.GenerateAdminToken()
}
