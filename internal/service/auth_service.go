package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/soundhaus/locale-service/config"
)

// AuthService verifies admin API keys.
type AuthService interface {
	// VerifyAPIKey checks a presented API key against the configured hash.
	VerifyAPIKey(key string) error
}

// authService implements AuthService with a bcrypt key hash.
type authService struct {
	keyHash []byte
}

// NewAuthService creates an auth service from the auth configuration.
func NewAuthService(cfg config.AuthConfig) AuthService {
	return &authService{keyHash: []byte(cfg.AdminAPIKeyHash)}
}

// VerifyAPIKey checks a presented API key against the configured hash.
func (s *authService) VerifyAPIKey(key string) error {
	if len(s.keyHash) == 0 || key == "" {
		return ErrInvalidAPIKey
	}
	if err := bcrypt.CompareHashAndPassword(s.keyHash, []byte(key)); err != nil {
		return ErrInvalidAPIKey
	}
	return nil
}
