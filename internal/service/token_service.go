package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/soundhaus/locale-service/config"
)

var (
	// ErrInvalidToken is returned when a token fails validation.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidAPIKey is returned when the presented API key does not match.
	ErrInvalidAPIKey = errors.New("invalid api key")
)

// Claims are the application claims carried by an admin access token.
type Claims struct {
	Subject string `json:"sub_name"`
	Scope   string `json:"scope"`
}

// claimsWithJWT pairs the application claims with the registered JWT claims.
type claimsWithJWT struct {
	Claims
	jwt.RegisteredClaims
}

// TokenService issues and validates admin access tokens.
type TokenService interface {
	// IssueAdminToken creates a short-lived admin access token.
	IssueAdminToken(subject string) (string, int64, error)
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)
}

// tokenService implements TokenService with HS256-signed JWTs.
type tokenService struct {
	secretKey      []byte
	accessTokenTTL time.Duration
}

// NewTokenService creates a token service from the auth configuration.
func NewTokenService(cfg config.AuthConfig) TokenService {
	return &tokenService{
		secretKey:      []byte(cfg.JWTSecretKey),
		accessTokenTTL: cfg.AccessTokenTTL,
	}
}

// IssueAdminToken creates a short-lived admin access token. It returns the
// signed token and its lifetime in seconds.
func (s *tokenService) IssueAdminToken(subject string) (string, int64, error) {
	now := time.Now()
	claims := &claimsWithJWT{
		Claims: Claims{
			Subject: subject,
			Scope:   "admin",
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", 0, err
	}
	return signed, int64(s.accessTokenTTL.Seconds()), nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*claimsWithJWT); ok && token.Valid {
		return &claims.Claims, nil
	}

	return nil, ErrInvalidToken
}
