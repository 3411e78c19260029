// Package jwt issues and validates the HS256 bearer tokens that guard
// the expense endpoints. Tokens are stateless: all identity the server
// needs at request time is carried in the claims.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidAlgorithm = errors.New("invalid signing algorithm")
	ErrEmptySecretKey   = errors.New("secret key cannot be empty")
	ErrWeakSecretKey    = errors.New("secret key must be at least 32 characters")
	ErrInvalidDuration  = errors.New("duration must be positive")
)

// DefaultDuration is the token lifetime when the configuration leaves it unset.
const DefaultDuration = 24 * time.Hour

const minSecretLen = 32

// Claims identify an authenticated account of any kind
type Claims struct {
	AccountID uint   `json:"accountId"`
	EmailID   string `json:"emailId"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Config represents the JWT configuration
type Config struct {
	SecretKey string        `yaml:"secret_key"`
	Duration  time.Duration `yaml:"duration"`
}

// Service signs and verifies bearer tokens with a shared secret
type Service struct {
	secret   []byte
	duration time.Duration
}

// NewService creates a new JWT service. The secret must be configured
// and long enough to resist brute force; a zero duration falls back to
// DefaultDuration.
func NewService(config Config) (*Service, error) {
	switch {
	case config.SecretKey == "":
		return nil, ErrEmptySecretKey
	case len(config.SecretKey) < minSecretLen:
		return nil, ErrWeakSecretKey
	case config.Duration < 0:
		return nil, ErrInvalidDuration
	}

	duration := config.Duration
	if duration == 0 {
		duration = DefaultDuration
	}
	return &Service{
		secret:   []byte(config.SecretKey),
		duration: duration,
	}, nil
}

// GenerateToken issues a signed token for the given account identity
func (s *Service) GenerateToken(accountID uint, emailID string, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		AccountID: accountID,
		EmailID:   emailID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies the signature and lifetime of tokenString and
// returns its claims. Expiry is reported distinctly from tampering.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidAlgorithm
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
