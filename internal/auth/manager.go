package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oriontour/admin-api/internal/config"
)

const adminRole = "admin"

var (
	// ErrInvalidCredentials is returned when the login/password pair does not match
	ErrInvalidCredentials = errors.New("invalid login or password")
	// ErrTokenInvalid is returned for a malformed, tampered or expired token
	ErrTokenInvalid = errors.New("token is invalid or expired")
	// ErrForbidden is returned for a valid token without the admin role claim
	ErrForbidden = errors.New("insufficient privileges")
)

// Manager issues and verifies stateless admin session tokens.
// There is a single configured administrator identity; tokens are
// HS256-signed and carry a fixed role claim with a limited lifetime.
type Manager struct {
	login    string
	password string
	secret   []byte
	ttl      time.Duration
}

// NewManager creates a Manager from the admin configuration
func NewManager(cfg config.AdminConfig) *Manager {
	return &Manager{
		login:    cfg.Login,
		password: cfg.Password,
		secret:   []byte(cfg.JWTSecret),
		ttl:      cfg.TokenTTL,
	}
}

// Login checks the credential pair and issues a signed session token
func (m *Manager) Login(login, password string) (string, error) {
	if login != m.login || password != m.password {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"role": adminRole,
		"iat":  jwt.NewNumericDate(now),
		"exp":  jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the token signature and expiry and checks the admin role claim
func (m *Manager) Verify(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrTokenInvalid
	}
	if role, _ := claims["role"].(string); role != adminRole {
		return ErrForbidden
	}
	return nil
}
