package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSecretKey signs and verifies service tokens. It is injected from
// configuration at startup via InitJWT.
var jwtSecretKey []byte

// ErrJWTNotConfigured is returned when token operations run before InitJWT.
var ErrJWTNotConfigured = errors.New("jwt secret not configured")

// InitJWT sets the signing secret for service tokens.
func InitJWT(secret string) {
	jwtSecretKey = []byte(secret)
}

// ServiceClaims defines the claims carried by a service token. The subject
// identifies the caller (e.g. "scheduler", "ops").
type ServiceClaims struct {
	Subject string `json:"sub_name"`
	jwt.RegisteredClaims
}

// GenerateServiceToken creates a signed token for a trusted caller, e.g. the
// cron scheduler that triggers report runs. TTL may be long-lived.
func GenerateServiceToken(subject string, ttl time.Duration) (string, error) {
	if len(jwtSecretKey) == 0 {
		return "", ErrJWTNotConfigured
	}
	claims := &ServiceClaims{
		Subject: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "bookly-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign service token: %w", err)
	}
	return tokenString, nil
}

// ValidateServiceToken parses and validates a service token string.
// It returns the claims if the token is valid, otherwise an error.
func ValidateServiceToken(tokenString string) (*ServiceClaims, error) {
	if len(jwtSecretKey) == 0 {
		return nil, ErrJWTNotConfigured
	}
	claims := &ServiceClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
