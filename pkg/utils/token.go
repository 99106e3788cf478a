package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// NewAdminToken signs an HS256 JWT carrying the admin's email as subject.
// Admin auth is stateless: nothing is stored server-side.
func NewAdminToken(secret, email string, expiryHours int) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": email,
		"exp": now.Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign admin token: %w", err)
	}
	return signed, nil
}

// VerifyAdminToken parses and validates a token, returning the admin email.
func VerifyAdminToken(secret, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("parse admin token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid admin token")
	}

	email, err := claims.GetSubject()
	if err != nil || email == "" {
		return "", fmt.Errorf("admin token missing subject")
	}
	return email, nil
}
