package utils

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims the platform consumes. Tokens are issued
// by the external auth provider; this side only validates them.
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// ValidateToken parses and verifies a bearer token.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
