package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the claims of a backend access token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the backend auth service.
type TokenService interface {
	// ValidateAccessToken checks the signature and expiry of a token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
