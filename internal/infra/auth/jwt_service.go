// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"shopradar/config"
	"shopradar/internal/domain/service"
	"shopradar/internal/errors"

	"github.com/benbjohnson/clock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService verifies access tokens signed by the backend auth service with a shared HMAC secret.
type jwtService struct {
	accessSecret []byte
	issuer       string // Expected iss claim; empty accepts any issuer.
	clock        clock.Clock
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, clk clock.Clock) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.AccessSecret == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.Auth.AccessSecret),
		issuer:       cfg.Auth.Issuer,
		clock:        clk,
	}, nil
}

// accessClaims is the payload of a backend access token.
type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ValidateAccessToken checks signature, expiry and issuer, and reads the user ID from sub.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims accessClaims
	if _, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	}, opts...); err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "access token subject is not a user ID")
	}

	return &service.Claims{
		UserID:           userID,
		Email:            claims.Email,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
