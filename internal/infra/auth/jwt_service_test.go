package auth

import (
	"testing"
	"time"

	"shopradar/config"

	"github.com/benbjohnson/clock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, issuer string) *jwtService {
	t.Helper()

	clk := clock.NewMock()
	clk.Set(testNow)

	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{AccessSecret: testSecret, Issuer: issuer}}, clk)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	userID := uuid.New()
	svc := newTestService(t, "https://auth.shopradar.app")

	token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub":   userID.String(),
		"email": "shopper@example.com",
		"iss":   "https://auth.shopradar.app",
		"iat":   testNow.Add(-time.Minute).Unix(),
		"exp":   testNow.Add(time.Hour).Unix(),
	})

	claims, err := svc.ValidateAccessToken(token)

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "shopper@example.com", claims.Email)
	assert.Equal(t, "https://auth.shopradar.app", claims.Issuer)
}

func TestJWTService_ValidateAccessToken_Rejects(t *testing.T) {
	userID := uuid.New().String()
	valid := func() jwt.MapClaims {
		return jwt.MapClaims{"sub": userID, "exp": testNow.Add(time.Hour).Unix()}
	}

	tests := []struct {
		name   string
		issuer string
		token  func(t *testing.T) string
	}{
		{
			name:  "not a jwt",
			token: func(*testing.T) string { return "clearly-not-a-jwt-token-format" },
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte("another-secret"), valid())
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				claims := valid()
				claims["exp"] = testNow.Add(-time.Second).Unix()

				return sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
		},
		{
			name: "missing expiry",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": userID})
			},
		},
		{
			name: "unsigned",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid())
			},
		},
		{
			name: "subject is not a uuid",
			token: func(t *testing.T) string {
				claims := valid()
				claims["sub"] = "shopper@example.com"

				return sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
		},
		{
			name:   "wrong issuer",
			issuer: "https://auth.shopradar.app",
			token: func(t *testing.T) string {
				claims := valid()
				claims["iss"] = "https://evil.example.com"

				return sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := newTestService(t, tt.issuer).ValidateAccessToken(tt.token(t))

			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{}, clock.NewMock())

	assert.Error(t, err)
}
