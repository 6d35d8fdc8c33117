package auth

import (
	"context"
	"testing"
	"time"

	"cashper-api/internal/domain"
	"cashper-api/pkg/errors"
	"cashper-api/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-signing-secret"

func newTestAuthService(secret string) *Service {
	return &Service{
		jwtSecret:      []byte(secret),
		googleClientID: "test-client-id",
		logger:         &logger.Logger{Logger: zap.NewNop()},
	}
}

func signAdminToken(t *testing.T, secret string, claims AdminClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateToken_AdminJWT(t *testing.T) {
	svc := newTestAuthService(testSecret)

	token := signAdminToken(t, testSecret, AdminClaims{
		Email: "ops@cashper.example",
		Name:  "Ops Admin",
		Role:  domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})

	profile, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "admin-42", profile.Sub)
	assert.Equal(t, "ops@cashper.example", profile.Email)
	assert.Equal(t, domain.RoleAdmin, profile.Role)
	assert.True(t, profile.IsAdmin())
}

func TestValidateToken_NonAdminRole(t *testing.T) {
	svc := newTestAuthService(testSecret)

	token := signAdminToken(t, testSecret, AdminClaims{
		Role: domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	profile, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.False(t, profile.IsAdmin())
}

func TestValidateToken_UnrecognizedFormat(t *testing.T) {
	svc := newTestAuthService(testSecret)

	_, err := svc.ValidateToken(context.Background(), "not-a-token")
	require.Error(t, err)

	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeAuthentication, appErr.Type)
}

func TestValidateAdminJWT_RejectsBadSignature(t *testing.T) {
	svc := newTestAuthService(testSecret)

	token := signAdminToken(t, "some-other-secret", AdminClaims{
		Role: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := svc.validateAdminJWT(token)
	assert.Error(t, err)
}

func TestValidateAdminJWT_RejectsExpired(t *testing.T) {
	svc := newTestAuthService(testSecret)

	token := signAdminToken(t, testSecret, AdminClaims{
		Role: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := svc.validateAdminJWT(token)
	assert.Error(t, err)
}

func TestValidateAdminJWT_RequiresSecret(t *testing.T) {
	svc := newTestAuthService("")

	token := signAdminToken(t, testSecret, AdminClaims{
		Role: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := svc.validateAdminJWT(token)
	assert.Error(t, err)
}

func TestTokenShapeDetection(t *testing.T) {
	assert.True(t, isGoogleAccessToken("ya29.a0AfH6SMB"))
	assert.False(t, isGoogleAccessToken("eyJhbGciOiJIUzI1NiJ9.e30.sig"))

	assert.True(t, isJWTToken("eyJhbGciOiJIUzI1NiJ9.e30.sig"))
	assert.False(t, isJWTToken("ya29.a0AfH6SMB"))
	assert.False(t, isJWTToken("plain"))
}
