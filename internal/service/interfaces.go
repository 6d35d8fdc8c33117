package service

import (
	"context"

	"cashper-api/internal/domain"
)

// AuthService defines the interface for token validation
type AuthService interface {
	// ValidateToken validates a bearer token and returns the caller profile.
	// Admin JWTs, Google ID tokens and Google access tokens are accepted.
	ValidateToken(ctx context.Context, token string) (*domain.UserProfile, error)
}
