package auth

import (
	"context"
	"fmt"
	"strings"

	"cashper-api/internal/domain"
	"cashper-api/internal/service"
	"cashper-api/pkg/errors"
	"cashper-api/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Service implements the AuthService interface. It accepts three token
// shapes: admin JWTs signed with the configured secret, Google ID tokens and
// Google OAuth access tokens (customer identities for the submit flow).
type Service struct {
	jwtSecret      []byte
	googleClientID string
	logger         *logger.Logger
}

// AdminClaims are the claims carried by admin tokens
type AdminClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// NewService creates a new auth service
func NewService(jwtSecret, googleClientID string, logger *logger.Logger) service.AuthService {
	return &Service{
		jwtSecret:      []byte(jwtSecret),
		googleClientID: googleClientID,
		logger:         logger,
	}
}

// ValidateToken validates a bearer token and returns the caller profile
func (s *Service) ValidateToken(ctx context.Context, token string) (*domain.UserProfile, error) {
	if isGoogleAccessToken(token) {
		s.logger.Debug("Token identified as Google access token")
		return s.validateGoogleAccessToken(ctx, token)
	}

	if isJWTToken(token) {
		// Admin tokens and Google ID tokens are both JWTs; try the local
		// secret first, then Google's signing keys
		if profile, err := s.validateAdminJWT(token); err == nil {
			return profile, nil
		}
		return s.validateGoogleIDToken(ctx, token)
	}

	s.logger.Error("Unrecognized token format")
	return nil, errors.NewAuthenticationError("Unrecognized token format")
}

// validateAdminJWT validates a locally issued admin token
func (s *Service) validateAdminJWT(token string) (*domain.UserProfile, error) {
	if len(s.jwtSecret) == 0 {
		return nil, fmt.Errorf("admin JWT secret is not configured")
	}

	claims := &AdminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("admin token validation failed: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("admin token is invalid")
	}

	s.logger.WithField("sub", claims.Subject).Debug("Admin token validated")

	return &domain.UserProfile{
		Sub:           claims.Subject,
		Email:         claims.Email,
		EmailVerified: true,
		Name:          claims.Name,
		Role:          claims.Role,
	}, nil
}

// validateGoogleIDToken validates a Google-issued ID token
func (s *Service) validateGoogleIDToken(ctx context.Context, token string) (*domain.UserProfile, error) {
	payload, err := idtoken.Validate(ctx, token, s.googleClientID)
	if err != nil {
		s.logger.WithError(err).Error("Google ID token validation failed")
		return nil, errors.NewAuthenticationError("Invalid or expired token")
	}

	profile := &domain.UserProfile{
		Sub:  payload.Subject,
		Role: domain.RoleUser,
	}
	if email, ok := payload.Claims["email"].(string); ok {
		profile.Email = email
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		profile.EmailVerified = verified
	}
	if name, ok := payload.Claims["name"].(string); ok {
		profile.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		profile.Picture = picture
	}

	s.logger.WithField("sub", profile.Sub).Debug("Google ID token validated")

	return profile, nil
}

// validateGoogleAccessToken resolves a Google OAuth access token to a user
// profile through the userinfo endpoint
func (s *Service) validateGoogleAccessToken(ctx context.Context, token string) (*domain.UserProfile, error) {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})

	oauth2Service, err := goauth2.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		s.logger.WithError(err).Error("Failed to create Google OAuth2 service")
		return nil, errors.NewInternalError("Failed to create validation client", err)
	}

	userinfo, err := oauth2Service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		s.logger.WithError(err).Error("Google access token validation failed")
		return nil, errors.NewAuthenticationError("Invalid or expired Google token")
	}

	verified := userinfo.VerifiedEmail != nil && *userinfo.VerifiedEmail

	s.logger.WithField("sub", userinfo.Id).Debug("Google access token validated")

	return &domain.UserProfile{
		Sub:           userinfo.Id,
		Email:         userinfo.Email,
		EmailVerified: verified,
		Name:          userinfo.Name,
		Picture:       userinfo.Picture,
		Role:          domain.RoleUser,
	}, nil
}

// isGoogleAccessToken checks whether the token looks like a Google OAuth
// access token
func isGoogleAccessToken(token string) bool {
	return strings.HasPrefix(token, "ya29.")
}

// isJWTToken checks whether the token has the three-segment JWT shape
func isJWTToken(token string) bool {
	return strings.Count(token, ".") == 2
}
