package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/explora/travel-system/internal/api/metrics"
	"github.com/explora/travel-system/internal/core/domain"
	"github.com/explora/travel-system/internal/core/ports"
	"github.com/explora/travel-system/internal/core/security"
)

// BootstrapAdminUsername is the well-known account created at startup so a
// fresh deployment always has one admin. Its default password is a local
// development convenience and must be rotated anywhere else.
const BootstrapAdminUsername = "admin"

// AuthService implements registration, login, token verification and role
// elevation.
type AuthService struct {
	repo   ports.UserRepository
	codec  *security.TokenCodec
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *security.TokenCodec, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, logger: logger}
}

// Register creates a new account with the user role. The username must not
// already exist; the comparison is case-sensitive and email is not deduplicated.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login checks the credentials and issues a session token carrying the user's
// current role. Unknown usernames and wrong passwords both return
// ErrInvalidCredentials so the response cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("login succeeded")
	return token, nil
}

// Verify decodes and validates a session token.
func (s *AuthService) Verify(token string) (*security.Claims, error) {
	claims, err := s.codec.Decode(token)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
	return claims, nil
}

// Elevate promotes the named user to admin.
func (s *AuthService) Elevate(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.repo.UpdateRole(ctx, username, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Msg("user elevated to admin")
	return user, nil
}

// Bootstrap runs once before the service starts accepting traffic: it
// ensures the unique username index and the well-known admin account. A
// concurrently booting replica may win the admin insert; the resulting
// duplicate-key error is treated as success.
func (s *AuthService) Bootstrap(ctx context.Context, adminPassword string) error {
	if err := s.repo.EnsureIndexes(ctx); err != nil {
		return err
	}

	hash, err := security.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.repo.Create(ctx, &domain.User{
		Username:     BootstrapAdminUsername,
		Email:        "admin@explora.com",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	if err == nil {
		s.logger.Warn().Str("username", BootstrapAdminUsername).
			Msg("bootstrap admin created with default password; rotate it outside local development")
	}
	return err
}
