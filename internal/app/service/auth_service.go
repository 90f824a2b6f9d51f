package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/app/repository"
	"github.com/freshkart/freshkart-backend/pkg/logger"
	"github.com/freshkart/freshkart-backend/pkg/redis"
	"github.com/freshkart/freshkart-backend/pkg/util"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPrincipalNotFound  = errors.New("principal not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrRoleMismatch       = errors.New("principal does not hold the requested role")
)

type AuthService interface {
	Login(email, password, role string) (*model.Principal, string, error)
	Logout(ctx context.Context, token string, expiresAt time.Time) error
}

type authService struct {
	principalRepo repository.PrincipalRepository
	jwtSecret     string
	tokenExpiry   time.Duration
}

func NewAuthService(principalRepo repository.PrincipalRepository, jwtSecret string, tokenExpiry time.Duration) AuthService {
	return &authService{
		principalRepo: principalRepo,
		jwtSecret:     jwtSecret,
		tokenExpiry:   tokenExpiry,
	}
}

// Login authenticates a staff principal against the role the dashboard
// claims. The role string is normalized; the stored role must match it, so an
// Admin cannot sign in through the Administrator dashboard.
func (s *authService) Login(email, password, role string) (*model.Principal, string, error) {
	logger.Info("Login attempt", map[string]interface{}{
		"email": email,
		"role":  role,
	})

	wantRole, ok := model.ParseRole(role)
	if !ok {
		return nil, "", ErrInvalidRole
	}

	principal, err := s.principalRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: principal not found", map[string]interface{}{
				"email": email,
			})
			return nil, "", ErrPrincipalNotFound
		}
		logger.Error("Failed to find principal", err, map[string]interface{}{
			"email": email,
		})
		return nil, "", err
	}

	if principal.Role != wantRole {
		logger.Warn("Login failed: role mismatch", map[string]interface{}{
			"email":     email,
			"requested": wantRole,
			"actual":    principal.Role,
		})
		return nil, "", ErrRoleMismatch
	}

	if !util.VerifyPassword(principal.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"email": email,
		})
		return nil, "", ErrInvalidCredentials
	}

	token, err := util.GenerateToken(principal.ID, principal.Email, string(principal.Role), s.jwtSecret, s.tokenExpiry)
	if err != nil {
		logger.Error("Failed to generate token", err, map[string]interface{}{
			"principal_id": principal.ID,
		})
		return nil, "", err
	}

	logger.Info("Login successful", map[string]interface{}{
		"principal_id": principal.ID,
		"email":        principal.Email,
		"role":         principal.Role,
	})
	return principal, token, nil
}

// Logout blacklists the token until its natural expiry so the middleware
// rejects it on every later request.
func (s *authService) Logout(ctx context.Context, token string, expiresAt time.Time) error {
	remaining := time.Until(expiresAt)
	if remaining <= 0 {
		return nil
	}
	return redis.BlacklistToken(ctx, token, remaining)
}
