package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/app/repository"
	"github.com/freshkart/freshkart-backend/internal/db"
	"github.com/freshkart/freshkart-backend/pkg/util"
)

const testJWTSecret = "test-secret-key"

func setupAuthServiceTest(t *testing.T) (AuthService, repository.PrincipalRepository) {
	stores, err := db.SetupTestStores()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestStores(stores) })

	repo := repository.NewPrincipalRepository(stores.Users)
	return NewAuthService(repo, testJWTSecret, 24*time.Hour), repo
}

func seedPrincipal(t *testing.T, repo repository.PrincipalRepository, email string, role model.Role) *model.Principal {
	hash, err := util.HashPassword("secret123")
	require.NoError(t, err)

	principal := &model.Principal{
		Name:         "Test Principal",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, repo.Create(principal))
	return principal
}

func TestAuthService_Login(t *testing.T) {
	svc, repo := setupAuthServiceTest(t)
	seeded := seedPrincipal(t, repo, "admin@freshkart.in", model.RoleAdmin)

	principal, token, err := svc.Login("admin@freshkart.in", "secret123", "admin")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, principal.ID)
	require.NotEmpty(t, token)

	claims, err := util.ValidateToken(token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, claims.PrincipalID)
	assert.Equal(t, "admin@freshkart.in", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestAuthService_Login_RoleMismatch(t *testing.T) {
	svc, repo := setupAuthServiceTest(t)
	seedPrincipal(t, repo, "admin@freshkart.in", model.RoleAdmin)

	_, _, err := svc.Login("admin@freshkart.in", "secret123", "administrator")
	assert.ErrorIs(t, err, ErrRoleMismatch)
}

func TestAuthService_Login_InvalidRole(t *testing.T) {
	svc, repo := setupAuthServiceTest(t)
	seedPrincipal(t, repo, "admin@freshkart.in", model.RoleAdmin)

	_, _, err := svc.Login("admin@freshkart.in", "secret123", "superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthService_Login_PrincipalNotFound(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	_, _, err := svc.Login("ghost@freshkart.in", "secret123", "admin")
	assert.ErrorIs(t, err, ErrPrincipalNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo := setupAuthServiceTest(t)
	seedPrincipal(t, repo, "admin@freshkart.in", model.RoleAdmin)

	_, _, err := svc.Login("admin@freshkart.in", "wrong-password", "admin")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Logout_ExpiredToken(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	// A token already past expiry needs no blacklist entry
	err := svc.Logout(context.Background(), "some-token", time.Now().Add(-time.Minute))
	assert.NoError(t, err)
}
