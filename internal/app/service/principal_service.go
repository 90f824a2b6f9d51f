package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/app/repository"
	"github.com/freshkart/freshkart-backend/pkg/logger"
	"github.com/freshkart/freshkart-backend/pkg/util"
)

var (
	ErrPrincipalEmailExists = errors.New("a principal with this email already exists")
	ErrLastAdministrator    = errors.New("the last administrator account cannot be deleted")
)

// PrincipalService manages Administrator accounts. Only Admins reach it; the
// bootstrap Admin itself comes from cmd/seed.
type PrincipalService interface {
	ListAdministrators() ([]model.Principal, error)
	CreateAdministrator(name, email, password string) (*model.Principal, error)
	UpdateAdministrator(id uint, name, email string) (*model.Principal, error)
	DeleteAdministrator(id uint) error
}

type principalService struct {
	principalRepo repository.PrincipalRepository
}

func NewPrincipalService(principalRepo repository.PrincipalRepository) PrincipalService {
	return &principalService{principalRepo: principalRepo}
}

func (s *principalService) ListAdministrators() ([]model.Principal, error) {
	return s.principalRepo.FindByRole(model.RoleAdministrator)
}

func (s *principalService) CreateAdministrator(name, email, password string) (*model.Principal, error) {
	fields := util.FieldErrors{}
	fields.Require("name", name)
	fields.Require("email", email)
	fields.Require("password", password)
	fields.Match("email", email, util.IsValidEmail, "must be a valid email address")
	if !fields.OK() {
		return nil, &ValidationError{Fields: fields}
	}

	existing, err := s.principalRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPrincipalEmailExists
	}

	passwordHash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	principal := &model.Principal{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         model.RoleAdministrator,
	}
	if err := s.principalRepo.Create(principal); err != nil {
		return nil, err
	}

	logger.Info("Administrator account created", map[string]interface{}{
		"principal_id": principal.ID,
		"email":        principal.Email,
	})
	return principal, nil
}

// UpdateAdministrator applies a partial update. Role and password are never
// touched here; password changes go through a reset flow, not account CRUD.
func (s *principalService) UpdateAdministrator(id uint, name, email string) (*model.Principal, error) {
	principal, err := s.principalRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrincipalNotFound
		}
		return nil, err
	}
	if principal.Role != model.RoleAdministrator {
		return nil, ErrPrincipalNotFound
	}

	if email != "" && email != principal.Email {
		existing, err := s.principalRepo.FindByEmail(email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrPrincipalEmailExists
		}
		principal.Email = email
	}
	if name != "" {
		principal.Name = name
	}

	if err := s.principalRepo.Update(principal); err != nil {
		return nil, err
	}
	return principal, nil
}

func (s *principalService) DeleteAdministrator(id uint) error {
	principal, err := s.principalRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPrincipalNotFound
		}
		return err
	}
	if principal.Role != model.RoleAdministrator {
		return ErrPrincipalNotFound
	}

	// Promotion and exports need at least one Administrator to stay
	// reachable.
	count, err := s.principalRepo.CountByRole(model.RoleAdministrator)
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastAdministrator
	}

	if err := s.principalRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Administrator account deleted", map[string]interface{}{
		"principal_id": id,
	})
	return nil
}
