package repository

import (
	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/pkg/logger"
	"gorm.io/gorm"
)

type PrincipalRepository interface {
	Create(principal *model.Principal) error
	FindByID(id uint) (*model.Principal, error)
	FindByEmail(email string) (*model.Principal, error)
	FindByRole(role model.Role) ([]model.Principal, error)
	Update(principal *model.Principal) error
	Delete(id uint) error
	CountByRole(role model.Role) (int64, error)
}

type principalRepository struct {
	db *gorm.DB
}

// NewPrincipalRepository creates a principal repository backed by the Users
// store.
func NewPrincipalRepository(db *gorm.DB) PrincipalRepository {
	return &principalRepository{db: db}
}

func (r *principalRepository) Create(principal *model.Principal) error {
	logger.Debug("Creating principal", map[string]interface{}{
		"email": principal.Email,
		"role":  principal.Role,
	})

	if err := r.db.Create(principal).Error; err != nil {
		logger.Error("Failed to create principal", err, map[string]interface{}{
			"email": principal.Email,
		})
		return err
	}
	return nil
}

func (r *principalRepository) FindByID(id uint) (*model.Principal, error) {
	var principal model.Principal
	if err := r.db.First(&principal, id).Error; err != nil {
		return nil, err
	}
	return &principal, nil
}

func (r *principalRepository) FindByEmail(email string) (*model.Principal, error) {
	var principal model.Principal
	if err := r.db.Where("email = ?", email).First(&principal).Error; err != nil {
		return nil, err
	}
	return &principal, nil
}

func (r *principalRepository) FindByRole(role model.Role) ([]model.Principal, error) {
	var principals []model.Principal
	if err := r.db.Where("role = ?", role).Order("created_at DESC").Find(&principals).Error; err != nil {
		return nil, err
	}
	return principals, nil
}

func (r *principalRepository) Update(principal *model.Principal) error {
	return r.db.Save(principal).Error
}

func (r *principalRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Principal{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *principalRepository) CountByRole(role model.Role) (int64, error) {
	var count int64
	err := r.db.Model(&model.Principal{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
