package repository

import (
	"time"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/pkg/logger"
	"gorm.io/gorm"
)

type SellerApplicationRepository interface {
	Create(app *model.SellerApplication) error
	FindByID(id uint) (*model.SellerApplication, error)
	FindByEmail(email string) (*model.SellerApplication, error)
	FindAll() ([]model.SellerApplication, error)
	FindByStatus(status model.ApplicationStatus) ([]model.SellerApplication, error)
	FindApproved() ([]model.SellerApplication, error)
	ExistsByEmailOrPhone(email, phone string) (bool, error)
	UpdateStatus(id uint, status model.ApplicationStatus, reason string, reviewerID uint) error
	UpdateDocumentStatus(id uint, statusColumn string, status model.DocumentStatus) error
	Confirm(id uint, confirmedBy uint, confirmedAt time.Time) (int64, error)
}

type sellerApplicationRepository struct {
	db *gorm.DB
}

// NewSellerApplicationRepository creates a seller application repository
// backed by the Registrations store.
func NewSellerApplicationRepository(db *gorm.DB) SellerApplicationRepository {
	return &sellerApplicationRepository{db: db}
}

func (r *sellerApplicationRepository) Create(app *model.SellerApplication) error {
	logger.Debug("Creating seller application", map[string]interface{}{
		"email": app.Email,
		"store": app.StoreName,
	})

	if err := r.db.Create(app).Error; err != nil {
		logger.Error("Failed to create seller application", err, map[string]interface{}{
			"email": app.Email,
		})
		return err
	}
	return nil
}

func (r *sellerApplicationRepository) FindByID(id uint) (*model.SellerApplication, error) {
	var app model.SellerApplication
	if err := r.db.First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *sellerApplicationRepository) FindByEmail(email string) (*model.SellerApplication, error) {
	var app model.SellerApplication
	if err := r.db.Where("email = ?", email).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *sellerApplicationRepository) FindAll() ([]model.SellerApplication, error) {
	var apps []model.SellerApplication
	if err := r.db.Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *sellerApplicationRepository) FindByStatus(status model.ApplicationStatus) ([]model.SellerApplication, error) {
	var apps []model.SellerApplication
	if err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// FindApproved returns approved applications ordered by approval time, most
// recent first. Includes already-confirmed rows; the promotion dashboard
// shows both.
func (r *sellerApplicationRepository) FindApproved() ([]model.SellerApplication, error) {
	var apps []model.SellerApplication
	err := r.db.Where("status = ?", model.StatusApproved).
		Order("approved_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *sellerApplicationRepository) ExistsByEmailOrPhone(email, phone string) (bool, error) {
	var count int64
	err := r.db.Model(&model.SellerApplication{}).
		Where("email = ? OR phone_number = ?", email, phone).
		Count(&count).Error
	return count > 0, err
}

func (r *sellerApplicationRepository) UpdateStatus(id uint, status model.ApplicationStatus, reason string, reviewerID uint) error {
	updates := map[string]interface{}{
		"status":        status,
		"status_reason": reason,
	}
	if status == model.StatusApproved {
		now := time.Now()
		updates["approved_at"] = now
		updates["approved_by"] = reviewerID
	}

	result := r.db.Model(&model.SellerApplication{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateDocumentStatus writes one document verification state. The column
// name must come from model.SellerDocumentColumn; it is never caller input.
func (r *sellerApplicationRepository) UpdateDocumentStatus(id uint, statusColumn string, status model.DocumentStatus) error {
	result := r.db.Model(&model.SellerApplication{}).
		Where("id = ?", id).
		Update(statusColumn, status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Confirm stamps the one-way confirmation flag. The WHERE clause makes the
// write conditional so two concurrent confirms can never both succeed;
// callers treat zero affected rows as "already confirmed or missing".
func (r *sellerApplicationRepository) Confirm(id uint, confirmedBy uint, confirmedAt time.Time) (int64, error) {
	result := r.db.Model(&model.SellerApplication{}).
		Where("id = ? AND is_confirmed = ?", id, false).
		Updates(map[string]interface{}{
			"is_confirmed": true,
			"confirmed_at": confirmedAt,
			"confirmed_by": confirmedBy,
		})
	return result.RowsAffected, result.Error
}
