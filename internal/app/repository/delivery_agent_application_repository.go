package repository

import (
	"time"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/pkg/logger"
	"gorm.io/gorm"
)

type DeliveryAgentApplicationRepository interface {
	Create(app *model.DeliveryAgentApplication) error
	FindByID(id uint) (*model.DeliveryAgentApplication, error)
	FindByEmail(email string) (*model.DeliveryAgentApplication, error)
	FindAll() ([]model.DeliveryAgentApplication, error)
	FindByStatus(status model.ApplicationStatus) ([]model.DeliveryAgentApplication, error)
	FindApproved() ([]model.DeliveryAgentApplication, error)
	ExistsByEmailOrPhone(email, phone string) (bool, error)
	UpdateStatus(id uint, status model.ApplicationStatus, reason string, reviewerID uint) error
	UpdateDocumentStatus(id uint, statusColumn string, status model.DocumentStatus) error
	Confirm(id uint, confirmedBy uint, confirmedAt time.Time) (int64, error)
}

type deliveryAgentApplicationRepository struct {
	db *gorm.DB
}

// NewDeliveryAgentApplicationRepository creates a delivery agent application
// repository backed by the Registrations store.
func NewDeliveryAgentApplicationRepository(db *gorm.DB) DeliveryAgentApplicationRepository {
	return &deliveryAgentApplicationRepository{db: db}
}

func (r *deliveryAgentApplicationRepository) Create(app *model.DeliveryAgentApplication) error {
	logger.Debug("Creating delivery agent application", map[string]interface{}{
		"email": app.Email,
	})

	if err := r.db.Create(app).Error; err != nil {
		logger.Error("Failed to create delivery agent application", err, map[string]interface{}{
			"email": app.Email,
		})
		return err
	}
	return nil
}

func (r *deliveryAgentApplicationRepository) FindByID(id uint) (*model.DeliveryAgentApplication, error) {
	var app model.DeliveryAgentApplication
	if err := r.db.First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *deliveryAgentApplicationRepository) FindByEmail(email string) (*model.DeliveryAgentApplication, error) {
	var app model.DeliveryAgentApplication
	if err := r.db.Where("email = ?", email).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *deliveryAgentApplicationRepository) FindAll() ([]model.DeliveryAgentApplication, error) {
	var apps []model.DeliveryAgentApplication
	if err := r.db.Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *deliveryAgentApplicationRepository) FindByStatus(status model.ApplicationStatus) ([]model.DeliveryAgentApplication, error) {
	var apps []model.DeliveryAgentApplication
	if err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *deliveryAgentApplicationRepository) FindApproved() ([]model.DeliveryAgentApplication, error) {
	var apps []model.DeliveryAgentApplication
	err := r.db.Where("status = ?", model.StatusApproved).
		Order("approved_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *deliveryAgentApplicationRepository) ExistsByEmailOrPhone(email, phone string) (bool, error) {
	var count int64
	err := r.db.Model(&model.DeliveryAgentApplication{}).
		Where("email = ? OR contact_number = ?", email, phone).
		Count(&count).Error
	return count > 0, err
}

func (r *deliveryAgentApplicationRepository) UpdateStatus(id uint, status model.ApplicationStatus, reason string, reviewerID uint) error {
	updates := map[string]interface{}{
		"status":        status,
		"status_reason": reason,
	}
	if status == model.StatusApproved {
		now := time.Now()
		updates["approved_at"] = now
		updates["approved_by"] = reviewerID
	}

	result := r.db.Model(&model.DeliveryAgentApplication{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateDocumentStatus writes one document verification state. The column
// name must come from model.AgentDocumentColumn; it is never caller input.
func (r *deliveryAgentApplicationRepository) UpdateDocumentStatus(id uint, statusColumn string, status model.DocumentStatus) error {
	result := r.db.Model(&model.DeliveryAgentApplication{}).
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

// Confirm stamps the one-way confirmation flag, conditional on the row not
// already being confirmed.
func (r *deliveryAgentApplicationRepository) Confirm(id uint, confirmedBy uint, confirmedAt time.Time) (int64, error) {
	result := r.db.Model(&model.DeliveryAgentApplication{}).
		Where("id = ? AND is_confirmed = ?", id, false).
		Updates(map[string]interface{}{
			"is_confirmed": true,
			"confirmed_at": confirmedAt,
			"confirmed_by": confirmedBy,
		})
	return result.RowsAffected, result.Error
}
