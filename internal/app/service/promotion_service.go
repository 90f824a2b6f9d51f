package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/app/repository"
	"github.com/freshkart/freshkart-backend/pkg/logger"
)

var ErrAlreadyConfirmed = errors.New("registration already confirmed")

// PromotionService is the Administrator side of the pipeline: listing
// approved applications, confirming them into live accounts, and exporting
// the approved roster.
type PromotionService interface {
	ApprovedSellers() ([]model.SellerApplication, error)
	ApprovedDeliveryAgents() ([]model.DeliveryAgentApplication, error)
	ConfirmSeller(id uint, confirmedBy uint) error
	ConfirmDeliveryAgent(id uint, confirmedBy uint) error
	ExportSellers(format ExportFormat) ([]byte, error)
	ExportDeliveryAgents(format ExportFormat) ([]byte, error)
}

type promotionService struct {
	sellerRepo repository.SellerApplicationRepository
	agentRepo  repository.DeliveryAgentApplicationRepository
	liveRepo   repository.LiveUserRepository
}

func NewPromotionService(
	sellerRepo repository.SellerApplicationRepository,
	agentRepo repository.DeliveryAgentApplicationRepository,
	liveRepo repository.LiveUserRepository,
) PromotionService {
	return &promotionService{
		sellerRepo: sellerRepo,
		agentRepo:  agentRepo,
		liveRepo:   liveRepo,
	}
}

func (s *promotionService) ApprovedSellers() ([]model.SellerApplication, error) {
	return s.sellerRepo.FindApproved()
}

func (s *promotionService) ApprovedDeliveryAgents() ([]model.DeliveryAgentApplication, error) {
	return s.agentRepo.FindApproved()
}

// ConfirmSeller promotes an approved seller application into a live account.
// The live twin is created at most once per email; the confirmation stamp is
// a conditional write, so a concurrent double confirm loses cleanly with a
// conflict instead of a second live account.
func (s *promotionService) ConfirmSeller(id uint, confirmedBy uint) error {
	app, err := s.sellerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRegistrationNotFound
		}
		return err
	}
	if app.IsConfirmed {
		return ErrAlreadyConfirmed
	}

	exists, err := s.liveRepo.SellerEmailExists(app.Email)
	if err != nil {
		return err
	}
	if exists {
		logger.Warn("Live seller already exists, skipping account creation", map[string]interface{}{
			"registration_id": id,
			"email":           app.Email,
		})
	} else {
		if err := s.liveRepo.CreateSeller(model.NewLiveSeller(app)); err != nil {
			return err
		}
	}

	affected, err := s.sellerRepo.Confirm(id, confirmedBy, time.Now())
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlreadyConfirmed
	}

	logger.Info("Seller confirmed", map[string]interface{}{
		"registration_id": id,
		"email":           app.Email,
		"confirmed_by":    confirmedBy,
	})
	return nil
}

// ConfirmDeliveryAgent promotes an approved delivery-agent application.
func (s *promotionService) ConfirmDeliveryAgent(id uint, confirmedBy uint) error {
	app, err := s.agentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRegistrationNotFound
		}
		return err
	}
	if app.IsConfirmed {
		return ErrAlreadyConfirmed
	}

	exists, err := s.liveRepo.DeliveryAgentEmailExists(app.Email)
	if err != nil {
		return err
	}
	if exists {
		logger.Warn("Live delivery agent already exists, skipping account creation", map[string]interface{}{
			"registration_id": id,
			"email":           app.Email,
		})
	} else {
		if err := s.liveRepo.CreateDeliveryAgent(model.NewLiveDeliveryAgent(app)); err != nil {
			return err
		}
	}

	affected, err := s.agentRepo.Confirm(id, confirmedBy, time.Now())
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlreadyConfirmed
	}

	logger.Info("Delivery agent confirmed", map[string]interface{}{
		"registration_id": id,
		"email":           app.Email,
		"confirmed_by":    confirmedBy,
	})
	return nil
}

func (s *promotionService) ExportSellers(format ExportFormat) ([]byte, error) {
	apps, err := s.sellerRepo.FindApproved()
	if err != nil {
		return nil, err
	}
	rows := sellerExportRows(apps)
	if format == FormatXLSX {
		return renderXLSX("Approved Sellers", sellerExportHeader, rows)
	}
	return renderCSV(sellerExportHeader, rows), nil
}

func (s *promotionService) ExportDeliveryAgents(format ExportFormat) ([]byte, error) {
	apps, err := s.agentRepo.FindApproved()
	if err != nil {
		return nil, err
	}
	rows := agentExportRows(apps)
	if format == FormatXLSX {
		return renderXLSX("Approved Delivery Agents", agentExportHeader, rows)
	}
	return renderCSV(agentExportHeader, rows), nil
}
