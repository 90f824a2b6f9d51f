package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/app/repository"
	"github.com/freshkart/freshkart-backend/pkg/logger"
)

var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrInvalidApplicantType = errors.New("invalid applicant type")
	ErrInvalidDocument      = errors.New("unknown document id")
)

// RegistrationSummary is the flattened row the review dashboard lists, one
// shape for both applicant types.
type RegistrationSummary struct {
	ID            uint                    `json:"id"`
	Type          model.ApplicantType     `json:"type"`
	Name          string                  `json:"name"`
	Email         string                  `json:"email"`
	Phone         string                  `json:"phone"`
	City          string                  `json:"city"`
	Status        model.ApplicationStatus `json:"status"`
	StatusReason  string                  `json:"statusReason,omitempty"`
	SubmittedDate string                  `json:"submittedDate"`
	Documents     []model.DocumentView    `json:"documents"`
}

// RegistrationDetail couples the summary with the full stored record.
type RegistrationDetail struct {
	Summary RegistrationSummary             `json:"summary"`
	Seller  *model.SellerApplication        `json:"seller,omitempty"`
	Agent   *model.DeliveryAgentApplication `json:"deliveryAgent,omitempty"`
}

// PendingRegistrations is the legacy abbreviated pending view.
type PendingRegistrations struct {
	Sellers        []model.SellerApplication        `json:"sellers"`
	DeliveryAgents []model.DeliveryAgentApplication `json:"deliveryAgents"`
}

type ReviewService interface {
	ListAll() ([]RegistrationSummary, error)
	ListPending() (*PendingRegistrations, error)
	Get(applicantType model.ApplicantType, id uint) (*RegistrationDetail, error)
	SetStatus(applicantType model.ApplicantType, id uint, decision model.ApplicationStatus, reason string, reviewerID uint) error
	SetDocumentStatus(applicantType model.ApplicantType, id uint, docID string, decision model.DocumentStatus) error
}

type reviewService struct {
	sellerRepo repository.SellerApplicationRepository
	agentRepo  repository.DeliveryAgentApplicationRepository
}

func NewReviewService(
	sellerRepo repository.SellerApplicationRepository,
	agentRepo repository.DeliveryAgentApplicationRepository,
) ReviewService {
	return &reviewService{
		sellerRepo: sellerRepo,
		agentRepo:  agentRepo,
	}
}

func sellerSummary(app *model.SellerApplication) RegistrationSummary {
	return RegistrationSummary{
		ID:            app.ID,
		Type:          model.ApplicantSeller,
		Name:          app.StoreName,
		Email:         app.Email,
		Phone:         app.PhoneNumber,
		City:          app.City,
		Status:        app.Status,
		StatusReason:  app.StatusReason,
		SubmittedDate: app.CreatedAt.Format("2006-01-02"),
		Documents:     app.Documents(),
	}
}

func agentSummary(app *model.DeliveryAgentApplication) RegistrationSummary {
	return RegistrationSummary{
		ID:            app.ID,
		Type:          model.ApplicantDeliveryAgent,
		Name:          app.FullName,
		Email:         app.Email,
		Phone:         app.ContactNumber,
		City:          app.City,
		Status:        app.Status,
		StatusReason:  app.StatusReason,
		SubmittedDate: app.CreatedAt.Format("2006-01-02"),
		Documents:     app.Documents(),
	}
}

func (s *reviewService) ListAll() ([]RegistrationSummary, error) {
	sellers, err := s.sellerRepo.FindAll()
	if err != nil {
		return nil, err
	}
	agents, err := s.agentRepo.FindAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]RegistrationSummary, 0, len(sellers)+len(agents))
	for i := range sellers {
		summaries = append(summaries, sellerSummary(&sellers[i]))
	}
	for i := range agents {
		summaries = append(summaries, agentSummary(&agents[i]))
	}
	return summaries, nil
}

func (s *reviewService) ListPending() (*PendingRegistrations, error) {
	sellers, err := s.sellerRepo.FindByStatus(model.StatusPending)
	if err != nil {
		return nil, err
	}
	agents, err := s.agentRepo.FindByStatus(model.StatusPending)
	if err != nil {
		return nil, err
	}
	return &PendingRegistrations{
		Sellers:        sellers,
		DeliveryAgents: agents,
	}, nil
}

func (s *reviewService) Get(applicantType model.ApplicantType, id uint) (*RegistrationDetail, error) {
	switch applicantType {
	case model.ApplicantSeller:
		app, err := s.sellerRepo.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRegistrationNotFound
			}
			return nil, err
		}
		return &RegistrationDetail{Summary: sellerSummary(app), Seller: app}, nil

	case model.ApplicantDeliveryAgent:
		app, err := s.agentRepo.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRegistrationNotFound
			}
			return nil, err
		}
		return &RegistrationDetail{Summary: agentSummary(app), Agent: app}, nil
	}
	return nil, ErrInvalidApplicantType
}

func (s *reviewService) SetStatus(applicantType model.ApplicantType, id uint, decision model.ApplicationStatus, reason string, reviewerID uint) error {
	var err error
	switch applicantType {
	case model.ApplicantSeller:
		err = s.sellerRepo.UpdateStatus(id, decision, reason, reviewerID)
	case model.ApplicantDeliveryAgent:
		err = s.agentRepo.UpdateStatus(id, decision, reason, reviewerID)
	default:
		return ErrInvalidApplicantType
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRegistrationNotFound
	}
	if err != nil {
		return err
	}

	logger.Info("Registration status updated", map[string]interface{}{
		"registration_id": id,
		"type":            applicantType,
		"status":          decision,
		"reviewer_id":     reviewerID,
	})
	return nil
}

// SetDocumentStatus verifies or rejects one KYC document. The doc id is
// resolved against the per-type column map before anything touches the store,
// so an unmapped id never becomes a write.
func (s *reviewService) SetDocumentStatus(applicantType model.ApplicantType, id uint, docID string, decision model.DocumentStatus) error {
	var (
		column string
		ok     bool
	)
	switch applicantType {
	case model.ApplicantSeller:
		column, ok = model.SellerDocumentColumn(docID)
	case model.ApplicantDeliveryAgent:
		column, ok = model.AgentDocumentColumn(docID)
	default:
		return ErrInvalidApplicantType
	}
	if !ok {
		return ErrInvalidDocument
	}

	var err error
	switch applicantType {
	case model.ApplicantSeller:
		err = s.sellerRepo.UpdateDocumentStatus(id, column, decision)
	case model.ApplicantDeliveryAgent:
		err = s.agentRepo.UpdateDocumentStatus(id, column, decision)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRegistrationNotFound
	}
	if err != nil {
		return err
	}

	logger.Info("Document status updated", map[string]interface{}{
		"registration_id": id,
		"type":            applicantType,
		"doc_id":          docID,
		"status":          decision,
	})
	return nil
}
