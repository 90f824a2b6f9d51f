package service

import (
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/app/repository"
)

var ErrLookupKeyMissing = errors.New("either id or email is required")

// StatusView is the public status-lookup result: enough for an applicant to
// see where their registration stands, nothing more.
type StatusView struct {
	AccountType   model.ApplicantType     `json:"accountType"`
	Status        model.ApplicationStatus `json:"status"`
	StatusReason  string                  `json:"statusReason,omitempty"`
	Name          string                  `json:"name"`
	Email         string                  `json:"email"`
	SubmittedDate string                  `json:"submittedDate"`
	ReviewedDate  string                  `json:"reviewedDate,omitempty"`
}

type StatusService interface {
	Lookup(id, email string) (*StatusView, error)
}

type statusService struct {
	sellerRepo repository.SellerApplicationRepository
	agentRepo  repository.DeliveryAgentApplicationRepository
}

func NewStatusService(
	sellerRepo repository.SellerApplicationRepository,
	agentRepo repository.DeliveryAgentApplicationRepository,
) StatusService {
	return &statusService{
		sellerRepo: sellerRepo,
		agentRepo:  agentRepo,
	}
}

// Lookup searches sellers first, then delivery agents, matching either the
// numeric id or the email. A non-numeric id never reaches the store; it just
// falls through to the email match.
func (s *statusService) Lookup(id, email string) (*StatusView, error) {
	id = strings.TrimSpace(id)
	email = strings.ToLower(strings.TrimSpace(email))
	if id == "" && email == "" {
		return nil, ErrLookupKeyMissing
	}

	numericID, hasID := parseID(id)

	if hasID {
		if app, err := s.sellerRepo.FindByID(numericID); err == nil {
			return sellerStatusView(app), nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	if email != "" {
		if app, err := s.sellerRepo.FindByEmail(email); err == nil {
			return sellerStatusView(app), nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if hasID {
		if app, err := s.agentRepo.FindByID(numericID); err == nil {
			return agentStatusView(app), nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	if email != "" {
		if app, err := s.agentRepo.FindByEmail(email); err == nil {
			return agentStatusView(app), nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return nil, ErrRegistrationNotFound
}

func parseID(s string) (uint, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

func sellerStatusView(app *model.SellerApplication) *StatusView {
	view := &StatusView{
		AccountType:   model.ApplicantSeller,
		Status:        app.Status,
		StatusReason:  app.StatusReason,
		Name:          app.StoreName,
		Email:         app.Email,
		SubmittedDate: app.CreatedAt.Format("2006-01-02"),
	}
	if app.ApprovedAt != nil {
		view.ReviewedDate = app.ApprovedAt.Format("2006-01-02")
	}
	return view
}

func agentStatusView(app *model.DeliveryAgentApplication) *StatusView {
	view := &StatusView{
		AccountType:   model.ApplicantDeliveryAgent,
		Status:        app.Status,
		StatusReason:  app.StatusReason,
		Name:          app.FullName,
		Email:         app.Email,
		SubmittedDate: app.CreatedAt.Format("2006-01-02"),
	}
	if app.ApprovedAt != nil {
		view.ReviewedDate = app.ApprovedAt.Format("2006-01-02")
	}
	return view
}
