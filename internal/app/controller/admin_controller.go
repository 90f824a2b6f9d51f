package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/app/service"
	apperrors "github.com/freshkart/freshkart-backend/internal/errors"
	"github.com/freshkart/freshkart-backend/internal/middleware"
)

// AdminController serves the Admin review dashboard: registration listing,
// approval decisions, per-document verification, and Administrator account
// management.
type AdminController struct {
	reviewService    service.ReviewService
	principalService service.PrincipalService
}

func NewAdminController(
	reviewService service.ReviewService,
	principalService service.PrincipalService,
) *AdminController {
	return &AdminController{
		reviewService:    reviewService,
		principalService: principalService,
	}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid id")
		return 0, false
	}
	return uint(value), true
}

func parseApplicantType(c *gin.Context) (model.ApplicantType, bool) {
	applicantType, ok := model.ParseApplicantType(c.Param("type"))
	if !ok {
		apperrors.BadRequest(c, apperrors.RegistrationInvalidType, "Type must be seller or deliveryagent")
		return "", false
	}
	return applicantType, true
}

// ListRegistrations returns every registration with normalized documents
// GET /api/admin/registrations
func (ctrl *AdminController) ListRegistrations(c *gin.Context) {
	summaries, err := ctrl.reviewService.ListAll()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list registrations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"registrations": summaries,
		"count":         len(summaries),
	})
}

// ListPending is the abbreviated pending-only view
// GET /api/admin/pending-registrations
func (ctrl *AdminController) ListPending(c *gin.Context) {
	pending, err := ctrl.reviewService.ListPending()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list pending registrations")
		return
	}

	c.JSON(http.StatusOK, pending)
}

// GetRegistration returns a single full record
// GET /api/admin/registration/:type/:id
func (ctrl *AdminController) GetRegistration(c *gin.Context) {
	applicantType, ok := parseApplicantType(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	detail, err := ctrl.reviewService.Get(applicantType, id)
	if err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			apperrors.NotFound(c, apperrors.RegistrationNotFound, "Registration not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get registration")
		return
	}

	c.JSON(http.StatusOK, detail)
}

type UpdateStatusRequest struct {
	Status       string `json:"status" binding:"required"`
	StatusReason string `json:"statusReason"`
}

// UpdateStatus approves or rejects a registration
// PATCH /api/admin/registration/:type/:id/status
func (ctrl *AdminController) UpdateStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	applicantType, ok := parseApplicantType(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Status is required")
		return
	}

	decision, ok := model.ParseDecision(req.Status)
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidStatus, "Status must be approved or rejected")
		return
	}

	reviewerID, _ := middleware.GetPrincipalID(c)
	if err := ctrl.reviewService.SetStatus(applicantType, id, decision, req.StatusReason, reviewerID); err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			apperrors.NotFound(c, apperrors.RegistrationNotFound, "Registration not found")
			return
		}
		log.Error("Failed to update registration status", err, map[string]interface{}{
			"registration_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update registration status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registration status updated",
		"status":  decision,
	})
}

type UpdateDocumentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateDocumentStatus verifies or rejects one KYC document
// PATCH /api/admin/registration/:type/:id/document/:docId/status
func (ctrl *AdminController) UpdateDocumentStatus(c *gin.Context) {
	applicantType, ok := parseApplicantType(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateDocumentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Status is required")
		return
	}

	decision, ok := model.ParseDocumentDecision(req.Status)
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidStatus, "Status must be verified or rejected")
		return
	}

	err := ctrl.reviewService.SetDocumentStatus(applicantType, id, c.Param("docId"), decision)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDocument):
			apperrors.BadRequest(c, apperrors.RegistrationInvalidDocument, "Unknown document id")
		case errors.Is(err, service.ErrRegistrationNotFound):
			apperrors.NotFound(c, apperrors.RegistrationNotFound, "Registration not found")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update document status")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Document status updated",
		"status":  decision,
	})
}

// ListAdministrators lists Administrator accounts
// GET /api/admin/administrators
func (ctrl *AdminController) ListAdministrators(c *gin.Context) {
	administrators, err := ctrl.principalService.ListAdministrators()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list administrators")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"administrators": administrators,
		"count":          len(administrators),
	})
}

type CreateAdministratorRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// CreateAdministrator creates an Administrator account
// POST /api/admin/administrators
func (ctrl *AdminController) CreateAdministrator(c *gin.Context) {
	var req CreateAdministratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Name, email and password are required")
		return
	}

	principal, err := ctrl.principalService.CreateAdministrator(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrPrincipalEmailExists) {
			apperrors.Conflict(c, apperrors.PrincipalEmailExists, "An account with this email already exists")
			return
		}
		respondServiceError(c, err, "create administrator")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Administrator created",
		"administrator": principal,
	})
}

type UpdateAdministratorRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateAdministrator partially updates an Administrator account. Role and
// password are never updatable here.
// PATCH /api/admin/administrators/:id
func (ctrl *AdminController) UpdateAdministrator(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAdministratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Request body is not valid JSON")
		return
	}

	principal, err := ctrl.principalService.UpdateAdministrator(id, req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPrincipalNotFound):
			apperrors.NotFound(c, apperrors.PrincipalNotFound, "Administrator not found")
		case errors.Is(err, service.ErrPrincipalEmailExists):
			apperrors.Conflict(c, apperrors.PrincipalEmailExists, "An account with this email already exists")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update administrator")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Administrator updated",
		"administrator": principal,
	})
}

// DeleteAdministrator removes an Administrator account
// DELETE /api/admin/administrators/:id
func (ctrl *AdminController) DeleteAdministrator(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.principalService.DeleteAdministrator(id); err != nil {
		if errors.Is(err, service.ErrPrincipalNotFound) {
			apperrors.NotFound(c, apperrors.PrincipalNotFound, "Administrator not found")
			return
		}
		if errors.Is(err, service.ErrLastAdministrator) {
			apperrors.Conflict(c, apperrors.PrincipalLastAdministrator, "The last administrator cannot be deleted")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete administrator")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Administrator deleted",
	})
}
