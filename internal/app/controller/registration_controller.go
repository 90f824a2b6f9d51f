package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshkart/freshkart-backend/internal/app/service"
	apperrors "github.com/freshkart/freshkart-backend/internal/errors"
	"github.com/freshkart/freshkart-backend/internal/middleware"
)

type RegistrationController struct {
	registrationService service.RegistrationService
	statusService       service.StatusService
}

func NewRegistrationController(
	registrationService service.RegistrationService,
	statusService service.StatusService,
) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		statusService:       statusService,
	}
}

// respondServiceError maps the shared service failures; controller-specific
// sentinels are handled before calling this.
func respondServiceError(c *gin.Context, err error, context string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		apperrors.RespondWithValidationError(c, validationErr.Fields)
		return
	}
	apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, context)
}

// RegisterSeller accepts a seller onboarding submission
// POST /api/registrations/seller
func (ctrl *RegistrationController) RegisterSeller(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var input service.SellerRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Warn("Malformed seller registration payload", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Request body is not valid JSON")
		return
	}

	app, err := ctrl.registrationService.RegisterSeller(&input)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateRegistration) {
			apperrors.BadRequest(c, apperrors.RegistrationDuplicate, "A registration with this email or phone number already exists")
			return
		}
		respondServiceError(c, err, "create seller registration")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Registration submitted successfully",
		"registrationId": app.ID,
	})
}

// RegisterDeliveryAgent accepts a delivery-agent onboarding submission
// POST /api/registrations/delivery-agent
func (ctrl *RegistrationController) RegisterDeliveryAgent(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var input service.DeliveryAgentRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Warn("Malformed delivery agent registration payload", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Request body is not valid JSON")
		return
	}

	app, err := ctrl.registrationService.RegisterDeliveryAgent(&input)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateRegistration) {
			apperrors.BadRequest(c, apperrors.RegistrationDuplicate, "A registration with this email or phone number already exists")
			return
		}
		respondServiceError(c, err, "create delivery agent registration")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Registration submitted successfully",
		"registrationId": app.ID,
	})
}

// Status is the public registration status lookup
// GET /api/registrations/status?id=&email=
func (ctrl *RegistrationController) Status(c *gin.Context) {
	id := c.Query("id")
	email := c.Query("email")

	view, err := ctrl.statusService.Lookup(id, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLookupKeyMissing):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "Provide a registration id or email")
		case errors.Is(err, service.ErrRegistrationNotFound):
			apperrors.NotFound(c, apperrors.RegistrationNotFound, "No registration found for the given id or email")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "registration status lookup")
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
