package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshkart/freshkart-backend/internal/app/service"
	apperrors "github.com/freshkart/freshkart-backend/internal/errors"
	"github.com/freshkart/freshkart-backend/internal/middleware"
)

// AdministratorController serves the Administrator promotion dashboard:
// approved lists, confirmation into live accounts, and roster export.
type AdministratorController struct {
	promotionService service.PromotionService
}

func NewAdministratorController(promotionService service.PromotionService) *AdministratorController {
	return &AdministratorController{
		promotionService: promotionService,
	}
}

// ApprovedSellers lists approved seller applications
// GET /api/administrator/sellers/approved
func (ctrl *AdministratorController) ApprovedSellers(c *gin.Context) {
	sellers, err := ctrl.promotionService.ApprovedSellers()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list approved sellers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sellers": sellers,
		"count":   len(sellers),
	})
}

// ApprovedDeliveryAgents lists approved delivery-agent applications
// GET /api/administrator/delivery-agents/approved
func (ctrl *AdministratorController) ApprovedDeliveryAgents(c *gin.Context) {
	agents, err := ctrl.promotionService.ApprovedDeliveryAgents()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list approved delivery agents")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deliveryAgents": agents,
		"count":          len(agents),
	})
}

// ConfirmSeller promotes an approved seller into a live account
// PATCH /api/administrator/sellers/:id/confirm
func (ctrl *AdministratorController) ConfirmSeller(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	confirmedBy, _ := middleware.GetPrincipalID(c)
	if err := ctrl.promotionService.ConfirmSeller(id, confirmedBy); err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			apperrors.NotFound(c, apperrors.RegistrationNotFound, "Seller registration not found")
		case errors.Is(err, service.ErrAlreadyConfirmed):
			apperrors.Conflict(c, apperrors.RegistrationConfirmed, "Registration is already confirmed")
		default:
			log.Error("Failed to confirm seller", err, map[string]interface{}{
				"registration_id": id,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "confirm seller")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Seller confirmed successfully",
	})
}

// ConfirmDeliveryAgent promotes an approved delivery agent
// PATCH /api/administrator/delivery-agents/:id/confirm
func (ctrl *AdministratorController) ConfirmDeliveryAgent(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	confirmedBy, _ := middleware.GetPrincipalID(c)
	if err := ctrl.promotionService.ConfirmDeliveryAgent(id, confirmedBy); err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			apperrors.NotFound(c, apperrors.RegistrationNotFound, "Delivery agent registration not found")
		case errors.Is(err, service.ErrAlreadyConfirmed):
			apperrors.Conflict(c, apperrors.RegistrationConfirmed, "Registration is already confirmed")
		default:
			log.Error("Failed to confirm delivery agent", err, map[string]interface{}{
				"registration_id": id,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "confirm delivery agent")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery agent confirmed successfully",
	})
}

// ExportSellers streams the approved seller roster
// GET /api/administrator/sellers/export?format=csv|xlsx
func (ctrl *AdministratorController) ExportSellers(c *gin.Context) {
	ctrl.export(c, "approved-sellers", ctrl.promotionService.ExportSellers)
}

// ExportDeliveryAgents streams the approved delivery-agent roster
// GET /api/administrator/delivery-agents/export?format=csv|xlsx
func (ctrl *AdministratorController) ExportDeliveryAgents(c *gin.Context) {
	ctrl.export(c, "approved-delivery-agents", ctrl.promotionService.ExportDeliveryAgents)
}

func (ctrl *AdministratorController) export(c *gin.Context, basename string, render func(service.ExportFormat) ([]byte, error)) {
	format := service.ParseExportFormat(c.Query("format"))

	data, err := render(format)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "export roster")
		return
	}

	var contentType, filename string
	if format == service.FormatXLSX {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = basename + ".xlsx"
	} else {
		contentType = "text/csv"
		filename = basename + ".csv"
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
