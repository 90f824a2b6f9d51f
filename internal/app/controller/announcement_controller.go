package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshkart/freshkart-backend/internal/app/service"
	apperrors "github.com/freshkart/freshkart-backend/internal/errors"
	"github.com/freshkart/freshkart-backend/internal/middleware"
)

type AnnouncementController struct {
	announcementService service.AnnouncementService
}

func NewAnnouncementController(announcementService service.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// List returns current announcements, newest first
// GET /api/announcements
func (ctrl *AnnouncementController) List(c *gin.Context) {
	announcements, err := ctrl.announcementService.List()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list announcements")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"announcements": announcements,
		"count":         len(announcements),
	})
}

type CreateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// Create posts an announcement; date and author are stamped server-side
// POST /api/announcements
func (ctrl *AnnouncementController) Create(c *gin.Context) {
	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Title and content are required")
		return
	}

	author, _ := middleware.GetPrincipalEmail(c)
	announcement, err := ctrl.announcementService.Create(req.Title, req.Content, author)
	if err != nil {
		respondServiceError(c, err, "create announcement")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Announcement posted",
		"announcement": announcement,
	})
}

// Delete removes an announcement
// DELETE /api/announcements/:id
func (ctrl *AnnouncementController) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.announcementService.Delete(id); err != nil {
		if errors.Is(err, service.ErrAnnouncementNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Announcement not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete announcement")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Announcement deleted",
	})
}
