package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/freshkart/freshkart-backend/internal/errors"
	"github.com/freshkart/freshkart-backend/internal/middleware"
	"github.com/freshkart/freshkart-backend/internal/storage"
)

// maxUploadSize caps KYC document uploads at 10MB.
const maxUploadSize = 10 << 20

type UploadController struct {
	storage storage.ObjectStorage
}

func NewUploadController(storage storage.ObjectStorage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

// Upload proxies a multipart document to object storage and returns its URL.
// Public: registration forms upload before any account exists.
// POST /api/upload
func (ctrl *UploadController) Upload(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.BadRequest(c, apperrors.UploadFileMissing, "A file field is required")
		return
	}
	if fileHeader.Size > maxUploadSize {
		apperrors.BadRequest(c, apperrors.UploadFailed, "File exceeds the 10MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", err)
		apperrors.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := ctrl.storage.Upload(c.Request.Context(), fileHeader.Filename, contentType, file)
	if err != nil {
		log.Error("Upload to object storage failed", err, map[string]interface{}{
			"filename": fileHeader.Filename,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Failed to store the file")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url": url,
	})
}
