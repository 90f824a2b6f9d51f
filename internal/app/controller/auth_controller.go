package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freshkart/freshkart-backend/internal/app/service"
	apperrors "github.com/freshkart/freshkart-backend/internal/errors"
	"github.com/freshkart/freshkart-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Login handles staff sign-in
// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email, password and role are required")
		return
	}

	principal, token, err := ctrl.authService.Login(req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			apperrors.BadRequest(c, apperrors.ValidationInvalidRole, "Role must be admin or administrator")
		case errors.Is(err, service.ErrPrincipalNotFound):
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthPrincipalNotFound, "No account found for this email")
		case errors.Is(err, service.ErrRoleMismatch), errors.Is(err, service.ErrInvalidCredentials):
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "Invalid email or password")
		default:
			log.Error("Login failed", err, map[string]interface{}{
				"email": req.Email,
			})
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"principal": gin.H{
			"id":    principal.ID,
			"name":  principal.Name,
			"email": principal.Email,
			"role":  principal.Role,
		},
	})
}

// Logout revokes the presented token
// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	token := c.GetString(middleware.TokenKey)
	expiresAt, _ := c.Get(middleware.TokenExpiryKey)

	expiry, ok := expiresAt.(time.Time)
	if !ok {
		expiry = time.Now()
	}

	if err := ctrl.authService.Logout(c.Request.Context(), token, expiry); err != nil {
		log.Error("Logout failed", err)
		apperrors.InternalError(c, "Failed to sign out")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
