package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/errors"
	"github.com/freshkart/freshkart-backend/pkg/redis"
	"github.com/freshkart/freshkart-backend/pkg/util"
)

// Context keys for the authenticated principal.
const (
	PrincipalIDKey    = "principal_id"
	PrincipalEmailKey = "principal_email"
	PrincipalRoleKey  = "principal_role"
	TokenKey          = "auth_token"
	TokenExpiryKey    = "auth_token_expires_at"
)

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
	}
}

// Authenticate validates the bearer token and loads the principal into the
// request context. Websocket clients cannot set headers, so a token query
// parameter is accepted as a fallback.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("Invalid authorization header format", map[string]interface{}{
					"path": c.Request.URL.Path,
				})
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Invalid authorization header format")
				c.Abort()
				return
			}
			token = parts[1]
		} else {
			token = c.Query("token")
			if token == "" {
				log.Warn("Missing authorization header", map[string]interface{}{
					"path": c.Request.URL.Path,
				})
				errors.Unauthorized(c, "Authentication required")
				c.Abort()
				return
			}
		}

		claims, err := util.ValidateToken(token, m.jwtSecret)
		if err != nil {
			log.Warn("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			if err == util.ErrExpiredToken {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenExpired, "Session has expired, please sign in again")
			} else {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Invalid authentication token")
			}
			c.Abort()
			return
		}

		revoked, err := redis.IsTokenBlacklisted(c.Request.Context(), token)
		if err != nil {
			log.Error("Failed to check token blacklist", err, map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.InternalError(c, "")
			c.Abort()
			return
		}
		if revoked {
			log.Warn("Rejected revoked token", map[string]interface{}{
				"path":         c.Request.URL.Path,
				"principal_id": claims.PrincipalID,
			})
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenRevoked, "Session has been signed out")
			c.Abort()
			return
		}

		c.Set(PrincipalIDKey, claims.PrincipalID)
		c.Set(PrincipalEmailKey, claims.Email)
		c.Set(PrincipalRoleKey, model.Role(claims.Role))
		c.Set(TokenKey, token)
		if claims.ExpiresAt != nil {
			c.Set(TokenExpiryKey, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Must run after
// Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		value, exists := c.Get(PrincipalRoleKey)
		if !exists {
			log.Warn("Role information not found in context", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusForbidden, errors.AuthzRoleNotFound, "Role information not found")
			c.Abort()
			return
		}

		role := value.(model.Role)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		principalID, _ := GetPrincipalID(c)
		log.Warn("Insufficient permissions", map[string]interface{}{
			"principal_id":   principalID,
			"principal_role": role,
			"required_roles": roles,
			"path":           c.Request.URL.Path,
		})
		errors.Forbidden(c, "Access denied for this role")
		c.Abort()
	}
}

// GetPrincipalID extracts the authenticated principal's id.
func GetPrincipalID(c *gin.Context) (uint, bool) {
	id, exists := c.Get(PrincipalIDKey)
	if !exists {
		return 0, false
	}
	return id.(uint), true
}

// GetPrincipalEmail extracts the authenticated principal's email.
func GetPrincipalEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(PrincipalEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetPrincipalRole extracts the authenticated principal's role.
func GetPrincipalRole(c *gin.Context) (model.Role, bool) {
	role, exists := c.Get(PrincipalRoleKey)
	if !exists {
		return "", false
	}
	return role.(model.Role), true
}
