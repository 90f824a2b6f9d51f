package router

import (
	"github.com/gin-gonic/gin"

	"github.com/freshkart/freshkart-backend/config"
	"github.com/freshkart/freshkart-backend/internal/app/controller"
	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/middleware"
)

type Router struct {
	authController          *controller.AuthController
	registrationController  *controller.RegistrationController
	adminController         *controller.AdminController
	administratorController *controller.AdministratorController
	announcementController  *controller.AnnouncementController
	communicationController *controller.CommunicationController
	uploadController        *controller.UploadController
	authMiddleware          *middleware.AuthMiddleware
	config                  *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	registrationController *controller.RegistrationController,
	adminController *controller.AdminController,
	administratorController *controller.AdministratorController,
	announcementController *controller.AnnouncementController,
	communicationController *controller.CommunicationController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:          authController,
		registrationController:  registrationController,
		adminController:         adminController,
		administratorController: administratorController,
		announcementController:  announcementController,
		communicationController: communicationController,
		uploadController:        uploadController,
		authMiddleware:          authMiddleware,
		config:                  cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "healthy",
				"message": "Freshkart portal API is running",
			})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
		}

		registrations := api.Group("/registrations")
		{
			registrations.POST("/seller", r.registrationController.RegisterSeller)
			registrations.POST("/delivery-agent", r.registrationController.RegisterDeliveryAgent)
			registrations.GET("/status", r.registrationController.Status)
		}

		admin := api.Group("/admin",
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireRole(model.RoleAdmin),
		)
		{
			admin.GET("/registrations", r.adminController.ListRegistrations)
			admin.GET("/pending-registrations", r.adminController.ListPending)
			admin.GET("/registration/:type/:id", r.adminController.GetRegistration)
			admin.PATCH("/registration/:type/:id/status", r.adminController.UpdateStatus)
			admin.PATCH("/registration/:type/:id/document/:docId/status", r.adminController.UpdateDocumentStatus)

			admin.GET("/administrators", r.adminController.ListAdministrators)
			admin.POST("/administrators", r.adminController.CreateAdministrator)
			admin.PATCH("/administrators/:id", r.adminController.UpdateAdministrator)
			admin.DELETE("/administrators/:id", r.adminController.DeleteAdministrator)
		}

		administrator := api.Group("/administrator",
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireRole(model.RoleAdministrator),
		)
		{
			administrator.GET("/sellers/approved", r.administratorController.ApprovedSellers)
			administrator.GET("/sellers/export", r.administratorController.ExportSellers)
			administrator.PATCH("/sellers/:id/confirm", r.administratorController.ConfirmSeller)

			administrator.GET("/delivery-agents/approved", r.administratorController.ApprovedDeliveryAgents)
			administrator.GET("/delivery-agents/export", r.administratorController.ExportDeliveryAgents)
			administrator.PATCH("/delivery-agents/:id/confirm", r.administratorController.ConfirmDeliveryAgent)
		}

		announcements := api.Group("/announcements")
		{
			announcements.GET("", r.announcementController.List)
			announcements.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(model.RoleAdmin, model.RoleAdministrator),
				r.announcementController.Create,
			)
			announcements.DELETE("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole(model.RoleAdmin, model.RoleAdministrator),
				r.announcementController.Delete,
			)
		}

		communication := api.Group("/communication",
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireRole(model.RoleAdmin, model.RoleAdministrator),
		)
		{
			communication.GET("/messages", r.communicationController.Messages)
			communication.POST("/messages", r.communicationController.PostMessage)
			communication.GET("/ws", r.communicationController.WebSocket)
		}

		api.POST("/upload", r.uploadController.Upload)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
