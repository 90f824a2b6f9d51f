package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/gorm"

	"github.com/freshkart/freshkart-backend/config"
	"github.com/freshkart/freshkart-backend/internal/app/controller"
	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/app/repository"
	"github.com/freshkart/freshkart-backend/internal/app/service"
	"github.com/freshkart/freshkart-backend/internal/db"
	"github.com/freshkart/freshkart-backend/internal/middleware"
	"github.com/freshkart/freshkart-backend/internal/router"
	"github.com/freshkart/freshkart-backend/internal/scheduler"
	"github.com/freshkart/freshkart-backend/internal/storage"
	"github.com/freshkart/freshkart-backend/internal/websocket"
	"github.com/freshkart/freshkart-backend/pkg/logger"
	"github.com/freshkart/freshkart-backend/pkg/redis"
	"github.com/freshkart/freshkart-backend/pkg/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Freshkart Portal Backend", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	stores, err := db.Connect(&cfg.Stores)
	if err != nil {
		logger.Fatal("Failed to connect to stores", err)
	}
	defer func() {
		if err := stores.Close(); err != nil {
			logger.Error("Failed to close store connections", err)
		}
	}()

	if err := stores.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to initialize Redis", err)
	}
	defer redis.Close()

	// Repositories
	principalRepo := repository.NewPrincipalRepository(stores.Users)
	sellerRepo := repository.NewSellerApplicationRepository(stores.Registrations)
	agentRepo := repository.NewDeliveryAgentApplicationRepository(stores.Registrations)
	liveRepo := repository.NewLiveUserRepository(stores.Users)
	announcementRepo := repository.NewAnnouncementRepository(stores.Announcements)
	chatRepo := repository.NewChatRepository(stores.Announcements)

	if err := seedBootstrapAdmin(principalRepo, &cfg.Seed); err != nil {
		logger.Fatal("Failed to seed bootstrap admin", err)
	}

	// Services
	authService := service.NewAuthService(principalRepo, cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	registrationService := service.NewRegistrationService(sellerRepo, agentRepo)
	statusService := service.NewStatusService(sellerRepo, agentRepo)
	reviewService := service.NewReviewService(sellerRepo, agentRepo)
	principalService := service.NewPrincipalService(principalRepo)
	promotionService := service.NewPromotionService(sellerRepo, agentRepo, liveRepo)
	announcementService := service.NewAnnouncementService(announcementRepo, cfg.Retention.Announcements)
	chatService := service.NewChatService(chatRepo, cfg.Retention.ChatMessages)

	// Websocket hub for the internal chat feed
	hub := websocket.NewHub()
	go hub.Run()

	// Controllers
	authController := controller.NewAuthController(authService)
	registrationController := controller.NewRegistrationController(registrationService, statusService)
	adminController := controller.NewAdminController(reviewService, principalService)
	administratorController := controller.NewAdministratorController(promotionService)
	announcementController := controller.NewAnnouncementController(announcementService)
	communicationController := controller.NewCommunicationController(chatService, hub, cfg.CORS.AllowedOrigins)
	uploadController := controller.NewUploadController(storage.NewS3Storage(&cfg.S3))

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	r := router.NewRouter(
		authController,
		registrationController,
		adminController,
		administratorController,
		announcementController,
		communicationController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Retention purge for announcements and chat
	retentionScheduler := scheduler.NewRetentionScheduler(
		announcementRepo,
		chatRepo,
		cfg.Retention.Announcements,
		cfg.Retention.ChatMessages,
	)
	if err := retentionScheduler.Start(); err != nil {
		logger.Fatal("Failed to start retention scheduler", err)
	}
	defer retentionScheduler.Stop()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}

// seedBootstrapAdmin creates the first Admin account when configured and not
// already present. Without it a fresh deployment has no way to sign in.
func seedBootstrapAdmin(principalRepo repository.PrincipalRepository, seed *config.SeedConfig) error {
	if seed.AdminEmail == "" || seed.AdminPassword == "" {
		logger.Warn("Bootstrap admin not configured, skipping seed")
		return nil
	}

	_, err := principalRepo.FindByEmail(seed.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := util.HashPassword(seed.AdminPassword)
	if err != nil {
		return err
	}

	admin := &model.Principal{
		Name:         seed.AdminName,
		Email:        seed.AdminEmail,
		PasswordHash: passwordHash,
		Role:         model.RoleAdmin,
	}
	if err := principalRepo.Create(admin); err != nil {
		return err
	}

	logger.Info("Bootstrap admin created", map[string]interface{}{
		"email": seed.AdminEmail,
	})
	return nil
}
