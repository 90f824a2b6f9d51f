package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/freshkart/freshkart-backend/internal/app/repository"
	"github.com/freshkart/freshkart-backend/pkg/logger"
)

// RetentionScheduler physically deletes announcements and chat messages past
// their retention window. The list queries already hide expired rows; this
// job keeps the tables from growing without bound.
type RetentionScheduler struct {
	cron                  *cron.Cron
	announcementRepo      repository.AnnouncementRepository
	chatRepo              repository.ChatRepository
	announcementRetention time.Duration
	chatRetention         time.Duration
}

func NewRetentionScheduler(
	announcementRepo repository.AnnouncementRepository,
	chatRepo repository.ChatRepository,
	announcementRetention, chatRetention time.Duration,
) *RetentionScheduler {
	return &RetentionScheduler{
		cron:                  cron.New(),
		announcementRepo:      announcementRepo,
		chatRepo:              chatRepo,
		announcementRetention: announcementRetention,
		chatRetention:         chatRetention,
	}
}

// Start runs the purge once immediately, then every hour on the hour.
func (s *RetentionScheduler) Start() error {
	_, err := s.cron.AddFunc("0 * * * *", s.purge)
	if err != nil {
		logger.Error("Failed to add retention cron job", err)
		return err
	}

	s.purge()
	s.cron.Start()
	logger.Info("Retention scheduler started (hourly purge)")
	return nil
}

func (s *RetentionScheduler) Stop() {
	logger.Info("Stopping retention scheduler...")
	s.cron.Stop()
}

func (s *RetentionScheduler) purge() {
	now := time.Now()

	deleted, err := s.announcementRepo.DeleteOlderThan(now.Add(-s.announcementRetention))
	if err != nil {
		logger.Error("Failed to purge expired announcements", err)
	} else if deleted > 0 {
		logger.Info("Purged expired announcements", map[string]interface{}{
			"deleted": deleted,
		})
	}

	deleted, err = s.chatRepo.DeleteOlderThan(now.Add(-s.chatRetention))
	if err != nil {
		logger.Error("Failed to purge expired chat messages", err)
	} else if deleted > 0 {
		logger.Info("Purged expired chat messages", map[string]interface{}{
			"deleted": deleted,
		})
	}
}
