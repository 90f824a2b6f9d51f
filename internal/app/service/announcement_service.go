package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/app/repository"
	"github.com/freshkart/freshkart-backend/pkg/logger"
	"github.com/freshkart/freshkart-backend/pkg/util"
)

var ErrAnnouncementNotFound = errors.New("announcement not found")

type AnnouncementService interface {
	List() ([]model.Announcement, error)
	Create(title, content, author string) (*model.Announcement, error)
	Delete(id uint) error
}

type announcementService struct {
	announcementRepo repository.AnnouncementRepository
	retention        time.Duration
}

func NewAnnouncementService(announcementRepo repository.AnnouncementRepository, retention time.Duration) AnnouncementService {
	return &announcementService{
		announcementRepo: announcementRepo,
		retention:        retention,
	}
}

// List returns posts inside the retention window, newest first. Anything
// older is invisible even if the purge job has not caught up yet.
func (s *announcementService) List() ([]model.Announcement, error) {
	cutoff := time.Now().Add(-s.retention)
	return s.announcementRepo.FindSince(cutoff)
}

func (s *announcementService) Create(title, content, author string) (*model.Announcement, error) {
	fields := util.FieldErrors{}
	fields.Require("title", title)
	fields.Require("content", content)
	if !fields.OK() {
		return nil, &ValidationError{Fields: fields}
	}

	announcement := &model.Announcement{
		Title:   title,
		Content: content,
		Date:    time.Now().Format("2006-01-02"),
		Author:  author,
	}
	if err := s.announcementRepo.Create(announcement); err != nil {
		return nil, err
	}

	logger.Info("Announcement posted", map[string]interface{}{
		"announcement_id": announcement.ID,
		"author":          author,
	})
	return announcement, nil
}

func (s *announcementService) Delete(id uint) error {
	err := s.announcementRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAnnouncementNotFound
	}
	return err
}
