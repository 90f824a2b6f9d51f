package repository

import (
	"time"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"gorm.io/gorm"
)

type AnnouncementRepository interface {
	Create(announcement *model.Announcement) error
	FindSince(cutoff time.Time) ([]model.Announcement, error)
	Delete(id uint) error
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates an announcement repository backed by the
// Announcements store.
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(announcement *model.Announcement) error {
	return r.db.Create(announcement).Error
}

// FindSince returns posts created at or after the cutoff, newest first.
// Expired rows that the purge job has not removed yet are filtered here so
// readers never see them.
func (r *announcementRepository) FindSince(cutoff time.Time) ([]model.Announcement, error) {
	var announcements []model.Announcement
	err := r.db.Where("created_at >= ?", cutoff).
		Order("created_at DESC").
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *announcementRepository) Delete(id uint) error {
	result := r.db.Delete(&model.Announcement{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *announcementRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&model.Announcement{})
	return result.RowsAffected, result.Error
}
