package repository

import (
	"time"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"gorm.io/gorm"
)

type ChatRepository interface {
	Create(message *model.ChatMessage) error
	FindSince(cutoff time.Time) ([]model.ChatMessage, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a chat repository backed by the Announcements
// store.
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Create(message *model.ChatMessage) error {
	return r.db.Create(message).Error
}

// FindSince returns messages created at or after the cutoff in chronological
// order, oldest first, the way the chat panel renders them.
func (r *chatRepository) FindSince(cutoff time.Time) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	err := r.db.Where("created_at >= ?", cutoff).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *chatRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&model.ChatMessage{})
	return result.RowsAffected, result.Error
}
