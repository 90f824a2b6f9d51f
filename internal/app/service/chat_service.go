package service

import (
	"errors"
	"strings"
	"time"

	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/app/repository"
)

var ErrEmptyMessage = errors.New("message is empty")

// ChatService is the internal Admin/Administrator message board. Sender
// identity always comes from the authenticated principal, never the request.
type ChatService interface {
	List() ([]model.ChatMessage, error)
	Post(sender string, role model.Role, message string) (*model.ChatMessage, error)
}

type chatService struct {
	chatRepo  repository.ChatRepository
	retention time.Duration
}

func NewChatService(chatRepo repository.ChatRepository, retention time.Duration) ChatService {
	return &chatService{
		chatRepo:  chatRepo,
		retention: retention,
	}
}

func (s *chatService) List() ([]model.ChatMessage, error) {
	cutoff := time.Now().Add(-s.retention)
	return s.chatRepo.FindSince(cutoff)
}

func (s *chatService) Post(sender string, role model.Role, message string) (*model.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	chatMessage := &model.ChatMessage{
		Sender:  sender,
		Message: message,
		Role:    role,
	}
	if err := s.chatRepo.Create(chatMessage); err != nil {
		return nil, err
	}
	return chatMessage, nil
}
