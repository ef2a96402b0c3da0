package service

import (
	"context"
	"strings"
	"time"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"

	"github.com/google/uuid"
)

type chatStore interface {
	Insert(ctx context.Context, msg *models.ChatMessage) error
	ListByRoom(ctx context.Context, room string, limit int64) ([]*models.ChatMessage, error)
}

const (
	chatDefaultLimit = 50
	chatMaxLimit     = 200
)

// ChatService struct represents the chat service layer
type ChatService struct {
	messages chatStore
}

func NewChatService(messages chatStore) *ChatService {
	return &ChatService{messages: messages}
}

func (s *ChatService) ListMessages(ctx context.Context, room string, limit int64) ([]*models.ChatMessage, error) {
	if room == "" {
		return nil, invalidf("room wajib diisi")
	}
	if limit <= 0 {
		limit = chatDefaultLimit
	}
	if limit > chatMaxLimit {
		limit = chatMaxLimit
	}

	return s.messages.ListByRoom(ctx, room, limit)
}

func (s *ChatService) SendMessage(ctx context.Context, room string, senderID int64, senderName, text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if room == "" {
		return nil, invalidf("room wajib diisi")
	}
	if text == "" {
		return nil, invalidf("pesan tidak boleh kosong")
	}

	msg := &models.ChatMessage{
		ID:         uuid.New().String(),
		Room:       room,
		SenderID:   senderID,
		SenderName: senderName,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.messages.Insert(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}
