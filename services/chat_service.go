package services

import (
	"context"
	"fmt"

	"matrimony_server/models"

	"gorm.io/gorm"
)

// ChatService appends messages to a two-party conversation and retrieves
// them in chronological order.
type ChatService struct {
	DB *gorm.DB
}

// SendMessage validates and persists one message. Validation happens
// before any store write; the timestamp and id are store-assigned.
func (s *ChatService) SendMessage(ctx context.Context, senderID, receiverID uint, body string) error {
	if receiverID == 0 || body == "" {
		return ErrMissingFields
	}
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", receiverID).Count(&count).Error; err != nil {
		return fmt.Errorf("checking receiver: %w", err)
	}
	if count == 0 {
		return ErrUserNotFound
	}
	message := models.Message{SenderID: senderID, ReceiverID: receiverID, Body: body}
	if err := s.DB.WithContext(ctx).Create(&message).Error; err != nil {
		return fmt.Errorf("storing message: %w", err)
	}
	return nil
}

// GetHistory returns every message between the two users, in either
// direction, oldest first. The id tie-break keeps the order total when
// rapid sends share a timestamp, so both parties render the same thread.
func (s *ChatService) GetHistory(ctx context.Context, userID, otherUserID uint) ([]models.ChatMessage, error) {
	history := []models.ChatMessage{}
	err := s.DB.WithContext(ctx).Table("messages").
		Select("messages.id, messages.sender_id, messages.receiver_id, messages.body, messages.created_at, s.name AS sender_name, r.name AS receiver_name").
		Joins("JOIN users s ON messages.sender_id = s.id").
		Joins("JOIN users r ON messages.receiver_id = r.id").
		Where("(messages.sender_id = ? AND messages.receiver_id = ?) OR (messages.sender_id = ? AND messages.receiver_id = ?)",
			userID, otherUserID, otherUserID, userID).
		Order("messages.created_at ASC, messages.id ASC").
		Scan(&history).Error
	if err != nil {
		return nil, fmt.Errorf("fetching messages: %w", err)
	}
	return history, nil
}
