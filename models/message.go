package models

import "time"

// Message is a single immutable chat utterance. The auto-increment ID is
// the monotonic tie-breaker that keeps history ordering stable when two
// messages land with the same timestamp.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index:idx_messages_sender_receiver" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index:idx_messages_sender_receiver" json:"receiver_id"`
	Body       string    `gorm:"not null" json:"message"`
	CreatedAt  time.Time `json:"timestamp"`

	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}

// SendMessageRequest is the payload for POST /api/auth/message.
type SendMessageRequest struct {
	ReceiverID uint   `json:"receiverId"`
	Body       string `json:"message"`
}

// ChatMessage is a history row joined with both participants' names.
type ChatMessage struct {
	ID           uint      `json:"id"`
	SenderID     uint      `json:"sender_id"`
	ReceiverID   uint      `json:"receiver_id"`
	Body         string    `json:"message"`
	CreatedAt    time.Time `json:"timestamp"`
	SenderName   string    `json:"sender_name"`
	ReceiverName string    `json:"receiver_name"`
}
