package models

import "time"

// Interest is a directional like from sender to receiver. The composite
// unique index makes the store reject a second row for the same ordered
// pair, which is what keeps concurrent duplicate sends deterministic.
type Interest struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;uniqueIndex:idx_interests_sender_receiver" json:"senderId"`
	ReceiverID uint      `gorm:"not null;uniqueIndex:idx_interests_sender_receiver" json:"receiverId"`
	Status     string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt  time.Time `json:"-"`

	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}

// SendInterestRequest is the payload for POST /api/auth/interest.
type SendInterestRequest struct {
	ReceiverID uint `json:"receiverId"`
}

// UpdateInterestStatusRequest is the payload for
// PUT /api/auth/interest/{id}/status.
type UpdateInterestStatusRequest struct {
	Status string `json:"status"`
}

// InterestProfile is the denormalized snapshot of the counterpart's
// public fields attached to each interest row.
type InterestProfile struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Location string `json:"location"`
}

// SentInterest is an interest the user sent, expanded with the receiver's
// profile snapshot.
type SentInterest struct {
	ID       uint            `json:"id"`
	Status   string          `json:"status"`
	Receiver InterestProfile `json:"receiver"`
}

// ReceivedInterest is the mirror of SentInterest for the receiving side.
type ReceivedInterest struct {
	ID     uint            `json:"id"`
	Status string          `json:"status"`
	Sender InterestProfile `json:"sender"`
}

// InterestList is the response body for GET /api/auth/interests.
type InterestList struct {
	Sent     []SentInterest     `json:"sent"`
	Received []ReceivedInterest `json:"received"`
}
