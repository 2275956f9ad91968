package services

import (
	"context"
	"errors"
	"fmt"

	"matrimony_server/models"

	"gorm.io/gorm"
)

// InterestService manages the like/accept/reject workflow between two
// users.
type InterestService struct {
	DB *gorm.DB
}

// Send creates a pending interest from sender to receiver. Uniqueness of
// the ordered pair is enforced by the store's composite index, not by a
// check-then-insert, so two concurrent sends cannot both succeed: the
// second deterministically gets ErrDuplicateInterest. (A,B) and (B,A) are
// independent.
func (s *InterestService) Send(ctx context.Context, senderID, receiverID uint) error {
	if receiverID == 0 {
		return ErrMissingFields
	}
	if senderID == receiverID {
		return ErrSelfInterest
	}
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", receiverID).Count(&count).Error; err != nil {
		return fmt.Errorf("checking receiver: %w", err)
	}
	if count == 0 {
		return ErrUserNotFound
	}
	interest := models.Interest{SenderID: senderID, ReceiverID: receiverID, Status: models.StatusPending}
	if err := s.DB.WithContext(ctx).Create(&interest).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateInterest
		}
		return fmt.Errorf("creating interest: %w", err)
	}
	return nil
}

// UpdateStatus sets an interest to accepted or rejected. Only the
// interest's receiver may call it; repeated updates are last-write-wins.
func (s *InterestService) UpdateStatus(ctx context.Context, interestID, callerID uint, status string) error {
	if !models.ValidTransitionStatus(status) {
		return ErrInvalidStatus
	}
	var interest models.Interest
	if err := s.DB.WithContext(ctx).First(&interest, interestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInterestNotFound
		}
		return fmt.Errorf("fetching interest: %w", err)
	}
	if interest.ReceiverID != callerID {
		return ErrNotReceiver
	}
	res := s.DB.WithContext(ctx).Model(&models.Interest{}).Where("id = ?", interestID).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("updating interest status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrInterestNotFound
	}
	return nil
}

// interestRow is the flat shape of the read-side join used by List.
type interestRow struct {
	ID            uint
	Status        string
	CounterpartID uint
	Name          string
	Age           int
	Gender        string
	Location      string
}

// List returns the user's sent and received interests, each row expanded
// with a denormalized snapshot of the counterpart's public fields. One
// join per direction; store-default row order.
func (s *InterestService) List(ctx context.Context, userID uint) (models.InterestList, error) {
	list := models.InterestList{
		Sent:     []models.SentInterest{},
		Received: []models.ReceivedInterest{},
	}

	var sent []interestRow
	err := s.DB.WithContext(ctx).Table("interests").
		Select("interests.id, interests.status, users.id AS counterpart_id, users.name, users.age, users.gender, users.location").
		Joins("JOIN users ON users.id = interests.receiver_id").
		Where("interests.sender_id = ?", userID).
		Scan(&sent).Error
	if err != nil {
		return list, fmt.Errorf("listing sent interests: %w", err)
	}
	for _, row := range sent {
		list.Sent = append(list.Sent, models.SentInterest{
			ID:     row.ID,
			Status: row.Status,
			Receiver: models.InterestProfile{
				ID: row.CounterpartID, Name: row.Name, Age: row.Age, Gender: row.Gender, Location: row.Location,
			},
		})
	}

	var received []interestRow
	err = s.DB.WithContext(ctx).Table("interests").
		Select("interests.id, interests.status, users.id AS counterpart_id, users.name, users.age, users.gender, users.location").
		Joins("JOIN users ON users.id = interests.sender_id").
		Where("interests.receiver_id = ?", userID).
		Scan(&received).Error
	if err != nil {
		return list, fmt.Errorf("listing received interests: %w", err)
	}
	for _, row := range received {
		list.Received = append(list.Received, models.ReceivedInterest{
			ID:     row.ID,
			Status: row.Status,
			Sender: models.InterestProfile{
				ID: row.CounterpartID, Name: row.Name, Age: row.Age, Gender: row.Gender, Location: row.Location,
			},
		})
	}

	return list, nil
}
