package services

import (
	"context"
	"errors"
	"fmt"

	"matrimony_server/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService covers registration, login, profile reads and updates.
type UserService struct {
	DB *gorm.DB
}

// Register hashes the password and creates the account. The plaintext
// password never reaches the store or the logs.
func (s *UserService) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return ErrMissingFields
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	user := models.User{Name: name, Email: email, Password: string(hash)}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// Login verifies the credentials and returns the matching user.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}
	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetMe returns the caller's own identity fields.
func (s *UserService) GetMe(ctx context.Context, userID uint) (*models.Me, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return &models.Me{ID: user.ID, Name: user.Name, Email: user.Email, Photo: user.Photo}, nil
}

// UpdateProfile applies a partial update; nil fields are left untouched.
// Zero rows affected means the user row is gone.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req models.UpdateProfileRequest) error {
	updates := map[string]interface{}{}
	if req.Age != nil {
		updates["age"] = *req.Age
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.Religion != nil {
		updates["religion"] = *req.Religion
	}
	if req.Profession != nil {
		updates["profession"] = *req.Profession
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Interests != nil {
		updates["interests"] = *req.Interests
	}
	if len(updates) == 0 {
		return nil
	}
	res := s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("updating profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetPhoto overwrites the photo reference unconditionally. The blob itself
// is keyed by user id in the photo store, so a re-upload replaces the
// physical asset and the reference stays valid.
func (s *UserService) SetPhoto(ctx context.Context, userID uint, path string) error {
	res := s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("photo", path)
	if res.Error != nil {
		return fmt.Errorf("saving photo reference: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
