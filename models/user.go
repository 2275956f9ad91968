package models

import "time"

// User is an account in the directory. Password holds the bcrypt hash
// only and is never serialized.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender"`
	Religion   string    `json:"religion"`
	Profession string    `json:"profession"`
	Location   string    `json:"location"`
	Interests  string    `json:"interests"`
	Photo      string    `json:"photo"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// UserSummary is the subset of User fields safe to return from search.
type UserSummary struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Religion   string `json:"religion"`
	Profession string `json:"profession"`
	Location   string `json:"location"`
	Interests  string `json:"interests"`
	Photo      string `json:"photo"`
}

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries a partial profile update. Nil fields are
// left untouched.
type UpdateProfileRequest struct {
	Age        *int    `json:"age"`
	Gender     *string `json:"gender"`
	Religion   *string `json:"religion"`
	Profession *string `json:"profession"`
	Location   *string `json:"location"`
	Interests  *string `json:"interests"`
}

// SearchFilters holds the optional search predicates. Zero values impose
// no predicate; all predicates are combined with AND.
type SearchFilters struct {
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Religion   string `json:"religion"`
	Profession string `json:"profession"`
	Location   string `json:"location"`
}

// Me is the response body for GET /api/auth/me.
type Me struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo"`
}
