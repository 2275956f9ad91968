package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map these to
// HTTP statuses; anything else is treated as an opaque store failure.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrDuplicateInterest  = errors.New("interest already sent")
	ErrInterestNotFound   = errors.New("interest not found")
	ErrSelfInterest       = errors.New("cannot send interest to yourself")
	ErrInvalidStatus      = errors.New("status must be accepted or rejected")
	ErrNotReceiver        = errors.New("only the receiver can update this interest")
	ErrMissingFields      = errors.New("missing required fields")
)
