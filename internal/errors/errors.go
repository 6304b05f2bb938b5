package errors

import "errors"

var (
	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already exists")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned for a bad username or password. The
	// message is deliberately generic to avoid username enumeration.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// MessageResponse is the body for error and plain-message replies.
type MessageResponse struct {
	Message string `json:"message"`
}
