package authenticating

import (
	"errors"
	"fmt"
)

// Authentication sentinel errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user disabled")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrUserAlreadyExists  = errors.New("user already exists")

	// Validation errors
	ErrInvalidRequest      = errors.New("invalid request")
	ErrMissingRequiredData = errors.New("required data missing")

	// Password errors
	ErrWeakPassword     = errors.New("weak password")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrSamePassword     = errors.New("new password must differ from the current one")

	// Database errors
	ErrDatabaseOperation = errors.New("database operation failed")
)

// AuthError is an error with additional authentication context
type AuthError struct {
	Err     error  // base error
	Code    string // API error code
	UserID  int    // user involved, when applicable
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError reports whether the error relates to invalid credentials
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled)
}

// IsValidationError reports whether the error is a client-side validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrWeakPassword) ||
		errors.Is(err, ErrMissingRequiredData) ||
		errors.Is(err, ErrInvalidRequest)
}

// NewAuthError creates an authentication error
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError creates an authentication error carrying the user ID
func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
