package domain

import "errors"

// Sentinel errors for data source operations
var (
	// ErrServerOffline indicates the metadata API is unreachable
	ErrServerOffline = errors.New("metadata API is unreachable")

	// ErrAuthFailed indicates the API key was rejected
	ErrAuthFailed = errors.New("API key is invalid")

	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = errors.New("resource not found")
)

// AppError is the only error kind that leaves the repository.
// Message is safe to show to the user; Cause keeps the original failure for logs.
type AppError struct {
	Message string
	Cause   error
}

// NewAppError creates an AppError with the given user-facing message
func NewAppError(message string, cause error) *AppError {
	return &AppError{Message: message, Cause: cause}
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WrapAppError returns err unchanged if it already is an AppError,
// otherwise wraps it with the fallback message. Returns nil for nil.
func WrapAppError(err error, fallback string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewAppError(fallback, err)
}

// Message converts err into a user-facing string: the AppError message when
// err is (or wraps) an AppError, otherwise fallback.
func Message(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
