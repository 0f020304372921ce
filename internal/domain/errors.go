package domain

import (
	"errors"
	"fmt"
)

const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeInvalidAmount = "INVALID_AMOUNT"
	ErrCodeValidation    = "VALIDATION_ERROR"
)

// DomainError carries a machine-readable code alongside the message so the
// REST layer can map it to an HTTP status without string matching.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func NewNotFoundError(entity string, id fmt.Stringer) *DomainError {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s %s not found", entity, id),
	}
}

func NewInvalidAmountError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: message,
	}
}

func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

// IsNotFound reports whether err is a miss on a get-by-id lookup.
// Update and delete operations never return this; misses there are silent.
func IsNotFound(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == ErrCodeNotFound
}

func IsDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	ok := errors.As(err, &domainErr)
	return domainErr, ok
}
