package service

import (
	"errors"
	"fmt"

	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/storage"
)

// Sentinel errors surfaced by the facade. The duplicate errors originate in
// the stores, where uniqueness is enforced atomically with the insert.
var (
	ErrNotFound           = storage.ErrNotFound
	ErrDuplicateEmail     = storage.ErrDuplicateEmail
	ErrDuplicateName      = storage.ErrDuplicateName
	ErrDuplicateReview    = storage.ErrDuplicateReview
	ErrSelfReview         = errors.New("cannot review your own place")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a malformed or missing required field. The field
// name is included so the resource layer can return it to the client.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
