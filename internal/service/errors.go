package service

import (
	"errors"
	"fmt"
)

// Error taxonomy of the application. Handlers map these to flat HTTP
// statuses in one place; repositories surface gorm errors which the
// services translate here.
var (
	// ErrNotFound: the addressed entity does not exist.
	ErrNotFound = errors.New("introuvable")

	// ErrUnauthenticated: the asserted caller id is missing or unknown.
	ErrUnauthenticated = errors.New("utilisateur inconnu")

	// ErrForbidden: acting on another member's resource.
	ErrForbidden = errors.New("action réservée à l'auteur")

	// ErrConflict: a case-insensitive duplicate of a unique name.
	ErrConflict = errors.New("ce prénom existe déjà")
)

// ValidationError carries a caller-facing message for malformed or
// out-of-range input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a *ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
