package service

import (
	"errors"
	"fmt"

	"github.com/sefazor/shootbook-backend/internal/repository"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnavailable  = errors.New("not available")
	ErrUnauthorized = errors.New("invalid email or password")
)

// wrapRepo repository.ErrNotFound'u servis hatasına çevirir
func wrapRepo(err error, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return err
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
