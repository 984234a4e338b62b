package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when an account has no stored profile.
// Callers fall back to a context-appropriate default role.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository resolves beneficiary identities to their role. The full
// account subsystem lives outside this module.
type AccountRepository interface {
	// FindAccountByID retrieves an account profile by its unique ID.
	FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
}
