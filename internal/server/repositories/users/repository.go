// Package users persists User records.
package users

import (
	"context"

	"github.com/mkravets/biogate/internal/server/models"
)

type Repository interface {
	// Create inserts a new user. A duplicate email fails with
	// common.ErrorAlreadyExists (unique index on users.email).
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email (case-sensitive as
	// stored) or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
