// Package users persists identity records. The Repository interface is the
// narrow store contract the service layer depends on; the postgres
// implementation is authoritative, the in-memory one backs tests.
package users

import (
	"context"

	"github.com/avoronov/usersvc/internal/server/models"
)

type Repository interface {
	// Create inserts a new record and returns it with the store-minted id.
	// A username/email uniqueness violation yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByID returns the record regardless of its active flag.
	GetByID(ctx context.Context, id string) (*models.User, error)

	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByUsernameOrEmail returns a record matching either value, used as
	// the advisory uniqueness pre-check before writes.
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)

	GetAll(ctx context.Context) ([]*models.User, error)

	// Update overwrites the stored record in place. Uniqueness violations are
	// reported the same way as on Create.
	Update(ctx context.Context, user *models.User) (*models.User, error)

	// Delete permanently removes the record.
	Delete(ctx context.Context, id string) error
}
