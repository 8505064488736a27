// Package users provides repositories for stored credential records.
package users

import (
	"context"

	"github.com/dmitrijs2005/authgate/internal/server/models"
)

// Repository is the narrow contract the service holds against the credential
// store. The store owns uniqueness enforcement: Create must yield exactly one
// success when racing inserts share a username or email.
type Repository interface {
	// Create persists a new user and fills in the store-assigned ID and
	// CreatedAt. Returns common.ErrorDuplicateCredential when username or
	// email is already taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email, or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// List returns all users ordered by creation time, newest first.
	List(ctx context.Context) ([]*models.User, error)
}
