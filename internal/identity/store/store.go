// Package store persists user records. Implementations return
// sentinel.ErrNotFound and sentinel.ErrConflict; services translate those
// into domain errors.
package store

import (
	"context"

	"amity/internal/identity/models"
	id "amity/pkg/domain"
)

// UserStore is the document-style persistence contract for user records.
// Every engine operation loads, mutates in memory, and writes back within a
// single call; the store is the only shared mutable resource.
type UserStore interface {
	// Save upserts a single user. Returns sentinel.ErrConflict when the
	// email is taken by a different user.
	Save(ctx context.Context, user *models.User) error

	// SavePair upserts two users atomically. Two-party mutations (accept,
	// unfriend) go through here so a crash cannot leave an asymmetric
	// friendship.
	SavePair(ctx context.Context, a, b *models.User) error

	FindByID(ctx context.Context, userID id.UserID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// SearchByUsername matches the pattern as a case-insensitive substring.
	SearchByUsername(ctx context.Context, pattern string) ([]*models.User, error)

	// List returns every user in stable enumeration order (insertion order
	// in memory, creation order in PostgreSQL). Recommendation output
	// follows this order.
	List(ctx context.Context) ([]*models.User, error)
}
