// Package domain holds typed identifiers shared across services.
//
// IDs are distinct types over uuid.UUID so the compiler rejects cross-type
// assignment. Construct them via the Parse functions at trust boundaries;
// direct casting bypasses validation.
package domain

import (
	"github.com/google/uuid"

	dErrors "amity/pkg/domain-errors"
)

// UserID identifies a registered user.
type UserID uuid.UUID

// NewUserID mints a fresh random user ID.
func NewUserID() UserID {
	return UserID(uuid.New())
}

// ParseUserID constructs a UserID from external input.
//
// Errors: returns CodeInvalidInput when the value is empty, malformed, or the
// nil UUID; no other errors are expected.
func ParseUserID(s string) (UserID, error) {
	if s == "" {
		return UserID{}, dErrors.New(dErrors.CodeInvalidInput, "user id cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid user id")
	}
	if u == uuid.Nil {
		return UserID{}, dErrors.New(dErrors.CodeInvalidInput, "user id cannot be nil")
	}
	return UserID(u), nil
}

// String returns the canonical UUID representation.
func (id UserID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the ID is the zero UUID.
func (id UserID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}
