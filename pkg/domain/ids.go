package domain

import (
	"github.com/google/uuid"

	dErrors "registrar/pkg/domain-errors"
)

// UserID is a typed UUID for user identities. The distinct type prevents
// accidental cross-assignment with other identifier kinds at compile time.
type UserID uuid.UUID

// NewUserID generates a fresh random user identifier.
func NewUserID() UserID {
	return UserID(uuid.New())
}

// ParseUserID validates and returns a UserID. IDs must be valid, non-empty,
// non-nil UUIDs; anything else is rejected at the trust boundary.
func ParseUserID(s string) (UserID, error) {
	if s == "" {
		return UserID(uuid.Nil), dErrors.New(dErrors.CodeInvalidInput, "user id is required")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return UserID(uuid.Nil), dErrors.New(dErrors.CodeInvalidInput, "user id must be a valid UUID")
	}
	if parsed == uuid.Nil {
		return UserID(uuid.Nil), dErrors.New(dErrors.CodeInvalidInput, "user id must not be the nil UUID")
	}
	return UserID(parsed), nil
}

func (id UserID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the identifier is the zero UUID.
func (id UserID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}
