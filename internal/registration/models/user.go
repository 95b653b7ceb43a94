package models

import (
	"time"

	id "registrar/pkg/domain"
	dErrors "registrar/pkg/domain-errors"
	pkgemail "registrar/pkg/email"
)

// Email is an address that passed format validation and canonicalization.
// Construct one through the validation layer, not by casting raw input.
type Email string

func (e Email) String() string {
	return string(e)
}

// PlainCredential is the user-supplied secret before hashing. It exists only
// for the duration of one registration and must never be persisted or logged.
type PlainCredential string

// String redacts so the plaintext cannot leak through fmt or slog.
func (PlainCredential) String() string {
	return "[REDACTED]"
}

// HashedCredential is the opaque output of the hashing collaborator. It
// retains nothing of its plaintext origin.
type HashedCredential string

// String redacts; stores convert explicitly when persisting.
func (HashedCredential) String() string {
	return "[REDACTED]"
}

// User is the registered identity. It can only be built through NewUser, so
// a User never holds a plaintext credential.
type User struct {
	ID         id.UserID
	Email      Email
	Credential HashedCredential
	FirstName  string
	LastName   string
	CreatedAt  time.Time
}

// NewUser constructs a User and re-validates entity invariants. Names are
// prefilled from the email local part.
func NewUser(userID id.UserID, email Email, credential HashedCredential) (*User, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user requires a non-nil id")
	}
	if email == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user requires an email")
	}
	if credential == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user requires a hashed credential")
	}

	first, last := pkgemail.DeriveNameFromEmail(string(email))
	return &User{
		ID:         userID,
		Email:      email,
		Credential: credential,
		FirstName:  first,
		LastName:   last,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
