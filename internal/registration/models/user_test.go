package models

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "registrar/pkg/domain"
	dErrors "registrar/pkg/domain-errors"
)

func TestNewUser(t *testing.T) {
	userID := id.UserID(uuid.New())

	t.Run("constructs user with derived names", func(t *testing.T) {
		user, err := NewUser(userID, "jane.doe@example.com", "$2a$10$hash")
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, Email("jane.doe@example.com"), user.Email)
		assert.Equal(t, "Jane", user.FirstName)
		assert.Equal(t, "Doe", user.LastName)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("rejects nil id", func(t *testing.T) {
		_, err := NewUser(id.UserID(uuid.Nil), "jane@example.com", "$2a$10$hash")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("rejects empty email", func(t *testing.T) {
		_, err := NewUser(userID, "", "$2a$10$hash")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("rejects empty credential", func(t *testing.T) {
		_, err := NewUser(userID, "jane@example.com", "")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func TestCredentialRedaction(t *testing.T) {
	plain := PlainCredential("Secret123!")
	hashed := HashedCredential("$2a$10$hash")

	assert.NotContains(t, fmt.Sprintf("%v %s", plain, plain), "Secret123!")
	assert.NotContains(t, fmt.Sprintf("%v %s", hashed, hashed), "$2a$10$hash")
}
