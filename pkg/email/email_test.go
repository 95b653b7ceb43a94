package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "new@example.com", Normalize("  New@Example.COM "))
	assert.Equal(t, "a@b.co", Normalize("a@b.co"))
	// Normalizing twice is a no-op.
	assert.Equal(t, Normalize("X@Y.Z"), Normalize(Normalize("X@Y.Z")))
}

func TestDeriveNameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		first string
		last  string
	}{
		{"jane.doe@example.com", "Jane", "Doe"},
		{"jane_doe@example.com", "Jane", "Doe"},
		{"jane@example.com", "Jane", "User"},
		{"jane.van.doe@example.com", "Jane", "Doe"},
		{"@example.com", "User", "User"},
	}

	for _, tt := range tests {
		first, last := DeriveNameFromEmail(tt.email)
		assert.Equal(t, tt.first, first, tt.email)
		assert.Equal(t, tt.last, last, tt.email)
	}
}
