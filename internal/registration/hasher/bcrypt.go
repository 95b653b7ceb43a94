// Package hasher provides the production credential hasher.
package hasher

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"registrar/internal/registration/models"
)

// Bcrypt hashes plaintext credentials with a configurable cost.
type Bcrypt struct {
	cost int
}

// NewBcrypt clamps the cost into bcrypt's valid range; zero picks the
// library default.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(_ context.Context, plain models.PlainCredential) (models.HashedCredential, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", fmt.Errorf("could not hash credential: %w", err)
	}
	return models.HashedCredential(hashed), nil
}

// Verify checks a plaintext credential against a stored hash. Registration
// itself never verifies; this exists for the login surface that follows it.
func (b *Bcrypt) Verify(plain models.PlainCredential, hashed models.HashedCredential) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return fmt.Errorf("could not verify credential: %w", err)
	}
	return nil
}
