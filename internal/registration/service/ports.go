package service

import (
	"context"

	"registrar/internal/registration/events"
	"registrar/internal/registration/models"
	id "registrar/pkg/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks IDSource,CredentialHasher,UserStore,EventPublisher

// IDSource generates fresh user identifiers.
type IDSource interface {
	NewUserID() (id.UserID, error)
}

// CredentialHasher turns a plaintext credential into its stored form.
type CredentialHasher interface {
	Hash(ctx context.Context, plain models.PlainCredential) (models.HashedCredential, error)
}

// UserStore persists users. CreateIfEmailAvailable is the authoritative
// uniqueness guard: it must reject a duplicate email atomically with
// sentinel.ErrAlreadyUsed, regardless of any earlier FindByEmail check.
type UserStore interface {
	FindByEmail(ctx context.Context, email models.Email) (*models.User, error)
	CreateIfEmailAvailable(ctx context.Context, user *models.User) error
}

// EventPublisher delivers domain events. Delivery guarantees are the
// publisher's responsibility.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}
