// Package ids provides the production identifier source for registration.
package ids

import (
	"github.com/google/uuid"

	id "registrar/pkg/domain"
)

// UUIDSource generates random v4 user identifiers.
type UUIDSource struct{}

func NewUUIDSource() *UUIDSource {
	return &UUIDSource{}
}

// NewUserID returns a fresh identifier. uuid.NewRandom only fails when the
// platform entropy source does, which surfaces as a generation error.
func (*UUIDSource) NewUserID() (id.UserID, error) {
	generated, err := uuid.NewRandom()
	if err != nil {
		return id.UserID(uuid.Nil), err
	}
	return id.UserID(generated), nil
}
