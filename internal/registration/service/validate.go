package service

import (
	"context"

	"github.com/asaskevich/govalidator"

	"registrar/internal/registration/models"
	id "registrar/pkg/domain"
	dErrors "registrar/pkg/domain-errors"
	pkgemail "registrar/pkg/email"
)

const (
	maxEmailLength = 255
	// bcrypt truncates beyond 72 bytes, so longer inputs are rejected
	// rather than silently weakened.
	maxCredentialBytes = 72
)

// validatedInput is the typed registration input, produced once per
// invocation and discarded after the entity is constructed.
type validatedInput struct {
	ID         id.UserID
	Email      models.Email
	Credential models.PlainCredential
}

func validateEmail(raw string) (models.Email, error) {
	canonical := pkgemail.Normalize(raw)
	if canonical == "" {
		return "", dErrors.NewField(dErrors.CodeValidation, "email", "is required")
	}
	if len(canonical) > maxEmailLength || !govalidator.IsEmail(canonical) {
		return "", dErrors.NewField(dErrors.CodeValidation, "email", "must be a valid address")
	}
	return models.Email(canonical), nil
}

func validateCredential(raw string) (models.PlainCredential, error) {
	if raw == "" {
		return "", dErrors.NewField(dErrors.CodeValidation, "credential", "is required")
	}
	if len(raw) > maxCredentialBytes {
		return "", dErrors.NewField(dErrors.CodeValidation, "credential", "must be at most 72 bytes")
	}
	return models.PlainCredential(raw), nil
}

// newValidatedID generates an identifier and validates it like any other
// input field: a generation failure or malformed value is a validation
// failure on the id field.
func (s *Service) newValidatedID(_ context.Context) (id.UserID, error) {
	generated, err := s.ids.NewUserID()
	if err != nil || generated.IsNil() {
		return generated, dErrors.NewField(dErrors.CodeValidation, "id", "could not generate identifier")
	}
	return generated, nil
}
