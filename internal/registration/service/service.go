// Package service implements the register-user use case as a validated
// command pipeline: an ordered chain of fallible steps over collaborator
// ports, short-circuiting on the first failure.
package service

import (
	"context"
	"errors"
	"log/slog"

	"registrar/internal/platform/metrics"
	"registrar/internal/registration/events"
	"registrar/internal/registration/models"
	"registrar/internal/registration/pipeline"
	id "registrar/pkg/domain"
	dErrors "registrar/pkg/domain-errors"
	"registrar/pkg/platform/sentinel"
)

// Service runs the registration pipeline over its collaborator ports. It is
// stateless between invocations; every call validates its own data afresh.
type Service struct {
	ids     IDSource
	hasher  CredentialHasher
	users   UserStore
	events  EventPublisher
	log     *slog.Logger
	metrics *metrics.Metrics
	run     *pipeline.Runner
}

func New(ids IDSource, hasher CredentialHasher, users UserStore, publisher EventPublisher, log *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		ids:     ids,
		hasher:  hasher,
		users:   users,
		events:  publisher,
		log:     log,
		metrics: m,
		run:     pipeline.NewRunner(log),
	}
}

// hashedInput is validatedInput after the hashing step; the plaintext is
// dropped here and never travels further down the chain.
type hashedInput struct {
	ID         id.UserID
	Email      models.Email
	Credential models.HashedCredential
}

// Register runs the pipeline: validate input, check uniqueness, hash the
// credential, construct the entity, persist it, publish the created event.
// The first failing step terminates the run; its classified error is the
// outcome. A CodePublication failure means the user is already durable.
func (s *Service) Register(ctx context.Context, rawEmail, rawCredential string) error {
	gathered := pipeline.Gather3(ctx, s.run, "validate registration input",
		s.newValidatedID,
		func(context.Context) (models.Email, error) { return validateEmail(rawEmail) },
		func(context.Context) (models.PlainCredential, error) { return validateCredential(rawCredential) },
	)

	input := pipeline.Bind(ctx, s.run, gathered, "get user by email",
		func(ctx context.Context, in pipeline.Triple[id.UserID, models.Email, models.PlainCredential]) (validatedInput, error) {
			_, err := s.users.FindByEmail(ctx, in.Second)
			switch {
			case err == nil:
				return validatedInput{}, dErrors.New(dErrors.CodeConflict, "Email already exists.")
			case errors.Is(err, sentinel.ErrNotFound):
				return validatedInput{ID: in.First, Email: in.Second, Credential: in.Third}, nil
			default:
				return validatedInput{}, dErrors.Wrap(dErrors.CodePersistence, "could not check email availability", err)
			}
		})

	hashed := pipeline.Bind(ctx, s.run, input, "hash plain credential",
		func(ctx context.Context, in validatedInput) (hashedInput, error) {
			h, err := s.hasher.Hash(ctx, in.Credential)
			if err != nil {
				return hashedInput{}, dErrors.Wrap(dErrors.CodeHashing, "could not hash credential", err)
			}
			return hashedInput{ID: in.ID, Email: in.Email, Credential: h}, nil
		})

	user := pipeline.Bind(ctx, s.run, hashed, "construct user entity",
		func(_ context.Context, in hashedInput) (*models.User, error) {
			return models.NewUser(in.ID, in.Email, in.Credential)
		})

	saved := pipeline.Then(ctx, s.run, user, "save user",
		func(ctx context.Context, u *models.User) (*models.User, error) {
			if err := s.users.CreateIfEmailAvailable(ctx, u); err != nil {
				if errors.Is(err, sentinel.ErrAlreadyUsed) {
					return nil, dErrors.New(dErrors.CodeConflict, "Email already exists.")
				}
				return nil, dErrors.Wrap(dErrors.CodePersistence, "could not save user", err)
			}
			return u, nil
		})

	// The event carries the canonical email of the persisted entity, never
	// the raw input.
	done := pipeline.Bind(ctx, s.run, saved, "publish user created event",
		func(ctx context.Context, u *models.User) (struct{}, error) {
			if err := s.events.Publish(ctx, events.UserCreated(u.Email.String())); err != nil {
				return struct{}{}, dErrors.Wrap(dErrors.CodePublication, "could not publish user created event", err)
			}
			return struct{}{}, nil
		})

	if err := done.Err(); err != nil {
		s.metrics.IncrementRegistrationFailure(string(dErrors.CodeOf(err)))
		return err
	}
	s.metrics.IncrementUsersCreated()
	return nil
}
