//go:build integration

package store_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"registrar/internal/registration/models"
	"registrar/internal/registration/store"
	id "registrar/pkg/domain"
	"registrar/pkg/platform/sentinel"
	"registrar/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Postgres
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())

	_, err := s.postgres.DB.ExecContext(context.Background(), store.Schema)
	s.Require().NoError(err)

	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "users"))
}

func newTestUser(email string) *models.User {
	user, err := models.NewUser(id.UserID(uuid.New()), models.Email(email), "$2a$10$hash")
	if err != nil {
		panic(err)
	}
	return user
}

func (s *PostgresStoreSuite) TestCreateAndFind() {
	ctx := context.Background()
	user := newTestUser("jane@example.com")

	s.Require().NoError(s.store.CreateIfEmailAvailable(ctx, user))

	found, err := s.store.FindByEmail(ctx, "jane@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)
	s.Equal(user.Email, found.Email)
	s.Equal(user.Credential, found.Credential)
	s.Equal(user.FirstName, found.FirstName)

	// Lookups are case-insensitive.
	found, err = s.store.FindByEmail(ctx, "JANE@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)
}

func (s *PostgresStoreSuite) TestNotFound() {
	_, err := s.store.FindByEmail(context.Background(), "nobody@example.com")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestUniqueViolation() {
	ctx := context.Background()
	s.Require().NoError(s.store.CreateIfEmailAvailable(ctx, newTestUser("dup@example.com")))

	err := s.store.CreateIfEmailAvailable(ctx, newTestUser("dup@example.com"))
	s.Require().ErrorIs(err, sentinel.ErrAlreadyUsed)

	err = s.store.CreateIfEmailAvailable(ctx, newTestUser("DUP@example.com"))
	s.Require().ErrorIs(err, sentinel.ErrAlreadyUsed, "uniqueness must be case-insensitive")
}

// TestConcurrentUniqueEmailViolation verifies that concurrent registrations
// with the same email result in exactly one success.
func (s *PostgresStoreSuite) TestConcurrentUniqueEmailViolation() {
	ctx := context.Background()
	email := "race-" + uuid.NewString() + "@example.com"
	const goroutines = 50

	var wg sync.WaitGroup
	var successCount, conflictCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.store.CreateIfEmailAvailable(ctx, newTestUser(email))
			if err == nil {
				successCount.Add(1)
			} else if errors.Is(err, sentinel.ErrAlreadyUsed) {
				conflictCount.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load(), "exactly one create should succeed")
	s.Equal(int32(goroutines-1), conflictCount.Load(), "all others should get conflict")
}
