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

	"registrar/internal/registration/store"
	"registrar/pkg/platform/sentinel"
	"registrar/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *store.Redis
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = store.NewRedis(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestCreateAndFind() {
	ctx := context.Background()
	user := newTestUser("jane@example.com")

	s.Require().NoError(s.store.CreateIfEmailAvailable(ctx, user))

	found, err := s.store.FindByEmail(ctx, "jane@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)
	s.Equal(user.Email, found.Email)
	s.Equal(user.Credential, found.Credential)
	s.WithinDuration(user.CreatedAt, found.CreatedAt, 0)
}

func (s *RedisStoreSuite) TestNotFound() {
	_, err := s.store.FindByEmail(context.Background(), "nobody@example.com")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisStoreSuite) TestUniqueViolation() {
	ctx := context.Background()
	s.Require().NoError(s.store.CreateIfEmailAvailable(ctx, newTestUser("dup@example.com")))

	err := s.store.CreateIfEmailAvailable(ctx, newTestUser("DUP@example.com"))
	s.Require().ErrorIs(err, sentinel.ErrAlreadyUsed)
}

func (s *RedisStoreSuite) TestConcurrentCreate() {
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

	s.Equal(int32(1), successCount.Load())
	s.Equal(int32(goroutines-1), conflictCount.Load())
}
