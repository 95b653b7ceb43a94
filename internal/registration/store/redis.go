package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"registrar/internal/registration/models"
	id "registrar/pkg/domain"
	"registrar/pkg/platform/sentinel"
)

const redisUserKeyPrefix = "user:email:"

// Redis persists users as JSON values keyed by lowercased email. SETNX makes
// the insert atomic, so the store remains the authoritative uniqueness guard.
type Redis struct {
	client redis.UniversalClient
}

func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

// redisUser is the stored wire form; credentials round-trip as raw strings.
type redisUser struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Credential string    `json:"credential"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s *Redis) FindByEmail(ctx context.Context, email models.Email) (*models.User, error) {
	raw, err := s.client.Get(ctx, redisKey(email)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return unmarshalUser([]byte(raw))
}

func (s *Redis) CreateIfEmailAvailable(ctx context.Context, user *models.User) error {
	payload, err := json.Marshal(redisUser{
		ID:         user.ID.String(),
		Email:      string(user.Email),
		Credential: string(user.Credential),
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		CreatedAt:  user.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	created, err := s.client.SetNX(ctx, redisKey(user.Email), payload, 0).Result()
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	if !created {
		return sentinel.ErrAlreadyUsed
	}
	return nil
}

func redisKey(email models.Email) string {
	return redisUserKeyPrefix + strings.ToLower(string(email))
}

func unmarshalUser(raw []byte) (*models.User, error) {
	var stored redisUser
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	userID, err := id.ParseUserID(stored.ID)
	if err != nil {
		return nil, fmt.Errorf("parse stored user id: %w", err)
	}
	return &models.User{
		ID:         userID,
		Email:      models.Email(stored.Email),
		Credential: models.HashedCredential(stored.Credential),
		FirstName:  stored.FirstName,
		LastName:   stored.LastName,
		CreatedAt:  stored.CreatedAt,
	}, nil
}
