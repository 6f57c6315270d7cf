package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix  = "portfolio:session:" // flag per token: portfolio:session:{token}
	DefaultTTL        = 24 * time.Hour
	tokenBytes        = 32
	sessionFlagLogged = "1"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Store keeps the single admin flag per opaque token in Redis. Expiry is
// passive: the key's TTL runs out and the token simply stops validating.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

// TTL is the configured session lifetime, also used for the cookie max-age.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create mints a new opaque token and marks it logged in for the TTL.
func (s *Store) Create(ctx context.Context) (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(b)

	if err := s.client.Set(ctx, sessionKeyPrefix+token, sessionFlagLogged, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Valid reports whether the token still maps to a logged-in session.
func (s *Store) Valid(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	v, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}
	return v == sessionFlagLogged, nil
}

// Destroy invalidates the token immediately. Destroying an unknown token is
// not an error.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
