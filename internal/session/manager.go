package session

import (
	"context"
	"fmt"
	"time"

	apperrors "welltix/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Manager keeps session state server-side in Redis. The client only
// ever holds the opaque session id in a cookie; the key TTL is the
// expiry, so an expired session silently reads as anonymous.
type Manager interface {
	Create(ctx context.Context, username string) (string, error)
	GetUsername(ctx context.Context, sessionID string) (string, error)
	Destroy(ctx context.Context, sessionID string) error
	TTL() time.Duration
}

type RedisManagerImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisManager(client *redis.Client, ttl time.Duration) Manager {
	return &RedisManagerImpl{
		client: client,
		ttl:    ttl,
	}
}

func (m *RedisManagerImpl) getSessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (m *RedisManagerImpl) Create(ctx context.Context, username string) (string, error) {
	sessionID := uuid.New().String()
	key := m.getSessionKey(sessionID)

	err := m.client.Set(ctx, key, username, m.ttl).Err()
	if err != nil {
		return "", err
	}

	return sessionID, nil
}

func (m *RedisManagerImpl) GetUsername(ctx context.Context, sessionID string) (string, error) {
	key := m.getSessionKey(sessionID)

	username, err := m.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", apperrors.ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}

	return username, nil
}

func (m *RedisManagerImpl) Destroy(ctx context.Context, sessionID string) error {
	key := m.getSessionKey(sessionID)
	return m.client.Del(ctx, key).Err()
}

func (m *RedisManagerImpl) TTL() time.Duration {
	return m.ttl
}
