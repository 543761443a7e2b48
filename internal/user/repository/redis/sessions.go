package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/user/repository"
)

const (
	hashFieldUserID     = "user_id"
	hashFieldCreatedAt  = "created_at"
	hashFieldLastSeenAt = "last_seen_at"
)

// SessionRepository реализует repository.SessionRepository используя Redis hash.
// TTL ключа и есть время жизни сессии — Redis сам удаляет истёкшие.
type SessionRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewSessionRepository создаёт новый Redis session repository
func NewSessionRepository(client *redis.Client, logger *zap.Logger) *SessionRepository {
	return &SessionRepository{
		client: client,
		logger: logger,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// CreateSession создаёт новую сессию для пользователя в Redis
func (r *SessionRepository) CreateSession(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	sessionID := uuid.NewString()
	key := sessionKey(sessionID)
	now := time.Now().UTC().Format(time.RFC3339)

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, key, hashFieldUserID, userID, hashFieldCreatedAt, now, hashFieldLastSeenAt, now)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("failed to create session in redis",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	r.logger.Info("session created",
		zap.String("session_id", sessionID),
		zap.String("user_id", userID),
		zap.Duration("ttl", ttl),
	)

	return sessionID, nil
}

// GetUserIDBySession получает user_id по session_id
func (r *SessionRepository) GetUserIDBySession(ctx context.Context, sessionID string) (string, error) {
	key := sessionKey(sessionID)

	userID, err := r.client.HGet(ctx, key, hashFieldUserID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrSessionNotFound
		}
		r.logger.Error("failed to get session from redis",
			zap.Error(err),
			zap.String("session_id", sessionID),
		)
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	if userID == "" {
		return "", repository.ErrSessionNotFound
	}

	return userID, nil
}

// RefreshSession обновляет last_seen_at и продлевает TTL сессии
func (r *SessionRepository) RefreshSession(ctx context.Context, sessionID string, ttl time.Duration) error {
	key := sessionKey(sessionID)

	// HSET на несуществующем ключе создал бы сессию заново,
	// поэтому сначала проверяем существование
	if _, err := r.client.HGet(ctx, key, hashFieldUserID).Result(); err != nil {
		if errors.Is(err, redis.Nil) {
			return repository.ErrSessionNotFound
		}
		r.logger.Error("failed to check session in redis",
			zap.Error(err),
			zap.String("session_id", sessionID),
		)
		return fmt.Errorf("failed to check session: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	pipe := r.client.Pipeline()
	pipe.HSet(ctx, key, hashFieldLastSeenAt, now)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("failed to refresh session in redis",
			zap.Error(err),
			zap.String("session_id", sessionID),
		)
		return fmt.Errorf("failed to refresh session: %w", err)
	}

	return nil
}

// DeleteSession удаляет сессию
func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	key := sessionKey(sessionID)

	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("failed to delete session from redis",
			zap.Error(err),
			zap.String("session_id", sessionID),
		)
		return fmt.Errorf("failed to delete session: %w", err)
	}

	r.logger.Info("session deleted", zap.String("session_id", sessionID))
	return nil
}
