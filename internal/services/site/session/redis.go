package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	apperrors "github.com/tsolutions/site/internal/platform/errors"
	"github.com/tsolutions/site/internal/platform/timeouts"
	"github.com/tsolutions/site/internal/services/site/platform/requestmeta"
	"github.com/tsolutions/site/internal/services/site/platform/sessioncookie"
)

const redisKeyPrefix = "site:session:"

// RedisStore keeps the session flag in Redis under an opaque cookie id, so a
// logout revokes the session everywhere.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
	policy requestmeta.SchemePolicy
}

// NewRedisStore builds a Redis-backed store.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration, policy requestmeta.SchemePolicy) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, policy: policy}
}

// Load reads the session for the cookie id. Unknown ids read as Anonymous.
func (s *RedisStore) Load(r *http.Request) (Session, error) {
	id, ok := s.cookieID(r)
	if !ok {
		return Anonymous, nil
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.SessionBackend)
	defer cancel()

	value, err := s.client.Get(ctx, redisKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return Anonymous, nil
	}
	if err != nil {
		return Anonymous, apperrors.Wrap(apperrors.CodeSessionUnavailable, "load session", err)
	}
	return Session{LoggedIn: value == "1"}, nil
}

// Save stores sess under a new id and drops the previous one.
func (s *RedisStore) Save(w http.ResponseWriter, r *http.Request, sess Session) error {
	if !sess.LoggedIn {
		return s.Clear(w, r)
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.SessionBackend)
	defer cancel()

	id := uuid.NewString()
	if err := s.client.Set(ctx, redisKeyPrefix+id, "1", s.ttl).Err(); err != nil {
		return apperrors.Wrap(apperrors.CodeSessionUnavailable, "save session", err)
	}
	if previous, ok := s.cookieID(r); ok {
		_ = s.client.Del(ctx, redisKeyPrefix+previous).Err()
	}
	sessioncookie.Write(w, r, id, s.ttl, s.policy)
	return nil
}

// Clear deletes the stored session and expires the cookie.
func (s *RedisStore) Clear(w http.ResponseWriter, r *http.Request) error {
	sessioncookie.Clear(w, r, s.policy)
	id, ok := s.cookieID(r)
	if !ok {
		return nil
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.SessionBackend)
	defer cancel()
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return apperrors.Wrap(apperrors.CodeSessionUnavailable, "clear session", err)
	}
	return nil
}

func (s *RedisStore) cookieID(r *http.Request) (string, bool) {
	raw, ok := sessioncookie.Read(r)
	if !ok {
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return id.String(), true
}
