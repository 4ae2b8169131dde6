package verification

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "verification"

// RedisStore keeps verification sessions as JSON values that expire with the
// session, plus a per-subject index key. Expired sessions disappear on their
// own, so DeleteExpired has nothing to do. Consume uses GETDEL.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix sets the key namespace, "verification" by default.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithRedisClock overrides the time source used to compute key TTLs.
func WithRedisClock(now func() time.Time) RedisOption {
	return func(s *RedisStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewRedisStore returns a store backed by client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, prefix: defaultKeyPrefix, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	ttl := s.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		// already expired; nothing could ever read it back
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.sessionKey(s.Purpose, s.ID), data, ttl)
		pipe.Set(ctx, r.subjectKey(s.Purpose, s.Subject), s.ID, ttl)
		return nil
	})
	return err
}

func (r *RedisStore) FindByID(ctx context.Context, purpose Purpose, id string) (*Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(purpose, id)).Bytes()
	return decodeSession(data, err)
}

func (r *RedisStore) Consume(ctx context.Context, purpose Purpose, id string) (*Session, error) {
	data, err := r.client.GetDel(ctx, r.sessionKey(purpose, id)).Bytes()
	return decodeSession(data, err)
}

func (r *RedisStore) DeleteByID(ctx context.Context, purpose Purpose, id string) error {
	return r.client.Del(ctx, r.sessionKey(purpose, id)).Err()
}

func (r *RedisStore) DeleteBySubject(ctx context.Context, purpose Purpose, subject string) error {
	id, err := r.client.GetDel(ctx, r.subjectKey(purpose, subject)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}
	return r.client.Del(ctx, r.sessionKey(purpose, id)).Err()
}

func (r *RedisStore) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (r *RedisStore) sessionKey(purpose Purpose, id string) string {
	return r.prefix + ":" + string(purpose) + ":id:" + id
}

func (r *RedisStore) subjectKey(purpose Purpose, subject string) string {
	return r.prefix + ":" + string(purpose) + ":subject:" + subject
}

func decodeSession(data []byte, err error) (*Session, error) {
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
