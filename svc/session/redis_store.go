package session

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const DefaultRedisPrefix = "sourcefeed:session:"

// RedisStore keeps each session as a JSON document under prefix+identifier.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) { s.prefix = prefix }
}

// WithTTL sets a key expiry refreshed on every write. Zero keeps keys forever.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) { s.ttl = ttl }
}

func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, prefix: DefaultRedisPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(identifier string) string {
	return s.prefix + identifier
}

func (s *RedisStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.Identifier == "" {
		return ErrInvalidSession
	}

	data, err := json.Marshal(session.clone())
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}

	ok, err := s.client.SetNX(ctx, s.key(session.Identifier), data, s.ttl).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return errors.Join(ErrStoreFailure, err)
	}
	if !ok {
		return ErrSessionExists
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, identifier string) (*Session, error) {
	data, err := s.client.Get(ctx, s.key(identifier)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, errors.Join(ErrStoreFailure, err)
	}

	var out Session
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}
	return out.clone(), nil
}

// Update rewrites the stored document when it exists. The read-modify-write
// runs inside WATCH so a concurrent update aborts instead of being lost.
func (s *RedisStore) Update(ctx context.Context, session *Session) error {
	if session == nil || session.Identifier == "" {
		return ErrInvalidSession
	}

	key := s.key(session.Identifier)
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrSessionNotFound
			}
			return err
		}

		var stored Session
		if err := json.Unmarshal(data, &stored); err != nil {
			return err
		}
		stored.Sources = session.clone().Sources
		stored.UpdatedAt = session.UpdatedAt

		updated, err := json.Marshal(&stored)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, s.ttl)
			return nil
		})
		return err
	}, key)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrSessionNotFound):
		return ErrSessionNotFound
	default:
		return errors.Join(ErrStoreFailure, err)
	}
}
