package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/akarpov/go-social-auth/internal/config"
	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/models"
	"github.com/redis/go-redis/v9"
)

// redisTokenStore is the Redis-backed primary implementation of [TokenStore].
// Records are stored as JSON strings keyed by jti; TTL enforcement is
// delegated to Redis key expiry, so PurgeExpired has nothing to do.
type redisTokenStore struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisTokenStore connects to the Redis instance described by
// cfg.RedisURL and verifies the connection with a ping.
func NewRedisTokenStore(ctx context.Context, cfg config.Tokens, log *logger.Logger) (TokenStore, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Err(err).Str("func", "NewRedisTokenStore").Msg("error parsing redis URL")
		return nil, fmt.Errorf("error parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisTokenStore").Msg("error connecting redis (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewRedisTokenStore").Msg("connected to redis token store")

	return &redisTokenStore{
		client: client,
		logger: log,
	}, nil
}

func (s *redisTokenStore) Save(ctx context.Context, jti string, record models.TokenRecord, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling token record: %w", err)
	}

	if err = s.client.Set(ctx, jti, payload, ttl).Err(); err != nil {
		log.Err(err).Str("func", "*redisTokenStore.Save").Msg("redis set failed")
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (s *redisTokenStore) Get(ctx context.Context, jti string) (models.TokenRecord, error) {
	log := logger.FromContext(ctx)

	payload, err := s.client.Get(ctx, jti).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.TokenRecord{}, ErrTokenRecordNotFound
		}
		log.Err(err).Str("func", "*redisTokenStore.Get").Msg("redis get failed")
		return models.TokenRecord{}, fmt.Errorf("redis get failed: %w", err)
	}

	var record models.TokenRecord
	if err = json.Unmarshal(payload, &record); err != nil {
		return models.TokenRecord{}, fmt.Errorf("unmarshaling token record: %w", err)
	}

	return record, nil
}

func (s *redisTokenStore) Delete(ctx context.Context, jti string) error {
	log := logger.FromContext(ctx)

	if err := s.client.Del(ctx, jti).Err(); err != nil {
		log.Err(err).Str("func", "*redisTokenStore.Delete").Msg("redis del failed")
		return fmt.Errorf("redis del failed: %w", err)
	}

	return nil
}

// PurgeExpired is a no-op: Redis expires keys natively via the TTL set on
// each record.
func (s *redisTokenStore) PurgeExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

func (s *redisTokenStore) Close() error {
	return s.client.Close()
}
