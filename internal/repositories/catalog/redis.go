package catalog

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/errors"
	"github.com/KirkDiggler/rpg-character-wizard/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-character-wizard/internal/redis"
)

const catalogKeyPrefix = "catalog:"

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis catalog cache.
type RedisConfig struct {
	Client redisclient.Client
	// TTL defaults to DefaultTTL
	TTL time.Duration
	// Clock stamps entries and defaults to wall time. Expiry itself is
	// enforced by Redis.
	Clock clock.Clock
}

// Validate validates the RedisConfig and sets defaults.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return nil
}

// NewRedis creates a Redis-backed catalog cache
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
		clock:  cfg.Clock,
	}, nil
}

// catalogData is the storage structure serialized to Redis
type catalogData struct {
	Catalogs  *dnd5e.Catalogs `json:"catalogs"`
	StoredAt  int64           `json:"stored_at"`
	ExpiresAt int64           `json:"expires_at"`
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	result, err := r.client.Get(ctx, catalogKeyPrefix+input.Key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("catalogs %s not cached", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to get catalogs %s", input.Key)
	}

	var data catalogData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal catalogs %s", input.Key)
	}
	if data.Catalogs == nil {
		return nil, errors.NotFoundf("catalogs %s not cached", input.Key)
	}

	return &GetOutput{
		Catalogs:  data.Catalogs,
		StoredAt:  time.Unix(data.StoredAt, 0),
		ExpiresAt: time.Unix(data.ExpiresAt, 0),
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}
	if input.Catalogs == nil {
		return nil, errors.InvalidArgument(errCatalogsEmpty)
	}

	now := r.clock.Now()
	expiresAt := now.Add(r.ttl)
	jsonData, err := json.Marshal(catalogData{
		Catalogs:  input.Catalogs,
		StoredAt:  now.Unix(),
		ExpiresAt: expiresAt.Unix(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal catalogs %s", input.Key)
	}

	if err := r.client.Set(ctx, catalogKeyPrefix+input.Key, jsonData, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to cache catalogs %s", input.Key)
	}

	return &PutOutput{ExpiresAt: expiresAt}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	if err := r.client.Del(ctx, catalogKeyPrefix+input.Key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete catalogs %s", input.Key)
	}
	return &DeleteOutput{}, nil
}
