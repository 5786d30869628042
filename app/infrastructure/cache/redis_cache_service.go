package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redsync/redsync/v4"
	redsyncgoredis "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"

	"abled.ai/abled-api-gateway/app/utils/logger"
	"abled.ai/abled-api-gateway/config/environment_variables"
)

// RedisCacheService provides the shared cache using Redis.
type RedisCacheService struct {
	client  *redis.Client
	redsync *redsync.Redsync
}

// NewRedisCacheService creates a new Redis cache service
func NewRedisCacheService() CacheService {
	env := &environment_variables.EnvironmentVariables

	redisURL := env.CACHE_URL
	if redisURL == "" {
		redisURL = env.REDIS_URL
	}
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.GetLogger().Error(fmt.Sprintf("Failed to parse Redis URL: %v", err))
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	if env.CACHE_PASSWORD != "" {
		opts.Password = env.CACHE_PASSWORD
	} else if env.REDIS_PASSWORD != "" {
		opts.Password = env.REDIS_PASSWORD
	}
	if env.CACHE_DB != "" {
		if db, err := strconv.Atoi(env.CACHE_DB); err == nil {
			opts.DB = db
		}
	} else if env.REDIS_DB != "" {
		if db, err := strconv.Atoi(env.REDIS_DB); err == nil {
			opts.DB = db
		}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.GetLogger().Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logger.GetLogger().Info("Successfully connected to Redis")
	}

	return &RedisCacheService{
		client:  client,
		redsync: redsync.New(redsyncgoredis.NewPool(client)),
	}
}

func (r *RedisCacheService) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisCacheService) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("key not found: %s", key)
		}
		return "", fmt.Errorf("failed to get value: %w", err)
	}
	return val, nil
}

func (r *RedisCacheService) Delete(ctx context.Context, key string) error {
	return r.client.Unlink(ctx, key).Err()
}

func (r *RedisCacheService) Exists(ctx context.Context, key string) (bool, error) {
	result, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check key existence: %w", err)
	}
	return result > 0, nil
}

func (r *RedisCacheService) Close() error {
	return r.client.Close()
}

func (r *RedisCacheService) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCacheService) NewMutex(name string, options ...redsync.Option) *redsync.Mutex {
	return r.redsync.NewMutex(name, options...)
}
