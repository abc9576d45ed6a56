package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/artdevata/content-service/internal/port/likestore"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Values are stored string-encoded ("true"/"false", decimal integers) with
// no expiry, mirroring the browser-storage scheme this replaces.
type redisStore struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisStore(client *redis.Client, logger *zap.Logger) likestore.Store {
	return &redisStore{
		client: client,
		logger: logger,
	}
}

func (r *redisStore) GetFlag(ctx context.Context, key string) (bool, error) {
	val, err := r.get(ctx, key)
	if err != nil {
		return false, err
	}
	flag, parseErr := strconv.ParseBool(val)
	if parseErr != nil {
		return false, fmt.Errorf("redisStore.GetFlag for key '%s': %w", key, parseErr)
	}
	return flag, nil
}

func (r *redisStore) SetFlag(ctx context.Context, key string, value bool) error {
	return r.set(ctx, key, strconv.FormatBool(value))
}

func (r *redisStore) GetCount(ctx context.Context, key string) (int64, error) {
	val, err := r.get(ctx, key)
	if err != nil {
		return 0, err
	}
	count, parseErr := strconv.ParseInt(val, 10, 64)
	if parseErr != nil {
		return 0, fmt.Errorf("redisStore.GetCount for key '%s': %w", key, parseErr)
	}
	return count, nil
}

func (r *redisStore) SetCount(ctx context.Context, key string, value int64) error {
	return r.set(ctx, key, strconv.FormatInt(value, 10))
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Redis Del operation failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("redisStore.Delete for key '%s': %w", key, err)
	}
	return nil
}

func (r *redisStore) get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", likestore.ErrNotFound
		}
		r.logger.Error("Redis Get operation failed", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("redisStore.get for key '%s': %w", key, err)
	}
	return val, nil
}

func (r *redisStore) set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		r.logger.Error("Redis Set operation failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("redisStore.set for key '%s': %w", key, err)
	}
	return nil
}
