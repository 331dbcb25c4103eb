package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/MatyAlts/synapsse-storefront/internal/domain"
	"github.com/redis/go-redis/v9"
)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client:  client,
		baseTTL: 30 * time.Minute,
	}
}

// RedisStore keeps applied coupons in Redis so a checkout survives the
// redirect through the payment provider even across instances.
type RedisStore struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r RedisStore) Get(ctx context.Context, sessionID string) (*domain.AppliedCoupon, error) {
	data, err := r.client.Get(ctx, storeKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var coupon domain.AppliedCoupon
	if err2 := json.Unmarshal(data, &coupon); err2 != nil {
		return nil, fmt.Errorf("unmarshal coupon failed: %w", err2)
	}
	return &coupon, nil
}

func (r RedisStore) Set(ctx context.Context, sessionID string, coupon *domain.AppliedCoupon) error {
	payload, err := json.Marshal(coupon)
	if err != nil {
		return fmt.Errorf("marshal coupon failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(5)) * time.Minute
	if err := r.client.Set(ctx, storeKey(sessionID), payload, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, storeKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func storeKey(sessionID string) string {
	return fmt.Sprintf("checkout:coupon:%s", sessionID)
}
