package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// giftsKey holds teacher gift overrides as a hash:
// HSET quiz:prize:gifts {amount} {description}
const giftsKey = "quiz:prize:gifts"

// GiftStore is a Redis-backed implementation of prize.GiftStore.
type GiftStore struct {
	client *redis.Client
}

func NewGiftStore(client *redis.Client) *GiftStore {
	return &GiftStore{client: client}
}

func (s *GiftStore) Overrides(ctx context.Context) (map[int64]string, error) {
	raw, err := s.client.HGetAll(ctx, giftsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("load gift overrides: %w", err)
	}
	out := make(map[int64]string, len(raw))
	for field, gift := range raw {
		amount, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("decode gift amount %q: %w", field, err)
		}
		out[amount] = gift
	}
	return out, nil
}

func (s *GiftStore) SetOverride(ctx context.Context, amount int64, gift string) error {
	if err := s.client.HSet(ctx, giftsKey, strconv.FormatInt(amount, 10), gift).Err(); err != nil {
		return fmt.Errorf("save gift override: %w", err)
	}
	return nil
}

func (s *GiftStore) ClearOverrides(ctx context.Context) error {
	if err := s.client.Del(ctx, giftsKey).Err(); err != nil {
		return fmt.Errorf("clear gift overrides: %w", err)
	}
	return nil
}
