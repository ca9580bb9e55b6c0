package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"crorepati-quiz-service/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// leaderboardKey holds the leaderboard as a sorted set scored by won
// amount; each member is the JSON-encoded entry.
const leaderboardKey = "quiz:leaderboard"

// LeaderboardStore is a Redis-backed implementation of app.LeaderboardStore.
// The sorted set keeps entries ranked by won amount, and every insert trims
// the set back to the retained cap.
type LeaderboardStore struct {
	client *redis.Client
	clock  func() time.Time
}

func NewLeaderboardStore(client *redis.Client) *LeaderboardStore {
	return &LeaderboardStore{client: client, clock: time.Now}
}

// NewLeaderboardStoreWithClock is test-only for deterministic timestamps.
func NewLeaderboardStoreWithClock(client *redis.Client, now func() time.Time) *LeaderboardStore {
	return &LeaderboardStore{client: client, clock: now}
}

func (s *LeaderboardStore) AddEntry(ctx context.Context, name, className string, wonAmount int64, gift string) (domain.LeaderboardEntry, error) {
	if wonAmount <= 0 {
		return domain.LeaderboardEntry{}, nil
	}
	entry := domain.LeaderboardEntry{
		ID:          "entry-" + uuid.NewString(),
		StudentName: name,
		ClassName:   className,
		WonAmount:   wonAmount,
		Prize:       gift,
		Date:        s.clock(),
	}
	encoded, err := json.Marshal(entry)
	if err != nil {
		return domain.LeaderboardEntry{}, fmt.Errorf("encode leaderboard entry: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(wonAmount), Member: encoded})
	// keep only the top N by rank
	pipe.ZRemRangeByRank(ctx, leaderboardKey, 0, int64(-domain.MaxLeaderboardEntries-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return domain.LeaderboardEntry{}, fmt.Errorf("save leaderboard entry: %w", err)
	}
	return entry, nil
}

func (s *LeaderboardStore) All(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	raw, err := s.client.ZRevRange(ctx, leaderboardKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	return decodeEntries(raw)
}

func (s *LeaderboardStore) Top(ctx context.Context, n int) ([]domain.LeaderboardEntry, error) {
	if n <= 0 {
		return nil, nil
	}
	raw, err := s.client.ZRevRange(ctx, leaderboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	return decodeEntries(raw)
}

func (s *LeaderboardStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, leaderboardKey).Err(); err != nil {
		return fmt.Errorf("clear leaderboard: %w", err)
	}
	return nil
}

func decodeEntries(raw []string) ([]domain.LeaderboardEntry, error) {
	out := make([]domain.LeaderboardEntry, 0, len(raw))
	for _, encoded := range raw {
		var entry domain.LeaderboardEntry
		if err := json.Unmarshal([]byte(encoded), &entry); err != nil {
			return nil, fmt.Errorf("decode leaderboard entry: %w", err)
		}
		out = append(out, entry)
	}
	return out, nil
}
