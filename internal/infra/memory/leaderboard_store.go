package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"crorepati-quiz-service/internal/domain"
	"github.com/google/uuid"
)

// LeaderboardStore is an in-memory implementation of app.LeaderboardStore.
// Entries are kept sorted descending by won amount and capped.
type LeaderboardStore struct {
	clock func() time.Time

	mu      sync.RWMutex
	entries []domain.LeaderboardEntry
}

func NewLeaderboardStore() *LeaderboardStore {
	return &LeaderboardStore{clock: time.Now}
}

// NewLeaderboardStoreWithClock is test-only for deterministic timestamps.
func NewLeaderboardStoreWithClock(now func() time.Time) *LeaderboardStore {
	return &LeaderboardStore{clock: now}
}

func (s *LeaderboardStore) AddEntry(_ context.Context, name, className string, wonAmount int64, gift string) (domain.LeaderboardEntry, error) {
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

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].WonAmount > s.entries[j].WonAmount
	})
	if len(s.entries) > domain.MaxLeaderboardEntries {
		s.entries = s.entries[:domain.MaxLeaderboardEntries]
	}
	return entry, nil
}

func (s *LeaderboardStore) All(_ context.Context) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.LeaderboardEntry(nil), s.entries...), nil
}

func (s *LeaderboardStore) Top(ctx context.Context, n int) ([]domain.LeaderboardEntry, error) {
	if n <= 0 {
		return nil, nil
	}
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	if n < len(all) {
		all = all[:n]
	}
	return all, nil
}

func (s *LeaderboardStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}
