package memory

import (
	"context"
	"sync"
)

// GiftStore keeps teacher gift overrides in memory.
type GiftStore struct {
	mu        sync.RWMutex
	overrides map[int64]string
}

func NewGiftStore() *GiftStore {
	return &GiftStore{overrides: make(map[int64]string)}
}

func (s *GiftStore) Overrides(_ context.Context) (map[int64]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int64]string, len(s.overrides))
	for amount, gift := range s.overrides {
		out[amount] = gift
	}
	return out, nil
}

func (s *GiftStore) SetOverride(_ context.Context, amount int64, gift string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[amount] = gift
	return nil
}

func (s *GiftStore) ClearOverrides(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides = make(map[int64]string)
	return nil
}
