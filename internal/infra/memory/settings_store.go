package memory

import (
	"context"
	"sync"

	"crorepati-quiz-service/internal/domain"
)

// SettingsStore keeps quiz settings in memory.
type SettingsStore struct {
	mu       sync.RWMutex
	settings domain.Settings
}

func NewSettingsStore(initial domain.Settings) *SettingsStore {
	return &SettingsStore{settings: initial}
}

func (s *SettingsStore) Settings(_ context.Context) (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.settings
	out.CustomPrizeAmounts = append([]int64(nil), s.settings.CustomPrizeAmounts...)
	return out, nil
}

func (s *SettingsStore) SaveSettings(_ context.Context, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings.CustomPrizeAmounts = append([]int64(nil), settings.CustomPrizeAmounts...)
	s.settings = settings
	return nil
}
