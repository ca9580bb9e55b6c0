package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"crorepati-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const settingsKey = "quiz:settings"

// SettingsStore persists quiz settings as a single JSON value. A missing
// key yields the configured defaults.
type SettingsStore struct {
	client   *redis.Client
	defaults domain.Settings
}

func NewSettingsStore(client *redis.Client, defaults domain.Settings) *SettingsStore {
	return &SettingsStore{client: client, defaults: defaults}
}

func (s *SettingsStore) Settings(ctx context.Context) (domain.Settings, error) {
	raw, err := s.client.Get(ctx, settingsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return s.defaults, nil
	}
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	var settings domain.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

func (s *SettingsStore) SaveSettings(ctx context.Context, settings domain.Settings) error {
	encoded, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.client.Set(ctx, settingsKey, encoded, 0).Err(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
