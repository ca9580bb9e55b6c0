package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"crorepati-quiz-service/internal/domain"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestQuestionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewQuestionStore(newTestClient(t))

	q := domain.Question{
		ID:   "teacher-1",
		Text: "પ્રશ્ન?",
		Options: map[domain.OptionKey]string{
			domain.OptionA: "a", domain.OptionB: "b", domain.OptionC: "c", domain.OptionD: "d",
		},
		CorrectAnswer: domain.OptionB,
		PrizeAmount:   500,
		CreatedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		TimeLimit:     30,
	}
	if err := store.Put(ctx, q); err != nil {
		t.Fatalf("put: %v", err)
	}
	older := q
	older.ID = "teacher-0"
	older.CreatedAt = q.CreatedAt.Add(-time.Hour)
	if err := store.Put(ctx, older); err != nil {
		t.Fatalf("put older: %v", err)
	}

	listed, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(listed))
	}
	if listed[0].ID != "teacher-0" || listed[1].ID != "teacher-1" {
		t.Fatalf("expected creation order, got %s then %s", listed[0].ID, listed[1].ID)
	}
	if listed[1].CorrectAnswer != domain.OptionB || listed[1].Options[domain.OptionC] != "c" {
		t.Fatalf("question did not survive the round trip: %+v", listed[1])
	}

	if err := store.Delete(ctx, "teacher-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	listed, err = store.List(ctx)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != "teacher-0" {
		t.Fatalf("unexpected questions after delete: %+v", listed)
	}
}

func TestSettingsStoreMissingKeyYieldsDefaults(t *testing.T) {
	ctx := context.Background()
	defaults := domain.Settings{DefaultTimeLimit: 30}
	store := NewSettingsStore(newTestClient(t), defaults)

	settings, err := store.Settings(ctx)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings.DefaultTimeLimit != 30 {
		t.Fatalf("expected defaults, got %+v", settings)
	}

	settings.DefaultTimeLimit = 45
	settings.CustomPrizeAmounts = []int64{300}
	if err := store.SaveSettings(ctx, settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	loaded, err := store.Settings(ctx)
	if err != nil {
		t.Fatalf("reload settings: %v", err)
	}
	if loaded.DefaultTimeLimit != 45 || len(loaded.CustomPrizeAmounts) != 1 || loaded.CustomPrizeAmounts[0] != 300 {
		t.Fatalf("settings did not survive the round trip: %+v", loaded)
	}
}

func TestGiftStoreOverrides(t *testing.T) {
	ctx := context.Background()
	store := NewGiftStore(newTestClient(t))

	overrides, err := store.Overrides(ctx)
	if err != nil {
		t.Fatalf("overrides: %v", err)
	}
	if len(overrides) != 0 {
		t.Fatalf("expected no overrides, got %+v", overrides)
	}

	if err := store.SetOverride(ctx, 1000, "પુસ્તક"); err != nil {
		t.Fatalf("set override: %v", err)
	}
	overrides, err = store.Overrides(ctx)
	if err != nil {
		t.Fatalf("overrides after set: %v", err)
	}
	if overrides[1000] != "પુસ્તક" {
		t.Fatalf("expected override at 1000, got %+v", overrides)
	}

	if err := store.ClearOverrides(ctx); err != nil {
		t.Fatalf("clear overrides: %v", err)
	}
	overrides, err = store.Overrides(ctx)
	if err != nil {
		t.Fatalf("overrides after clear: %v", err)
	}
	if len(overrides) != 0 {
		t.Fatalf("expected cleared overrides, got %+v", overrides)
	}
}

func TestLeaderboardStoreSortsAndCaps(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := NewLeaderboardStoreWithClock(newTestClient(t), func() time.Time { return now })

	if _, err := store.AddEntry(ctx, "skipped", "5", 0, ""); err != nil {
		t.Fatalf("zero amount add: %v", err)
	}
	for i := 1; i <= domain.MaxLeaderboardEntries+5; i++ {
		name := fmt.Sprintf("student-%d", i)
		if _, err := store.AddEntry(ctx, name, "7", int64(i*100), "પ્રમાણપત્ર"); err != nil {
			t.Fatalf("add entry %d: %v", i, err)
		}
	}

	all, err := store.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != domain.MaxLeaderboardEntries {
		t.Fatalf("expected cap of %d, got %d", domain.MaxLeaderboardEntries, len(all))
	}
	if all[0].WonAmount != 5500 {
		t.Fatalf("expected highest amount first, got %d", all[0].WonAmount)
	}
	for i := 1; i < len(all); i++ {
		if all[i].WonAmount > all[i-1].WonAmount {
			t.Fatalf("not sorted descending at %d", i)
		}
	}
	if !all[0].Date.Equal(now) {
		t.Fatalf("expected injected clock timestamp, got %v", all[0].Date)
	}

	top, err := store.Top(ctx, 3)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 3 || top[0].WonAmount != 5500 || top[2].WonAmount != 5300 {
		t.Fatalf("unexpected top slice: %+v", top)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	all, err = store.All(ctx)
	if err != nil {
		t.Fatalf("all after clear: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected cleared leaderboard, got %d", len(all))
	}
}
