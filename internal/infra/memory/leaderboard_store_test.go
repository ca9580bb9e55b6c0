package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"crorepati-quiz-service/internal/domain"
)

func TestLeaderboardIgnoresZeroAmounts(t *testing.T) {
	ctx := context.Background()
	store := NewLeaderboardStore()

	entry, err := store.AddEntry(ctx, "આશા", "5", 0, "")
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if entry.ID != "" {
		t.Fatalf("zero amount must not create an entry, got %+v", entry)
	}
	all, err := store.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty leaderboard, got %d entries", len(all))
	}
}

func TestLeaderboardSortedAndCapped(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := NewLeaderboardStoreWithClock(func() time.Time { return now })

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
	// the lowest scores fell off the board
	if all[len(all)-1].WonAmount != 600 {
		t.Fatalf("expected lowest surviving amount 600, got %d", all[len(all)-1].WonAmount)
	}
	if !all[0].Date.Equal(now) {
		t.Fatalf("expected injected clock timestamp, got %v", all[0].Date)
	}
}

func TestLeaderboardTopAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewLeaderboardStore()

	for i := 1; i <= 5; i++ {
		if _, err := store.AddEntry(ctx, fmt.Sprintf("student-%d", i), "6", int64(i*1000), ""); err != nil {
			t.Fatalf("add entry: %v", err)
		}
	}

	top, err := store.Top(ctx, 3)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 3 || top[0].WonAmount != 5000 {
		t.Fatalf("unexpected top slice: %+v", top)
	}

	top, err = store.Top(ctx, 10)
	if err != nil {
		t.Fatalf("top beyond size: %v", err)
	}
	if len(top) != 5 {
		t.Fatalf("top beyond size must return everything, got %d", len(top))
	}

	for _, n := range []int{0, -1} {
		top, err = store.Top(ctx, n)
		if err != nil {
			t.Fatalf("top %d: %v", n, err)
		}
		if len(top) != 0 {
			t.Fatalf("top %d must return nothing, got %d entries", n, len(top))
		}
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	all, err := store.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected cleared board, got %d", len(all))
	}
}
