package prize_test

import (
	"context"
	"errors"
	"testing"

	"crorepati-quiz-service/internal/domain"
	"crorepati-quiz-service/internal/infra/memory"
	"crorepati-quiz-service/internal/prize"
)

func newLadder() *prize.Ladder {
	return prize.NewLadder(memory.NewSettingsStore(domain.Settings{DefaultTimeLimit: 30}))
}

func TestLevelsStartFromBuiltinLadder(t *testing.T) {
	ladder := newLadder()

	levels, err := ladder.Levels(context.Background())
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	if len(levels) != 16 {
		t.Fatalf("expected 16 built-in levels, got %d", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i].Amount <= levels[i-1].Amount {
			t.Fatalf("ladder not strictly ascending at %d: %+v", i, levels[i])
		}
	}
	if levels[0].Amount != 100 || levels[len(levels)-1].Amount != 10000000 {
		t.Fatalf("unexpected ladder bounds: %+v ... %+v", levels[0], levels[len(levels)-1])
	}
}

func TestAddCustomLevel(t *testing.T) {
	ctx := context.Background()
	ladder := newLadder()

	if err := ladder.AddCustomLevel(ctx, 0); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for zero amount, got %v", err)
	}

	if err := ladder.AddCustomLevel(ctx, 300); err != nil {
		t.Fatalf("add custom: %v", err)
	}
	levels, err := ladder.Levels(ctx)
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	if len(levels) != 17 {
		t.Fatalf("expected 17 levels after custom add, got %d", len(levels))
	}
	if levels[1].Amount != 300 || levels[1].Label != "₹ ૩૦૦" {
		t.Fatalf("custom level not merged in order, got %+v", levels[1])
	}

	// adding the same amount again changes nothing
	if err := ladder.AddCustomLevel(ctx, 300); err != nil {
		t.Fatalf("re-add custom: %v", err)
	}
	levels, _ = ladder.Levels(ctx)
	if len(levels) != 17 {
		t.Fatalf("duplicate custom amount must be deduplicated, got %d levels", len(levels))
	}
}

func TestAddCustomLevelCollidingWithBuiltinKeepsLabel(t *testing.T) {
	ctx := context.Background()
	ladder := newLadder()

	if err := ladder.AddCustomLevel(ctx, 10000000); err != nil {
		t.Fatalf("add colliding custom: %v", err)
	}
	levels, _ := ladder.Levels(ctx)
	if len(levels) != 16 {
		t.Fatalf("collision must be a no-op, got %d levels", len(levels))
	}
	if got := ladder.LabelFor(ctx, 10000000); got != "₹ ૧ કરોડ" {
		t.Fatalf("built-in label must win, got %q", got)
	}
}

func TestLabelForFallsBackToFormatting(t *testing.T) {
	ladder := newLadder()
	if got := ladder.LabelFor(context.Background(), 750); got != "₹ ૭૫૦" {
		t.Fatalf("expected formatted fallback label, got %q", got)
	}
}
