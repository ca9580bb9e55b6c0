package app

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"crorepati-quiz-service/internal/domain"
)

func TestTimerCountsDownAndExpiresOnce(t *testing.T) {
	timer := NewQuestionTimerWithInterval(5 * time.Millisecond)
	defer timer.Cancel()

	var ticks, expiries atomic.Int64
	err := timer.Start(3,
		func(remaining int) { ticks.Add(1) },
		func() { expiries.Add(1) },
	)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	time.Sleep(60 * time.Millisecond)
	if got := expiries.Load(); got != 1 {
		t.Fatalf("expected exactly one expiry, got %d", got)
	}
	if got := ticks.Load(); got != 2 {
		t.Fatalf("expected 2 ticks for a 3-second countdown, got %d", got)
	}
}

func TestTimerRejectsNonPositiveDuration(t *testing.T) {
	timer := NewQuestionTimer()
	for _, seconds := range []int{0, -5} {
		err := timer.Start(seconds, nil, nil)
		if !errors.Is(err, domain.ErrInvalidDuration) {
			t.Fatalf("expected invalid duration for %d, got %v", seconds, err)
		}
	}
}

func TestTimerCancelStopsEvents(t *testing.T) {
	timer := NewQuestionTimerWithInterval(10 * time.Millisecond)

	var ticks, expiries atomic.Int64
	if err := timer.Start(100, func(int) { ticks.Add(1) }, func() { expiries.Add(1) }); err != nil {
		t.Fatalf("start: %v", err)
	}

	time.Sleep(35 * time.Millisecond)
	timer.Cancel()
	seen := ticks.Load()

	time.Sleep(50 * time.Millisecond)
	if got := ticks.Load(); got != seen {
		t.Fatalf("ticks after cancel: had %d, now %d", seen, got)
	}
	if got := expiries.Load(); got != 0 {
		t.Fatalf("expected no expiry after cancel, got %d", got)
	}

	// idempotent
	timer.Cancel()
}

func TestTimerStartReplacesPriorCountdown(t *testing.T) {
	timer := NewQuestionTimerWithInterval(5 * time.Millisecond)
	defer timer.Cancel()

	var firstExpiries atomic.Int64
	if err := timer.Start(2, nil, func() { firstExpiries.Add(1) }); err != nil {
		t.Fatalf("start: %v", err)
	}

	var secondExpiries atomic.Int64
	if err := timer.Start(2, nil, func() { secondExpiries.Add(1) }); err != nil {
		t.Fatalf("restart: %v", err)
	}

	time.Sleep(50 * time.Millisecond)
	if got := firstExpiries.Load(); got != 0 {
		t.Fatalf("cancelled countdown expired %d times", got)
	}
	if got := secondExpiries.Load(); got != 1 {
		t.Fatalf("expected one expiry from the replacement countdown, got %d", got)
	}
}
