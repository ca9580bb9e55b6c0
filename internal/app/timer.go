package app

import (
	"fmt"
	"sync"
	"time"

	"crorepati-quiz-service/internal/domain"
)

// QuestionTimer drives the per-question countdown. At most one countdown is
// live per timer instance; Start implicitly cancels any prior run.
type QuestionTimer struct {
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
}

func NewQuestionTimer() *QuestionTimer {
	return &QuestionTimer{interval: time.Second}
}

// NewQuestionTimerWithInterval is test-only: it compresses the whole-second
// tick to the given interval.
func NewQuestionTimerWithInterval(interval time.Duration) *QuestionTimer {
	return &QuestionTimer{interval: interval}
}

// Start begins a countdown from durationSeconds. onTick fires on every
// whole-interval boundary with the remaining count; onExpire fires exactly
// once when the countdown reaches zero. Neither fires after Cancel.
func (t *QuestionTimer) Start(durationSeconds int, onTick func(remaining int), onExpire func()) error {
	if durationSeconds <= 0 {
		return fmt.Errorf("%w: %d seconds", domain.ErrInvalidDuration, durationSeconds)
	}

	t.mu.Lock()
	if t.stop != nil {
		close(t.stop)
	}
	stop := make(chan struct{})
	t.stop = stop
	t.mu.Unlock()

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		remaining := durationSeconds
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
			}
			// a cancel that raced the tick wins
			select {
			case <-stop:
				return
			default:
			}
			remaining--
			if remaining > 0 {
				if onTick != nil {
					onTick(remaining)
				}
				continue
			}
			if onExpire != nil {
				onExpire()
			}
			return
		}
	}()
	return nil
}

// Cancel stops the live countdown with no further events. Idempotent.
func (t *QuestionTimer) Cancel() {
	t.mu.Lock()
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
	t.mu.Unlock()
}
