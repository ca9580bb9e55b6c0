package question

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"crorepati-quiz-service/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// TTL is how long a teacher-authored question stays live after creation.
const TTL = 24 * time.Hour

// SweepInterval is the default cadence of the background expiry sweep.
const SweepInterval = 60 * time.Second

// FallbackTimeLimit applies when no per-question limit is given and no
// default is configured in settings.
const FallbackTimeLimit = 30

// TeacherStore persists teacher-authored questions (in-memory, Redis, etc).
type TeacherStore interface {
	List(ctx context.Context) ([]domain.Question, error)
	Put(ctx context.Context, q domain.Question) error
	Delete(ctx context.Context, id string) error
}

// BankLoader fetches the default question bank from a backing store.
type BankLoader interface {
	LoadBank(ctx context.Context) ([]domain.Question, error)
}

// SettingsReader exposes the current quiz settings.
type SettingsReader interface {
	Settings(ctx context.Context) (domain.Settings, error)
}

// AddQuestionInput is the authoring payload for a new teacher question.
type AddQuestionInput struct {
	Text          string
	Options       map[domain.OptionKey]string
	CorrectAnswer domain.OptionKey
	PrizeAmount   int64
	TimeLimit     int // seconds, 0 means use the settings default
}

// Repository merges teacher-authored questions with the default bank and
// enforces the 24h TTL on teacher content. The bank is cached with TTL and
// jitter so repeated session starts do not hammer the backing store.
type Repository struct {
	store    TeacherStore
	bank     BankLoader
	settings SettingsReader
	cacheTTL time.Duration
	clock    func() time.Time
	sf       singleflight.Group
	rnd      *rand.Rand

	mu        sync.RWMutex
	cached    []domain.Question
	expiresAt time.Time
}

func NewRepository(store TeacherStore, bank BankLoader, settings SettingsReader, cacheTTL time.Duration) *Repository {
	return &Repository{
		store:    store,
		bank:     bank,
		settings: settings,
		cacheTTL: cacheTTL,
		clock:    time.Now,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewRepositoryWithClock is test-only for deterministic expiry.
func NewRepositoryWithClock(store TeacherStore, bank BankLoader, settings SettingsReader, cacheTTL time.Duration, now func() time.Time) *Repository {
	r := NewRepository(store, bank, settings, cacheTTL)
	r.clock = now
	return r
}

// SessionQuestions returns the ordered question sequence for a session:
// exclusively the live teacher questions when any exist, otherwise the full
// default bank. Either way the sequence is sorted ascending by prize amount.
func (r *Repository) SessionQuestions(ctx context.Context) ([]domain.Question, error) {
	teacher, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teacher questions: %w", err)
	}

	now := r.clock()
	live := teacher[:0:0]
	for _, q := range teacher {
		if !expired(q, now) {
			live = append(live, q)
		}
	}
	if len(live) > 0 {
		sortByPrize(live)
		return live, nil
	}

	bank, err := r.bankQuestions(ctx)
	if err != nil {
		return nil, err
	}
	sortByPrize(bank)
	return bank, nil
}

// Add validates and persists a teacher question, assigning its identity,
// creation timestamp and default time limit.
func (r *Repository) Add(ctx context.Context, input AddQuestionInput) (domain.Question, error) {
	if strings.TrimSpace(input.Text) == "" {
		return domain.Question{}, fmt.Errorf("%w: question text required", domain.ErrValidation)
	}
	for _, key := range domain.OptionKeys {
		if strings.TrimSpace(input.Options[key]) == "" {
			return domain.Question{}, fmt.Errorf("%w: option %s required", domain.ErrValidation, key)
		}
	}
	if !input.CorrectAnswer.Valid() {
		return domain.Question{}, fmt.Errorf("%w: correct answer must be one of A-D", domain.ErrValidation)
	}
	if input.PrizeAmount <= 0 {
		return domain.Question{}, fmt.Errorf("%w: prize amount must be positive", domain.ErrValidation)
	}

	limit := input.TimeLimit
	if limit <= 0 {
		settings, err := r.settings.Settings(ctx)
		if err != nil {
			return domain.Question{}, fmt.Errorf("load settings: %w", err)
		}
		limit = settings.DefaultTimeLimit
		if limit <= 0 {
			limit = FallbackTimeLimit
		}
	}

	q := domain.Question{
		ID:            "teacher-" + uuid.NewString(),
		Text:          strings.TrimSpace(input.Text),
		Options:       input.Options,
		CorrectAnswer: input.CorrectAnswer,
		PrizeAmount:   input.PrizeAmount,
		CreatedAt:     r.clock(),
		TimeLimit:     limit,
	}
	if err := r.store.Put(ctx, q); err != nil {
		return domain.Question{}, fmt.Errorf("save question: %w", err)
	}
	return q, nil
}

// Delete removes the teacher question with the given ID. Unknown IDs are
// a no-op.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}

// TeacherQuestions lists the live (non-expired) teacher questions.
func (r *Repository) TeacherQuestions(ctx context.Context) ([]domain.Question, error) {
	teacher, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teacher questions: %w", err)
	}
	now := r.clock()
	live := teacher[:0:0]
	for _, q := range teacher {
		if !expired(q, now) {
			live = append(live, q)
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].CreatedAt.Before(live[j].CreatedAt) })
	return live, nil
}

// Sweep deletes every teacher question whose age exceeds the TTL and
// returns how many were removed. Running it twice back to back removes
// nothing the second time.
func (r *Repository) Sweep(ctx context.Context) (int, error) {
	teacher, err := r.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list teacher questions: %w", err)
	}
	now := r.clock()
	removed := 0
	for _, q := range teacher {
		if !expired(q, now) {
			continue
		}
		if err := r.store.Delete(ctx, q.ID); err != nil {
			return removed, fmt.Errorf("delete expired question %s: %w", q.ID, err)
		}
		removed++
	}
	return removed, nil
}

// StartSweeper runs Sweep once immediately and then on every interval tick
// until the context is cancelled.
func (r *Repository) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = SweepInterval
	}
	go func() {
		if n, err := r.Sweep(ctx); err != nil {
			log.Printf("question sweep failed: %v", err)
		} else if n > 0 {
			log.Printf("question sweep removed %d expired questions", n)
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n, err := r.Sweep(ctx); err != nil {
					log.Printf("question sweep failed: %v", err)
				} else if n > 0 {
					log.Printf("question sweep removed %d expired questions", n)
				}
			}
		}
	}()
}

// TimeRemaining renders how long a teacher question has left before expiry.
func (r *Repository) TimeRemaining(q domain.Question) string {
	remaining := TTL - r.clock().Sub(q.CreatedAt)
	if remaining <= 0 {
		return "સમાપ્ત"
	}
	hours := int(remaining / time.Hour)
	minutes := int(remaining%time.Hour) / int(time.Minute)
	return fmt.Sprintf("%d કલાક %d મિનિટ", hours, minutes)
}

func (r *Repository) bankQuestions(ctx context.Context) ([]domain.Question, error) {
	now := r.clock()

	r.mu.RLock()
	if r.cached != nil && r.expiresAt.After(now) {
		cached := append([]domain.Question(nil), r.cached...)
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("bank", func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if r.cached != nil && r.expiresAt.After(now) {
			cached := append([]domain.Question(nil), r.cached...)
			r.mu.RUnlock()
			return cached, nil
		}
		r.mu.RUnlock()

		bank, err := r.bank.LoadBank(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cached = bank
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return append([]domain.Question(nil), bank...), nil
	})
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	return result.([]domain.Question), nil
}

func (r *Repository) ttlWithJitter() time.Duration {
	if r.cacheTTL <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.cacheTTL) / 10
	return r.cacheTTL + time.Duration(r.rnd.Int63n(jitterMax+1))
}

func expired(q domain.Question, now time.Time) bool {
	return q.TeacherAuthored() && now.Sub(q.CreatedAt) > TTL
}

func sortByPrize(qs []domain.Question) {
	sort.SliceStable(qs, func(i, j int) bool { return qs[i].PrizeAmount < qs[j].PrizeAmount })
}
