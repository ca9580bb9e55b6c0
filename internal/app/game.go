package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"crorepati-quiz-service/internal/domain"
)

// QuestionSource yields the ordered question sequence for a session.
type QuestionSource interface {
	SessionQuestions(ctx context.Context) ([]domain.Question, error)
}

// LeaderboardStore abstracts the persisted, rank-ordered session record.
type LeaderboardStore interface {
	AddEntry(ctx context.Context, name, className string, wonAmount int64, gift string) (domain.LeaderboardEntry, error)
	All(ctx context.Context) ([]domain.LeaderboardEntry, error)
	Top(ctx context.Context, n int) ([]domain.LeaderboardEntry, error)
	Clear(ctx context.Context) error
}

// GiftResolver maps a won amount to its physical-prize description.
type GiftResolver interface {
	GiftFor(ctx context.Context, amount int64) (string, error)
}

// SettingsReader exposes the session-wide default time limit.
type SettingsReader interface {
	Settings(ctx context.Context) (domain.Settings, error)
}

// Event is one observable session change. Cue is set for fire-and-forget
// audio/notification signals; Snapshot always reflects the state after the
// change.
type Event struct {
	Cue      domain.Cue             `json:"cue,omitempty"`
	Snapshot domain.SessionSnapshot `json:"snapshot"`
}

// fallbackTimeLimit applies when neither the question nor the settings
// carry a limit.
const fallbackTimeLimit = 30

// Game is the session state machine: Registering -> Playing -> Won/Lost,
// with Restart looping back to Registering. One Game serves one player at
// a time; all transitions run under a single mutex, so the timer expiry
// path and the submission path can never both consume the same question.
type Game struct {
	source      QuestionSource
	leaderboard LeaderboardStore
	gifts       GiftResolver
	settings    SettingsReader
	timer       *QuestionTimer
	now         func() time.Time

	mu           sync.Mutex
	phase        domain.Phase
	player       domain.Player
	questions    []domain.Question
	index        int
	wonAmount    int64
	lastSafe     int64
	remaining    int
	gift         string
	lossReason   domain.LossReason
	answerLocked bool
	generation   int
	subscribers  map[chan Event]struct{}
}

func NewGame(source QuestionSource, leaderboard LeaderboardStore, gifts GiftResolver, settings SettingsReader) *Game {
	return newGame(source, leaderboard, gifts, settings, NewQuestionTimer(), time.Now)
}

// NewGameWithTimer is test-only for compressed countdowns and deterministic
// timestamps.
func NewGameWithTimer(source QuestionSource, leaderboard LeaderboardStore, gifts GiftResolver, settings SettingsReader, timer *QuestionTimer, now func() time.Time) *Game {
	return newGame(source, leaderboard, gifts, settings, timer, now)
}

func newGame(source QuestionSource, leaderboard LeaderboardStore, gifts GiftResolver, settings SettingsReader, timer *QuestionTimer, now func() time.Time) *Game {
	return &Game{
		source:      source,
		leaderboard: leaderboard,
		gifts:       gifts,
		settings:    settings,
		timer:       timer,
		now:         now,
		phase:       domain.PhaseRegistering,
		subscribers: make(map[chan Event]struct{}),
	}
}

// Register stores the trimmed player identity, fetches the session question
// sequence and starts the countdown for question one. State is untouched on
// any error.
func (g *Game) Register(ctx context.Context, name, className string) error {
	name = strings.TrimSpace(name)
	className = strings.TrimSpace(className)
	if name == "" {
		return fmt.Errorf("%w: name required", domain.ErrValidation)
	}
	if className == "" {
		return fmt.Errorf("%w: class required", domain.ErrValidation)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != domain.PhaseRegistering {
		return domain.ErrNotRegistering
	}

	questions, err := g.source.SessionQuestions(ctx)
	if err != nil {
		return fmt.Errorf("load session questions: %w", err)
	}
	if len(questions) == 0 {
		return domain.ErrNoQuestions
	}

	g.player = domain.Player{Name: name, ClassName: className}
	g.questions = questions
	g.index = 0
	g.wonAmount = 0
	g.lastSafe = 0
	g.gift = ""
	g.lossReason = ""
	g.phase = domain.PhasePlaying
	return g.startQuestionLocked(ctx)
}

// SubmitAnswer locks in the given option for the active question. Only one
// answer (or timer expiry) is honored per question.
func (g *Game) SubmitAnswer(ctx context.Context, key domain.OptionKey) error {
	if !key.Valid() {
		return fmt.Errorf("%w: option must be one of A-D", domain.ErrValidation)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != domain.PhasePlaying {
		return domain.ErrNotPlaying
	}
	if g.answerLocked {
		return domain.ErrAnswerLocked
	}
	g.answerLocked = true
	g.timer.Cancel()
	g.broadcastLocked(domain.CueLockIn)

	q := g.questions[g.index]
	if key != q.CorrectAnswer {
		g.loseLocked(ctx, domain.LossWrongAnswer)
		return nil
	}

	g.lastSafe = q.PrizeAmount
	g.wonAmount = q.PrizeAmount
	if g.index+1 >= len(g.questions) {
		g.phase = domain.PhaseWon
		g.gift = g.resolveGift(ctx, g.wonAmount)
		g.persistLocked(ctx, g.wonAmount, g.gift)
		g.broadcastLocked(domain.CueCorrect)
		g.broadcastLocked(domain.CueWin)
		return nil
	}

	g.broadcastLocked(domain.CueCorrect)
	g.index++
	return g.startQuestionLocked(ctx)
}

// Restart returns a finished session to Registering, cancelling any timer.
func (g *Game) Restart(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != domain.PhaseWon && g.phase != domain.PhaseLost {
		return domain.ErrNotFinished
	}
	g.timer.Cancel()
	g.generation++
	g.phase = domain.PhaseRegistering
	g.player = domain.Player{}
	g.questions = nil
	g.index = 0
	g.wonAmount = 0
	g.lastSafe = 0
	g.remaining = 0
	g.gift = ""
	g.lossReason = ""
	g.answerLocked = false
	g.broadcastLocked("")
	return nil
}

// Snapshot returns the current render-ready session view.
func (g *Game) Snapshot() domain.SessionSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// Subscribe returns a channel receiving session events. The caller must
// invoke the returned cancel function to avoid leaks.
func (g *Game) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)

	g.mu.Lock()
	g.subscribers[ch] = struct{}{}
	initial := Event{Snapshot: g.snapshotLocked()}
	g.mu.Unlock()

	ch <- initial

	cancel := func() {
		g.mu.Lock()
		if _, ok := g.subscribers[ch]; ok {
			delete(g.subscribers, ch)
			close(ch)
		}
		g.mu.Unlock()
	}
	return ch, cancel
}

// Close cancels any live timer; the Game must not be used afterwards.
func (g *Game) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.generation++
	g.timer.Cancel()
}

func (g *Game) startQuestionLocked(ctx context.Context) error {
	q := g.questions[g.index]
	limit := q.TimeLimit
	if limit <= 0 {
		if settings, err := g.settings.Settings(ctx); err == nil && settings.DefaultTimeLimit > 0 {
			limit = settings.DefaultTimeLimit
		} else {
			limit = fallbackTimeLimit
		}
	}

	g.generation++
	gen := g.generation
	g.remaining = limit
	g.answerLocked = false

	err := g.timer.Start(limit,
		func(remaining int) { g.onTick(gen, remaining) },
		func() { g.onExpire(gen) },
	)
	if err != nil {
		return err
	}
	g.broadcastLocked(domain.CueQuestionStart)
	return nil
}

func (g *Game) onTick(gen, remaining int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if gen != g.generation || g.phase != domain.PhasePlaying || g.answerLocked {
		return
	}
	g.remaining = remaining
	cue := domain.Cue("")
	if remaining <= 5 {
		cue = domain.CueTickWarning
	}
	g.broadcastLocked(cue)
}

func (g *Game) onExpire(gen int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	// a submission that locked the question first wins; so does any
	// transition that bumped the generation
	if gen != g.generation || g.phase != domain.PhasePlaying || g.answerLocked {
		return
	}
	g.answerLocked = true
	g.remaining = 0
	g.loseLocked(context.Background(), domain.LossTimeout)
}

func (g *Game) loseLocked(ctx context.Context, reason domain.LossReason) {
	g.phase = domain.PhaseLost
	g.lossReason = reason
	if g.lastSafe > 0 {
		g.gift = g.resolveGift(ctx, g.lastSafe)
	}
	g.persistLocked(ctx, g.lastSafe, g.gift)
	g.broadcastLocked(domain.CueIncorrect)
	g.broadcastLocked(domain.CueGameOver)
}

// persistLocked appends the session outcome to the leaderboard. Persistence
// failures do not abort the transition; the session stays usable.
func (g *Game) persistLocked(ctx context.Context, amount int64, gift string) {
	if amount <= 0 {
		return
	}
	if _, err := g.leaderboard.AddEntry(ctx, g.player.Name, g.player.ClassName, amount, gift); err != nil {
		log.Printf("leaderboard entry not persisted: %v", err)
	}
}

func (g *Game) resolveGift(ctx context.Context, amount int64) string {
	gift, err := g.gifts.GiftFor(ctx, amount)
	if err != nil {
		log.Printf("gift lookup failed: %v", err)
		return ""
	}
	return gift
}

func (g *Game) snapshotLocked() domain.SessionSnapshot {
	snap := domain.SessionSnapshot{
		Phase:          g.phase,
		Player:         g.player,
		TotalQuestions: len(g.questions),
		Remaining:      g.remaining,
		WonAmount:      g.wonAmount,
		LastSafeAmount: g.lastSafe,
		Gift:           g.gift,
		LossReason:     g.lossReason,
	}
	if g.phase == domain.PhasePlaying {
		view := g.questions[g.index].View()
		snap.QuestionNumber = g.index + 1
		snap.Question = &view
	}
	return snap
}

func (g *Game) broadcastLocked(cue domain.Cue) {
	ev := Event{Cue: cue, Snapshot: g.snapshotLocked()}
	for ch := range g.subscribers {
		select {
		case ch <- ev:
		default:
			// drop the oldest update so a slow client never blocks the session
			select {
			case <-ch:
			default:
			}
			ch <- ev
		}
	}
}
