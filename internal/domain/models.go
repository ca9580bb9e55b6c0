package domain

import (
	"encoding/json"
	"time"
)

// OptionKey identifies one of the four answer options of a question.
type OptionKey string

const (
	OptionA OptionKey = "A"
	OptionB OptionKey = "B"
	OptionC OptionKey = "C"
	OptionD OptionKey = "D"
)

// OptionKeys lists the keys in display order.
var OptionKeys = []OptionKey{OptionA, OptionB, OptionC, OptionD}

// Valid reports whether the key is one of A-D.
func (k OptionKey) Valid() bool {
	switch k {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

// Question models an MCQ question with exactly one correct option key.
// CreatedAt is set only for teacher-authored questions; built-in bank
// questions carry a zero CreatedAt and never expire.
type Question struct {
	ID            string               `json:"id"`
	Text          string               `json:"question"`
	Options       map[OptionKey]string `json:"options"`
	CorrectAnswer OptionKey            `json:"correctAnswer"`
	PrizeAmount   int64                `json:"prizeAmount"`
	CreatedAt     time.Time            `json:"createdAt"`
	TimeLimit     int                  `json:"timeLimit,omitempty"` // seconds
}

// MarshalJSON drops the creation timestamp for built-in bank questions;
// omitempty never fires on a time.Time value.
func (q Question) MarshalJSON() ([]byte, error) {
	type alias Question
	out := struct {
		alias
		CreatedAt *time.Time `json:"createdAt,omitempty"`
	}{alias: alias(q)}
	if !q.CreatedAt.IsZero() {
		out.CreatedAt = &q.CreatedAt
	}
	return json.Marshal(out)
}

// TeacherAuthored reports whether the question came from the authoring
// surface rather than the built-in bank.
func (q Question) TeacherAuthored() bool {
	return !q.CreatedAt.IsZero()
}

// QuestionView is the player-facing projection of a question: everything
// needed to render and answer it, without the correct option key.
type QuestionView struct {
	ID          string               `json:"id"`
	Text        string               `json:"question"`
	Options     map[OptionKey]string `json:"options"`
	PrizeAmount int64                `json:"prizeAmount"`
	TimeLimit   int                  `json:"timeLimit,omitempty"` // seconds
}

// View strips the question down to what the player may see.
func (q Question) View() QuestionView {
	return QuestionView{
		ID:          q.ID,
		Text:        q.Text,
		Options:     q.Options,
		PrizeAmount: q.PrizeAmount,
		TimeLimit:   q.TimeLimit,
	}
}

// PrizeLevel is one rung of the prize ladder.
type PrizeLevel struct {
	Amount      int64  `json:"amount"`
	Label       string `json:"label"`
	IsMilestone bool   `json:"isMilestone"`
}

// MaxLeaderboardEntries caps the persisted leaderboard; lower-ranked
// entries beyond the cap are dropped on insert.
const MaxLeaderboardEntries = 50

// LeaderboardEntry records one completed session.
type LeaderboardEntry struct {
	ID          string    `json:"id"`
	StudentName string    `json:"studentName"`
	ClassName   string    `json:"className"`
	WonAmount   int64     `json:"wonAmount"`
	Prize       string    `json:"prize"`
	Date        time.Time `json:"date"`
}

// Settings holds the teacher-controlled cross-session configuration.
type Settings struct {
	DefaultTimeLimit   int     `json:"defaultTimeLimit"` // seconds
	CustomPrizeAmounts []int64 `json:"customPrizeAmounts"`
}

// Phase is the session state machine phase.
type Phase string

const (
	PhaseRegistering Phase = "registering"
	PhasePlaying     Phase = "playing"
	PhaseWon         Phase = "won"
	PhaseLost        Phase = "lost"
)

// LossReason distinguishes a wrong answer from a timeout for messaging;
// scoring and persistence are identical either way.
type LossReason string

const (
	LossWrongAnswer LossReason = "wrong_answer"
	LossTimeout     LossReason = "timeout"
)

// Player is the registered identity for one session.
type Player struct {
	Name      string `json:"name"`
	ClassName string `json:"className"`
}

// SessionSnapshot is the render-ready view of a session handed to the
// presentation layer on every observable change.
type SessionSnapshot struct {
	Phase          Phase         `json:"phase"`
	Player         Player        `json:"player"`
	QuestionNumber int           `json:"questionNumber"` // 1-based, 0 outside Playing
	TotalQuestions int           `json:"totalQuestions"`
	Question       *QuestionView `json:"question,omitempty"`
	Remaining      int           `json:"remaining"` // countdown seconds left
	WonAmount      int64         `json:"wonAmount"`
	LastSafeAmount int64         `json:"lastSafeAmount"`
	Gift           string        `json:"gift,omitempty"`
	LossReason     LossReason    `json:"lossReason,omitempty"`
}

// Cue is a fire-and-forget signal for the audio/notification collaborator.
type Cue string

const (
	CueQuestionStart Cue = "question_start"
	CueLockIn        Cue = "lock_in"
	CueCorrect       Cue = "correct"
	CueIncorrect     Cue = "incorrect"
	CueTickWarning   Cue = "tick_warning"
	CueWin           Cue = "win"
	CueGameOver      Cue = "game_over"
)
