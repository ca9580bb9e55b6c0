package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"crorepati-quiz-service/internal/app"
	"crorepati-quiz-service/internal/domain"
	"crorepati-quiz-service/internal/prize"
	"crorepati-quiz-service/internal/question"
)

// defaultTopEntries is how many leaderboard rows the board shows by default.
const defaultTopEntries = 10

// AdminHandler exposes the authoring surface as plain JSON endpoints:
// teacher questions, prize levels, gift mappings, settings and the
// leaderboard.
type AdminHandler struct {
	repo        *question.Repository
	ladder      *prize.Ladder
	gifts       *prize.GiftResolver
	settings    prize.SettingsStore
	leaderboard app.LeaderboardStore
}

func NewAdminHandler(repo *question.Repository, ladder *prize.Ladder, gifts *prize.GiftResolver, settings prize.SettingsStore, leaderboard app.LeaderboardStore) *AdminHandler {
	return &AdminHandler{repo: repo, ladder: ladder, gifts: gifts, settings: settings, leaderboard: leaderboard}
}

// Register mounts the admin routes on mux.
func (h *AdminHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/questions", h.handleQuestions)
	mux.HandleFunc("/api/questions/", h.handleQuestionByID)
	mux.HandleFunc("/api/prizes", h.handlePrizes)
	mux.HandleFunc("/api/gifts", h.handleGifts)
	mux.HandleFunc("/api/gifts/reset", h.handleGiftsReset)
	mux.HandleFunc("/api/settings", h.handleSettings)
	mux.HandleFunc("/api/leaderboard", h.handleLeaderboard)
}

// questionView is the authoring surface's projection: the full question
// (answer included) plus its remaining lifetime. Flattened rather than
// embedded so domain.Question's custom marshalling does not swallow the
// extra field.
type questionView struct {
	ID            string                      `json:"id"`
	Text          string                      `json:"question"`
	Options       map[domain.OptionKey]string `json:"options"`
	CorrectAnswer domain.OptionKey            `json:"correctAnswer"`
	PrizeAmount   int64                       `json:"prizeAmount"`
	CreatedAt     time.Time                   `json:"createdAt"`
	TimeLimit     int                         `json:"timeLimit"`
	TimeRemaining string                      `json:"timeRemaining"`
}

func newQuestionView(q domain.Question, remaining string) questionView {
	return questionView{
		ID:            q.ID,
		Text:          q.Text,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		PrizeAmount:   q.PrizeAmount,
		CreatedAt:     q.CreatedAt,
		TimeLimit:     q.TimeLimit,
		TimeRemaining: remaining,
	}
}

type addQuestionRequest struct {
	Question      string           `json:"question"`
	OptionA       string           `json:"optionA"`
	OptionB       string           `json:"optionB"`
	OptionC       string           `json:"optionC"`
	OptionD       string           `json:"optionD"`
	CorrectAnswer domain.OptionKey `json:"correctAnswer"`
	PrizeAmount   int64            `json:"prizeAmount"`
	TimeLimit     int              `json:"timeLimit"`
}

func (h *AdminHandler) handleQuestions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		live, err := h.repo.TeacherQuestions(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		views := make([]questionView, 0, len(live))
		for _, q := range live {
			views = append(views, newQuestionView(q, h.repo.TimeRemaining(q)))
		}
		writeJSON(w, http.StatusOK, views)
	case http.MethodPost:
		var req addQuestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorPayload{Message: "invalid request body"})
			return
		}
		q, err := h.repo.Add(r.Context(), question.AddQuestionInput{
			Text: req.Question,
			Options: map[domain.OptionKey]string{
				domain.OptionA: req.OptionA,
				domain.OptionB: req.OptionB,
				domain.OptionC: req.OptionC,
				domain.OptionD: req.OptionD,
			},
			CorrectAnswer: req.CorrectAnswer,
			PrizeAmount:   req.PrizeAmount,
			TimeLimit:     req.TimeLimit,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		// amounts outside the built-in ladder get a formatted custom level
		if err := h.ladder.AddCustomLevel(r.Context(), q.PrizeAmount); err != nil {
			log.Printf("custom prize level not registered: %v", err)
		}
		writeJSON(w, http.StatusCreated, newQuestionView(q, h.repo.TimeRemaining(q)))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *AdminHandler) handleQuestionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/questions/")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorPayload{Message: "question id required"})
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addLevelRequest struct {
	Amount int64 `json:"amount"`
}

func (h *AdminHandler) handlePrizes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		levels, err := h.ladder.Levels(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, levels)
	case http.MethodPost:
		var req addLevelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorPayload{Message: "invalid request body"})
			return
		}
		if err := h.ladder.AddCustomLevel(r.Context(), req.Amount); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

type setGiftRequest struct {
	Amount int64  `json:"amount"`
	Gift   string `json:"gift"`
}

func (h *AdminHandler) handleGifts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		gifts, err := h.gifts.Gifts(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		// JSON object keys are strings
		out := make(map[string]string, len(gifts))
		for amount, gift := range gifts {
			out[strconv.FormatInt(amount, 10)] = gift
		}
		writeJSON(w, http.StatusOK, out)
	case http.MethodPost:
		var req setGiftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorPayload{Message: "invalid request body"})
			return
		}
		if err := h.gifts.SetGift(r.Context(), req.Amount, req.Gift); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *AdminHandler) handleGiftsReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := h.gifts.ResetToDefaults(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type updateSettingsRequest struct {
	DefaultTimeLimit int `json:"defaultTimeLimit"`
}

func (h *AdminHandler) handleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		settings, err := h.settings.Settings(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, settings)
	case http.MethodPut, http.MethodPost:
		var req updateSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorPayload{Message: "invalid request body"})
			return
		}
		if req.DefaultTimeLimit <= 0 {
			writeJSON(w, http.StatusBadRequest, errorPayload{Message: "defaultTimeLimit must be positive"})
			return
		}
		settings, err := h.settings.Settings(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		settings.DefaultTimeLimit = req.DefaultTimeLimit
		if err := h.settings.SaveSettings(r.Context(), settings); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, settings)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *AdminHandler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		n := defaultTopEntries
		if raw := r.URL.Query().Get("top"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				writeJSON(w, http.StatusBadRequest, errorPayload{Message: "top must be a positive integer"})
				return
			}
			n = parsed
		}
		entries, err := h.leaderboard.Top(r.Context(), n)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	case http.MethodDelete:
		if err := h.leaderboard.Clear(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrValidation) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorPayload{Message: err.Error()})
}
