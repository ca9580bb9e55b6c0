package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func sampleQuestion() Question {
	return Question{
		ID:   "teacher-1",
		Text: "પ્રશ્ન?",
		Options: map[OptionKey]string{
			OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d",
		},
		CorrectAnswer: OptionB,
		PrizeAmount:   500,
		TimeLimit:     30,
	}
}

func TestQuestionMarshalOmitsZeroCreatedAt(t *testing.T) {
	bank := sampleQuestion()
	encoded, err := json.Marshal(bank)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(encoded), "createdAt") {
		t.Fatalf("bank question must not carry a creation timestamp: %s", encoded)
	}

	authored := bank
	authored.CreatedAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	encoded, err = json.Marshal(authored)
	if err != nil {
		t.Fatalf("marshal authored: %v", err)
	}
	if !strings.Contains(string(encoded), `"createdAt":"2026-03-01T10:00:00Z"`) {
		t.Fatalf("authored question must carry its creation timestamp: %s", encoded)
	}

	var decoded Question
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.CreatedAt.Equal(authored.CreatedAt) || !decoded.TeacherAuthored() {
		t.Fatalf("timestamp did not survive the round trip: %+v", decoded)
	}
}

func TestQuestionViewHidesCorrectAnswer(t *testing.T) {
	view := sampleQuestion().View()
	if view.ID != "teacher-1" || view.PrizeAmount != 500 || view.Options[OptionD] != "d" {
		t.Fatalf("view lost render data: %+v", view)
	}

	encoded, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal view: %v", err)
	}
	if strings.Contains(string(encoded), "correctAnswer") {
		t.Fatalf("player view must not expose the correct answer: %s", encoded)
	}
}
