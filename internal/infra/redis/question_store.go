package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"crorepati-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// questionsKey holds the teacher-authored collection as a hash:
// HSET quiz:teacher:questions {questionID} {json}
const questionsKey = "quiz:teacher:questions"

// QuestionStore is a Redis-backed implementation of question.TeacherStore.
type QuestionStore struct {
	client *redis.Client
}

func NewQuestionStore(client *redis.Client) *QuestionStore {
	return &QuestionStore{client: client}
}

func (s *QuestionStore) List(ctx context.Context) ([]domain.Question, error) {
	raw, err := s.client.HGetAll(ctx, questionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("load teacher questions: %w", err)
	}
	out := make([]domain.Question, 0, len(raw))
	for id, encoded := range raw {
		var q domain.Question
		if err := json.Unmarshal([]byte(encoded), &q); err != nil {
			return nil, fmt.Errorf("decode question %s: %w", id, err)
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *QuestionStore) Put(ctx context.Context, q domain.Question) error {
	encoded, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("encode question: %w", err)
	}
	if err := s.client.HSet(ctx, questionsKey, q.ID, encoded).Err(); err != nil {
		return fmt.Errorf("save question: %w", err)
	}
	return nil
}

func (s *QuestionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.HDel(ctx, questionsKey, id).Err(); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	return nil
}
