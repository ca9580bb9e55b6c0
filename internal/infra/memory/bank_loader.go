package memory

import (
	"context"

	"crorepati-quiz-service/internal/domain"
)

// StaticBankLoader serves a fixed question bank (the embedded default bank,
// or fixture data in tests).
type StaticBankLoader struct {
	bank []domain.Question
}

func NewStaticBankLoader(bank []domain.Question) *StaticBankLoader {
	return &StaticBankLoader{bank: bank}
}

func (l *StaticBankLoader) LoadBank(_ context.Context) ([]domain.Question, error) {
	return append([]domain.Question(nil), l.bank...), nil
}
