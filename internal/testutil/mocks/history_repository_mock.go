package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/example/lingodrill/internal/models"
)

// MockHistoryRepository is a mock implementation of repository.HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) AppendPractice(ctx context.Context, rec models.PracticeRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockHistoryRepository) AppendQuestion(ctx context.Context, rec models.QuestionRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockHistoryRepository) QuestionsForPractice(ctx context.Context, practiceID string) ([]models.QuestionRecord, error) {
	args := m.Called(ctx, practiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuestionRecord), args.Error(1)
}

func (m *MockHistoryRepository) RecentAccuracies(ctx context.Context, language string, limit int) ([]float64, error) {
	args := m.Called(ctx, language, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockHistoryRepository) UsedArticles(ctx context.Context) (map[string]bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}
