package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/example/lingodrill/internal/models"
)

// MockWordProgressRepository is a mock implementation of repository.WordProgressRepository
type MockWordProgressRepository struct {
	mock.Mock
}

func (m *MockWordProgressRepository) Get(ctx context.Context, word, language string) (*models.WordProgress, error) {
	args := m.Called(ctx, word, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WordProgress), args.Error(1)
}

func (m *MockWordProgressRepository) Upsert(ctx context.Context, p models.WordProgress) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockWordProgressRepository) ListDue(ctx context.Context, language string, now time.Time, limit int) ([]models.WordProgress, error) {
	args := m.Called(ctx, language, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WordProgress), args.Error(1)
}

func (m *MockWordProgressRepository) AggregateStats(ctx context.Context, language string) (*models.MasteryStats, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MasteryStats), args.Error(1)
}

func (m *MockWordProgressRepository) List(ctx context.Context) ([]models.WordProgress, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WordProgress), args.Error(1)
}

func (m *MockWordProgressRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
