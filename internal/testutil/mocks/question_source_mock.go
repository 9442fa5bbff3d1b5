package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/example/lingodrill/internal/ai"
	"github.com/example/lingodrill/internal/models"
)

// MockQuestionSource is a mock implementation of ai.Source
type MockQuestionSource struct {
	mock.Mock
}

func (m *MockQuestionSource) GenerateQuestions(ctx context.Context, content string, cfg ai.GenerationConfig, count int) ([]models.Question, error) {
	args := m.Called(ctx, content, cfg, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Question), args.Error(1)
}

func (m *MockQuestionSource) GenerateReviewQuestions(ctx context.Context, progress models.WordProgress, cfg ai.GenerationConfig) ([]models.Question, error) {
	args := m.Called(ctx, progress, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Question), args.Error(1)
}

func (m *MockQuestionSource) JudgeAnswer(ctx context.Context, q models.Question, userAnswer string) (bool, string) {
	args := m.Called(ctx, q, userAnswer)
	return args.Bool(0), args.String(1)
}

func (m *MockQuestionSource) ExplainAnswer(ctx context.Context, req ai.ExplanationRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
