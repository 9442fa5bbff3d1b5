package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/example/lingodrill/internal/models"
)

// MockProfileRepository is a mock implementation of repository.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Get(ctx context.Context) (*models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Save(ctx context.Context, p models.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
