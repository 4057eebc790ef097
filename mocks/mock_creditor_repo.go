package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"crediscope/internal/domain"
)

// MockCreditorRepo is a mock implementation of port.CreditorRepository.
type MockCreditorRepo struct {
	mock.Mock
}

func (m *MockCreditorRepo) LookupByAlias(ctx context.Context, alias string) (*domain.CreditorIdentity, error) {
	args := m.Called(ctx, alias)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditorIdentity), args.Error(1)
}

func (m *MockCreditorRepo) Insert(ctx context.Context, identity *domain.CreditorIdentity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *MockCreditorRepo) IncrementUsage(ctx context.Context, standardizedName string) error {
	args := m.Called(ctx, standardizedName)
	return args.Error(0)
}

func (m *MockCreditorRepo) List(ctx context.Context) ([]domain.CreditorIdentity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditorIdentity), args.Error(1)
}
