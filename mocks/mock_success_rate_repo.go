package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"crediscope/internal/domain"
)

// MockSuccessRateRepo is a mock implementation of port.SuccessRateRepository.
type MockSuccessRateRepo struct {
	mock.Mock
}

func (m *MockSuccessRateRepo) LookupRate(ctx context.Context, disputeType domain.NegativeItemType) (float64, error) {
	args := m.Called(ctx, disputeType)
	return args.Get(0).(float64), args.Error(1)
}
