package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"crediscope/internal/domain"
	"crediscope/internal/service"
)

// MockAnalysisService is a mock implementation of service.AnalysisService.
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) ParseReport(ctx context.Context, text, method string) *domain.ParsedCreditReport {
	args := m.Called(ctx, text, method)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.ParsedCreditReport)
}

func (m *MockAnalysisService) GenerateStrategy(ctx context.Context, profile *domain.ParsedCreditReport) (*domain.DisputeStrategy, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisputeStrategy), args.Error(1)
}

func (m *MockAnalysisService) AnalyzeReport(ctx context.Context, input *service.AnalyzeInput) (*service.AnalysisResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnalysisResult), args.Error(1)
}

func (m *MockAnalysisService) GetAnalysis(ctx context.Context, id uuid.UUID) (*domain.CreditAnalysis, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditAnalysis), args.Error(1)
}

func (m *MockAnalysisService) ListAnalyses(ctx context.Context, userID string, offset, limit int) ([]domain.CreditAnalysis, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CreditAnalysis), args.Int(1), args.Error(2)
}
