package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crediscope/internal/domain"
	"crediscope/internal/extract"
	"crediscope/internal/letter"
	"crediscope/internal/port"
	"crediscope/internal/service"
	"crediscope/internal/standardize"
	"crediscope/internal/strategy"
	"crediscope/internal/violation"
	"crediscope/mocks"
)

var fixedNow = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

const sampleReport = `CREDIT REPORT
Prepared by Experian

Personal Information:
Name: John Q Consumer
Address: 123 Main Street, Springfield, IL 62704

Credit Scores:
Experian  Equifax  TransUnion
Current Score: 720
Score Range: 300 - 850

Accounts:
1. Chase Bank
Account Number: ****1234
Balance: $2,450.00
Credit Limit: $5,000
Type: Credit Card
Status: Open
Opened: 06/2015

Negative Items:
1. Midland Credit - Collection
Amount: $500
Date Reported: 03/2021
`

func newTestService(creditors *mocks.MockCreditorRepo, analyses *mocks.MockAnalysisRepo) service.AnalysisService {
	timeout := 100 * time.Millisecond
	var analysisRepo port.AnalysisRepository
	if analyses != nil {
		analysisRepo = analyses
	}

	return service.NewAnalysisService(
		extract.NewEngine(extract.WithClock(fixedClock)),
		standardize.NewResolver(creditors, timeout, time.Minute),
		violation.NewDetector(nil, violation.WithClock(fixedClock)),
		strategy.NewEngine(nil, timeout, strategy.WithClock(fixedClock)),
		letter.NewGenerator(letter.WithClock(fixedClock)),
		analysisRepo,
	)
}

func stubCreditors() *mocks.MockCreditorRepo {
	repo := new(mocks.MockCreditorRepo)
	repo.On("List", mock.Anything).Return(nil, assert.AnError).Maybe()
	repo.On("LookupByAlias", mock.Anything, mock.Anything).Return(nil, domain.ErrCreditorNotFound).Maybe()
	repo.On("IncrementUsage", mock.Anything, mock.Anything).Return(nil).Maybe()
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil).Maybe()
	return repo
}

func TestAnalysisService_ParseReport_Standardizes(t *testing.T) {
	svc := newTestService(stubCreditors(), nil)

	report := svc.ParseReport(context.Background(), sampleReport, "text")

	require.Len(t, report.Accounts, 1)
	acct := report.Accounts[0]

	// "Chase Bank" hits the built-in seed dictionary when the store is down.
	require.NotNil(t, acct.Standardized)
	assert.Equal(t, "Chase Bank", acct.Standardized.StandardizedName)

	// History is normalized to the trailing 24 months with metrics attached.
	assert.Len(t, acct.PaymentHistory, 24)
	require.NotNil(t, acct.Performance)
	assert.Equal(t, 100, acct.Performance.OnTimePercent)

	// The negative item's creditor is rewritten to its canonical name.
	require.Len(t, report.NegativeItems, 1)
	assert.Equal(t, "Midland Credit Management", report.NegativeItems[0].CreditorName)
}

func TestAnalysisService_AnalyzeReport_FullPipeline(t *testing.T) {
	analyses := new(mocks.MockAnalysisRepo)
	var persisted *domain.CreditAnalysis
	analyses.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(1).(*domain.CreditAnalysis)
	}).Return(nil).Once()

	svc := newTestService(stubCreditors(), analyses)

	result, err := svc.AnalyzeReport(context.Background(), &service.AnalyzeInput{
		Text:   sampleReport,
		Method: "text",
		UserID: "user-1",
	})

	require.NoError(t, err)
	require.NotNil(t, result.Report)
	require.NotNil(t, result.Strategy)
	assert.NotEmpty(t, result.Strategy.Recommendations)
	assert.NotEmpty(t, result.Letter)
	assert.NotEqual(t, uuid.Nil, result.AnalysisID)

	require.NotNil(t, persisted)
	assert.Equal(t, "user-1", persisted.UserID)
	assert.Equal(t, "text", persisted.Method)
	assert.NotEmpty(t, persisted.Report)
	assert.Equal(t, result.Letter, persisted.Letter)
	analyses.AssertExpectations(t)
}

func TestAnalysisService_AnalyzeReport_PersistenceFailureTolerated(t *testing.T) {
	analyses := new(mocks.MockAnalysisRepo)
	analyses.On("Create", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	svc := newTestService(stubCreditors(), analyses)

	result, err := svc.AnalyzeReport(context.Background(), &service.AnalyzeInput{
		Text: sampleReport, Method: "text", UserID: "user-1",
	})

	require.NoError(t, err, "storage failure must not fail the analysis")
	assert.Equal(t, uuid.Nil, result.AnalysisID)
	assert.NotNil(t, result.Strategy)
}

func TestAnalysisService_AnalyzeReport_EmptyText(t *testing.T) {
	analyses := new(mocks.MockAnalysisRepo)
	analyses.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc := newTestService(stubCreditors(), analyses)

	result, err := svc.AnalyzeReport(context.Background(), &service.AnalyzeInput{
		Text: "", Method: "text", UserID: "user-1",
	})

	require.NoError(t, err)
	assert.Empty(t, result.Report.Accounts)
	assert.Empty(t, result.Violations)
	assert.Empty(t, result.Strategy.Recommendations)
	assert.Empty(t, result.Letter)
}

func TestAnalysisService_GenerateStrategy_NilProfile(t *testing.T) {
	svc := newTestService(stubCreditors(), nil)

	strat, err := svc.GenerateStrategy(context.Background(), nil)

	assert.Nil(t, strat)
	assert.ErrorIs(t, err, domain.ErrNilProfile)
}

func TestAnalysisService_GetAnalysis(t *testing.T) {
	id := uuid.New()
	analyses := new(mocks.MockAnalysisRepo)
	analyses.On("GetByID", mock.Anything, id).Return(&domain.CreditAnalysis{ID: id}, nil)

	svc := newTestService(stubCreditors(), analyses)

	analysis, err := svc.GetAnalysis(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, analysis.ID)
}
