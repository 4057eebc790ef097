package strategy_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crediscope/internal/domain"
	"crediscope/internal/strategy"
	"crediscope/mocks"
)

var fixedNow = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestEngine(rates *mocks.MockSuccessRateRepo) *strategy.Engine {
	if rates == nil {
		return strategy.NewEngine(nil, 100*time.Millisecond, strategy.WithClock(fixedClock))
	}
	return strategy.NewEngine(rates, 100*time.Millisecond, strategy.WithClock(fixedClock))
}

func profileWith(items ...domain.NegativeItem) *domain.ParsedCreditReport {
	return &domain.ParsedCreditReport{
		Scores: []domain.CreditScore{
			{Bureau: domain.BureauExperian, Score: 650},
			{Bureau: domain.BureauEquifax, Score: 640},
		},
		NegativeItems: items,
	}
}

func TestEngine_Generate_NilProfile(t *testing.T) {
	e := newTestEngine(nil)
	strat, err := e.Generate(context.Background(), nil)

	assert.Nil(t, strat)
	assert.ErrorIs(t, err, domain.ErrNilProfile)
}

func TestEngine_Generate_NoNegativeItems(t *testing.T) {
	e := newTestEngine(nil)
	strat, err := e.Generate(context.Background(), profileWith())

	require.NoError(t, err)
	assert.Empty(t, strat.Recommendations)
	assert.Empty(t, strat.Timeline)
	assert.Equal(t, 0, strat.Projection.ExpectedImprovement)
	assert.NotEmpty(t, strat.Summary)
}

func TestEngine_Generate_ProbabilitiesInRange(t *testing.T) {
	items := []domain.NegativeItem{
		{Type: domain.NegativeLatePayment, CreditorName: "A", Amount: 50, Date: "01/2024", ImpactScore: 60},
		{Type: domain.NegativeCollection, CreditorName: "B", Amount: 450, Date: "03/2021", ImpactScore: 85},
		{Type: domain.NegativeChargeOff, CreditorName: "C", Amount: 9000, Date: "05/2016", ImpactScore: 88},
		{Type: domain.NegativeBankruptcy, CreditorName: "D", Amount: 0, Date: "01/2015", ImpactScore: 99},
		{Type: domain.NegativeTaxLien, CreditorName: "E", Amount: 25000, Date: "", ImpactScore: 90},
	}

	e := newTestEngine(nil)
	strat, err := e.Generate(context.Background(), profileWith(items...))

	require.NoError(t, err)
	require.Len(t, strat.Recommendations, len(items))
	for _, rec := range strat.Recommendations {
		assert.GreaterOrEqual(t, rec.SuccessProbability, 0.0)
		assert.LessOrEqual(t, rec.SuccessProbability, 1.0)
		assert.GreaterOrEqual(t, rec.PriorityScore, 0.0)
	}
}

func TestEngine_Generate_OlderItemsMoreLikelyToSucceed(t *testing.T) {
	old := domain.NegativeItem{Type: domain.NegativeCollection, CreditorName: "Old", Amount: 1000, Date: "01/2016", ImpactScore: 85}
	fresh := domain.NegativeItem{Type: domain.NegativeCollection, CreditorName: "New", Amount: 1000, Date: "01/2024", ImpactScore: 85}

	e := newTestEngine(nil)
	strat, err := e.Generate(context.Background(), profileWith(old, fresh))

	require.NoError(t, err)
	byName := map[string]domain.DisputeRecommendation{}
	for _, rec := range strat.Recommendations {
		byName[rec.Item.CreditorName] = rec
	}
	assert.Greater(t, byName["Old"].SuccessProbability, byName["New"].SuccessProbability)
}

func TestEngine_Generate_PriorityOrdering(t *testing.T) {
	var items []domain.NegativeItem
	for i := 0; i < 12; i++ {
		items = append(items, domain.NegativeItem{
			Type:         domain.NegativeCollection,
			CreditorName: fmt.Sprintf("Creditor %d", i),
			Amount:       float64(100 * (i + 1)),
			Date:         "06/2020",
			ImpactScore:  60 + 3*i,
		})
	}

	e := newTestEngine(nil)
	strat, err := e.Generate(context.Background(), profileWith(items...))

	require.NoError(t, err)
	recs := strat.Recommendations
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].PriorityScore, recs[i].PriorityScore,
			"recommendations must be ordered by non-increasing priority")
	}
}

func TestEngine_Generate_Timeline(t *testing.T) {
	var items []domain.NegativeItem
	for i := 0; i < 12; i++ {
		items = append(items, domain.NegativeItem{
			Type:         domain.NegativeCollection,
			CreditorName: fmt.Sprintf("Creditor %d", i),
			Amount:       float64(100 * (i + 1)),
			Date:         "06/2020",
			ImpactScore:  60 + 3*i,
		})
	}

	e := newTestEngine(nil)
	strat, err := e.Generate(context.Background(), profileWith(items...))
	require.NoError(t, err)

	require.Len(t, strat.Timeline, 3)
	for _, phase := range strat.Timeline {
		assert.LessOrEqual(t, len(phase.Items), 3)
		assert.NotEmpty(t, phase.Timeframe)
		assert.NotEmpty(t, phase.Rationale)
	}

	avgImpact := func(phase domain.DisputePhase) float64 {
		var sum float64
		for _, item := range phase.Items {
			sum += float64(item.Item.ImpactScore)
		}
		return sum / float64(len(phase.Items))
	}
	assert.GreaterOrEqual(t, avgImpact(strat.Timeline[0]), avgImpact(strat.Timeline[1]))
	assert.GreaterOrEqual(t, avgImpact(strat.Timeline[1]), avgImpact(strat.Timeline[2]))

	// Nine items scheduled, the rest left at phase 0.
	var scheduled, unscheduled int
	for _, rec := range strat.Recommendations {
		if rec.Phase > 0 {
			scheduled++
		} else {
			unscheduled++
		}
	}
	assert.Equal(t, 9, scheduled)
	assert.Equal(t, 3, unscheduled)
}

func TestEngine_Generate_Projection(t *testing.T) {
	var items []domain.NegativeItem
	for i := 0; i < 10; i++ {
		items = append(items, domain.NegativeItem{
			Type:         domain.NegativeChargeOff,
			CreditorName: fmt.Sprintf("Creditor %d", i),
			Amount:       5000,
			Date:         "06/2018",
			ImpactScore:  88,
		})
	}

	e := newTestEngine(nil)
	strat, err := e.Generate(context.Background(), profileWith(items...))
	require.NoError(t, err)

	p := strat.Projection
	assert.LessOrEqual(t, p.ExpectedImprovement, 150)
	assert.LessOrEqual(t, p.MaxImprovement, 180)
	assert.LessOrEqual(t, p.MinImprovement, p.ExpectedImprovement)
	assert.GreaterOrEqual(t, p.MaxImprovement, p.ExpectedImprovement)
	assert.Greater(t, p.Confidence, 0)
	assert.LessOrEqual(t, p.Confidence, 95)

	// Improvement can never push the average score past the ceiling.
	avg := (650 + 640) / 2
	assert.LessOrEqual(t, p.MaxImprovement, domain.MaxCreditScore-avg)
}

func TestEngine_Generate_MissingScoresUsesBaseline(t *testing.T) {
	profile := &domain.ParsedCreditReport{
		NegativeItems: []domain.NegativeItem{
			{Type: domain.NegativeCollection, CreditorName: "X", Amount: 400, Date: "03/2020", ImpactScore: 85},
		},
	}

	e := newTestEngine(nil)
	strat, err := e.Generate(context.Background(), profile)

	require.NoError(t, err)
	// Baseline 650 leaves 200 points of headroom.
	assert.LessOrEqual(t, strat.Projection.MaxImprovement, 180)
	assert.GreaterOrEqual(t, strat.Projection.ExpectedImprovement, 0)
}

func TestEngine_Generate_UsesPersistedBaseRate(t *testing.T) {
	rates := new(mocks.MockSuccessRateRepo)
	rates.On("LookupRate", mock.Anything, domain.NegativeLatePayment).Return(0.95, nil)

	item := domain.NegativeItem{Type: domain.NegativeLatePayment, CreditorName: "X", Amount: 1000, Date: "01/2024", ImpactScore: 60}

	e := newTestEngine(rates)
	strat, err := e.Generate(context.Background(), profileWith(item))

	require.NoError(t, err)
	require.Len(t, strat.Recommendations, 1)
	assert.InDelta(t, 0.95, strat.Recommendations[0].SuccessProbability, 0.001)
	rates.AssertExpectations(t)
}

func TestEngine_Generate_StoreFailureFallsBackToBuiltin(t *testing.T) {
	rates := new(mocks.MockSuccessRateRepo)
	rates.On("LookupRate", mock.Anything, mock.Anything).Return(0.0, assert.AnError)

	item := domain.NegativeItem{Type: domain.NegativeCollection, CreditorName: "X", Amount: 1000, Date: "01/2024", ImpactScore: 85}

	e := newTestEngine(rates)
	strat, err := e.Generate(context.Background(), profileWith(item))

	require.NoError(t, err, "store failure must not fail strategy generation")
	require.Len(t, strat.Recommendations, 1)
	assert.InDelta(t, 0.58, strat.Recommendations[0].SuccessProbability, 0.001)
}

func TestEngine_Generate_LegalBasisAlwaysPresent(t *testing.T) {
	items := []domain.NegativeItem{
		{Type: domain.NegativeLatePayment, CreditorName: "A", Date: "01/2023", ImpactScore: 60},
		{Type: domain.NegativeBankruptcy, CreditorName: "B", Date: "01/2020", ImpactScore: 99},
		{Type: domain.NegativeItemType("mystery"), CreditorName: "C", Date: "01/2022", ImpactScore: 50},
	}

	e := newTestEngine(nil)
	strat, err := e.Generate(context.Background(), profileWith(items...))

	require.NoError(t, err)
	for _, rec := range strat.Recommendations {
		assert.NotEmpty(t, rec.Legal.PrimaryLaw, "item %s", rec.Item.CreditorName)
		assert.NotEmpty(t, rec.Legal.Sections)
	}
}
