package standardize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crediscope/internal/domain"
	"crediscope/internal/standardize"
)

func entryRun(statuses ...domain.PaymentStatus) []domain.PaymentHistoryEntry {
	// statuses are given most-recent first, anchored at 2024-06.
	months := []string{
		"2024-06", "2024-05", "2024-04", "2024-03", "2024-02", "2024-01",
		"2023-12", "2023-11", "2023-10", "2023-09", "2023-08", "2023-07",
	}
	entries := make([]domain.PaymentHistoryEntry, 0, len(statuses))
	for i, s := range statuses {
		entries = append(entries, domain.PaymentHistoryEntry{Month: months[i], Status: s})
	}
	return entries
}

func TestCalculatePerformance_EmptyHistory(t *testing.T) {
	perf := standardize.CalculatePerformance(nil)

	assert.Equal(t, 100, perf.OnTimePercent)
	assert.Equal(t, domain.PaymentStatusCurrent, perf.WorstStatus)
	assert.Equal(t, domain.TrendStable, perf.Trend)
	assert.Equal(t, 0, perf.RiskScore)
}

func TestCalculatePerformance_CleanHistory(t *testing.T) {
	perf := standardize.CalculatePerformance(entryRun(
		domain.PaymentStatusCurrent, domain.PaymentStatusCurrent, domain.PaymentStatusCurrent,
		domain.PaymentStatusCurrent, domain.PaymentStatusCurrent, domain.PaymentStatusCurrent,
	))

	assert.Equal(t, 100, perf.OnTimePercent)
	assert.Equal(t, domain.PaymentStatusCurrent, perf.WorstStatus)
	assert.Equal(t, 0, perf.RiskScore)
}

func TestCalculatePerformance_LatePayments(t *testing.T) {
	// 3 late of 12; worst is 90 days (severity 3).
	perf := standardize.CalculatePerformance(entryRun(
		domain.PaymentStatus90Late, domain.PaymentStatus30Late, domain.PaymentStatusCurrent,
		domain.PaymentStatus30Late, domain.PaymentStatusCurrent, domain.PaymentStatusCurrent,
		domain.PaymentStatusCurrent, domain.PaymentStatusCurrent, domain.PaymentStatusCurrent,
		domain.PaymentStatusCurrent, domain.PaymentStatusCurrent, domain.PaymentStatusCurrent,
	))

	assert.Equal(t, 75, perf.OnTimePercent)
	assert.Equal(t, domain.PaymentStatus90Late, perf.WorstStatus)
	// round(3/12*100) + 3*10 = 25 + 30
	assert.Equal(t, 55, perf.RiskScore)
}

func TestCalculatePerformance_RiskScoreCapped(t *testing.T) {
	statuses := make([]domain.PaymentStatus, 12)
	for i := range statuses {
		statuses[i] = domain.PaymentStatusChargeOff
	}
	perf := standardize.CalculatePerformance(entryRun(statuses...))

	assert.Equal(t, 0, perf.OnTimePercent)
	assert.Equal(t, 100, perf.RiskScore)
}

func TestCalculatePerformance_Trend(t *testing.T) {
	t.Run("improving", func(t *testing.T) {
		// Recent six months clean, prior six months late.
		perf := standardize.CalculatePerformance(entryRun(
			domain.PaymentStatusCurrent, domain.PaymentStatusCurrent, domain.PaymentStatusCurrent,
			domain.PaymentStatusCurrent, domain.PaymentStatusCurrent, domain.PaymentStatusCurrent,
			domain.PaymentStatus30Late, domain.PaymentStatus30Late, domain.PaymentStatusCurrent,
			domain.PaymentStatusCurrent, domain.PaymentStatusCurrent, domain.PaymentStatusCurrent,
		))
		assert.Equal(t, domain.TrendImproving, perf.Trend)
	})

	t.Run("declining", func(t *testing.T) {
		perf := standardize.CalculatePerformance(entryRun(
			domain.PaymentStatus30Late, domain.PaymentStatus60Late, domain.PaymentStatusCurrent,
			domain.PaymentStatusCurrent, domain.PaymentStatusCurrent, domain.PaymentStatusCurrent,
			domain.PaymentStatusCurrent, domain.PaymentStatusCurrent, domain.PaymentStatusCurrent,
			domain.PaymentStatusCurrent, domain.PaymentStatusCurrent, domain.PaymentStatusCurrent,
		))
		assert.Equal(t, domain.TrendDeclining, perf.Trend)
	})

	t.Run("stable", func(t *testing.T) {
		perf := standardize.CalculatePerformance(entryRun(
			domain.PaymentStatus30Late, domain.PaymentStatusCurrent, domain.PaymentStatusCurrent,
			domain.PaymentStatusCurrent, domain.PaymentStatusCurrent, domain.PaymentStatusCurrent,
			domain.PaymentStatus30Late, domain.PaymentStatusCurrent, domain.PaymentStatusCurrent,
			domain.PaymentStatusCurrent, domain.PaymentStatusCurrent, domain.PaymentStatusCurrent,
		))
		assert.Equal(t, domain.TrendStable, perf.Trend)
	})
}
