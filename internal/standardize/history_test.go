package standardize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crediscope/internal/domain"
	"crediscope/internal/standardize"
)

var historyNow = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func amount(v float64) *float64 { return &v }

func TestValidateHistory_FillsTrailingWindow(t *testing.T) {
	entries := []domain.PaymentHistoryEntry{
		{Month: "2024-05", Status: domain.PaymentStatus30Late, Confidence: 90, Verified: true},
	}

	result, issues := standardize.ValidateHistory(entries, historyNow)

	require.Len(t, result, 24)
	assert.Empty(t, issues)

	// Sorted descending, anchored at the current month.
	assert.Equal(t, "2024-06", result[0].Month)
	assert.Equal(t, "2022-07", result[23].Month)
	for i := 1; i < len(result); i++ {
		assert.Less(t, result[i].Month, result[i-1].Month)
	}

	// The supplied entry survives; the rest are synthetic fills.
	assert.Equal(t, domain.PaymentStatus30Late, result[1].Status)
	assert.True(t, result[1].Verified)
	assert.Equal(t, domain.PaymentStatusCurrent, result[0].Status)
	assert.Equal(t, 50, result[0].Confidence)
	assert.False(t, result[0].Verified)
}

func TestValidateHistory_DropsInvalidEntries(t *testing.T) {
	entries := []domain.PaymentHistoryEntry{
		{Month: "garbage", Status: domain.PaymentStatusCurrent},
		{Month: "2024-13", Status: domain.PaymentStatusCurrent},
		{Month: "2031-01", Status: domain.PaymentStatusCurrent},
		{Month: "2001-01", Status: domain.PaymentStatusCurrent},
		{Month: "2024-04", Status: domain.PaymentStatusCurrent},
		{Month: "2024-04", Status: domain.PaymentStatus90Late},
	}

	result, issues := standardize.ValidateHistory(entries, historyNow)

	require.Len(t, result, 24)
	assert.Len(t, issues, 5)

	// First occurrence of the duplicated month wins.
	for _, e := range result {
		if e.Month == "2024-04" {
			assert.Equal(t, domain.PaymentStatusCurrent, e.Status)
		}
	}
}

func TestValidateHistory_DefaultsUnknownStatus(t *testing.T) {
	entries := []domain.PaymentHistoryEntry{
		{Month: "2024-05", Status: "weird_status"},
	}

	result, issues := standardize.ValidateHistory(entries, historyNow)

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "unknown status")
	assert.Equal(t, domain.PaymentStatusCurrent, result[1].Status)
}

func TestValidateHistory_AmountHandling(t *testing.T) {
	entries := []domain.PaymentHistoryEntry{
		{Month: "2024-05", Status: domain.PaymentStatusCurrent, Amount: amount(120.456)},
		{Month: "2024-04", Status: domain.PaymentStatusCurrent, Amount: amount(-10)},
	}

	result, issues := standardize.ValidateHistory(entries, historyNow)

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "negative amount")

	byMonth := make(map[string]domain.PaymentHistoryEntry)
	for _, e := range result {
		byMonth[e.Month] = e
	}
	require.NotNil(t, byMonth["2024-05"].Amount)
	assert.Equal(t, 120.46, *byMonth["2024-05"].Amount)
	assert.Nil(t, byMonth["2024-04"].Amount)
}

func TestValidateHistory_EmptyInput(t *testing.T) {
	result, issues := standardize.ValidateHistory(nil, historyNow)

	require.Len(t, result, 24)
	assert.Empty(t, issues)
	for _, e := range result {
		assert.Equal(t, domain.PaymentStatusCurrent, e.Status)
		assert.Equal(t, "filled gap", e.Note)
	}
}
