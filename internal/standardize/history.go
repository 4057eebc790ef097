package standardize

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"time"

	"crediscope/internal/domain"
)

const (
	// History is normalized to the trailing 24 calendar months.
	historyWindow = 24
	// Entries older than this are dropped as unreliable.
	maxHistoryYears = 10

	filledGapNote       = "filled gap"
	filledGapConfidence = 50
)

var monthKeyRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidateHistory validates each supplied payment-history entry
// independently, then deterministically fills any of the trailing 24
// calendar months not already present with a synthetic current entry.
// The result is truncated to the most recent 24 months, sorted descending
// by month. Dropped or corrected entries are reported as issues.
func ValidateHistory(entries []domain.PaymentHistoryEntry, now time.Time) ([]domain.PaymentHistoryEntry, []string) {
	var issues []string
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	oldest := currentMonth.AddDate(-maxHistoryYears, 0, 0)

	byMonth := make(map[string]domain.PaymentHistoryEntry, len(entries))
	for _, e := range entries {
		if !monthKeyRe.MatchString(e.Month) {
			issues = append(issues, fmt.Sprintf("dropped entry with malformed month %q", e.Month))
			continue
		}
		month, err := time.Parse("2006-01", e.Month)
		if err != nil {
			issues = append(issues, fmt.Sprintf("dropped entry with unparseable month %q", e.Month))
			continue
		}
		if month.After(currentMonth) {
			issues = append(issues, fmt.Sprintf("dropped future month %s", e.Month))
			continue
		}
		if month.Before(oldest) {
			issues = append(issues, fmt.Sprintf("dropped month %s older than %d years", e.Month, maxHistoryYears))
			continue
		}
		if _, dup := byMonth[e.Month]; dup {
			issues = append(issues, fmt.Sprintf("dropped duplicate month %s", e.Month))
			continue
		}

		if !domain.ValidPaymentStatus(e.Status) {
			issues = append(issues, fmt.Sprintf("month %s: unknown status %q defaulted to current", e.Month, e.Status))
			e.Status = domain.PaymentStatusCurrent
		}
		if e.Amount != nil {
			if *e.Amount < 0 {
				issues = append(issues, fmt.Sprintf("month %s: negative amount dropped", e.Month))
				e.Amount = nil
			} else {
				rounded := math.Round(*e.Amount*100) / 100
				e.Amount = &rounded
			}
		}
		byMonth[e.Month] = e
	}

	// Fill gaps over the trailing window with synthetic current entries.
	result := make([]domain.PaymentHistoryEntry, 0, historyWindow)
	for i := 0; i < historyWindow; i++ {
		key := currentMonth.AddDate(0, -i, 0).Format("2006-01")
		if e, ok := byMonth[key]; ok {
			result = append(result, e)
			continue
		}
		result = append(result, domain.PaymentHistoryEntry{
			Month:      key,
			Status:     domain.PaymentStatusCurrent,
			Confidence: filledGapConfidence,
			Verified:   false,
			Note:       filledGapNote,
		})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Month > result[j].Month })
	return result, issues
}
