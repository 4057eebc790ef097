package standardize

import (
	"math"
	"sort"

	"crediscope/internal/domain"
)

const trendWindow = 6

// CalculatePerformance derives payment-performance metrics from a validated
// history. An empty history scores as clean.
func CalculatePerformance(entries []domain.PaymentHistoryEntry) domain.PaymentPerformance {
	if len(entries) == 0 {
		return domain.PaymentPerformance{
			OnTimePercent: 100,
			WorstStatus:   domain.PaymentStatusCurrent,
			Trend:         domain.TrendStable,
			RiskScore:     0,
		}
	}

	sorted := make([]domain.PaymentHistoryEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Month > sorted[j].Month })

	var late int
	worst := domain.PaymentStatusCurrent
	for _, e := range sorted {
		if e.Status.IsLate() {
			late++
		}
		if domain.PaymentSeverity[e.Status] > domain.PaymentSeverity[worst] {
			worst = e.Status
		}
	}

	total := len(sorted)
	onTime := int(math.Round(float64(total-late) / float64(total) * 100))

	lateRatio := float64(late) / float64(total)
	risk := int(math.Round(lateRatio*100 + float64(domain.PaymentSeverity[worst])*10))
	if risk > 100 {
		risk = 100
	}

	return domain.PaymentPerformance{
		OnTimePercent: onTime,
		WorstStatus:   worst,
		Trend:         trend(sorted),
		RiskScore:     risk,
	}
}

// trend compares late counts in the most recent six months against the
// prior six.
func trend(sortedDesc []domain.PaymentHistoryEntry) domain.PaymentTrend {
	recent := lateCount(sortedDesc, 0, trendWindow)
	prior := lateCount(sortedDesc, trendWindow, 2*trendWindow)
	switch {
	case recent < prior:
		return domain.TrendImproving
	case recent > prior:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

func lateCount(entries []domain.PaymentHistoryEntry, from, to int) int {
	var n int
	for i := from; i < to && i < len(entries); i++ {
		if entries[i].Status.IsLate() {
			n++
		}
	}
	return n
}
