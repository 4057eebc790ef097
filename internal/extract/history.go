package extract

import (
	"hash/fnv"
	"math/rand"
	"time"

	"crediscope/internal/domain"
)

const (
	syntheticMonths     = 12
	syntheticConfidence = 40
	syntheticNote       = "synthesized from account narrative"

	// Chance that a historical month flips to late when the surrounding
	// text carries a lateness indicator. Coarse heuristic, not ground truth.
	lateOverrideChance = 0.25
)

// synthesizeHistory builds the 12 trailing calendar months for an account.
// Months default to current; when lateHint is set, historical months are
// probabilistically overridden to a late status using a generator seeded
// from seedKey, so identical input always yields identical output.
func synthesizeHistory(seedKey string, now time.Time, lateHint bool) []domain.PaymentHistoryEntry {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seedKey))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	entries := make([]domain.PaymentHistoryEntry, 0, syntheticMonths)
	for i := 0; i < syntheticMonths; i++ {
		month := anchor.AddDate(0, -i, 0)
		status := domain.PaymentStatusCurrent
		if lateHint && i > 0 && rng.Float64() < lateOverrideChance {
			status = domain.PaymentStatus30Late
			if rng.Float64() < 0.3 {
				status = domain.PaymentStatus60Late
			}
		}
		entries = append(entries, domain.PaymentHistoryEntry{
			Month:      month.Format("2006-01"),
			Status:     status,
			Confidence: syntheticConfidence,
			Verified:   false,
			Note:       syntheticNote,
		})
	}
	return entries
}
