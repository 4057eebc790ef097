package strategy

import "crediscope/internal/domain"

const (
	maxPhases        = 3
	maxItemsPerPhase = 3
)

var phaseTimeframes = [maxPhases]string{"Days 1-30", "Days 31-60", "Days 61-90"}

var phaseRationales = [maxPhases]string{
	"Highest-priority items: the strongest combination of score impact and removal likelihood.",
	"Second round, submitted once initial investigations conclude.",
	"Remaining scheduled items, escalated with results from earlier rounds.",
}

// buildTimeline partitions ranked recommendations into up to three phases of
// at most three items each, filled in priority order. Filling in rank order
// guarantees phase-average impact never increases from one phase to the
// next. Items beyond the ninth stay unscheduled (phase 0).
func buildTimeline(recs []domain.DisputeRecommendation) []domain.DisputePhase {
	var phases []domain.DisputePhase
	for p := 0; p < maxPhases; p++ {
		start := p * maxItemsPerPhase
		if start >= len(recs) {
			break
		}
		end := start + maxItemsPerPhase
		if end > len(recs) {
			end = len(recs)
		}

		phase := domain.DisputePhase{
			Number:    p + 1,
			Timeframe: phaseTimeframes[p],
			Rationale: phaseRationales[p],
		}
		for i := start; i < end; i++ {
			recs[i].Phase = p + 1
			phase.Items = append(phase.Items, recs[i])
		}
		phases = append(phases, phase)
	}
	return phases
}
