// Package strategy turns a standardized credit profile into a prioritized,
// legally grounded dispute plan: per-item success probabilities, a ranked
// recommendation list, a three-phase submission timeline, and a projected
// score-improvement range.
package strategy

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"crediscope/internal/domain"
	"crediscope/internal/port"
)

// Score improvements are capped well below the theoretical ceiling; nobody
// gains 200 points from disputes alone.
const (
	expectedCap = 150
	maximumCap  = 180

	defaultBaselineScore = 650
)

// Engine computes dispute strategies. Safe for concurrent use.
type Engine struct {
	rates   port.SuccessRateRepository
	legal   map[domain.NegativeItemType]domain.LegalBasis
	timeout time.Duration
	clock   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLegalTable swaps the legal-basis lookup table.
func WithLegalTable(table map[domain.NegativeItemType]domain.LegalBasis) Option {
	return func(e *Engine) { e.legal = table }
}

// WithClock fixes the engine's notion of "now".
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// NewEngine creates a strategy engine. rates may be nil, in which case the
// built-in base rates are used; timeout bounds every store lookup.
func NewEngine(rates port.SuccessRateRepository, timeout time.Duration, opts ...Option) *Engine {
	e := &Engine{
		rates:   rates,
		legal:   legalBases,
		timeout: timeout,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate builds the full dispute strategy for a profile. It never fails
// on an empty negative-item list or missing scores: the former yields a
// no-action strategy, the latter falls back to baseline scores.
func (e *Engine) Generate(ctx context.Context, profile *domain.ParsedCreditReport) (*domain.DisputeStrategy, error) {
	if profile == nil {
		return nil, domain.ErrNilProfile
	}
	now := e.clock().UTC()

	if len(profile.NegativeItems) == 0 {
		return &domain.DisputeStrategy{
			Recommendations: []domain.DisputeRecommendation{},
			Timeline:        []domain.DisputePhase{},
			Summary:         "No negative items were found on this profile; no dispute action is needed.",
		}, nil
	}

	recs := make([]domain.DisputeRecommendation, 0, len(profile.NegativeItems))
	for i := range profile.NegativeItems {
		item := profile.NegativeItems[i]
		prob := e.successProbability(ctx, &item, now)
		recs = append(recs, domain.DisputeRecommendation{
			Item:               item,
			SuccessProbability: prob,
			PriorityScore:      float64(item.ImpactScore) * prob,
			Legal:              basisFor(item.Type, e.legal),
			ExpectedImpact:     int(math.Round(float64(item.ImpactScore) * prob * 0.4)),
		})
	}

	sortRecommendations(recs, now)
	timeline := buildTimeline(recs)
	projection := e.project(recs, profile.Scores)

	return &domain.DisputeStrategy{
		Recommendations: recs,
		Timeline:        timeline,
		Projection:      projection,
		Summary: fmt.Sprintf(
			"%d negative items analyzed; %d scheduled across %d dispute phases with a projected improvement of %d-%d points.",
			len(recs), scheduledCount(recs), len(timeline),
			projection.MinImprovement, projection.MaxImprovement,
		),
	}, nil
}

// sortRecommendations ranks by priority score descending; ties break toward
// larger amounts, then more recent dates.
func sortRecommendations(recs []domain.DisputeRecommendation, now time.Time) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].PriorityScore != recs[j].PriorityScore {
			return recs[i].PriorityScore > recs[j].PriorityScore
		}
		if recs[i].Item.Amount != recs[j].Item.Amount {
			return recs[i].Item.Amount > recs[j].Item.Amount
		}
		return recs[i].Item.AgeYears(now) < recs[j].Item.AgeYears(now)
	})
}

// project derives the expected/likely/worst-case improvement band from the
// priority mass of all items, bounded by the headroom above the consumer's
// current scores.
func (e *Engine) project(recs []domain.DisputeRecommendation, scores []domain.CreditScore) domain.OutcomeProjection {
	var raw float64
	var strong int
	for _, r := range recs {
		raw += r.PriorityScore
		if strongLegalTypes[r.Item.Type] {
			strong++
		}
	}

	baseline := defaultBaselineScore
	if len(scores) > 0 {
		sum := 0
		for _, s := range scores {
			sum += s.Score
		}
		baseline = sum / len(scores)
	}
	headroom := domain.MaxCreditScore - baseline

	expected := int(math.Round(raw * 0.5))
	if expected > expectedCap {
		expected = expectedCap
	}
	if expected > headroom {
		expected = headroom
	}

	minImp := expected / 2
	maxImp := int(math.Round(float64(expected) * 1.5))
	if maxImp > maximumCap {
		maxImp = maximumCap
	}
	if maxImp > headroom {
		maxImp = headroom
	}
	if maxImp < expected {
		maxImp = expected
	}

	confidence := 0
	if len(recs) > 0 {
		confidence = 40 + int(math.Round(55*float64(strong)/float64(len(recs))))
		if confidence > 95 {
			confidence = 95
		}
	}

	return domain.OutcomeProjection{
		ExpectedImprovement: expected,
		MinImprovement:      minImp,
		MaxImprovement:      maxImp,
		Confidence:          confidence,
	}
}

func scheduledCount(recs []domain.DisputeRecommendation) int {
	var n int
	for _, r := range recs {
		if r.Phase > 0 {
			n++
		}
	}
	return n
}
