package strategy

import (
	"context"
	"log"
	"time"

	"crediscope/internal/domain"
)

// builtinSuccessRates are the fallback base rates when the external store
// has no row or is unreachable. The ordering reflects typical bureau
// investigation outcomes: late payments > collections > charge-offs.
var builtinSuccessRates = map[domain.NegativeItemType]float64{
	domain.NegativeLatePayment:  0.72,
	domain.NegativeCollection:   0.58,
	domain.NegativeChargeOff:    0.45,
	domain.NegativeRepossession: 0.40,
	domain.NegativeTaxLien:      0.35,
	domain.NegativeJudgment:     0.30,
	domain.NegativeForeclosure:  0.28,
	domain.NegativeBankruptcy:   0.25,
}

// successProbability models the chance that disputing item leads to removal
// or correction: a persisted per-type base rate adjusted for item age (older
// items carry staler, harder-to-verify data and sit nearer removal
// eligibility) and amount (smaller debts are rarely contested). Clamped to
// [0,1].
func (e *Engine) successProbability(ctx context.Context, item *domain.NegativeItem, now time.Time) float64 {
	p := e.baseRate(ctx, item.Type)

	switch age := item.AgeYears(now); {
	case age >= 7:
		p += 0.15
	case age >= 4:
		p += 0.10
	case age >= 2:
		p += 0.05
	}

	switch {
	case item.Amount > 0 && item.Amount < 100:
		p += 0.10
	case item.Amount > 0 && item.Amount < 500:
		p += 0.05
	case item.Amount > 5000:
		p -= 0.05
	}

	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}

func (e *Engine) baseRate(ctx context.Context, t domain.NegativeItemType) float64 {
	if e.rates != nil {
		lctx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()
		rate, err := e.rates.LookupRate(lctx, t)
		if err == nil && rate >= 0 && rate <= 1 {
			return rate
		}
		if err != nil && err != domain.ErrNotFound {
			log.Printf("strategy.Engine: success-rate lookup failed for %s, using builtin: %v", t, err)
		}
	}
	if rate, ok := builtinSuccessRates[t]; ok {
		return rate
	}
	return 0.35
}
