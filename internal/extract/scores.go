package extract

import (
	"math"
	"regexp"
	"strconv"

	"crediscope/internal/domain"
)

var (
	genericScoreRe = regexp.MustCompile(`(?i)(?:current|credit|fico)\s+score\s*:?\s*(\d+)`)
	scoreRangeRe   = regexp.MustCompile(`(?i)\b300\s*(?:-|–|to)\s*850\b`)

	bureauMarkerRes = map[domain.Bureau]*regexp.Regexp{
		domain.BureauExperian:   regexp.MustCompile(`(?i)\bexperian\b`),
		domain.BureauEquifax:    regexp.MustCompile(`(?i)\bequifax\b`),
		domain.BureauTransUnion: regexp.MustCompile(`(?i)\btrans\s?union\b`),
	}

	// Bureau-specific score patterns take priority over the generic rule.
	bureauScoreRes = map[domain.Bureau]*regexp.Regexp{
		domain.BureauExperian:   regexp.MustCompile(`(?i)\bexperian\b[^0-9\n]{0,40}?\b(\d{3})\b`),
		domain.BureauEquifax:    regexp.MustCompile(`(?i)\bequifax\b[^0-9\n]{0,40}?\b(\d{3})\b`),
		domain.BureauTransUnion: regexp.MustCompile(`(?i)\btrans\s?union\b[^0-9\n]{0,40}?\b(\d{3})\b`),
	}

	// Generic-score offsets approximate the usual spread between bureau
	// scoring models when only one number is printed on the report.
	bureauScoreOffsets = map[domain.Bureau]int{
		domain.BureauExperian:   0,
		domain.BureauEquifax:    -5,
		domain.BureauTransUnion: -2,
	}
)

var scoreFactorPhrases = map[string]*regexp.Regexp{
	"high credit utilization":      regexp.MustCompile(`(?i)high\s+(?:credit\s+)?utilization`),
	"recent inquiries":             regexp.MustCompile(`(?i)(?:too\s+many\s+|recent\s+)inquir`),
	"late payment history":         regexp.MustCompile(`(?i)(?:late|missed)\s+payment`),
	"derogatory marks":             regexp.MustCompile(`(?i)derogatory`),
	"short credit history":         regexp.MustCompile(`(?i)(?:short|limited)\s+credit\s+history`),
	"high balances":                regexp.MustCompile(`(?i)high\s+balance`),
	"collection accounts reported": regexp.MustCompile(`(?i)collection\s+account`),
}

// extractScores produces one CreditScore per bureau marker found in the
// text. A bureau-specific pattern wins; otherwise the generic score is used
// with a fixed per-bureau offset. Values outside [300,850] are discarded,
// never clamped.
func extractScores(text string, docQuality int) []domain.CreditScore {
	rangePresent := scoreRangeRe.MatchString(text)

	var genericScore int
	genericFound := false
	if m := genericScoreRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			genericScore = v
			genericFound = true
		}
	}

	factors := detectScoreFactors(text)

	var scores []domain.CreditScore
	for _, bureau := range domain.AllBureaus {
		if !bureauMarkerRes[bureau].MatchString(text) {
			continue
		}

		value := 0
		found := false
		if m := bureauScoreRes[bureau].FindStringSubmatch(text); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				value, found = v, true
			}
		}
		if !found && genericFound {
			value, found = genericScore+bureauScoreOffsets[bureau], true
		}
		if !found {
			continue
		}
		if value < domain.MinCreditScore || value > domain.MaxCreditScore {
			continue
		}

		// Score value carries weight 3 of an attempted 3.5 (range 0.5).
		attempted, matched := 3.5, 3.0
		if rangePresent {
			matched += 0.5
		}
		scores = append(scores, domain.CreditScore{
			Bureau:      bureau,
			Score:       value,
			ScoreRange:  "300-850",
			Factors:     factors,
			Confidence:  int(math.Round(matched / attempted * 100)),
			DataQuality: docQuality,
		})
	}
	return scores
}

func detectScoreFactors(text string) []string {
	var factors []string
	for _, phrase := range []string{
		"high credit utilization",
		"late payment history",
		"derogatory marks",
		"collection accounts reported",
		"recent inquiries",
		"high balances",
		"short credit history",
	} {
		if scoreFactorPhrases[phrase].MatchString(text) {
			factors = append(factors, phrase)
		}
	}
	return factors
}
