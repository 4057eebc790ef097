package extract

import (
	"regexp"
	"strconv"
	"strings"

	"crediscope/internal/domain"
)

var negativesHeaderRe = regexp.MustCompile(`(?im)^\s*(?:negative\s+items?|derogatory\s+(?:items?|marks?)|adverse\s+accounts?)\s*:?\s*$`)

var negativeSpecs = []fieldSpec{
	{
		name:   "creditor",
		weight: 2,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?im)^\s*(?:creditor|original\s+creditor|collection\s+agency|company)\s*:\s*(.{2,60})\s*$`),
			regexp.MustCompile(`\A\s*([A-Z][A-Za-z0-9 &.,'/-]{2,60}?)\s*(?:\n|$|[-–])`),
		},
	},
	{
		name:   "amount",
		weight: 1.5,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:amount|balance|original\s+amount)\s*:?\s*\$?\s*([\d,]+(?:\.\d{1,2})?)`),
			regexp.MustCompile(`\$\s*([\d,]+(?:\.\d{1,2})?)`),
		},
	},
	{
		name:   "date",
		weight: 1,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:date(?:\s+(?:reported|filed|of\s+delinquency))?|reported)\s*:?\s*(\d{1,2}/\d{1,2}/\d{4}|\d{1,2}/\d{4})`),
		},
	},
	{
		name:   "status",
		weight: 0.5,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?im)^\s*status\s*:?\s*(.{2,80})\s*$`),
		},
	},
}

var daysLateRe = regexp.MustCompile(`(?i)\b(\d{2,3})\s*days?\s*late\b`)

// lateDayImpact maps a reported delinquency depth to its impact score.
var lateDayImpact = map[int]int{30: 60, 60: 70, 90: 80, 120: 90}

// negativeTypeImpact gives the base impact for non-late-payment item types.
var negativeTypeImpact = map[domain.NegativeItemType]int{
	domain.NegativeCollection:   85,
	domain.NegativeChargeOff:    88,
	domain.NegativeJudgment:     88,
	domain.NegativeTaxLien:      90,
	domain.NegativeRepossession: 92,
	domain.NegativeForeclosure:  95,
	domain.NegativeBankruptcy:   99,
}

// disputeReasonsByType guarantees every item at least one dispute reason.
var disputeReasonsByType = map[domain.NegativeItemType][]string{
	domain.NegativeLatePayment:  {"Payment status is inaccurate", "Payment was made on time"},
	domain.NegativeCollection:   {"Debt is not mine", "Amount is incorrect", "Collector cannot validate the debt"},
	domain.NegativeChargeOff:    {"Balance reported after charge-off is inaccurate", "Account status is outdated"},
	domain.NegativeBankruptcy:   {"Bankruptcy details are reported inaccurately"},
	domain.NegativeTaxLien:      {"Lien has been released or satisfied"},
	domain.NegativeJudgment:     {"Judgment has been satisfied or vacated"},
	domain.NegativeForeclosure:  {"Foreclosure details are reported inaccurately"},
	domain.NegativeRepossession: {"Deficiency balance is inaccurate"},
}

// extractNegativeItems segments the negative-items section into numbered
// blocks and parses each independently.
func extractNegativeItems(text string) []domain.NegativeItem {
	section := sectionAfter(text, negativesHeaderRe)
	if section == "" {
		return nil
	}

	var items []domain.NegativeItem
	for _, block := range splitNumberedBlocks(section) {
		item, ok := parseNegativeBlock(block)
		if ok {
			items = append(items, item)
		}
	}
	return items
}

func parseNegativeBlock(block string) (domain.NegativeItem, bool) {
	itemType, ok := classifyNegativeType(block)
	if !ok {
		return domain.NegativeItem{}, false
	}

	values, conf := extractFields(block, negativeSpecs)
	item := domain.NegativeItem{
		Type:           itemType,
		CreditorName:   values["creditor"],
		Date:           values["date"],
		Status:         values["status"],
		Description:    firstLine(block),
		DisputeReasons: disputeReasonsByType[itemType],
		ImpactScore:    impactScore(itemType, block),
		Confidence:     conf,
	}
	if v, ok := parseAmount(values["amount"]); ok {
		item.Amount = v
	}
	return item, true
}

func classifyNegativeType(block string) (domain.NegativeItemType, bool) {
	s := strings.ToLower(block)
	switch {
	case strings.Contains(s, "bankruptcy"):
		return domain.NegativeBankruptcy, true
	case strings.Contains(s, "foreclosure"):
		return domain.NegativeForeclosure, true
	case strings.Contains(s, "repossession"), strings.Contains(s, "repossessed"):
		return domain.NegativeRepossession, true
	case strings.Contains(s, "tax lien"):
		return domain.NegativeTaxLien, true
	case strings.Contains(s, "judgment"), strings.Contains(s, "judgement"):
		return domain.NegativeJudgment, true
	case strings.Contains(s, "charge off"), strings.Contains(s, "charge-off"), strings.Contains(s, "charged off"):
		return domain.NegativeChargeOff, true
	case strings.Contains(s, "collection"):
		return domain.NegativeCollection, true
	case lateHintRe.MatchString(block):
		return domain.NegativeLatePayment, true
	default:
		return "", false
	}
}

func impactScore(itemType domain.NegativeItemType, block string) int {
	if itemType == domain.NegativeLatePayment {
		if m := daysLateRe.FindStringSubmatch(block); m != nil {
			if days, err := strconv.Atoi(m[1]); err == nil {
				if impact, ok := lateDayImpact[days]; ok {
					return impact
				}
				if days > 120 {
					return lateDayImpact[120]
				}
			}
		}
		return lateDayImpact[30]
	}
	return negativeTypeImpact[itemType]
}

func firstLine(block string) string {
	line := block
	if i := strings.IndexByte(block, '\n'); i >= 0 {
		line = block[:i]
	}
	line = strings.TrimSpace(line)
	if len(line) > 120 {
		line = line[:120]
	}
	return line
}
