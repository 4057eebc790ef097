package extract

import (
	"regexp"
	"strings"

	"crediscope/internal/domain"
)

var publicRecordsHeaderRe = regexp.MustCompile(`(?im)^\s*public\s+records?\s*:?\s*$`)

var publicRecordSpecs = []fieldSpec{
	{
		name:   "type",
		weight: 2,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(chapter\s+(?:7|11|13)\s+bankruptcy|bankruptcy|tax\s+lien|judgment|judgement)\b`),
		},
	},
	{
		name:   "amount",
		weight: 1.5,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:amount|liability)\s*:?\s*\$?\s*([\d,]+(?:\.\d{1,2})?)`),
			regexp.MustCompile(`\$\s*([\d,]+(?:\.\d{1,2})?)`),
		},
	},
	{
		name:   "date",
		weight: 1,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:date\s+)?(?:filed|recorded|entered)\s*:?\s*(\d{1,2}/\d{1,2}/\d{4}|\d{1,2}/\d{4})`),
		},
	},
	{
		name:   "court",
		weight: 1,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?im)^\s*court\s*:?\s*(.{2,80})\s*$`),
		},
	},
	{
		name:   "status",
		weight: 0.5,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?im)^\s*status\s*:?\s*(.{2,60})\s*$`),
		},
	},
}

// extractPublicRecords parses the public-records section block by block.
func extractPublicRecords(text string) []domain.PublicRecord {
	section := sectionAfter(text, publicRecordsHeaderRe)
	if section == "" {
		return nil
	}

	var records []domain.PublicRecord
	for _, block := range splitNumberedBlocks(section) {
		values, conf := extractFields(block, publicRecordSpecs)
		recordType, ok := classifyPublicRecord(values["type"])
		if !ok {
			continue
		}
		rec := domain.PublicRecord{
			Type:       recordType,
			Court:      values["court"],
			Date:       values["date"],
			Status:     values["status"],
			Confidence: conf,
		}
		if v, ok := parseAmount(values["amount"]); ok {
			rec.Amount = v
		}
		records = append(records, rec)
	}
	return records
}

func classifyPublicRecord(matched string) (domain.PublicRecordType, bool) {
	s := strings.ToLower(matched)
	switch {
	case strings.Contains(s, "bankruptcy"):
		return domain.PublicRecordBankruptcy, true
	case strings.Contains(s, "lien"):
		return domain.PublicRecordTaxLien, true
	case strings.Contains(s, "judgment"), strings.Contains(s, "judgement"):
		return domain.PublicRecordJudgment, true
	default:
		return "", false
	}
}
