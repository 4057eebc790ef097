package extract

import (
	"regexp"
	"strings"

	"crediscope/internal/domain"
)

var (
	inquiriesHeaderRe = regexp.MustCompile(`(?im)^\s*(?:credit\s+)?inquiries\s*:?\s*$`)
	inquiryLineRe     = regexp.MustCompile(`(?m)^\s*(?:\d+[.)]\s*)?([A-Za-z][A-Za-z0-9 &.,'/-]{1,50}?)\s*[-–—]\s*(\d{1,2}/\d{1,2}/\d{4})(?:\s*[-–—]\s*(.{2,60}))?\s*$`)
)

// DefaultSoftInquiryVocabulary matches creditor names and contexts that
// indicate a soft pull. Hand-curated; swappable via engine options.
var DefaultSoftInquiryVocabulary = []string{
	"credit karma",
	"credit monitoring",
	"monitoring",
	"account review",
	"promotional",
	"prequalified",
	"pre-qualified",
	"preapproved",
	"pre-approved",
	"insurance",
	"consumer disclosure",
}

// extractInquiries parses the inquiries section line by line. An inquiry is
// soft when its creditor or purpose matches the soft vocabulary; otherwise
// it defaults to hard.
func extractInquiries(text string, softVocab []string) []domain.Inquiry {
	section := sectionAfter(text, inquiriesHeaderRe)
	if section == "" {
		return nil
	}

	var inquiries []domain.Inquiry
	for _, m := range inquiryLineRe.FindAllStringSubmatch(section, -1) {
		name := strings.TrimSpace(m[1])
		purpose := strings.TrimSpace(m[3])

		inquiryType := domain.InquiryHard
		if matchesVocabulary(name, softVocab) || matchesVocabulary(purpose, softVocab) {
			inquiryType = domain.InquirySoft
		}

		// Creditor carries weight 2 of 3; the date the remaining 1.
		conf := 67
		if m[2] != "" {
			conf = 100
		}
		inquiries = append(inquiries, domain.Inquiry{
			CreditorName: name,
			Date:         m[2],
			Type:         inquiryType,
			Purpose:      purpose,
			Bureau:       firstBureauIn(section),
			Confidence:   conf,
		})
	}
	return inquiries
}

func matchesVocabulary(s string, vocab []string) bool {
	if s == "" {
		return false
	}
	lower := strings.ToLower(s)
	for _, term := range vocab {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func firstBureauIn(s string) domain.Bureau {
	for _, b := range domain.AllBureaus {
		if bureauMarkerRes[b].MatchString(s) {
			return b
		}
	}
	return ""
}
