package extract

import (
	"regexp"

	"crediscope/internal/domain"
)

var personalSpecs = []fieldSpec{
	{
		name:   "name",
		weight: 3,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?im)^\s*(?:consumer\s+)?name\s*:\s*([A-Za-z][A-Za-z .,'-]{2,60})\s*$`),
			regexp.MustCompile(`(?i)(?:prepared\s+for|report\s+for)\s*:?\s*([A-Za-z][A-Za-z .'-]{2,60})`),
		},
	},
	{
		name:   "address",
		weight: 2,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?im)^\s*(?:current\s+|mailing\s+)?address\s*:\s*(.{5,120})\s*$`),
			regexp.MustCompile(`(?im)^\s*(\d+\s+[A-Za-z0-9 .'-]+(?:St|Street|Ave|Avenue|Rd|Road|Dr|Drive|Blvd|Boulevard|Ln|Lane|Ct|Court|Way)\b[^,\n]*(?:,\s*[A-Za-z .]+)?(?:,\s*[A-Z]{2}\s+\d{5}(?:-\d{4})?)?)\s*$`),
		},
	},
	{
		name:   "ssn",
		weight: 2,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:ssn|social\s+security(?:\s+number)?)\s*:?[^\d*Xx]{0,10}((?:\d{3}|[*X]{3})-(?:\d{2}|[*X]{2})-\d{4})`),
			regexp.MustCompile(`\b(\d{3}-\d{2}-\d{4})\b`),
		},
	},
	{
		name:   "dob",
		weight: 1.5,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:date\s+of\s+birth|dob|born)\s*:?\s*(\d{1,2}/\d{1,2}/\d{4})`),
		},
	},
	{
		name:   "phone",
		weight: 1,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:phone|telephone|tel)\s*:?\s*(\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4})`),
		},
	},
}

// extractPersonalInfo pulls consumer identity fields from the whole text.
func extractPersonalInfo(text string) domain.PersonalInfo {
	values, conf := extractFields(text, personalSpecs)
	if len(values) == 0 {
		return domain.PersonalInfo{Confidence: 0}
	}
	return domain.PersonalInfo{
		Name:        values["name"],
		Address:     values["address"],
		SSN:         values["ssn"],
		DateOfBirth: values["dob"],
		Phone:       values["phone"],
		Confidence:  conf,
	}
}
