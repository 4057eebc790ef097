package extract

import (
	"math"
	"regexp"

	"crediscope/internal/domain"
)

var (
	noiseCharRe    = regexp.MustCompile(`[^a-zA-Z0-9\s.,:;$%/#&()*'"-]`)
	creditReportRe = regexp.MustCompile(`(?i)\bcredit\s+report\b`)

	expectedHeaderRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)personal\s+information`),
		regexp.MustCompile(`(?i)account(?:s|\s+information)`),
		regexp.MustCompile(`(?i)inquiries`),
		regexp.MustCompile(`(?i)(?:credit\s+)?score`),
	}
)

const (
	shortTextLen     = 1000
	veryShortTextLen = 500
	noisePenaltyCap  = 30
	headerReward     = 5
)

// documentQuality scores how usable the raw text looks: short documents and
// OCR noise are penalized, expected section headers rewarded.
func documentQuality(text string) int {
	quality := 100

	switch {
	case len(text) < veryShortTextLen:
		quality -= 30
	case len(text) < shortTextLen:
		quality -= 10
	}

	noise := len(noiseCharRe.FindAllString(text, -1))
	penalty := noise / 5
	if penalty > noisePenaltyCap {
		penalty = noisePenaltyCap
	}
	quality -= penalty

	for _, re := range expectedHeaderRes {
		if re.MatchString(text) {
			quality += headerReward
		}
	}

	if quality < 0 {
		quality = 0
	}
	if quality > 100 {
		quality = 100
	}
	return quality
}

// detectFormat reports the bureau whose name co-occurs with "Credit Report",
// preferring the earliest mention. Absence of any match yields unknown.
func detectFormat(text string) domain.ReportFormat {
	if !creditReportRe.MatchString(text) {
		return domain.FormatUnknown
	}

	best := domain.FormatUnknown
	bestPos := len(text) + 1
	for _, b := range domain.AllBureaus {
		loc := bureauMarkerRes[b].FindStringIndex(text)
		if loc != nil && loc[0] < bestPos {
			bestPos = loc[0]
			best = domain.ReportFormat(b)
		}
	}
	return best
}

// overallConfidence is the arithmetic mean of all non-zero per-entity
// confidence values; an empty result yields 0.
func overallConfidence(report *domain.ParsedCreditReport) int {
	var sum, n int
	add := func(c int) {
		if c > 0 {
			sum += c
			n++
		}
	}

	add(report.PersonalInfo.Confidence)
	for _, s := range report.Scores {
		add(s.Confidence)
	}
	for _, a := range report.Accounts {
		add(a.Confidence)
	}
	for _, item := range report.NegativeItems {
		add(item.Confidence)
	}
	for _, inq := range report.Inquiries {
		add(inq.Confidence)
	}
	for _, rec := range report.PublicRecords {
		add(rec.Confidence)
	}

	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}
