// Package extract turns raw OCR'd credit-report text into a typed,
// confidence-scored ParsedCreditReport. Extraction never fails on malformed
// input: missing sections yield empty collections and confidence degrades
// toward zero instead of raising errors.
package extract

import (
	"strings"
	"time"

	"crediscope/internal/domain"
)

// Engine is the pattern-based extraction engine. It is stateless apart from
// its configuration and safe for concurrent use.
type Engine struct {
	softVocab []string
	clock     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithSoftInquiryVocabulary replaces the soft-inquiry classification table.
func WithSoftInquiryVocabulary(vocab []string) Option {
	return func(e *Engine) { e.softVocab = vocab }
}

// WithClock fixes the engine's notion of "now" (payment-history months and
// item ages derive from it).
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// NewEngine creates an extraction engine with the default vocabulary tables.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		softVocab: DefaultSoftInquiryVocabulary,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parse extracts every entity category from text. The method label is
// provenance only and is echoed into the metadata. Parse always returns a
// report; empty or garbage input produces empty collections with overall
// confidence 0.
func (e *Engine) Parse(text, method string) *domain.ParsedCreditReport {
	start := e.clock()
	now := start.UTC()

	text = strings.TrimSpace(text)
	report := &domain.ParsedCreditReport{}
	quality := documentQuality(text)

	if text != "" {
		report.PersonalInfo = extractPersonalInfo(text)
		report.Scores = extractScores(text, quality)
		report.Accounts = extractAccounts(text, now)
		report.NegativeItems = extractNegativeItems(text)
		report.Inquiries = extractInquiries(text, e.softVocab)
		report.PublicRecords = extractPublicRecords(text)
	}

	report.Metadata = domain.ExtractionMetadata{
		ProcessingTimeMS:  e.clock().Sub(start).Milliseconds(),
		OverallConfidence: overallConfidence(report),
		DocumentQuality:   quality,
		ReportFormat:      detectFormat(text),
		Method:            method,
	}
	return report
}
