package violation

import (
	"sort"
	"time"

	"crediscope/internal/domain"
)

var severityRank = map[domain.ViolationSeverity]int{
	domain.SeverityCritical: 3,
	domain.SeverityHigh:     2,
	domain.SeverityMedium:   1,
	domain.SeverityLow:      0,
}

// Detector runs a rule registry against parsed reports. Safe for concurrent
// use once constructed.
type Detector struct {
	registry *Registry
	clock    func() time.Time
}

// Option configures a Detector.
type Option func(*Detector)

// WithClock fixes the detector's notion of "now".
func WithClock(clock func() time.Time) Option {
	return func(d *Detector) { d.clock = clock }
}

// NewDetector creates a detector. A nil registry gets the builtin rule set.
func NewDetector(registry *Registry, opts ...Option) *Detector {
	if registry == nil {
		registry = NewRegistry()
		for _, r := range BuiltinRules() {
			registry.Register(r)
		}
	}
	d := &Detector{registry: registry, clock: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect runs every registered rule and returns the combined findings,
// ordered by severity descending, then rule evaluation order. A nil report
// yields no violations.
func (d *Detector) Detect(report *domain.ParsedCreditReport) []domain.Violation {
	if report == nil {
		return nil
	}
	now := d.clock().UTC()

	var out []domain.Violation
	for _, rule := range d.registry.All() {
		out = append(out, rule.Detect(report, now)...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return severityRank[out[i].Severity] > severityRank[out[j].Severity]
	})
	return out
}
