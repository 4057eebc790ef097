// Package violation scans a parsed credit profile for FCRA and Metro 2
// reporting violations: obsolete entries past their exclusion period,
// status/balance contradictions, incomplete tradelines, and duplicates.
package violation

import (
	"time"

	"crediscope/internal/domain"
)

// Rule is the interface for a single built-in violation rule.
type Rule interface {
	Detect(report *domain.ParsedCreditReport, now time.Time) []domain.Violation
	RuleKey() string
	RuleName() string
	Severity() domain.ViolationSeverity
}

// Registry maps rule keys to Rule implementations.
type Registry struct {
	rules map[string]Rule
	order []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Register adds a rule to the registry. Re-registering a key replaces the
// earlier rule but keeps its position.
func (r *Registry) Register(rule Rule) {
	if _, ok := r.rules[rule.RuleKey()]; !ok {
		r.order = append(r.order, rule.RuleKey())
	}
	r.rules[rule.RuleKey()] = rule
}

// Get returns the rule for a given key, or nil if not found.
func (r *Registry) Get(key string) Rule {
	return r.rules[key]
}

// All returns the registered rules in registration order.
func (r *Registry) All() []Rule {
	out := make([]Rule, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.rules[key])
	}
	return out
}
