// Package letter renders dispute correspondence from a generated strategy.
package letter

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"crediscope/internal/domain"
)

const disputeLetterText = `{{.Date}}

{{if .Name}}{{.Name}}
{{end}}{{if .Address}}{{.Address}}
{{end}}
Re: Formal Dispute of Inaccurate Credit Report Information

To Whom It May Concern:

I am writing to dispute the following information on my credit report
pursuant to my rights under the Fair Credit Reporting Act, 15 U.S.C.
Section 1681i. I request that each item below be investigated and
deleted or corrected.
{{range $i, $item := .Items}}
{{inc $i}}. {{$item.Creditor}}{{if $item.Account}} (account ending {{$item.Account}}){{end}}
   Item: {{$item.Description}}
   Reason for dispute: {{$item.Reason}}
   Legal basis: {{$item.Legal}}
{{end}}
Under Section 611 of the FCRA you are required to complete your
reinvestigation within 30 days of receipt of this letter and to provide
me with the written results, including a free updated copy of my credit
report if any change is made.

If any item cannot be verified, it must be deleted. Please also provide
the name, address, and telephone number of each furnisher contacted in
the course of your reinvestigation.

Sincerely,

{{if .Name}}{{.Name}}{{else}}[Name]{{end}}{{if .SSNLast4}}
SSN ending: {{.SSNLast4}}{{end}}
`

var disputeLetterTmpl = template.Must(template.New("dispute_letter").
	Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
	Parse(disputeLetterText))

type letterItem struct {
	Creditor    string
	Account     string
	Description string
	Reason      string
	Legal       string
}

type letterData struct {
	Date     string
	Name     string
	Address  string
	SSNLast4 string
	Items    []letterItem
}

// Generator renders a bureau dispute letter for the scheduled items of a
// strategy. Safe for concurrent use.
type Generator struct {
	clock func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock fixes the date printed on letters.
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) { g.clock = clock }
}

// NewGenerator creates a letter generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{clock: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders a dispute letter covering the first-phase items of the
// strategy, or every recommendation when nothing is scheduled. Returns an
// empty string when there is nothing to dispute.
func (g *Generator) Generate(personal domain.PersonalInfo, strategy *domain.DisputeStrategy) (string, error) {
	if strategy == nil || len(strategy.Recommendations) == 0 {
		return "", nil
	}

	recs := phaseOne(strategy)
	items := make([]letterItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, letterItem{
			Creditor:    rec.Item.CreditorName,
			Description: itemDescription(rec.Item),
			Reason:      disputeReason(rec.Item),
			Legal:       legalLine(rec.Legal),
		})
	}

	data := letterData{
		Date:     g.clock().UTC().Format("January 2, 2006"),
		Name:     personal.Name,
		Address:  personal.Address,
		SSNLast4: ssnLast4(personal.SSN),
		Items:    items,
	}

	var b strings.Builder
	if err := disputeLetterTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("letter.Generator: executing template: %w", err)
	}
	return b.String(), nil
}

// phaseOne returns the items assigned to the first dispute phase, falling
// back to all recommendations when no timeline was built.
func phaseOne(strategy *domain.DisputeStrategy) []domain.DisputeRecommendation {
	for _, phase := range strategy.Timeline {
		if phase.Number == 1 {
			return phase.Items
		}
	}
	return strategy.Recommendations
}

func itemDescription(item domain.NegativeItem) string {
	desc := strings.ReplaceAll(strings.TrimSpace(item.Description), "\n", " ")
	if desc == "" {
		desc = string(item.Type)
	}
	if item.Amount > 0 {
		desc += fmt.Sprintf(" in the amount of $%.2f", item.Amount)
	}
	if item.Date != "" {
		desc += ", reported " + item.Date
	}
	return desc
}

func disputeReason(item domain.NegativeItem) string {
	if len(item.DisputeReasons) > 0 {
		return item.DisputeReasons[0]
	}
	return "This item is inaccurate and cannot be verified as reported."
}

func legalLine(basis domain.LegalBasis) string {
	if len(basis.Sections) == 0 {
		return basis.PrimaryLaw
	}
	return basis.PrimaryLaw + ", " + strings.Join(basis.Sections, ", ")
}

func ssnLast4(ssn string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, ssn)
	if len(digits) < 4 {
		return ""
	}
	return digits[len(digits)-4:]
}
