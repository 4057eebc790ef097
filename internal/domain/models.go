package domain

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
)

// Credit scores outside this range are discarded during extraction, not clamped.
const (
	MinCreditScore = 300
	MaxCreditScore = 850
)

// PersonalInfo holds consumer identity fields extracted from a report.
// SSN, DateOfBirth, and Phone are optional; Confidence aggregates all fields.
type PersonalInfo struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	SSN         string `json:"ssn,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Confidence  int    `json:"confidence"`
}

// CreditScore is a single bureau's score for the consumer.
type CreditScore struct {
	Bureau      Bureau   `json:"bureau"`
	Score       int      `json:"score"`
	ScoreRange  string   `json:"score_range"`
	Factors     []string `json:"factors,omitempty"`
	Confidence  int      `json:"confidence"`
	DataQuality int      `json:"data_quality"`
}

// PaymentHistoryEntry is one month of payment behavior on an account.
// Month is a year-month key ("2024-01"), unique per account.
type PaymentHistoryEntry struct {
	Month      string        `json:"month"`
	Status     PaymentStatus `json:"status"`
	Amount     *float64      `json:"amount,omitempty"`
	Bureau     Bureau        `json:"bureau,omitempty"`
	Confidence int           `json:"confidence"`
	Verified   bool          `json:"verified"`
	Note       string        `json:"note,omitempty"`
}

// Account is a single tradeline on the report.
type Account struct {
	CreditorName   string                `json:"creditor_name"`
	Standardized   *CreditorIdentity     `json:"standardized_creditor,omitempty"`
	AccountNumber  string                `json:"account_number"`
	Type           AccountType           `json:"account_type"`
	Balance        float64               `json:"balance"`
	CreditLimit    *float64              `json:"credit_limit,omitempty"`
	PaymentHistory []PaymentHistoryEntry `json:"payment_history"`
	Status         AccountStatus         `json:"status"`
	OpenedDate     string                `json:"opened_date,omitempty"`
	LastReported   string                `json:"last_reported,omitempty"`
	Bureaus        []Bureau              `json:"bureaus,omitempty"`
	Confidence     int                   `json:"confidence"`
	Performance    *PaymentPerformance   `json:"performance,omitempty"`
	HistoryIssues  []string              `json:"history_issues,omitempty"`
}

// Utilization returns the balance-to-limit ratio as a rounded percentage,
// or nil when no positive credit limit is known.
func (a *Account) Utilization() *int {
	if a.CreditLimit == nil || *a.CreditLimit <= 0 {
		return nil
	}
	u := int(math.Round(a.Balance / *a.CreditLimit * 100))
	return &u
}

// NegativeItem is a derogatory item extracted from the report.
// DisputeReasons always carries at least one entry.
type NegativeItem struct {
	Type           NegativeItemType `json:"type"`
	CreditorName   string           `json:"creditor_name"`
	Amount         float64          `json:"amount"`
	Date           string           `json:"date,omitempty"`
	Status         string           `json:"status,omitempty"`
	Description    string           `json:"description"`
	DisputeReasons []string         `json:"dispute_reasons"`
	ImpactScore    int              `json:"impact_score"`
	Confidence     int              `json:"confidence"`
}

// AgeYears returns the item's age in years relative to now, or 0 when the
// date is absent or unparseable.
func (n *NegativeItem) AgeYears(now time.Time) float64 {
	t, ok := ParseReportDate(n.Date)
	if !ok || t.After(now) {
		return 0
	}
	return now.Sub(t).Hours() / (24 * 365.25)
}

// ParseReportDate parses the date layouts that appear on credit reports.
func ParseReportDate(s string) (time.Time, bool) {
	for _, layout := range []string{"01/02/2006", "2006-01-02", "2006-01", "01/2006", "Jan 2006", "January 2, 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Inquiry is a credit inquiry entry.
type Inquiry struct {
	CreditorName string      `json:"creditor_name"`
	Date         string      `json:"date,omitempty"`
	Type         InquiryType `json:"type"`
	Purpose      string      `json:"purpose,omitempty"`
	Bureau       Bureau      `json:"bureau,omitempty"`
	Confidence   int         `json:"confidence"`
}

// PublicRecord is a bankruptcy, tax lien, or judgment entry.
type PublicRecord struct {
	Type       PublicRecordType `json:"type"`
	Court      string           `json:"court,omitempty"`
	Amount     float64          `json:"amount"`
	Date       string           `json:"date,omitempty"`
	Status     string           `json:"status,omitempty"`
	Confidence int              `json:"confidence"`
}

// ExtractionMetadata describes how a parse went.
type ExtractionMetadata struct {
	ProcessingTimeMS  int64        `json:"processing_time_ms"`
	OverallConfidence int          `json:"overall_confidence"`
	DocumentQuality   int          `json:"document_quality"`
	ReportFormat      ReportFormat `json:"report_format"`
	Method            string       `json:"method"`
}

// ParsedCreditReport is the full structured output of the extraction engine.
// Collections may be empty; the report itself is never nil for any input.
type ParsedCreditReport struct {
	PersonalInfo  PersonalInfo       `json:"personal_info"`
	Scores        []CreditScore      `json:"scores"`
	Accounts      []Account          `json:"accounts"`
	NegativeItems []NegativeItem     `json:"negative_items"`
	Inquiries     []Inquiry          `json:"inquiries"`
	PublicRecords []PublicRecord     `json:"public_records"`
	Metadata      ExtractionMetadata `json:"metadata"`
}

// CreditorIdentity is the canonical identity a free-text creditor mention
// resolves to. It is the only entity persisted across invocations.
type CreditorIdentity struct {
	StandardizedName string    `db:"standardized_name" json:"standardized_name"`
	RegistryCode     string    `db:"registry_code" json:"registry_code,omitempty"`
	Industry         string    `db:"industry" json:"industry,omitempty"`
	Aliases          []string  `db:"-" json:"aliases"`
	UsageCount       int       `db:"usage_count" json:"usage_count"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// PaymentPerformance summarizes an account's validated payment history.
type PaymentPerformance struct {
	OnTimePercent int           `json:"on_time_percent"`
	WorstStatus   PaymentStatus `json:"worst_status"`
	Trend         PaymentTrend  `json:"trend"`
	RiskScore     int           `json:"risk_score"`
}

// LegalBasis is the statutory grounding attached to a recommendation.
type LegalBasis struct {
	PrimaryLaw     string   `json:"primary_law"`
	Sections       []string `json:"sections"`
	CaseReferences []string `json:"case_references,omitempty"`
	Enforcement    []string `json:"enforcement,omitempty"`
}

// DisputeRecommendation ties one negative item to a modeled dispute plan.
// Phase 0 means the item did not fit into the three scheduled phases.
type DisputeRecommendation struct {
	Item               NegativeItem `json:"item"`
	SuccessProbability float64      `json:"success_probability"`
	PriorityScore      float64      `json:"priority_score"`
	Legal              LegalBasis   `json:"legal_basis"`
	ExpectedImpact     int          `json:"expected_impact"`
	Phase              int          `json:"phase"`
}

// DisputePhase is one batch in the submission timeline.
type DisputePhase struct {
	Number    int                     `json:"number"`
	Timeframe string                  `json:"timeframe"`
	Rationale string                  `json:"rationale"`
	Items     []DisputeRecommendation `json:"items"`
}

// OutcomeProjection is the expected score-improvement range for a strategy.
type OutcomeProjection struct {
	ExpectedImprovement int `json:"expected_improvement"`
	MinImprovement      int `json:"min_improvement"`
	MaxImprovement      int `json:"max_improvement"`
	Confidence          int `json:"confidence"`
}

// DisputeStrategy is the strategy engine's full output.
type DisputeStrategy struct {
	Recommendations []DisputeRecommendation `json:"recommendations"`
	Timeline        []DisputePhase          `json:"timeline"`
	Projection      OutcomeProjection       `json:"projection"`
	Summary         string                  `json:"summary"`
}

// Violation is a detected FCRA / Metro 2 reporting violation.
type Violation struct {
	Type            ViolationType     `json:"type"`
	Severity        ViolationSeverity `json:"severity"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	AffectedAccount string            `json:"affected_account,omitempty"`
	LegalBasis      string            `json:"legal_basis"`
	DisputeReason   string            `json:"dispute_reason"`
}

// CreditAnalysis is the persisted result of one full pipeline run.
type CreditAnalysis struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	UserID      string          `db:"user_id" json:"user_id"`
	Method      string          `db:"method" json:"method"`
	Report      json.RawMessage `db:"report" json:"report"`
	Violations  json.RawMessage `db:"violations" json:"violations"`
	Strategy    json.RawMessage `db:"strategy" json:"strategy"`
	Letter      string          `db:"letter" json:"letter"`
	ProcessedAt time.Time       `db:"processed_at" json:"processed_at"`
}
