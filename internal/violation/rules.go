package violation

import (
	"fmt"
	"strings"
	"time"

	"crediscope/internal/domain"
)

// Reporting-period limits under FCRA Section 605(a), in years.
const (
	obsolescenceYears           = 7
	bankruptcyObsolescenceYears = 10
)

// obsoleteInfoRule flags negative items reported past their FCRA exclusion
// period: seven years for most derogatories, ten for bankruptcies.
type obsoleteInfoRule struct{}

func (obsoleteInfoRule) RuleKey() string  { return "fcra_obsolete_info" }
func (obsoleteInfoRule) RuleName() string { return "Obsolete Information" }
func (obsoleteInfoRule) Severity() domain.ViolationSeverity {
	return domain.SeverityCritical
}

func (r obsoleteInfoRule) Detect(report *domain.ParsedCreditReport, now time.Time) []domain.Violation {
	var out []domain.Violation
	for _, item := range report.NegativeItems {
		age := item.AgeYears(now)
		if age <= 0 {
			continue
		}
		limit := float64(obsolescenceYears)
		section := "FCRA Section 605(a)"
		if item.Type == domain.NegativeBankruptcy {
			limit = bankruptcyObsolescenceYears
			section = "FCRA Section 605(a)(1)"
		}
		if age <= limit {
			continue
		}
		out = append(out, domain.Violation{
			Type:            domain.ViolationObsoleteInfo,
			Severity:        r.Severity(),
			Title:           "Obsolete negative item",
			Description:     fmt.Sprintf("%s from %s is %.1f years old, past the %.0f-year reporting limit.", item.Type, item.CreditorName, age, limit),
			AffectedAccount: item.CreditorName,
			LegalBasis:      section,
			DisputeReason:   "Item exceeds the maximum reporting period and must be deleted.",
		})
	}
	return out
}

// inaccurateStatusRule flags accounts carrying a derogatory status with no
// balance owed, a contradiction the furnisher must resolve.
type inaccurateStatusRule struct{}

func (inaccurateStatusRule) RuleKey() string  { return "fcra_accuracy" }
func (inaccurateStatusRule) RuleName() string { return "Inaccurate Account Status" }
func (inaccurateStatusRule) Severity() domain.ViolationSeverity {
	return domain.SeverityHigh
}

func (r inaccurateStatusRule) Detect(report *domain.ParsedCreditReport, _ time.Time) []domain.Violation {
	var out []domain.Violation
	for _, acct := range report.Accounts {
		if acct.Balance != 0 {
			continue
		}
		if acct.Status != domain.AccountStatusChargedOff && acct.Status != domain.AccountStatusCollection {
			continue
		}
		out = append(out, domain.Violation{
			Type:            domain.ViolationAccuracy,
			Severity:        r.Severity(),
			Title:           "Derogatory status with zero balance",
			Description:     fmt.Sprintf("%s reports status %q with a zero balance.", acct.CreditorName, acct.Status),
			AffectedAccount: acct.CreditorName,
			LegalBasis:      "FCRA Section 623(a)(2)",
			DisputeReason:   "Status contradicts the reported balance; furnisher must correct or delete.",
		})
	}
	return out
}

// incompleteInfoRule flags tradelines missing the fields Metro 2 requires
// for a complete record.
type incompleteInfoRule struct{}

func (incompleteInfoRule) RuleKey() string  { return "fcra_incomplete_info" }
func (incompleteInfoRule) RuleName() string { return "Incomplete Tradeline" }
func (incompleteInfoRule) Severity() domain.ViolationSeverity {
	return domain.SeverityMedium
}

func (r incompleteInfoRule) Detect(report *domain.ParsedCreditReport, _ time.Time) []domain.Violation {
	var out []domain.Violation
	for _, acct := range report.Accounts {
		var missing []string
		if acct.AccountNumber == "" {
			missing = append(missing, "account number")
		}
		if acct.OpenedDate == "" {
			missing = append(missing, "opened date")
		}
		if acct.Type == domain.AccountTypeOther {
			missing = append(missing, "account type")
		}
		if len(missing) == 0 {
			continue
		}
		out = append(out, domain.Violation{
			Type:            domain.ViolationIncompleteInfo,
			Severity:        r.Severity(),
			Title:           "Incomplete tradeline",
			Description:     fmt.Sprintf("%s is missing: %s.", acct.CreditorName, strings.Join(missing, ", ")),
			AffectedAccount: acct.CreditorName,
			LegalBasis:      "Metro 2 Format / FCRA Section 623(a)",
			DisputeReason:   "Tradeline lacks required fields and cannot be verified as reported.",
		})
	}
	return out
}

// duplicateAccountRule flags the same debt appearing more than once, which
// double-counts its score impact.
type duplicateAccountRule struct{}

func (duplicateAccountRule) RuleKey() string  { return "duplicate_account" }
func (duplicateAccountRule) RuleName() string { return "Duplicate Account" }
func (duplicateAccountRule) Severity() domain.ViolationSeverity {
	return domain.SeverityHigh
}

func (r duplicateAccountRule) Detect(report *domain.ParsedCreditReport, _ time.Time) []domain.Violation {
	seen := make(map[string]bool)
	var out []domain.Violation
	for _, acct := range report.Accounts {
		key := strings.ToLower(strings.TrimSpace(acct.CreditorName))
		if acct.AccountNumber != "" {
			key += "|" + acct.AccountNumber
		}
		if key == "" || key == "|" {
			continue
		}
		if !seen[key] {
			seen[key] = true
			continue
		}
		out = append(out, domain.Violation{
			Type:            domain.ViolationDuplicateAccount,
			Severity:        r.Severity(),
			Title:           "Duplicate tradeline",
			Description:     fmt.Sprintf("%s appears more than once with the same account number.", acct.CreditorName),
			AffectedAccount: acct.CreditorName,
			LegalBasis:      "FCRA Section 611",
			DisputeReason:   "Single obligation reported as multiple tradelines; duplicates must be deleted.",
		})
	}
	return out
}

// inaccurateBalanceRule flags revolving balances reported above the credit
// limit, a common Metro 2 field error that inflates utilization.
type inaccurateBalanceRule struct{}

func (inaccurateBalanceRule) RuleKey() string  { return "inaccurate_balance" }
func (inaccurateBalanceRule) RuleName() string { return "Balance Exceeds Limit" }
func (inaccurateBalanceRule) Severity() domain.ViolationSeverity {
	return domain.SeverityMedium
}

func (r inaccurateBalanceRule) Detect(report *domain.ParsedCreditReport, _ time.Time) []domain.Violation {
	var out []domain.Violation
	for _, acct := range report.Accounts {
		if acct.Type != domain.AccountTypeCreditCard || acct.CreditLimit == nil {
			continue
		}
		if *acct.CreditLimit <= 0 || acct.Balance <= *acct.CreditLimit {
			continue
		}
		out = append(out, domain.Violation{
			Type:            domain.ViolationInaccurateBalance,
			Severity:        r.Severity(),
			Title:           "Balance exceeds credit limit",
			Description:     fmt.Sprintf("%s reports a balance of %.2f against a limit of %.2f.", acct.CreditorName, acct.Balance, *acct.CreditLimit),
			AffectedAccount: acct.CreditorName,
			LegalBasis:      "Metro 2 Format / FCRA Section 623(a)",
			DisputeReason:   "Reported balance is inconsistent with the credit limit.",
		})
	}
	return out
}

// BuiltinRules returns the standard rule set in evaluation order.
func BuiltinRules() []Rule {
	return []Rule{
		obsoleteInfoRule{},
		inaccurateStatusRule{},
		incompleteInfoRule{},
		duplicateAccountRule{},
		inaccurateBalanceRule{},
	}
}
