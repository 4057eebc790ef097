package extract

import (
	"regexp"
	"strings"
	"time"

	"crediscope/internal/domain"
)

var accountsHeaderRe = regexp.MustCompile(`(?im)^\s*(?:accounts?|account\s+information|tradelines|open\s+accounts)\s*:?\s*$`)

var accountSpecs = []fieldSpec{
	{
		name:   "creditor",
		weight: 2,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?im)^\s*(?:creditor|lender|company)\s*:\s*(.{2,60})\s*$`),
			regexp.MustCompile(`\A\s*([A-Z][A-Za-z0-9 &.,'/-]{2,60}?)\s*(?:\n|$)`),
		},
	},
	{
		name:   "account_number",
		weight: 1.5,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)account\s*(?:number|no\.?|#)\s*:?\s*([A-Za-z0-9*Xx-]{4,24})`),
		},
	},
	{
		name:   "balance",
		weight: 1.5,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:current\s+)?balance\s*:?\s*\$?\s*([\d,]+(?:\.\d{1,2})?)`),
		},
	},
	{
		name:   "credit_limit",
		weight: 1,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:credit\s+limit|high\s+credit)\s*:?\s*\$?\s*([\d,]+(?:\.\d{1,2})?)`),
		},
	},
	{
		name:   "type",
		weight: 1,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(credit\s+card|visa|mastercard|american\s+express|amex|auto\s+loan|mortgage|home\s+loan|personal\s+loan|student\s+loan|line\s+of\s+credit|heloc|revolving|installment)\b`),
		},
	},
	{
		name:   "status",
		weight: 1,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?im)^\s*(?:account\s+)?status\s*:?\s*([A-Za-z][A-Za-z /-]{2,40})\s*$`),
		},
	},
	{
		name:   "opened",
		weight: 0.5,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:date\s+)?opened\s*:?\s*(\d{1,2}/\d{1,2}/\d{4}|\d{1,2}/\d{4})`),
		},
	},
	{
		name:   "last_reported",
		weight: 0.5,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)last\s+(?:reported|activity|updated)\s*:?\s*(\d{1,2}/\d{1,2}/\d{4}|\d{1,2}/\d{4})`),
		},
	},
}

var lateHintRe = regexp.MustCompile(`(?i)\b(?:late|past\s+due|delinquen|charge.?off|collection)`)

// extractAccounts segments the accounts section into numbered blocks and
// parses each independently.
func extractAccounts(text string, now time.Time) []domain.Account {
	section := sectionAfter(text, accountsHeaderRe)
	if section == "" {
		return nil
	}

	var accounts []domain.Account
	for _, block := range splitNumberedBlocks(section) {
		acct, ok := parseAccountBlock(block, now)
		if ok {
			accounts = append(accounts, acct)
		}
	}
	return accounts
}

func parseAccountBlock(block string, now time.Time) (domain.Account, bool) {
	values, conf := extractFields(block, accountSpecs)
	creditor := values["creditor"]
	if creditor == "" {
		return domain.Account{}, false
	}

	acct := domain.Account{
		CreditorName:  creditor,
		AccountNumber: values["account_number"],
		Type:          classifyAccountType(values["type"], block),
		Status:        classifyAccountStatus(values["status"]),
		OpenedDate:    values["opened"],
		LastReported:  values["last_reported"],
		Bureaus:       bureausIn(block),
		Confidence:    conf,
	}
	if v, ok := parseAmount(values["balance"]); ok {
		acct.Balance = v
	}
	if v, ok := parseAmount(values["credit_limit"]); ok && v > 0 {
		acct.CreditLimit = &v
	}

	seed := creditor + "|" + acct.AccountNumber
	acct.PaymentHistory = synthesizeHistory(seed, now, lateHintRe.MatchString(block))
	return acct, true
}

func classifyAccountType(matched, block string) domain.AccountType {
	probe := strings.ToLower(matched)
	if probe == "" {
		probe = strings.ToLower(block)
	}
	switch {
	case strings.Contains(probe, "credit card"), strings.Contains(probe, "visa"),
		strings.Contains(probe, "mastercard"), strings.Contains(probe, "amex"),
		strings.Contains(probe, "american express"), strings.Contains(probe, "revolving"):
		return domain.AccountTypeCreditCard
	case strings.Contains(probe, "auto"):
		return domain.AccountTypeAutoLoan
	case strings.Contains(probe, "mortgage"), strings.Contains(probe, "home loan"):
		return domain.AccountTypeMortgage
	case strings.Contains(probe, "student"):
		return domain.AccountTypeStudentLoan
	case strings.Contains(probe, "personal loan"), strings.Contains(probe, "installment"):
		return domain.AccountTypePersonalLoan
	case strings.Contains(probe, "line of credit"), strings.Contains(probe, "heloc"):
		return domain.AccountTypeLineOfCredit
	default:
		return domain.AccountTypeOther
	}
}

func classifyAccountStatus(raw string) domain.AccountStatus {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "charge"):
		return domain.AccountStatusChargedOff
	case strings.Contains(s, "collection"):
		return domain.AccountStatusCollection
	case strings.Contains(s, "paid"):
		return domain.AccountStatusPaid
	case strings.Contains(s, "closed"):
		return domain.AccountStatusClosed
	default:
		return domain.AccountStatusOpen
	}
}

func bureausIn(block string) []domain.Bureau {
	var bureaus []domain.Bureau
	for _, b := range domain.AllBureaus {
		if bureauMarkerRes[b].MatchString(block) {
			bureaus = append(bureaus, b)
		}
	}
	return bureaus
}
