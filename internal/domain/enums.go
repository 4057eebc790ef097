package domain

// Bureau identifies one of the three national credit bureaus.
type Bureau string

const (
	BureauExperian   Bureau = "experian"
	BureauEquifax    Bureau = "equifax"
	BureauTransUnion Bureau = "transunion"
)

// AllBureaus lists the bureaus in canonical order.
var AllBureaus = []Bureau{BureauExperian, BureauEquifax, BureauTransUnion}

// AccountType classifies a credit account.
type AccountType string

const (
	AccountTypeCreditCard   AccountType = "credit_card"
	AccountTypeAutoLoan     AccountType = "auto_loan"
	AccountTypeMortgage     AccountType = "mortgage"
	AccountTypePersonalLoan AccountType = "personal_loan"
	AccountTypeStudentLoan  AccountType = "student_loan"
	AccountTypeLineOfCredit AccountType = "line_of_credit"
	AccountTypeOther        AccountType = "other"
)

// AccountStatus represents the reported state of an account.
type AccountStatus string

const (
	AccountStatusOpen       AccountStatus = "open"
	AccountStatusClosed     AccountStatus = "closed"
	AccountStatusPaid       AccountStatus = "paid"
	AccountStatusChargedOff AccountStatus = "charged_off"
	AccountStatusCollection AccountStatus = "collection"
)

// PaymentStatus is the per-month status in a payment history.
type PaymentStatus string

const (
	PaymentStatusCurrent    PaymentStatus = "current"
	PaymentStatus30Late     PaymentStatus = "30_days_late"
	PaymentStatus60Late     PaymentStatus = "60_days_late"
	PaymentStatus90Late     PaymentStatus = "90_days_late"
	PaymentStatus120Late    PaymentStatus = "120_days_late"
	PaymentStatusChargeOff  PaymentStatus = "charge_off"
	PaymentStatusCollection PaymentStatus = "collection"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusClosed     PaymentStatus = "closed"
)

// PaymentSeverity orders payment statuses from benign (0) to most severe.
// Charge-off and collection are tied as most severe.
var PaymentSeverity = map[PaymentStatus]int{
	PaymentStatusCurrent:    0,
	PaymentStatusPaid:       0,
	PaymentStatusClosed:     0,
	PaymentStatus30Late:     1,
	PaymentStatus60Late:     2,
	PaymentStatus90Late:     3,
	PaymentStatus120Late:    4,
	PaymentStatusChargeOff:  5,
	PaymentStatusCollection: 5,
}

// ValidPaymentStatus reports whether s belongs to the closed status enumeration.
func ValidPaymentStatus(s PaymentStatus) bool {
	_, ok := PaymentSeverity[s]
	return ok
}

// IsLate reports whether s counts as a delinquent month.
func (s PaymentStatus) IsLate() bool {
	return PaymentSeverity[s] > 0
}

// NegativeItemType classifies a derogatory item on a report.
type NegativeItemType string

const (
	NegativeLatePayment  NegativeItemType = "late_payment"
	NegativeCollection   NegativeItemType = "collection"
	NegativeChargeOff    NegativeItemType = "charge_off"
	NegativeBankruptcy   NegativeItemType = "bankruptcy"
	NegativeTaxLien      NegativeItemType = "tax_lien"
	NegativeJudgment     NegativeItemType = "judgment"
	NegativeForeclosure  NegativeItemType = "foreclosure"
	NegativeRepossession NegativeItemType = "repossession"
)

// InquiryType distinguishes hard pulls from soft ones.
type InquiryType string

const (
	InquiryHard InquiryType = "hard"
	InquirySoft InquiryType = "soft"
)

// PublicRecordType classifies a public record entry.
type PublicRecordType string

const (
	PublicRecordBankruptcy PublicRecordType = "bankruptcy"
	PublicRecordTaxLien    PublicRecordType = "tax_lien"
	PublicRecordJudgment   PublicRecordType = "judgment"
)

// ReportFormat is the detected source format of a report.
type ReportFormat string

const (
	FormatExperian   ReportFormat = "experian"
	FormatEquifax    ReportFormat = "equifax"
	FormatTransUnion ReportFormat = "transunion"
	FormatUnknown    ReportFormat = "unknown"
)

// PaymentTrend describes the direction of recent payment behavior.
type PaymentTrend string

const (
	TrendImproving PaymentTrend = "improving"
	TrendDeclining PaymentTrend = "declining"
	TrendStable    PaymentTrend = "stable"
)

// ViolationType classifies a detected reporting violation.
type ViolationType string

const (
	ViolationObsoleteInfo      ViolationType = "fcra_obsolete_info"
	ViolationAccuracy          ViolationType = "fcra_accuracy"
	ViolationIncompleteInfo    ViolationType = "fcra_incomplete_info"
	ViolationMetro2Format      ViolationType = "metro2_format_error"
	ViolationDuplicateAccount  ViolationType = "duplicate_account"
	ViolationInaccurateBalance ViolationType = "inaccurate_balance"
)

// ViolationSeverity grades how serious a violation is.
type ViolationSeverity string

const (
	SeverityLow      ViolationSeverity = "low"
	SeverityMedium   ViolationSeverity = "medium"
	SeverityHigh     ViolationSeverity = "high"
	SeverityCritical ViolationSeverity = "critical"
)
