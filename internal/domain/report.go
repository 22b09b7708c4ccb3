package domain

import (
	"github.com/shopspring/decimal"
)

var ErrRecentMonthsInvalid = &ValidationError{Code: "recent_months_invalid", Field: "months", Reason: "Months must be between 1 and 120"}

// ChitPeriodStatus is the settlement state of one chit period for a borrower
type ChitPeriodStatus string

const (
	ChitPeriodPaid    ChitPeriodStatus = "Paid"
	ChitPeriodPartial ChitPeriodStatus = "Partial"
	ChitPeriodUnpaid  ChitPeriodStatus = "Unpaid"
)

// PeriodStatusOf classifies a chit period. A period with nothing settled is
// Unpaid even when nothing was due.
func PeriodStatusOf(settled, remaining decimal.Decimal) ChitPeriodStatus {
	switch {
	case settled.IsPositive() && remaining.IsZero():
		return ChitPeriodPaid
	case settled.IsPositive() && remaining.IsPositive():
		return ChitPeriodPartial
	default:
		return ChitPeriodUnpaid
	}
}

// InterestMonthView is a borrower's interest income for one period and how
// much of it adjustments have already consumed
type InterestMonthView struct {
	BorrowerID        int32           `json:"borrowerId"`
	InterestMonth     Period          `json:"interestMonth"`
	InterestReceived  decimal.Decimal `json:"interestReceived"`
	InterestAdjusted  decimal.Decimal `json:"interestAdjusted"`
	InterestAvailable decimal.Decimal `json:"interestAvailable"`
}

// ChitMonthView is the settlement state of one chit period for a borrower
type ChitMonthView struct {
	BorrowerID   int32            `json:"borrowerId"`
	ChitID       int32            `json:"chitId"`
	ChitMonth    Period           `json:"chitMonth"`
	Due          decimal.Decimal  `json:"due"`
	Adjusted     decimal.Decimal  `json:"adjusted"`
	DirectPaid   decimal.Decimal  `json:"directPaid"`
	Settled      decimal.Decimal  `json:"adjustedPaid"`
	RemainingDue decimal.Decimal  `json:"remainingDue"`
	Status       ChitPeriodStatus `json:"status"`
}

// BorrowerChitSummary totals what a borrower has contributed to one linked chit
type BorrowerChitSummary struct {
	ChitID             int32           `json:"chitId"`
	ChitName           string          `json:"chitName"`
	MonthlyInstallment decimal.Decimal `json:"monthlyInstallment"`
	StartMonth         Period          `json:"startMonth"`
	ChitStatus         ChitStatus      `json:"chitStatus"`
	TotalAdjusted      decimal.Decimal `json:"totalAdjusted"`
	TotalPaid          decimal.Decimal `json:"totalPaid"`
	TotalContributed   decimal.Decimal `json:"totalContributed"`
}

// AdjustmentCheck is the outcome of a dry-run adjustment validation
type AdjustmentCheck struct {
	Valid        bool               `json:"valid"`
	Errors       []string           `json:"errors"`
	InterestView *InterestMonthView `json:"interestView,omitempty"`
	ChitView     *ChitMonthView     `json:"chitView,omitempty"`
	MaxAllowed   decimal.Decimal    `json:"maxAllowed"`
}

// MonthlyReportLine is one loan's standing for the report period
type MonthlyReportLine struct {
	LoanID               int32           `json:"loanId"`
	BorrowerName         string          `json:"borrowerName"`
	OutstandingPrincipal decimal.Decimal `json:"outstandingPrincipal"`
	MonthlyRate          decimal.Decimal `json:"monthlyRate"`
	InterestDue          decimal.Decimal `json:"interestDue"`
	InterestPaid         decimal.Decimal `json:"interestPaid"`
	InterestPendingMonth decimal.Decimal `json:"interestPendingMonth"`
	InterestPending      decimal.Decimal `json:"interestPending"`
	PrincipalPaid        decimal.Decimal `json:"principalPaid"`
	TotalReceived        decimal.Decimal `json:"totalReceived"`
}

type MonthlyReportTotals struct {
	InterestReceived     decimal.Decimal `json:"interestReceived"`
	PrincipalReceived    decimal.Decimal `json:"principalReceived"`
	TotalReceived        decimal.Decimal `json:"totalReceived"`
	InterestPendingMonth decimal.Decimal `json:"interestPendingMonth"`
	InterestPending      decimal.Decimal `json:"interestPending"`
}

// MonthlyReport buckets every in-scope loan by how much of the period's
// interest was paid
type MonthlyReport struct {
	Month         Period               `json:"month"`
	IncludeClosed bool                 `json:"includeClosed"`
	FullPaid      []*MonthlyReportLine `json:"fullPaid"`
	PartialPaid   []*MonthlyReportLine `json:"partialPaid"`
	NotPaid       []*MonthlyReportLine `json:"notPaid"`
	Totals        MonthlyReportTotals  `json:"totals"`
}

// PersonHistoryEntry is one loan of a borrower with its payments
type PersonHistoryEntry struct {
	Loan     *Loan      `json:"loan"`
	Payments []*Payment `json:"payments"`
}

// RecentPaymentsMonth groups payment details by interest month
type RecentPaymentsMonth struct {
	Month    Period           `json:"month"`
	Payments []*PaymentDetail `json:"payments"`
}

// LoanSummary totals the active book and the interest due for one period
type LoanSummary struct {
	Month                 Period          `json:"month"`
	TotalLoans            int             `json:"totalLoans"`
	TotalPrincipalGiven   decimal.Decimal `json:"totalPrincipalGiven"`
	TotalOutstanding      decimal.Decimal `json:"totalOutstanding"`
	TotalInterestDueMonth decimal.Decimal `json:"totalInterestDueMonth"`
}

// ScheduleAdjustmentResult reports what a schedule adjustment actually
// applied. Message explains any shortfall or capping; it is empty when the
// requested amount was applied as is.
type ScheduleAdjustmentResult struct {
	Adjustment  *ScheduleAdjustment `json:"adjustment"`
	Payment     *Payment            `json:"payment"`
	Line        *ScheduleLine       `json:"line"`
	InterestDue decimal.Decimal     `json:"interestDue"`
	AlreadyPaid decimal.Decimal     `json:"alreadyPaid"`
	Available   decimal.Decimal     `json:"available"`
	Requested   decimal.Decimal     `json:"requested"`
	Applied     decimal.Decimal     `json:"applied"`
	Partial     bool                `json:"partial"`
	Message     string              `json:"message,omitempty"`
}
