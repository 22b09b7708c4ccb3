package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/util"
	"github.com/dafibh/lendbook/lendbook-backend/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ScheduleAdjustmentInput contains input for settling an individual chit
// schedule line from one loan's interest for one month
type ScheduleAdjustmentInput struct {
	LineID        int32
	LoanID        int32
	InterestMonth domain.Period
	Requested     decimal.Decimal
	Notes         string
	Date          time.Time
}

// AdjustScheduleFromInterest settles a schedule line from a loan's unpaid
// interest for InterestMonth. Available interest is the month's interest due
// (opening-principal method) less interest already paid for it; the amount
// applied is the smaller of that and the line's remaining due. A synthetic
// Payment in "Adjustment" mode is appended so the loan shows the interest as
// received. Result.Message explains any shortfall or capping.
func (s *AdjustmentService) AdjustScheduleFromInterest(ctx context.Context, input ScheduleAdjustmentInput) (result *domain.ScheduleAdjustmentResult, err error) {
	defer observe("adjust_schedule", &err)

	if !input.InterestMonth.Valid() {
		return nil, domain.ErrInvalidPeriod
	}
	if !input.Requested.IsPositive() {
		return nil, domain.ErrAmountNotPositive
	}
	date := util.DateOf(input.Date)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		loan, err := s.loanRepo.GetByID(ctx, input.LoanID)
		if err != nil {
			return err
		}
		if !loan.IsActive() {
			return domain.ErrLoanClosed.Withf("Loan %d is closed. Its interest cannot be adjusted", loan.ID)
		}
		payments, err := s.paymentRepo.ListByLoan(ctx, loan.ID)
		if err != nil {
			return fmt.Errorf("list payments: %w", err)
		}

		line, err := s.scheduleRepo.GetLine(ctx, input.LineID)
		if err != nil {
			return err
		}
		if line.ChitStatus == domain.ChitStatusClosed {
			return domain.ErrIndividualChitClosed
		}
		if line.BorrowerID != loan.BorrowerID {
			return domain.ErrScheduleLoanMismatch
		}

		due := InterestDue(loan, payments, input.InterestMonth)
		alreadyPaid := InterestPaidFor(payments, input.InterestMonth)
		available := due.Sub(alreadyPaid)
		if !available.IsPositive() {
			return domain.ErrNoInterestAvailable.Withf(
				"No interest available for %s. Interest Due: %s, Already Paid: %s, Available Interest: %s",
				input.InterestMonth, domain.FormatMoney(due), domain.FormatMoney(alreadyPaid), domain.FormatMoney(decimal.Zero))
		}

		remaining := line.Remaining()
		if !remaining.IsPositive() {
			return domain.ErrScheduleLineSettled
		}

		applied := domain.MinMoney(available, remaining)
		res := &domain.ScheduleAdjustmentResult{
			InterestDue: due,
			AlreadyPaid: alreadyPaid,
			Available:   available,
			Requested:   input.Requested,
			Applied:     applied,
		}
		notes := explainScheduleAdjustment(res, line, input.InterestMonth, remaining, input.Notes)

		res.Adjustment, err = s.scheduleRepo.AddAdjustment(ctx, &domain.ScheduleAdjustment{
			LineID:         line.ID,
			LoanID:         loan.ID,
			InterestMonth:  input.InterestMonth,
			Amount:         applied,
			AdjustmentDate: date,
			Notes:          optionalString(notes),
		})
		if err != nil {
			return fmt.Errorf("add schedule adjustment: %w", err)
		}

		mode := domain.PaymentModeAdjustment
		paymentNotes := fmt.Sprintf("Chit adjustment: %s Month %d", line.ChitName, line.MonthNumber)
		res.Payment, err = s.paymentRepo.Create(ctx, &domain.Payment{
			LoanID:        loan.ID,
			PaymentDate:   date,
			InterestMonth: input.InterestMonth,
			TotalReceived: applied,
			InterestPaid:  applied,
			PrincipalPaid: decimal.Zero,
			PaymentMode:   &mode,
			Notes:         &paymentNotes,
		})
		if err != nil {
			return fmt.Errorf("create adjustment payment: %w", err)
		}

		updated, err := s.scheduleRepo.GetLine(ctx, line.ID)
		if err != nil {
			return err
		}
		updated.Refresh()
		res.Line = &updated.ScheduleLine
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int32("line_id", input.LineID).
		Int32("loan_id", input.LoanID).
		Str("interest_month", input.InterestMonth.String()).
		Str("applied", result.Applied.String()).
		Bool("partial", result.Partial).
		Msg("Schedule line adjusted from interest")

	s.publishEvent(websocket.ScheduleLineAdjusted(result))
	s.publishEvent(websocket.PaymentCreated(result.Payment))
	return result, nil
}

// explainScheduleAdjustment fills in the operator-facing explanation when the
// applied amount differs from what a full settlement or the request would
// have been, and returns the notes to store on the adjustment
func explainScheduleAdjustment(res *domain.ScheduleAdjustmentResult, line *domain.ScheduleLineDetail, month domain.Period, remaining decimal.Decimal, notes string) string {
	var b strings.Builder
	switch {
	case res.Available.LessThan(remaining):
		res.Partial = true
		left := remaining.Sub(res.Applied)
		fmt.Fprintf(&b, "Partial Payment - Interest Insufficient\n\n")
		fmt.Fprintf(&b, "Chit: %s Month %d\n", line.ChitName, line.MonthNumber)
		fmt.Fprintf(&b, "Chit Amount Due: %s\n", domain.FormatMoney(remaining))
		fmt.Fprintf(&b, "Interest Month: %s\n", month)
		fmt.Fprintf(&b, "Interest Available: %s\n\n", domain.FormatMoney(res.Available))
		fmt.Fprintf(&b, "Adjusted Amount: %s\n", domain.FormatMoney(res.Applied))
		fmt.Fprintf(&b, "Remaining to Pay: %s\n\n", domain.FormatMoney(left))
		fmt.Fprintf(&b, "The chit has been partially paid using all available interest.\n")
		fmt.Fprintf(&b, "You need to pay the remaining %s separately.", domain.FormatMoney(left))
		notes = strings.TrimSpace(fmt.Sprintf("%s (Partial: Interest %s < Chit %s)",
			notes, domain.FormatMoney(res.Available), domain.FormatMoney(remaining)))
	case res.Requested.GreaterThan(res.Available):
		fmt.Fprintf(&b, "Full Payment - Using Available Interest\n\n")
		fmt.Fprintf(&b, "Chit: %s Month %d\n", line.ChitName, line.MonthNumber)
		fmt.Fprintf(&b, "Chit Amount: %s\n", domain.FormatMoney(remaining))
		fmt.Fprintf(&b, "Interest Available: %s\n\n", domain.FormatMoney(res.Available))
		fmt.Fprintf(&b, "Adjusted Amount: %s\n\n", domain.FormatMoney(res.Applied))
		fmt.Fprintf(&b, "The chit has been fully paid using %s from available interest.", domain.FormatMoney(res.Applied))
		notes = strings.TrimSpace(notes + " (Full payment using available interest)")
	}
	res.Message = b.String()
	return notes
}

// optionalString maps blank strings to nil
func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
