package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AdjustmentService is the reconciliation engine. It moves available loan
// interest onto chit obligations through the append-only adjustment ledger,
// records direct cash payments against chit periods, and settles individual
// chit schedule lines from loan interest.
type AdjustmentService struct {
	tx             domain.Transactor
	borrowerRepo   domain.BorrowerRepository
	loanRepo       domain.LoanRepository
	paymentRepo    domain.PaymentRepository
	chitRepo       domain.ChitGroupRepository
	linkRepo       domain.BorrowerChitLinkRepository
	adjustmentRepo domain.AdjustmentRepository
	directRepo     domain.DirectChitPaymentRepository
	scheduleRepo   domain.IndividualChitRepository
	eventSink
}

// AdjustmentRepos groups the repositories the engine reads and writes
type AdjustmentRepos struct {
	Borrowers      domain.BorrowerRepository
	Loans          domain.LoanRepository
	Payments       domain.PaymentRepository
	ChitGroups     domain.ChitGroupRepository
	Links          domain.BorrowerChitLinkRepository
	Adjustments    domain.AdjustmentRepository
	DirectPayments domain.DirectChitPaymentRepository
	Schedules      domain.IndividualChitRepository
}

// NewAdjustmentService creates a new AdjustmentService
func NewAdjustmentService(tx domain.Transactor, repos AdjustmentRepos) *AdjustmentService {
	return &AdjustmentService{
		tx:             tx,
		borrowerRepo:   repos.Borrowers,
		loanRepo:       repos.Loans,
		paymentRepo:    repos.Payments,
		chitRepo:       repos.ChitGroups,
		linkRepo:       repos.Links,
		adjustmentRepo: repos.Adjustments,
		directRepo:     repos.DirectPayments,
		scheduleRepo:   repos.Schedules,
	}
}

// CreateAdjustmentInput contains input for moving interest onto a chit period
type CreateAdjustmentInput struct {
	BorrowerID    int32
	InterestMonth domain.Period
	ChitID        int32
	ChitMonth     domain.Period
	Amount        decimal.Decimal
	Notes         *string
}

// CreateAdjustment validates and records an ACTIVE adjustment. Rules are
// checked in order and the first violation is returned:
//  1. both months are well-formed periods
//  2. the amount is positive
//  3. the borrower is linked to the chit
//  4. the chit month is inside the chit's life
//  5. the borrower has an Active loan
//  6. the interest month has enough available interest
//  7. the chit month has enough remaining due
func (s *AdjustmentService) CreateAdjustment(ctx context.Context, input CreateAdjustmentInput) (created *domain.Adjustment, err error) {
	defer observe("create_adjustment", &err)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if !input.InterestMonth.Valid() || !input.ChitMonth.Valid() {
			return domain.ErrInvalidPeriod
		}
		if !input.Amount.IsPositive() {
			return domain.ErrAmountNotPositive
		}
		chit, err := s.linkedChit(ctx, input.BorrowerID, input.ChitID)
		if err != nil {
			return err
		}
		if err := chit.CheckMonth(input.ChitMonth); err != nil {
			return err
		}

		hasActive, err := s.loanRepo.HasActiveByBorrower(ctx, input.BorrowerID)
		if err != nil {
			return fmt.Errorf("check active loans: %w", err)
		}
		if !hasActive {
			return domain.ErrNoActiveLoans
		}

		interest, err := s.interestMonthView(ctx, input.BorrowerID, input.InterestMonth)
		if err != nil {
			return err
		}
		if interest.InterestAvailable.LessThan(input.Amount) {
			return domain.ErrInsufficientInterest.Withf("Insufficient interest available. Available: %s, Requested: %s",
				domain.FormatMoney(interest.InterestAvailable), domain.FormatMoney(input.Amount))
		}

		view, err := chitMonthView(ctx, s.adjustmentRepo, s.directRepo, chit, input.BorrowerID, input.ChitMonth)
		if err != nil {
			return err
		}
		if err := checkRemaining(view, input.Amount); err != nil {
			return err
		}

		created, err = s.adjustmentRepo.Create(ctx, &domain.Adjustment{
			BorrowerID:    input.BorrowerID,
			InterestMonth: input.InterestMonth,
			ChitID:        input.ChitID,
			ChitMonth:     input.ChitMonth,
			Amount:        input.Amount,
			Status:        domain.AdjustmentStatusActive,
			Notes:         input.Notes,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int32("adjustment_id", created.ID).
		Int32("borrower_id", created.BorrowerID).
		Int32("chit_id", created.ChitID).
		Str("interest_month", created.InterestMonth.String()).
		Str("chit_month", created.ChitMonth.String()).
		Str("amount", created.Amount.String()).
		Msg("Adjustment created")

	s.publishEvent(websocket.AdjustmentCreated(created))
	return created, nil
}

// ReverseAdjustment undoes an ACTIVE adjustment with a compensating entry:
// a new ACTIVE row with the interest and chit months swapped, pointing back
// at the original, which is flipped to REVERSED. Nothing is deleted.
func (s *AdjustmentService) ReverseAdjustment(ctx context.Context, adjustmentID int32, notes string) (reversal *domain.Adjustment, err error) {
	defer observe("reverse_adjustment", &err)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		original, err := s.adjustmentRepo.GetByID(ctx, adjustmentID)
		if err != nil {
			return err
		}
		if !original.IsActive() {
			return domain.ErrAdjustmentAlreadyReversed.Withf("Adjustment #%d is already reversed", adjustmentID)
		}

		reversal, err = s.adjustmentRepo.Create(ctx, original.Reversal(notes))
		if err != nil {
			return fmt.Errorf("create reversal: %w", err)
		}
		return s.adjustmentRepo.MarkReversed(ctx, adjustmentID)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int32("adjustment_id", adjustmentID).
		Int32("reversal_id", reversal.ID).
		Str("amount", reversal.Amount.String()).
		Msg("Adjustment reversed")

	s.publishEvent(websocket.AdjustmentReversed(reversal))
	return reversal, nil
}

// DirectChitPaymentInput contains input for a cash payment against a chit period
type DirectChitPaymentInput struct {
	BorrowerID  int32
	ChitID      int32
	ChitMonth   domain.Period
	Amount      decimal.Decimal
	PaymentDate time.Time
	PaymentMode *string
	Reference   *string
	Notes       *string
}

// AddDirectChitPayment records cash toward a chit period. It is validated
// like an adjustment, minus the loan and interest rules.
func (s *AdjustmentService) AddDirectChitPayment(ctx context.Context, input DirectChitPaymentInput) (created *domain.DirectChitPayment, err error) {
	defer observe("add_direct_chit_payment", &err)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if !input.ChitMonth.Valid() {
			return domain.ErrInvalidPeriod
		}
		if !input.Amount.IsPositive() {
			return domain.ErrAmountNotPositive
		}
		chit, err := s.linkedChit(ctx, input.BorrowerID, input.ChitID)
		if err != nil {
			return err
		}
		if err := chit.CheckMonth(input.ChitMonth); err != nil {
			return err
		}
		view, err := chitMonthView(ctx, s.adjustmentRepo, s.directRepo, chit, input.BorrowerID, input.ChitMonth)
		if err != nil {
			return err
		}
		if err := checkRemaining(view, input.Amount); err != nil {
			return err
		}

		created, err = s.directRepo.Create(ctx, &domain.DirectChitPayment{
			BorrowerID:  input.BorrowerID,
			ChitID:      input.ChitID,
			ChitMonth:   input.ChitMonth,
			Amount:      input.Amount,
			PaymentDate: input.PaymentDate,
			PaymentMode: input.PaymentMode,
			Reference:   input.Reference,
			Notes:       input.Notes,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int32("payment_id", created.ID).
		Int32("borrower_id", created.BorrowerID).
		Int32("chit_id", created.ChitID).
		Str("chit_month", created.ChitMonth.String()).
		Str("amount", created.Amount.String()).
		Msg("Direct chit payment recorded")

	s.publishEvent(websocket.DirectChitPaymentCreated(created))
	return created, nil
}

// ValidateAdjustment is a dry run of CreateAdjustment. Instead of stopping at
// the first violation it reports every failed rule, along with the largest
// amount that would currently be accepted.
func (s *AdjustmentService) ValidateAdjustment(ctx context.Context, input CreateAdjustmentInput) (*domain.AdjustmentCheck, error) {
	check := &domain.AdjustmentCheck{Errors: []string{}, MaxAllowed: decimal.Zero}
	if !input.InterestMonth.Valid() || !input.ChitMonth.Valid() {
		check.Errors = append(check.Errors, domain.ErrInvalidPeriod.Reason)
		return check, nil
	}

	chit, err := s.chitRepo.GetByID(ctx, input.ChitID)
	if err != nil {
		return nil, err
	}
	interest, err := s.interestMonthView(ctx, input.BorrowerID, input.InterestMonth)
	if err != nil {
		return nil, err
	}
	view, err := chitMonthView(ctx, s.adjustmentRepo, s.directRepo, chit, input.BorrowerID, input.ChitMonth)
	if err != nil {
		return nil, err
	}
	check.InterestView = interest
	check.ChitView = view
	check.MaxAllowed = domain.MaxMoney(decimal.Zero, domain.MinMoney(interest.InterestAvailable, view.RemainingDue))

	linked, err := s.linkRepo.Exists(ctx, input.BorrowerID, input.ChitID)
	if err != nil {
		return nil, fmt.Errorf("check link: %w", err)
	}
	if !linked {
		check.Errors = append(check.Errors, domain.ErrNotLinked.Reason)
	}
	if !input.Amount.IsPositive() {
		check.Errors = append(check.Errors, domain.ErrAmountNotPositive.Reason)
	}
	if err := chit.CheckMonth(input.ChitMonth); err != nil {
		check.Errors = append(check.Errors, err.Error())
	}
	hasActive, err := s.loanRepo.HasActiveByBorrower(ctx, input.BorrowerID)
	if err != nil {
		return nil, fmt.Errorf("check active loans: %w", err)
	}
	if !hasActive {
		check.Errors = append(check.Errors, domain.ErrNoActiveLoans.Reason)
	}
	if input.Amount.GreaterThan(interest.InterestAvailable) {
		check.Errors = append(check.Errors, fmt.Sprintf("Insufficient interest available (%s)", domain.FormatMoney(interest.InterestAvailable)))
	}
	if err := checkRemaining(view, input.Amount); err != nil {
		check.Errors = append(check.Errors, err.Error())
	}

	check.Valid = len(check.Errors) == 0
	return check, nil
}

func (s *AdjustmentService) GetAdjustment(ctx context.Context, adjustmentID int32) (*domain.Adjustment, error) {
	return s.adjustmentRepo.GetByID(ctx, adjustmentID)
}

// ListAdjustments lists adjustments, newest first
func (s *AdjustmentService) ListAdjustments(ctx context.Context, filter domain.AdjustmentFilter) ([]*domain.Adjustment, error) {
	return s.adjustmentRepo.List(ctx, filter)
}

// ListDirectChitPayments lists direct chit payments, newest first
func (s *AdjustmentService) ListDirectChitPayments(ctx context.Context, filter domain.DirectChitPaymentFilter) ([]*domain.DirectChitPayment, error) {
	return s.directRepo.List(ctx, filter)
}

// InterestMonthView reports a borrower's interest received for a period,
// how much of it ACTIVE adjustments consumed, and what is left
func (s *AdjustmentService) InterestMonthView(ctx context.Context, borrowerID int32, period domain.Period) (*domain.InterestMonthView, error) {
	if !period.Valid() {
		return nil, domain.ErrInvalidPeriod
	}
	if _, err := s.borrowerRepo.GetByID(ctx, borrowerID); err != nil {
		return nil, err
	}
	return s.interestMonthView(ctx, borrowerID, period)
}

func (s *AdjustmentService) interestMonthView(ctx context.Context, borrowerID int32, period domain.Period) (*domain.InterestMonthView, error) {
	received, err := s.paymentRepo.SumInterestByBorrowerMonth(ctx, borrowerID, period)
	if err != nil {
		return nil, fmt.Errorf("sum interest received: %w", err)
	}
	adjusted, err := s.adjustmentRepo.SumActiveByInterestMonth(ctx, borrowerID, period)
	if err != nil {
		return nil, fmt.Errorf("sum interest adjusted: %w", err)
	}
	return &domain.InterestMonthView{
		BorrowerID:        borrowerID,
		InterestMonth:     period,
		InterestReceived:  received,
		InterestAdjusted:  adjusted,
		InterestAvailable: received.Sub(adjusted),
	}, nil
}

// linkedChit loads the chit after confirming the borrower is linked to it
func (s *AdjustmentService) linkedChit(ctx context.Context, borrowerID, chitID int32) (*domain.ChitGroup, error) {
	linked, err := s.linkRepo.Exists(ctx, borrowerID, chitID)
	if err != nil {
		return nil, fmt.Errorf("check link: %w", err)
	}
	if !linked {
		return nil, domain.ErrNotLinked
	}
	return s.chitRepo.GetByID(ctx, chitID)
}

// checkRemaining rejects settling a fully settled period or more than is left on it
func checkRemaining(view *domain.ChitMonthView, amount decimal.Decimal) error {
	if !view.RemainingDue.IsPositive() {
		return domain.ErrChitMonthFullyPaid
	}
	if amount.GreaterThan(view.RemainingDue) {
		return domain.ErrAmountExceedsRemaining.Withf("Amount exceeds remaining due. Remaining: %s, Requested: %s",
			domain.FormatMoney(view.RemainingDue), domain.FormatMoney(amount))
	}
	return nil
}
