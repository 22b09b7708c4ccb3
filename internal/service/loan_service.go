package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/util"
	"github.com/dafibh/lendbook/lendbook-backend/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// LoanService owns loans and their payments
type LoanService struct {
	tx           domain.Transactor
	borrowerRepo domain.BorrowerRepository
	loanRepo     domain.LoanRepository
	paymentRepo  domain.PaymentRepository
	eventSink
}

// NewLoanService creates a new LoanService
func NewLoanService(tx domain.Transactor, borrowerRepo domain.BorrowerRepository, loanRepo domain.LoanRepository, paymentRepo domain.PaymentRepository) *LoanService {
	return &LoanService{
		tx:           tx,
		borrowerRepo: borrowerRepo,
		loanRepo:     loanRepo,
		paymentRepo:  paymentRepo,
	}
}

// RecordLoanInput contains input for recording a disbursement
type RecordLoanInput struct {
	BorrowerName     string
	Phone            *string
	PrincipalGiven   decimal.Decimal
	MonthlyRate      decimal.Decimal // percent per month
	GivenDate        time.Time
	InterestDueDay   int32 // DefaultInterestDueDay when zero
	DocumentReceived bool
	DocumentType     *string
	Notes            *string
}

// RecordLoan creates a loan for the named borrower, creating the borrower on
// first use. Outstanding principal starts at the principal given.
func (s *LoanService) RecordLoan(ctx context.Context, input RecordLoanInput) (created *domain.Loan, err error) {
	defer observe("record_loan", &err)

	name, err := domain.NormalizeBorrowerName(input.BorrowerName)
	if err != nil {
		return nil, err
	}

	dueDay := input.InterestDueDay
	if dueDay == 0 {
		dueDay = domain.DefaultInterestDueDay
	}

	loan := &domain.Loan{
		PrincipalGiven:       input.PrincipalGiven,
		OutstandingPrincipal: input.PrincipalGiven,
		MonthlyRate:          input.MonthlyRate,
		GivenDate:            util.DateOf(input.GivenDate),
		InterestDueDay:       dueDay,
		Status:               domain.LoanStatusActive,
		DocumentReceived:     input.DocumentReceived,
		DocumentType:         input.DocumentType,
		Notes:                input.Notes,
	}
	if err = loan.Validate(); err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		borrower, err := s.borrowerRepo.GetOrCreate(ctx, name, input.Phone)
		if err != nil {
			return fmt.Errorf("get or create borrower: %w", err)
		}
		loan.BorrowerID = borrower.ID
		loan.BorrowerName = borrower.Name
		loan.BorrowerPhone = borrower.Phone

		created, err = s.loanRepo.Create(ctx, loan)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int32("loan_id", created.ID).
		Int32("borrower_id", created.BorrowerID).
		Str("principal", created.PrincipalGiven.String()).
		Str("rate", created.MonthlyRate.String()).
		Msg("Loan recorded")

	s.publishEvent(websocket.LoanCreated(created))
	return created, nil
}

// RecordPaymentInput contains input for recording a receipt against a loan
type RecordPaymentInput struct {
	LoanID        int32
	InterestMonth domain.Period
	PaymentDate   time.Time
	TotalReceived decimal.Decimal
	InterestPaid  decimal.Decimal
	PrincipalPaid decimal.Decimal
	PaymentMode   *string
	Reference     *string
	Notes         *string
}

// RecordPayment appends a payment and decrements the loan's outstanding
// principal in one transaction. Interest plus principal must equal the total
// within one cent; closed loans and principal beyond the outstanding balance
// are rejected.
func (s *LoanService) RecordPayment(ctx context.Context, input RecordPaymentInput) (created *domain.Payment, err error) {
	defer observe("record_payment", &err)

	payment := &domain.Payment{
		LoanID:        input.LoanID,
		PaymentDate:   util.DateOf(input.PaymentDate),
		InterestMonth: input.InterestMonth,
		TotalReceived: input.TotalReceived,
		InterestPaid:  input.InterestPaid,
		PrincipalPaid: input.PrincipalPaid,
		PaymentMode:   input.PaymentMode,
		Reference:     input.Reference,
		Notes:         input.Notes,
	}
	if err = payment.Validate(); err != nil {
		return nil, err
	}
	if payment.IsAdjustment() {
		return nil, domain.ErrPaymentModeReserved
	}

	var updated *domain.Loan
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		loan, err := s.loanRepo.GetByID(ctx, input.LoanID)
		if err != nil {
			return err
		}
		if !loan.IsActive() {
			return domain.ErrLoanClosed.Withf("Loan %d is closed. Payments cannot be recorded", loan.ID)
		}
		if payment.PrincipalPaid.Sub(loan.OutstandingPrincipal).GreaterThan(domain.MoneyEpsilon) {
			return domain.ErrPaymentExceedsPrincipal.Withf(
				"Principal paid exceeds outstanding principal. Outstanding: %s, Requested: %s",
				domain.FormatMoney(loan.OutstandingPrincipal), domain.FormatMoney(payment.PrincipalPaid))
		}

		created, err = s.paymentRepo.Create(ctx, payment)
		if err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		if payment.PrincipalPaid.IsPositive() {
			updated, err = s.loanRepo.DecrementOutstanding(ctx, loan.ID, payment.PrincipalPaid)
			if err != nil {
				return fmt.Errorf("decrement outstanding: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int32("loan_id", created.LoanID).
		Int32("payment_id", created.ID).
		Str("interest_month", created.InterestMonth.String()).
		Str("interest_paid", created.InterestPaid.String()).
		Str("principal_paid", created.PrincipalPaid.String()).
		Msg("Payment recorded")

	s.publishEvent(websocket.PaymentCreated(created))
	if updated != nil {
		s.publishEvent(websocket.LoanUpdated(updated))
	}
	return created, nil
}

// loanHistory loads a loan with every payment recorded against it
func (s *LoanService) loanHistory(ctx context.Context, loanID int32) (*domain.Loan, []*domain.Payment, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, nil, err
	}
	payments, err := s.paymentRepo.ListByLoan(ctx, loanID)
	if err != nil {
		return nil, nil, fmt.Errorf("list payments: %w", err)
	}
	return loan, payments, nil
}

// InterestDueForPeriod computes one period's interest by the opening-principal method
func (s *LoanService) InterestDueForPeriod(ctx context.Context, loanID int32, period domain.Period) (decimal.Decimal, error) {
	if !period.Valid() {
		return decimal.Zero, domain.ErrInvalidPeriod
	}
	loan, payments, err := s.loanHistory(ctx, loanID)
	if err != nil {
		return decimal.Zero, err
	}
	return InterestDue(loan, payments, period), nil
}

// PendingInterest computes total interest arrears from the loan's start month up to upTo
func (s *LoanService) PendingInterest(ctx context.Context, loanID int32, upTo domain.Period) (decimal.Decimal, error) {
	if !upTo.Valid() {
		return decimal.Zero, domain.ErrInvalidPeriod
	}
	loan, payments, err := s.loanHistory(ctx, loanID)
	if err != nil {
		return decimal.Zero, err
	}
	return PendingInterest(loan, payments, upTo), nil
}

// CloseLoan moves an Active loan to Closed as of closedDate. Closed is terminal.
func (s *LoanService) CloseLoan(ctx context.Context, loanID int32, reason *string, closedDate time.Time) (closed *domain.Loan, err error) {
	defer observe("close_loan", &err)

	closedDate = util.DateOf(closedDate)
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		loan, err := s.loanRepo.GetByID(ctx, loanID)
		if err != nil {
			return err
		}
		if !loan.IsActive() {
			return domain.ErrLoanAlreadyClosed
		}
		if closedDate.Before(loan.GivenDate) {
			return domain.ErrCloseBeforeGiven
		}
		closed, err = s.loanRepo.Close(ctx, loanID, closedDate, reason)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int32("loan_id", closed.ID).
		Time("closed_date", closedDate).
		Str("outstanding", closed.OutstandingPrincipal.String()).
		Msg("Loan closed")

	s.publishEvent(websocket.LoanClosed(closed))
	return closed, nil
}

// GetLoan returns a loan with its standing as of the given date
func (s *LoanService) GetLoan(ctx context.Context, loanID int32, asOf time.Time) (*domain.LoanDetail, error) {
	loan, payments, err := s.loanHistory(ctx, loanID)
	if err != nil {
		return nil, err
	}

	month := domain.PeriodOf(asOf)
	detail := &domain.LoanDetail{
		Loan:             loan,
		AsOfMonth:        month,
		InterestDueMonth: InterestDue(loan, payments, month),
		PendingInterest:  PendingInterest(loan, payments, month),
	}
	if loan.IsActive() {
		next := util.NextDueDate(asOf, int(loan.InterestDueDay))
		detail.NextDueDate = &next
	}
	return detail, nil
}

// ListLoans lists loans, newest disbursement first
func (s *LoanService) ListLoans(ctx context.Context, filter domain.LoanFilter) ([]*domain.Loan, error) {
	return s.loanRepo.List(ctx, filter)
}

// UpdateLoanDetails edits loan metadata. Principal, rate and the outstanding
// balance cannot be changed here.
func (s *LoanService) UpdateLoanDetails(ctx context.Context, loanID int32, update domain.LoanDetailsUpdate) (updated *domain.Loan, err error) {
	defer observe("update_loan", &err)

	if update.InterestDueDay == 0 {
		update.InterestDueDay = domain.DefaultInterestDueDay
	}
	if update.InterestDueDay < 1 || update.InterestDueDay > 31 {
		return nil, domain.ErrLoanDueDayInvalid
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.loanRepo.GetByID(ctx, loanID); err != nil {
			return err
		}
		updated, err = s.loanRepo.UpdateDetails(ctx, loanID, update)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.LoanUpdated(updated))
	return updated, nil
}

// ListPayments lists a loan's payments, newest first
func (s *LoanService) ListPayments(ctx context.Context, loanID int32) ([]*domain.Payment, error) {
	if _, err := s.loanRepo.GetByID(ctx, loanID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByLoan(ctx, loanID)
}

// ListBorrowers lists every borrower by name
func (s *LoanService) ListBorrowers(ctx context.Context) ([]*domain.Borrower, error) {
	return s.borrowerRepo.List(ctx)
}

// ReplayOutstanding re-derives a loan's outstanding principal from its
// payments and compares it with the recorded balance
func (s *LoanService) ReplayOutstanding(ctx context.Context, loanID int32) (*domain.OutstandingReplay, error) {
	loan, payments, err := s.loanHistory(ctx, loanID)
	if err != nil {
		return nil, err
	}

	replayed := ReplayOutstanding(loan, payments)
	drift := loan.OutstandingPrincipal.Sub(replayed)
	result := &domain.OutstandingReplay{
		LoanID:     loan.ID,
		Recorded:   loan.OutstandingPrincipal,
		Replayed:   replayed,
		Drift:      drift,
		Consistent: drift.IsZero(),
	}
	if !result.Consistent {
		log.Warn().
			Int32("loan_id", loan.ID).
			Str("recorded", loan.OutstandingPrincipal.String()).
			Str("replayed", replayed.String()).
			Msg("Outstanding principal drift detected")
	}
	return result, nil
}
